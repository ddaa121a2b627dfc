package discover

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var digitRun = regexp.MustCompile(`\d+`)

// parseSearchResults extracts products from a retailer search page. Result
// cells are divs tagged data-component-type="s-search-result"; within a cell
// the title and link live under the h2 and the price in span.a-price-whole.
func parseSearchResults(body []byte, baseURL string) []Product {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var products []Product
	for _, cell := range findAll(doc, isResultCell, maxResults) {
		h2 := findFirst(cell, isElement("h2"))
		priceNode := findFirst(cell, hasClass("span", "a-price-whole"))
		if h2 == nil || priceNode == nil {
			continue
		}
		anchor := findFirst(h2, isElement("a"))
		if anchor == nil {
			continue
		}

		title := strings.TrimSpace(nodeText(h2))
		href := attrVal(anchor, "href")
		if title == "" || href == "" {
			continue
		}
		if r := []rune(title); len(r) > 80 {
			title = string(r[:80])
		}

		price := 0
		priceText := strings.ReplaceAll(nodeText(priceNode), ",", "")
		if m := digitRun.FindString(priceText); m != "" {
			price, _ = strconv.Atoi(m)
		}

		link := href
		if strings.HasPrefix(href, "/") {
			link = baseURL + href
		}

		products = append(products, Product{Title: title, Price: price, Link: link})
	}
	return products
}

func isResultCell(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "div" && attrVal(n, "data-component-type") == "s-search-result"
}

func isElement(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func hasClass(tag, class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return false
		}
		for _, c := range strings.Fields(attrVal(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findAll collects up to limit nodes matching pred, in document order.
// Matching nodes are not descended into.
func findAll(n *html.Node, pred func(*html.Node) bool, limit int) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(out) == limit {
			return
		}
		if pred(n) {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
