package discover

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"aikit/pkg/llm"
	"aikit/pkg/webfetch"
)

// Product is one search result worth recommending.
type Product struct {
	Title string `json:"title"`
	Price int    `json:"price"`
	Link  string `json:"link"`
}

// Refinement is the machine-usable form of a natural-language product need.
type Refinement struct {
	Keywords string
	Budget   int // 0 means no budget constraint
}

const (
	maxResults         = 5
	maxRecommendations = 3
)

type Discoverer struct {
	LLM     llm.Client
	Fetcher *webfetch.Client
	BaseURL string
}

func NewDiscoverer(client llm.Client, fetcher *webfetch.Client, baseURL string) *Discoverer {
	return &Discoverer{LLM: client, Fetcher: fetcher, BaseURL: strings.TrimRight(baseURL, "/")}
}

// RefineQuery asks the model to reduce the user's request to search keywords
// and an optional budget, using a keywords|budget_max reply contract.
func (d *Discoverer) RefineQuery(ctx context.Context, userInput string) (Refinement, error) {
	prompt := fmt.Sprintf("Extract search keywords and budget from: '%s'. Return only: keywords|budget_max", userInput)
	reply, err := d.LLM.Complete(ctx, prompt)
	if err != nil {
		return Refinement{}, err
	}
	return parseRefinement(reply, userInput), nil
}

func parseRefinement(reply, fallback string) Refinement {
	parts := strings.SplitN(strings.TrimSpace(reply), "|", 2)
	r := Refinement{Keywords: strings.TrimSpace(parts[0])}
	if r.Keywords == "" {
		r.Keywords = fallback
	}
	if len(parts) == 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && n > 0 {
			r.Budget = n
		}
	}
	return r
}

// Search fetches the retailer search page and returns up to three products
// within budget. A zero maxPrice disables the budget filter.
func (d *Discoverer) Search(ctx context.Context, query string, maxPrice int) ([]Product, error) {
	searchURL := fmt.Sprintf("%s/s?k=%s", d.BaseURL, url.QueryEscape(query))
	body, err := d.Fetcher.Get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	all := parseSearchResults(body, d.BaseURL)
	logrus.Debugf("discover: parsed %d result cells for %q", len(all), query)

	var products []Product
	for _, p := range all {
		if maxPrice > 0 && p.Price > maxPrice {
			continue
		}
		products = append(products, p)
		if len(products) == maxRecommendations {
			break
		}
	}
	return products, nil
}

// Rank asks the model to reorder products by relevance to the original query.
// Any reply that does not parse as a permutation falls back to search order.
func (d *Discoverer) Rank(ctx context.Context, products []Product, originalQuery string) []Product {
	if len(products) == 0 {
		return nil
	}

	var lines []string
	for i, p := range products {
		lines = append(lines, fmt.Sprintf("%d. %s - %d", i+1, p.Title, p.Price))
	}
	prompt := fmt.Sprintf("Rank these products for query '%s' by relevance (1-%d): \n%s\nReturn only numbers: 1,2,3",
		originalQuery, len(products), strings.Join(lines, "\n"))

	reply, err := d.LLM.Complete(ctx, prompt)
	if err != nil {
		logrus.Warnf("discover: ranking failed, keeping search order: %v", err)
		return products
	}

	ranked := applyRanking(products, reply)
	if ranked == nil {
		return products
	}
	return ranked
}

func applyRanking(products []Product, reply string) []Product {
	var ranked []Product
	for _, part := range strings.Split(strings.TrimSpace(reply), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil
		}
		if i := n - 1; i >= 0 && i < len(products) {
			ranked = append(ranked, products[i])
		}
	}
	return ranked
}
