package leads

import (
	"regexp"
	"strings"
)

// Kind classifies what a research command is about.
type Kind string

const (
	KindPerson  Kind = "person"
	KindCompany Kind = "company"
	KindURL     Kind = "url"
)

// Request is the parsed form of a natural-language research command.
type Request struct {
	Kind    Kind
	Name    string
	Company string
	URLs    []string
	Sources []string
}

var (
	urlPattern  = regexp.MustCompile(`https?://[^\s]+`)
	namePattern = regexp.MustCompile(`about\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`)

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:company|business|firm|corp|corporation|inc|ltd)\s+([A-Z][a-zA-Z\s&]+?)(?:\s|$)`),
		regexp.MustCompile(`(?i)(?:from|at|of)\s+([A-Z][a-zA-Z\s&]+?)(?:\s+(?:company|corp|inc|ltd|employees|staff|team))`),
		regexp.MustCompile(`(?i)employees?\s+(?:from|at|of)\s+([A-Z][a-zA-Z\s&]+?)(?:\s|$)`),
		regexp.MustCompile(`(?i)leads?\s+(?:from|at|of)\s+([A-Z][a-zA-Z\s&]+?)(?:\s|$)`),
	}

	companyKeywords = []string{"employees", "staff", "team", "leads", "people from", "workers at"}
	personSources   = []string{"linkedin", "twitter", "github"}
)

// ParseCommand routes a command to URL analysis, company research or person
// research, in that priority order.
func ParseCommand(command string) Request {
	if urls := urlPattern.FindAllString(command, -1); len(urls) > 0 {
		return Request{Kind: KindURL, URLs: urls, Sources: []string{"web"}}
	}

	lower := strings.ToLower(command)
	for _, kw := range companyKeywords {
		if strings.Contains(lower, kw) {
			if company := extractCompany(command); company != "" {
				return Request{Kind: KindCompany, Company: company, Sources: []string{"company"}}
			}
			break
		}
	}

	name := "Unknown Person"
	if m := namePattern.FindStringSubmatch(command); m != nil {
		name = m[1]
	}

	var sources []string
	for _, s := range personSources {
		if strings.Contains(lower, s) {
			sources = append(sources, s)
		}
	}
	if len(sources) == 0 {
		sources = personSources
	}

	return Request{Kind: KindPerson, Name: name, Sources: sources}
}

func extractCompany(command string) string {
	for _, p := range companyPatterns {
		if m := p.FindStringSubmatch(command); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
