package leads

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"aikit/pkg/webfetch"
)

// Agent parses research commands, gathers data from the relevant sources and
// hands the combined text to the summarizer.
type Agent struct {
	Sources    map[string]Source
	Summarizer Summarizer
}

func NewAgent(fetcher *webfetch.Client, summarizer Summarizer) *Agent {
	return &Agent{
		Sources: map[string]Source{
			"linkedin": LinkedInSource{},
			"twitter":  TwitterSource{},
			"github":   GitHubSource{},
			"company":  CompanySource{},
			"web":      &WebSource{Fetcher: fetcher},
		},
		Summarizer: summarizer,
	}
}

// Gather runs one research command end to end.
func (a *Agent) Gather(ctx context.Context, command string) (Summary, error) {
	req := ParseCommand(command)

	var gathered []string
	var target string

	switch req.Kind {
	case KindURL:
		src := a.Sources["web"]
		for _, u := range req.URLs {
			data, err := src.Fetch(ctx, u)
			if err != nil {
				logrus.Warnf("leads: fetching %s: %v", u, err)
				gathered = append(gathered, fmt.Sprintf("Error fetching URL %s: %v", u, err))
				continue
			}
			gathered = append(gathered, fmt.Sprintf("URL %s:\n%s", u, data))
		}
		target = "URLs: " + strings.Join(req.URLs, ", ")

	case KindCompany:
		data, err := a.Sources["company"].Fetch(ctx, req.Company)
		if err != nil {
			return Summary{}, fmt.Errorf("company research %q: %w", req.Company, err)
		}
		gathered = []string{"COMPANY RESEARCH:\n" + data}
		target = "Company: " + req.Company

	default:
		for _, name := range req.Sources {
			src, ok := a.Sources[name]
			if !ok {
				continue
			}
			data, err := src.Fetch(ctx, req.Name)
			if err != nil {
				logrus.Warnf("leads: source %s failed for %s: %v", name, req.Name, err)
				continue
			}
			gathered = append(gathered, strings.ToUpper(name)+": "+data)
		}
		target = "Person: " + req.Name
	}

	combined := target + "\n\n" + strings.Join(gathered, "\n")
	return a.Summarizer.Summarize(ctx, combined, req.Sources)
}
