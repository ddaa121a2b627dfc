package leads

import (
	"context"
	"fmt"

	"aikit/pkg/llm"
)

// Summary is the consolidated result of a research command.
type Summary struct {
	Summary    string   `json:"summary"`
	Contacts   Contacts `json:"contact_info"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources"`
}

// Summarizer condenses gathered source data into a Summary.
type Summarizer interface {
	Summarize(ctx context.Context, data string, sources []string) (Summary, error)
}

// StaticSummarizer works offline: contacts come from regex extraction and the
// summary line is fixed.
type StaticSummarizer struct{}

func (StaticSummarizer) Summarize(ctx context.Context, data string, sources []string) (Summary, error) {
	return Summary{
		Summary:    "Professional intelligence summary: consolidated profile with contact details extracted from the gathered sources.",
		Contacts:   ExtractContacts(data),
		Confidence: 0.8,
		Sources:    sources,
	}, nil
}

// LLMSummarizer asks the configured model for the prose summary. Contact
// extraction stays regex-based so it is deterministic.
type LLMSummarizer struct {
	LLM llm.Client
}

const summaryPrompt = `Summarize the following public profile information in 2-3 sentences.
Stick to what the data says and do not invent details.

%s`

func (s *LLMSummarizer) Summarize(ctx context.Context, data string, sources []string) (Summary, error) {
	text, err := s.LLM.Complete(ctx, fmt.Sprintf(summaryPrompt, data))
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	return Summary{
		Summary:    text,
		Contacts:   ExtractContacts(data),
		Confidence: 0.9,
		Sources:    sources,
	}, nil
}
