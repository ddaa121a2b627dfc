package triage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"aikit/pkg/llm"
)

// Ticket is a single support request to classify.
type Ticket struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// Analysis is the structured triage verdict for a ticket.
type Analysis struct {
	TicketID        string `json:"ticket_id,omitempty"`
	Summary         string `json:"summary"`
	Category        string `json:"category"`
	Sentiment       string `json:"sentiment"`
	Urgency         string `json:"urgency"`
	SuggestedAction string `json:"suggested_action"`
}

var (
	categories = []string{"Bug", "Feature Request", "Billing Issue"}
	sentiments = []string{"Positive", "Neutral", "Negative"}
	urgencies  = []string{"Low", "Medium", "High"}
)

const analysisPrompt = `Analyze this support ticket and return JSON with these fields:
- summary: Brief 1-2 sentence summary
- category: "Bug", "Feature Request", or "Billing Issue"
- sentiment: "Positive", "Neutral", or "Negative"
- urgency: "Low", "Medium", or "High"
- suggested_action: Recommended next step

Ticket: %s

Return only valid JSON.`

type Analyzer struct {
	LLM llm.Client
}

func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{LLM: client}
}

// Analyze classifies a ticket and validates the model's verdict against the
// fixed category, sentiment and urgency vocabularies.
func (a *Analyzer) Analyze(ctx context.Context, t Ticket) (*Analysis, error) {
	if strings.TrimSpace(t.Message) == "" {
		return nil, errors.New("ticket message is empty")
	}

	reply, err := a.LLM.Complete(ctx, fmt.Sprintf(analysisPrompt, t.Message))
	if err != nil {
		return nil, err
	}

	var out Analysis
	if err := json.Unmarshal([]byte(llm.ExtractJSON(reply)), &out); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}

	if out.Summary == "" {
		return nil, errors.New("analysis missing summary")
	}
	if out.Category, err = normalizeEnum("category", out.Category, categories); err != nil {
		return nil, err
	}
	if out.Sentiment, err = normalizeEnum("sentiment", out.Sentiment, sentiments); err != nil {
		return nil, err
	}
	if out.Urgency, err = normalizeEnum("urgency", out.Urgency, urgencies); err != nil {
		return nil, err
	}

	out.TicketID = t.ID
	return &out, nil
}

// normalizeEnum matches a model-supplied value against the allowed vocabulary,
// ignoring case, and returns the canonical spelling.
func normalizeEnum(field, value string, allowed []string) (string, error) {
	v := strings.TrimSpace(value)
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a, nil
		}
	}
	return "", fmt.Errorf("analysis has invalid %s: %q", field, value)
}
