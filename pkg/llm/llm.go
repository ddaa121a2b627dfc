package llm

import (
	"context"
	"strings"
)

// Client is the minimal interface any model client must implement to be used by the tools
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ExtractJSON returns the JSON payload of a model reply. Models frequently wrap
// JSON in markdown code fences even when told not to, so fences are stripped.
func ExtractJSON(reply string) string {
	s := strings.TrimSpace(reply)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		lang := strings.TrimSpace(s[:nl])
		if lang == "" || strings.EqualFold(lang, "json") {
			s = s[nl+1:]
		}
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
