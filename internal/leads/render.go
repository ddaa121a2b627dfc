package leads

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects the output rendering for a summary.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Render renders a summary in the requested format.
func Render(s Summary, f Format) (string, error) {
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case FormatMarkdown:
		return renderMarkdown(s), nil
	case FormatText, "":
		return renderText(s), nil
	default:
		return "", fmt.Errorf("unknown output format: %q", f)
	}
}

func renderText(s Summary) string {
	var b strings.Builder
	b.WriteString(s.Summary)
	if !s.Contacts.Empty() {
		b.WriteString("\n\nContact info:")
		if len(s.Contacts.Emails) > 0 {
			fmt.Fprintf(&b, "\n  Emails: %s", strings.Join(s.Contacts.Emails, ", "))
		}
		if len(s.Contacts.Phones) > 0 {
			fmt.Fprintf(&b, "\n  Phones: %s", strings.Join(s.Contacts.Phones, ", "))
		}
	}
	return b.String()
}

func renderMarkdown(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Intelligence Summary\n\n%s\n", s.Summary)
	if !s.Contacts.Empty() {
		b.WriteString("\n## Contact Information\n")
		if len(s.Contacts.Emails) > 0 {
			fmt.Fprintf(&b, "**Emails**: %s\n\n", strings.Join(s.Contacts.Emails, ", "))
		}
		if len(s.Contacts.Phones) > 0 {
			fmt.Fprintf(&b, "**Phones**: %s\n\n", strings.Join(s.Contacts.Phones, ", "))
		}
	}
	if len(s.Sources) > 0 {
		b.WriteString("\n## Data Sources\n")
		for _, src := range s.Sources {
			fmt.Fprintf(&b, "- %s\n", src)
		}
	}
	return b.String()
}
