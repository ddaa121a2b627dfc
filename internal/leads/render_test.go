package leads

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() Summary {
	return Summary{
		Summary:    "John Doe is a senior developer in San Francisco.",
		Contacts:   Contacts{Emails: []string{"john@company.com"}, Phones: []string{"555-123-4567"}},
		Confidence: 0.8,
		Sources:    []string{"linkedin", "github"},
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := Render(sampleSummary(), FormatJSON)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, sampleSummary(), decoded)
}

func TestRenderMarkdown(t *testing.T) {
	out, err := Render(sampleSummary(), FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, out, "# Intelligence Summary")
	assert.Contains(t, out, "## Contact Information")
	assert.Contains(t, out, "**Emails**: john@company.com")
	assert.Contains(t, out, "- linkedin")
}

func TestRenderText(t *testing.T) {
	out, err := Render(sampleSummary(), FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "John Doe is a senior developer")
	assert.Contains(t, out, "Emails: john@company.com")
	assert.Contains(t, out, "Phones: 555-123-4567")
}

func TestRenderTextNoContacts(t *testing.T) {
	s := Summary{Summary: "Nothing found."}
	out, err := Render(s, "")
	require.NoError(t, err)
	assert.Equal(t, "Nothing found.", out)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(sampleSummary(), Format("yaml"))
	require.Error(t, err)
}
