package leads

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aikit/pkg/webfetch"
)

func serveHTML(t *testing.T, page string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
}

func TestWebSourceCapsContacts(t *testing.T) {
	var page strings.Builder
	page.WriteString("<html><body>")
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&page, "<p>contact%d: a%d@example.com</p>", i, i)
	}
	for i := 1; i <= 4; i++ {
		fmt.Fprintf(&page, "<p>desk%d: 555-111-000%d</p>", i, i)
	}
	page.WriteString("</body></html>")

	srv := serveHTML(t, page.String())
	defer srv.Close()

	w := &WebSource{Fetcher: webfetch.New(5 * time.Second)}
	out, err := w.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	var emailsLine, phonesLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Found emails: ") {
			emailsLine = line
		}
		if strings.HasPrefix(line, "Found phones: ") {
			phonesLine = line
		}
	}

	assert.Equal(t,
		"Found emails: a1@example.com, a2@example.com, a3@example.com, a4@example.com, a5@example.com",
		emailsLine, "first five emails in page order")
	assert.Equal(t,
		"Found phones: 555-111-0001, 555-111-0002, 555-111-0003",
		phonesLine, "first three phones in page order")
}

func TestWebSourcePreviewTruncatesOnRuneBoundary(t *testing.T) {
	srv := serveHTML(t, "<html><body><p>"+strings.Repeat("é", 900)+"</p></body></html>")
	defer srv.Close()

	w := &WebSource{Fetcher: webfetch.New(5 * time.Second)}
	out, err := w.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, strings.Repeat("é", 800)+"...")
	assert.NotContains(t, out, strings.Repeat("é", 801))
}
