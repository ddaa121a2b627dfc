package leads

import (
	"context"
	"fmt"
	"strings"

	"aikit/pkg/webfetch"
)

const (
	previewLimit = 800
	maxWebEmails = 5
	maxWebPhones = 3
)

// WebSource fetches a page and reports a text preview plus any contact
// information found in it.
type WebSource struct {
	Fetcher *webfetch.Client
}

func (w *WebSource) Fetch(ctx context.Context, pageURL string) (string, error) {
	body, err := w.Fetcher.Get(ctx, pageURL)
	if err != nil {
		return "", err
	}

	text := webfetch.PageText(body)
	preview := text
	if r := []rune(preview); len(r) > previewLimit {
		preview = string(r[:previewLimit]) + "..."
	}

	contacts := ExtractContacts(string(body))

	var b strings.Builder
	fmt.Fprintf(&b, "Web Content from %s:\n%s\n", pageURL, preview)
	if len(contacts.Emails) > 0 {
		fmt.Fprintf(&b, "\nFound emails: %s", strings.Join(capped(contacts.Emails, maxWebEmails), ", "))
	}
	if len(contacts.Phones) > 0 {
		fmt.Fprintf(&b, "\nFound phones: %s", strings.Join(capped(contacts.Phones, maxWebPhones), ", "))
	}
	return b.String(), nil
}

func capped(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
