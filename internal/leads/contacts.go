package leads

import "regexp"

// Contacts is the contact information pulled out of gathered text.
type Contacts struct {
	Emails []string `json:"emails,omitempty"`
	Phones []string `json:"phones,omitempty"`
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(?:\+1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
)

// ExtractContacts finds email addresses and phone numbers in text.
// Duplicates are dropped keeping first-seen order so output is deterministic.
func ExtractContacts(text string) Contacts {
	return Contacts{
		Emails: dedupe(emailPattern.FindAllString(text, -1)),
		Phones: dedupe(phonePattern.FindAllString(text, -1)),
	}
}

// Empty reports whether no contact information was found.
func (c Contacts) Empty() bool {
	return len(c.Emails) == 0 && len(c.Phones) == 0
}

func dedupe(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
