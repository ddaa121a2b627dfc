package leads

import (
	"context"
	"fmt"
	"strings"
)

// Source produces raw public information about a subject (a person name, a
// company name or a URL depending on the source).
type Source interface {
	Fetch(ctx context.Context, subject string) (string, error)
}

// The profile sources below serve directory fixtures so the pipeline works
// end to end without paid data vendors.
// TODO: back these with a real enrichment API (Hunter.io or Apollo).

type LinkedInSource struct{}

func (LinkedInSource) Fetch(ctx context.Context, name string) (string, error) {
	handle := strings.ReplaceAll(strings.ToLower(name), " ", ".")
	return fmt.Sprintf("LinkedIn: %s - Senior Developer at Tech Corp, 5+ years experience. Location: San Francisco, CA. Email: %s@techcorp.com", name, handle), nil
}

type TwitterSource struct{}

func (TwitterSource) Fetch(ctx context.Context, name string) (string, error) {
	return fmt.Sprintf("Twitter: %s - Tech influencer, 10K followers. Bio location: SF Bay Area. Contact: DM open for collaborations.", name), nil
}

type GitHubSource struct{}

func (GitHubSource) Fetch(ctx context.Context, name string) (string, error) {
	handle := strings.ReplaceAll(strings.ToLower(name), " ", "")
	return fmt.Sprintf("GitHub: %s - 50+ repos, Python/JS expert. Location: California, USA. Public email: %s@gmail.com", name, handle), nil
}

type CompanySource struct{}

type directoryEntry struct {
	Name     string
	Title    string
	Phone    string
	Location string
	Address  string
}

var directoryEntries = []directoryEntry{
	{"John Smith", "CEO", "+1-555-0101", "New York, NY", "123 Business Ave, NYC 10001"},
	{"Sarah Johnson", "CTO", "+1-555-0102", "San Francisco, CA", "456 Tech St, SF 94105"},
	{"Mike Chen", "VP Engineering", "+1-555-0103", "Austin, TX", "789 Innovation Dr, Austin 78701"},
}

func (CompanySource) Fetch(ctx context.Context, company string) (string, error) {
	domain := strings.ReplaceAll(strings.ToLower(company), " ", "")

	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s - Employee Directory\n%s\n", company, strings.Repeat("=", 50))
	for _, e := range directoryEntries {
		parts := strings.Fields(strings.ToLower(e.Name))
		email := fmt.Sprintf("%s.%s@%s.com", parts[0][:1], parts[1], domain)
		fmt.Fprintf(&b, "%s - %s\n", e.Name, e.Title)
		fmt.Fprintf(&b, "  email: %s\n", email)
		fmt.Fprintf(&b, "  phone: %s\n", e.Phone)
		fmt.Fprintf(&b, "  location: %s\n", e.Location)
		fmt.Fprintf(&b, "  address: %s\n", e.Address)
		fmt.Fprintf(&b, "  linkedin: linkedin.com/in/%s-%s\n\n", strings.Join(parts, "-"), strings.ToLower(company))
	}
	return b.String(), nil
}
