package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aikit/internal/leads"
	"aikit/pkg/webfetch"
)

// leads <command...>: research a person, company or URL and summarize.
func leadsCmd() *cobra.Command {
	var (
		asJSON     bool
		asMarkdown bool
		offline    bool
	)

	cmd := &cobra.Command{
		Use:   "leads <research command>",
		Short: "Gather and summarize public information about a person, company or URL",
		Long: `Gather and summarize public information.

Examples:
  aikit leads "Tell me about John Doe" --json
  aikit leads "employees from Acme" --markdown
  aikit leads "https://company.com/contact"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var summarizer leads.Summarizer = leads.StaticSummarizer{}
			if !offline {
				client, err := newLLMClient(cfg)
				if err != nil {
					return err
				}
				summarizer = &leads.LLMSummarizer{LLM: client}
			}

			timeout, err := fetchTimeout(cfg)
			if err != nil {
				return err
			}

			format := leads.FormatText
			switch {
			case asJSON && asMarkdown:
				return fmt.Errorf("--json and --markdown are mutually exclusive")
			case asJSON:
				format = leads.FormatJSON
			case asMarkdown:
				format = leads.FormatMarkdown
			}

			agent := leads.NewAgent(webfetch.New(timeout), summarizer)
			summary, err := agent.Gather(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out, err := leads.Render(summary, format)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&asMarkdown, "markdown", false, "output in Markdown format")
	cmd.Flags().BoolVar(&offline, "offline", false, "summarize without calling an LLM provider")
	return cmd
}
