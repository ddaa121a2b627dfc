package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aikit/internal/discover"
	"aikit/pkg/webfetch"
)

// discover <need...>: refine the request, search the retailer and rank results.
func discoverCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "discover <product need>",
		Short: "Find product recommendations for a natural-language request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newLLMClient(cfg)
			if err != nil {
				return err
			}
			timeout, err := fetchTimeout(cfg)
			if err != nil {
				return err
			}
			if baseURL == "" {
				baseURL = cfg.RetailerBaseURL
			}

			userQuery := strings.Join(args, " ")
			d := discover.NewDiscoverer(client, webfetch.New(timeout), baseURL)

			fmt.Println("Analyzing your request...")
			refined, err := d.RefineQuery(cmd.Context(), userQuery)
			if err != nil {
				return err
			}
			if refined.Budget > 0 {
				fmt.Printf("Searching for: %s (Budget: %d)\n", refined.Keywords, refined.Budget)
			} else {
				fmt.Printf("Searching for: %s\n", refined.Keywords)
			}

			products, err := d.Search(cmd.Context(), refined.Keywords, refined.Budget)
			if err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Println("No products found.")
				return nil
			}

			ranked := d.Rank(cmd.Context(), products, userQuery)

			fmt.Println("\nTop recommendations:")
			for i, p := range ranked {
				fmt.Printf("%d. %s\n", i+1, p.Title)
				fmt.Printf("   Price: %d\n", p.Price)
				fmt.Printf("   Link: %s\n\n", p.Link)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base", "", "retailer base URL (default from RETAILER_BASE_URL)")
	return cmd
}
