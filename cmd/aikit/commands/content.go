package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aikit/internal/content"
)

// content <product description...>: generate marketing copy as JSON.
func contentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content <product description>",
		Short: "Generate marketing content for a product",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newLLMClient(cfg)
			if err != nil {
				return err
			}

			out, err := content.NewGenerator(client).GenerateJSON(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}
