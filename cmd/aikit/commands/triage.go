package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	sigs "os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"aikit/internal/triage"
	"aikit/pkg/deduper"
)

const watchDedupeTTL = time.Hour

// triage: analyze one ticket, or watch an inbox directory for ticket files.
func triageCmd() *cobra.Command {
	var (
		message  string
		file     string
		watchDir string
		outDir   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Analyze support tickets with an LLM",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newLLMClient(cfg)
			if err != nil {
				return err
			}
			analyzer := triage.NewAnalyzer(client)

			if watchDir != "" {
				pollInterval, err := time.ParseDuration(cfg.PollInterval)
				if err != nil {
					return fmt.Errorf("invalid POLL_INTERVAL: %w", err)
				}
				dedup := deduper.New(watchDedupeTTL)
				defer dedup.Stop()

				ctx, stop := sigs.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				fmt.Printf("Watching %s for ticket files (poll interval %s)\n", watchDir, pollInterval)
				triage.NewWatcher(analyzer, watchDir, outDir, pollInterval, dedup).Start(ctx)
				return nil
			}

			var ticket triage.Ticket
			switch {
			case file != "":
				b, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(b, &ticket); err != nil {
					return fmt.Errorf("decode ticket file: %w", err)
				}
			case message != "":
				ticket.Message = message
			default:
				return fmt.Errorf("provide --message, --file or --watch")
			}

			analysis, err := analyzer.Analyze(cmd.Context(), ticket)
			if err != nil {
				return err
			}

			if asJSON {
				b, err := json.MarshalIndent(analysis, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(b))
				return nil
			}

			fmt.Printf("Summary: %s\n", analysis.Summary)
			fmt.Printf("Category: %s\n", analysis.Category)
			fmt.Printf("Sentiment: %s\n", analysis.Sentiment)
			fmt.Printf("Urgency: %s\n", analysis.Urgency)
			fmt.Printf("Suggested Action: %s\n", analysis.SuggestedAction)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "ticket message to analyze")
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON ticket file to analyze")
	cmd.Flags().StringVar(&watchDir, "watch", "", "watch a directory of ticket files")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for analysis results (default: watch dir)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	return cmd
}
