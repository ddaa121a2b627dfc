package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aikit/config"
	"aikit/internal/logging"
	"aikit/pkg/anthropic"
	"aikit/pkg/llm"
	"aikit/pkg/openai"
)

var (
	cfg      *config.Config
	provider string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "aikit",
		Short:         "LLM-powered support, marketing and research tools",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.Load()
			logging.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogOutput)
			if provider != "" {
				cfg.Provider = provider
			}
		},
	}

	root.PersistentFlags().StringVar(&provider, "provider", "", "LLM provider: openai or anthropic (overrides AIKIT_PROVIDER)")

	root.AddCommand(triageCmd(), contentCmd(), discoverCmd(), leadsCmd())
	return root.Execute()
}

// newLLMClient builds the provider client selected by config. Commands that
// can run offline call this lazily so they work without an API key.
func newLLMClient(cfg *config.Config) (llm.Client, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		timeout, err := time.ParseDuration(cfg.OpenAITimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid OPENAI_TIMEOUT: %w", err)
		}
		return openai.New(cfg.OpenAIAPIKey, cfg.OpenAIEndpoint, cfg.OpenAIModel, timeout), nil
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
		timeout, err := time.ParseDuration(cfg.AnthropicTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid ANTHROPIC_TIMEOUT: %w", err)
		}
		return anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicEndpoint, cfg.AnthropicModel, timeout), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want openai or anthropic)", cfg.Provider)
	}
}

func fetchTimeout(cfg *config.Config) (time.Duration, error) {
	timeout, err := time.ParseDuration(cfg.FetchTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	return timeout, nil
}
