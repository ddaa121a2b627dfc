package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Provider string

	OpenAIAPIKey      string
	OpenAIEndpoint    string
	OpenAIModel       string
	OpenAITimeout     string
	AnthropicAPIKey   string
	AnthropicEndpoint string
	AnthropicModel    string
	AnthropicTimeout  string

	RetailerBaseURL string
	FetchTimeout    string
	PollInterval    string

	LogLevel  string
	LogFormat string
	LogOutput string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	return &Config{
		Provider:          getEnv("AIKIT_PROVIDER", "openai"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIEndpoint:    getEnv("OPENAI_ENDPOINT", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout:     getEnv("OPENAI_TIMEOUT", "120s"),
		AnthropicAPIKey:   getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicEndpoint: getEnv("ANTHROPIC_ENDPOINT", ""),
		AnthropicModel:    getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		AnthropicTimeout:  getEnv("ANTHROPIC_TIMEOUT", "120s"),
		RetailerBaseURL:   getEnv("RETAILER_BASE_URL", "https://www.amazon.in"),
		FetchTimeout:      getEnv("FETCH_TIMEOUT", "10s"),
		PollInterval:      getEnv("POLL_INTERVAL", "5s"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		LogOutput:         getEnv("LOG_OUTPUT", "stderr"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
