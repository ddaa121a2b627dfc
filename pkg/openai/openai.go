package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

// Client wraps OpenAI chat completions API config
type Client struct {
	APIKey       string
	Endpoint     string
	Model        string
	Timeout      time.Duration
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// New creates a new OpenAI client. An empty endpoint selects the public API.
func New(apiKey, endpoint, model string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{APIKey: apiKey, Endpoint: endpoint, Model: model, Timeout: timeout, MaxTokens: 500, Temperature: 0.1}
}

// Complete sends a prompt to OpenAI and returns the response text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	logrus.Debugf("[openai] calling model %q", c.Model)

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	messages := []message{{Role: "user", Content: prompt}}
	if c.SystemPrompt != "" {
		messages = append([]message{{Role: "system", Content: c.SystemPrompt}}, messages...)
	}

	b, err := json.Marshal(chatRequest{
		Model:       c.Model,
		Messages:    messages,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	client := http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed chatResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", errors.New("no response from openai")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
