package anthropic

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

const (
	defaultEndpoint = "https://api.anthropic.com/v1/messages"
	apiVersion      = "2023-06-01"
)

// Client wraps Anthropic messages API config
type Client struct {
	APIKey       string
	Endpoint     string
	Model        string
	Timeout      time.Duration
	SystemPrompt string
	MaxTokens    int
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// New creates a new Anthropic client. An empty endpoint selects the public API.
func New(apiKey, endpoint, model string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{APIKey: apiKey, Endpoint: endpoint, Model: model, Timeout: timeout, MaxTokens: 1024}
}

// Complete sends a prompt to Anthropic and returns the response text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	logrus.Debugf("[anthropic] calling model %q", c.Model)

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	b, err := json.Marshal(messagesRequest{
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		System:    c.SystemPrompt,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	client := http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("anthropic error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed messagesResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("decode anthropic response: %w", err)
	}
	if len(parsed.Content) == 0 || parsed.Content[0].Text == "" {
		return "", errors.New("no response from anthropic")
	}
	return strings.TrimSpace(parsed.Content[0].Text), nil
}
