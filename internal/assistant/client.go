// Package assistant proxies shopper questions to a third-party
// chat-completion API.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stride-commerce/stride/internal/platform/httpx"
)

// Message is a single role/content turn in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client wraps interactions with the chat-completion API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a new client. apiKey may be empty; Complete rejects
// calls until it is configured.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Configured reports whether an API credential is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation to the upstream API and returns the first
// choice's content. Any remote failure maps to ErrUpstream.
func (c *Client) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("chat api key is not set: %w", httpx.ErrConfig)
	}

	payload, err := json.Marshal(completionRequest{Model: model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("assistant: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("assistant: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant: %v: %w", err, httpx.ErrUpstream)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("assistant: status %d: %s: %w", resp.StatusCode, string(body), httpx.ErrUpstream)
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("assistant: decode response: %w", httpx.ErrUpstream)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("assistant: empty choices: %w", httpx.ErrUpstream)
	}
	return result.Choices[0].Message.Content, nil
}
