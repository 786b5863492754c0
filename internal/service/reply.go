package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"estate-search/internal/config"
	"estate-search/internal/model"
)

// ReplyClient phrases a natural-language reply for a search result. It is a
// best-effort external collaborator: callers must treat every error as
// non-fatal and fall back to FallbackReply, and its failure must never
// alter the search result itself.
type ReplyClient interface {
	// Phrase produces a short reply describing the result of the query.
	Phrase(ctx context.Context, query string, result *model.SearchResult) (string, error)

	// IsEnabled returns whether the client is configured and ready.
	IsEnabled() bool
}

// OpenAIReplyClient phrases replies through an OpenAI-compatible chat
// completions endpoint.
type OpenAIReplyClient struct {
	cfg    *config.ReplyConfig
	client *http.Client
}

// Ensure OpenAIReplyClient implements ReplyClient
var _ ReplyClient = (*OpenAIReplyClient)(nil)

// NewOpenAIReplyClient creates a reply client from configuration.
func NewOpenAIReplyClient(cfg *config.ReplyConfig) *OpenAIReplyClient {
	return &OpenAIReplyClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured with an API key.
func (c *OpenAIReplyClient) IsEnabled() bool {
	return c.cfg != nil && c.cfg.Enabled && c.cfg.APIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Phrase asks the chat model for a one-or-two sentence reply summarizing
// the result set for the user's query.
func (c *OpenAIReplyClient) Phrase(ctx context.Context, query string, result *model.SearchResult) (string, error) {
	if !c.IsEnabled() {
		return "", fmt.Errorf("reply client is not enabled")
	}

	reqBody := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: "You are a real-estate search assistant. Reply to the user in one or two " +
					"plain sentences describing the search outcome. Mention only listings from the " +
					"provided summary, never invent properties.",
			},
			{
				Role:    "user",
				Content: buildReplyPrompt(query, result),
			},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	url := strings.TrimRight(c.cfg.APIBase, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat API returned no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// buildReplyPrompt summarizes the query and results for the chat model.
func buildReplyPrompt(query string, result *model.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %s\nOutcome: %s\nMatches: %d\n", query, result.Outcome, result.Count)
	for i, r := range result.Listings {
		fmt.Fprintf(&b, "%d. %s, %s (%s), price %.0f-%.0f\n",
			i+1, r.Name, r.City, r.PropertyType, r.PriceMin, r.PriceMax)
	}
	return b.String()
}

// FallbackReply produces a deterministic local reply for a search result.
// Used when no reply client is configured or the external call fails.
func FallbackReply(result *model.SearchResult) string {
	switch result.Outcome {
	case model.OutcomeCityMiss:
		return "No properties found in that city. Try another city or property type."
	case model.OutcomeFallback:
		return fmt.Sprintf("Couldn't find specific filters in your query, so here are %d listings from our catalog.", result.Count)
	default:
		return fmt.Sprintf("Found %d matching properties.", result.Count)
	}
}
