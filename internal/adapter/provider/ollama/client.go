// Package ollama generates outfit recommendations through an Ollama chat
// model. The model is pinned to the wardrobe with a strict system prompt,
// and its free-text answer is lightly post-processed before being returned
// as the narrative.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/closetmate/closetmate/internal/config"
	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/provider"
)

// Client calls the Ollama chat API.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from AdvisorConfig.
func NewClient(cfg config.AdvisorConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "ollama"),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

// Generate produces one outfit recommendation for the occasion from the
// given catalogue snapshot, optionally enriched with weather context.
// The structured item list echoes the catalogue snapshot the narrative was
// generated from; callers layering a narrative parser on top use it as the
// fallback when the narrative carries no recognizable cues.
func (c *Client) Generate(ctx context.Context, occasion string, items []domain.WardrobeItem, weather *domain.WeatherSnapshot) (*provider.AdviceResult, error) {
	rule := matchOccasion(occasion)

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: buildSystemPrompt(rule, items, weather)},
			{Role: "user", Content: "Suggest an outfit for: " + occasion},
		},
		Stream: false,
	}

	c.log.DebugContext(ctx, "advice request",
		slog.String("occasion", occasion),
		slog.String("matched_occasion", rule.Name),
		slog.Int("wardrobe_size", len(items)),
	)

	start := time.Now()
	resp, err := c.chat(ctx, reqBody)
	if err != nil {
		c.log.ErrorContext(ctx, "advice request failed",
			slog.String("occasion", occasion),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	narrative := fixCompleteOutfitBottom(resp.Message.Content)

	c.log.InfoContext(ctx, "advice generated",
		slog.String("matched_occasion", rule.Name),
		slog.Duration("duration", time.Since(start)),
	)

	return &provider.AdviceResult{
		Narrative: narrative,
		Items:     items,
		Occasion:  rule.Name,
	}, nil
}

// chat executes one non-streaming chat call with a single retry on 5xx or
// network errors.
func (c *Client) chat(ctx context.Context, reqBody chatRequest) (*chatResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("ollama: marshal request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("ollama: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ollama: read body: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("ollama: decode json: %w", err)
	}

	if chatResp.Message.Content == "" {
		return nil, fmt.Errorf("ollama: empty response")
	}

	return &chatResp, nil
}

func (c *Client) doWithRetry(ctx context.Context, payload []byte) (*http.Response, error) {
	resp, err := c.do(ctx, payload)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "ollama retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return c.do(ctx, payload)
}

func (c *Client) do(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}
