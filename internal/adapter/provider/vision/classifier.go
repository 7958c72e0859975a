// Package vision tags wardrobe item photos with a suggested name and
// category. The real classifier is a separate HTTP service; when it is not
// configured, the Stub applies name-based heuristics instead.
package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/closetmate/closetmate/internal/config"
	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/provider"
)

// Classifier calls an external image classification service.
type Classifier struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClassifier creates a Classifier from VisionConfig.
func NewClassifier(cfg config.VisionConfig, logger *slog.Logger) *Classifier {
	return &Classifier{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "vision"),
	}
}

type classifyRequest struct {
	ImageRef string `json:"image_ref"`
}

type classifyResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Classify asks the service to tag the image. Unknown categories from the
// service are dropped rather than propagated.
func (c *Classifier) Classify(ctx context.Context, imageRef string) (*provider.ClassifyResult, error) {
	payload, err := json.Marshal(classifyRequest{ImageRef: imageRef})
	if err != nil {
		return nil, fmt.Errorf("vision: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("vision: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("vision: read body: %w", err)
	}

	var classifyResp classifyResponse
	if err := json.Unmarshal(body, &classifyResp); err != nil {
		return nil, fmt.Errorf("vision: decode json: %w", err)
	}

	result := &provider.ClassifyResult{}
	if classifyResp.Name != "" {
		result.Name = &classifyResp.Name
	}
	if classifyResp.Category != "" {
		if cat, ok := canonicalCategory(classifyResp.Category); ok {
			result.Category = &cat
		} else {
			c.log.WarnContext(ctx, "classifier returned unknown category",
				slog.String("category", classifyResp.Category),
			)
		}
	}

	return result, nil
}

// canonicalCategory matches the service's category string case-insensitively
// against the known set.
func canonicalCategory(s string) (domain.Category, bool) {
	for _, cat := range append(domain.Categories(), domain.CategoryUncategorized) {
		if strings.EqualFold(s, cat.String()) {
			return cat, true
		}
	}
	return "", false
}
