// Package caption provides an HTTP client for an external image
// captioning model. The model is treated as an opaque service; only its
// text output crosses into the domain.
package caption

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// Config holds the captioning service connection settings.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client implements the CaptionService interface against a vision model
// exposing a describe endpoint.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new captioning client.
func NewClient(cfg Config, logger *zap.Logger) outbound.CaptionService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llava:7b"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger.Info("Caption client initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.String("model", cfg.Model),
		zap.Duration("timeout", cfg.Timeout))

	return &Client{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("caption-client"),
	}
}

type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Stream bool     `json:"stream"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

const describePrompt = "Describe the food in this image. List every visible ingredient and how it appears to be cooked."

// Describe sends the image to the vision model and returns its caption.
func (c *Client) Describe(ctx context.Context, image []byte) (string, error) {
	endpoint := c.baseURL + "/api/generate"

	reqBody := generateRequest{
		Model:  c.model,
		Prompt: describePrompt,
		Images: []string{base64.StdEncoding.EncodeToString(image)},
		Stream: false,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Caption request failed", zap.Error(err))
		return "", errors.NewExternalServiceError("caption", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Caption request rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", errors.NewExternalServiceError("caption",
			fmt.Errorf("API error %d", resp.StatusCode))
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	caption := strings.TrimSpace(genResp.Response)
	c.logger.Debug("Caption generated", zap.Int("length", len(caption)))
	return caption, nil
}

// HealthCheck verifies the captioning service is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	endpoint := c.baseURL + "/api/tags"

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("caption health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("caption health check failed with status %d", resp.StatusCode)
	}
	return nil
}
