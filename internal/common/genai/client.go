// internal/common/genai/client.go
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"finance-agent/internal/common/config"
	"finance-agent/internal/common/errors"
	"finance-agent/internal/common/httpclient"
	"finance-agent/internal/common/logger"
)

// Client talks to the Gemini generateContent REST endpoint.
type Client struct {
	cfg    config.GenAIConfig
	httpc  *httpclient.Client
	logger logger.Logger
}

func NewClient(cfg config.GenAIConfig, log logger.Logger) *Client {
	return &Client{
		cfg:    cfg,
		httpc:  httpclient.NewClient(config.GetDuration(cfg.Timeout)),
		logger: log,
	}
}

// HasKey reports whether a model API key is configured. Without one the
// caller falls back to canned responses instead of calling out.
func (c *Client) HasKey() bool {
	return c.cfg.APIKey != ""
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single-turn prompt and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.HasKey() {
		return "", errors.NewMissingAPIKeyError("genai")
	}

	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     c.cfg.Temperature,
			MaxOutputTokens: c.cfg.MaxOutputTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.DoWithRetry(ctx, req, 2)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.NewLLMTimeoutError()
		}
		return "", errors.NewLLMRequestFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewLLMRequestFailedError(
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.NewMalformedResponseError("genai", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.NewLLMEmptyResponseError()
	}

	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", errors.NewLLMEmptyResponseError()
	}

	c.logger.Debug("model response received", map[string]interface{}{
		"chars": len(text),
	})
	return text, nil
}
