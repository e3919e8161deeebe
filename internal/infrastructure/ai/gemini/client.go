// Package gemini provides an ai.Client backed by the hosted Gemini API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultTimeout = 60 * time.Second
)

// Config controls Gemini API invocation.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client implements ai.Client against the generateContent endpoint.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a Gemini client.
func NewClient(cfg Config) (*Client, error) {
	normalized := normalizeConfig(cfg)
	if normalized.APIKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	return &Client{
		config:     normalized,
		httpClient: &http.Client{Timeout: normalized.Timeout},
	}, nil
}

// Generate sends the prompt to the hosted model and returns its text output.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.config.BaseURL, c.config.Model, c.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		reason := strings.TrimSpace(string(detail))
		if reason == "" {
			return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, reason)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return extractText(&out)
}

func normalizeConfig(cfg Config) Config {
	normalized := cfg
	normalized.APIKey = strings.TrimSpace(normalized.APIKey)
	if strings.TrimSpace(normalized.Model) == "" {
		normalized.Model = defaultModel
	}
	if strings.TrimSpace(normalized.BaseURL) == "" {
		normalized.BaseURL = defaultBaseURL
	}
	normalized.BaseURL = strings.TrimRight(normalized.BaseURL, "/")
	if normalized.Timeout <= 0 {
		normalized.Timeout = defaultTimeout
	}
	return normalized
}

func extractText(resp *generateResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", errors.New("no parts in candidate")
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	text := stripCodeFence(b.String())
	if strings.TrimSpace(text) == "" {
		return "", errors.New("model returned empty text")
	}
	return text, nil
}

var codeFencePattern = regexp.MustCompile("(?s)^\\s*```(?:[a-z]+)?\\s*(.+?)\\s*```\\s*$")

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if matches := codeFencePattern.FindStringSubmatch(s); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return s
}

// Gemini API wire types.

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}
