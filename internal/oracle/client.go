package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Generated is a cookie description produced by the backend.
type Generated struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ColorHex    string  `json:"color_hex"`
	BaseValue   float64 `json:"base_value"`
}

// Client generates cookie descriptions.
type Client interface {
	Generate(ctx context.Context) (*Generated, error)
}

type httpClient struct {
	url    string
	apiKey string
	client *http.Client
}

// NewHTTPClient creates a client against a JSON generation endpoint.
func NewHTTPClient(url, apiKey string, timeout time.Duration) Client {
	return &httpClient{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// Generate posts the bake prompt and decodes the structured reply.
func (c *httpClient) Generate(ctx context.Context) (*Generated, error) {
	if c.url == "" {
		return nil, fmt.Errorf("oracle backend not configured")
	}

	body, err := json.Marshal(generateRequest{Prompt: bakePrompt})
	if err != nil {
		return nil, fmt.Errorf("encoding oracle request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling oracle backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oracle backend returned status %d", resp.StatusCode)
	}

	var gen Generated
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&gen); err != nil {
		return nil, fmt.Errorf("decoding oracle response: %w", err)
	}
	if gen.Name == "" || gen.BaseValue <= 0 {
		return nil, fmt.Errorf("oracle response missing required fields")
	}
	return &gen, nil
}
