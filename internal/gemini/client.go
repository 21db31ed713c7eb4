// Package gemini provides a client for the Gemini API: grounded price
// search, nearby store lookup, and goal timeline video generation.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	requestTimeout = 30 * time.Second
	maxBodySize    = 4 << 20 // 4 MB

	defaultTextModel  = "gemini-3-flash-preview"
	defaultVideoModel = "veo-3.1-fast-generate-preview"
)

var (
	// ErrUnauthorized indicates the API key is missing or invalid.
	ErrUnauthorized = errors.New("gemini: unauthorized (API key invalid)")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("gemini: rate limited")
)

// Client calls the Gemini generative language API.
type Client struct {
	apiKey     string
	baseURL    string
	textModel  string
	videoModel string
	http       *http.Client

	// pollInterval controls long-running operation polling.
	pollInterval time.Duration
}

// NewClient creates a client for the given API key. Empty baseURL or
// model names fall back to the defaults. Returns nil if the key is
// empty so callers can treat the service as unconfigured.
func NewClient(apiKey, baseURL, textModel, videoModel string) *Client {
	if apiKey == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if textModel == "" {
		textModel = defaultTextModel
	}
	if videoModel == "" {
		videoModel = defaultVideoModel
	}
	return &Client{
		apiKey:       apiKey,
		baseURL:      baseURL,
		textModel:    textModel,
		videoModel:   videoModel,
		http:         &http.Client{},
		pollInterval: 10 * time.Second,
	}
}

// generateContent posts a request to the given model and decodes the
// response.
func (c *Client) generateContent(ctx context.Context, model string, req generateRequest) (*generateResponse, error) {
	body, err := c.post(ctx, fmt.Sprintf("/models/%s:generateContent", model), req)
	if err != nil {
		return nil, err
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("gemini: parsing response: %w", err)
	}
	return &resp, nil
}

// post performs an authenticated POST request and returns the body.
func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("gemini: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gemini: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// get performs an authenticated GET request and returns the body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: creating request: %w", err)
	}

	return c.do(req)
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path + "?key=" + url.QueryEscape(c.apiKey)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("gemini: reading response: %w", err)
	}
	return body, nil
}
