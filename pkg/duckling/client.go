package duckling

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to a Duckling HTTP server.
type Client struct {
	baseURL       string
	parseEndpoint string
	locale        string
	httpClient    *http.Client
}

// New creates a Duckling client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid duckling base url %q: %w", cfg.BaseURL, err)
	}
	if cfg.ParseEndpoint == "" {
		cfg.ParseEndpoint = DefaultParseEndpoint
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		parseEndpoint: "/" + strings.TrimLeft(cfg.ParseEndpoint, "/"),
		locale:        cfg.Locale,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// WithHTTPClient overrides the HTTP client used for requests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Parse asks Duckling for time and duration entities in text.
func (c *Client) Parse(ctx context.Context, text string, reftime time.Time) ([]Entity, error) {
	body, err := c.post(ctx, text, reftime)
	if err != nil {
		return nil, err
	}

	var entities []Entity
	if err := json.Unmarshal(body, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode duckling response: %w", err)
	}
	return entities, nil
}

// Raw returns the undecoded Duckling response for text, for debugging.
func (c *Client) Raw(ctx context.Context, text string) ([]byte, error) {
	return c.post(ctx, text, time.Now())
}

func (c *Client) post(ctx context.Context, text string, reftime time.Time) ([]byte, error) {
	dims, err := json.Marshal(DefaultDims)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dims: %w", err)
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("locale", c.locale)
	form.Set("dims", string(dims))
	form.Set("reftime", strconv.FormatInt(reftime.UnixMilli(), 10))

	endpoint := c.baseURL + c.parseEndpoint
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call duckling: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read duckling response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckling error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
