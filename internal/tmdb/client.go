package tmdb

import (
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
	defaultBaseURL      = "https://api.themoviedb.org"
	defaultImageBaseURL = "https://image.tmdb.org"
	posterSize          = "w500"
)

// ErrMalformedResponse is returned when a search response has no results array.
var ErrMalformedResponse = errors.New("malformed search response")

// Client is a TMDB API client.
type Client struct {
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithImageBaseURL sets a custom image CDN base URL (for testing).
func WithImageBaseURL(url string) Option {
	return func(c *Client) {
		c.imageBaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
// The API key is not bound to the client; it is read from the settings
// snapshot on every call.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:      defaultBaseURL,
		imageBaseURL: defaultImageBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Results *[]RawResult `json:"results"`
}

// SearchMulti queries the multi-search endpoint and returns the raw results
// in API order.
func (c *Client) SearchMulti(ctx context.Context, apiKey, language, query string) ([]RawResult, error) {
	params := url.Values{}
	params.Set("api_key", apiKey)
	params.Set("language", language)
	params.Set("query", query)
	u := c.baseURL + "/3/search/multi?" + params.Encode()

	resp, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if body.Results == nil {
		return nil, ErrMalformedResponse
	}
	return *body.Results, nil
}

// PosterURL returns the image CDN URL for a poster path.
// The path is appended verbatim, so "/abc.jpg" yields ".../w500//abc.jpg".
func (c *Client) PosterURL(posterPath string) string {
	return c.imageBaseURL + "/t/p/" + posterSize + "/" + posterPath
}

// FetchImage downloads the poster image bytes.
func (c *Client) FetchImage(ctx context.Context, posterPath string) ([]byte, error) {
	resp, err := c.get(ctx, c.PosterURL(posterPath))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("TMDB API error: %s", resp.Status)
	}
	return resp, nil
}
