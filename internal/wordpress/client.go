package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultUserAgent = "wordpress-mcp-server"

	// maxResponseSize caps how much of a response body is read
	maxResponseSize int64 = 10 * 1024 * 1024
)

// Client talks to the WordPress REST API (namespace wp/v2) with basic auth.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	baseURL   string
	username  string
	password  string
	userAgent string
	client    *http.Client
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets a client-side timeout; zero keeps requests unbounded
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// NewClient creates a client for the site at siteURL. siteURL may be the site
// root, the /wp-json root or the full /wp-json/wp/v2 namespace.
func NewClient(siteURL, username, password string, opts ...Option) (*Client, error) {
	base, err := namespaceURL(siteURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:   base,
		username:  username,
		password:  password,
		userAgent: defaultUserAgent,
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the resolved wp/v2 namespace URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches a resource and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends body as JSON and decodes the JSON response into out
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := readWithSizeLimit(resp.Body, maxResponseSize)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func namespaceURL(siteURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(siteURL))
	if err != nil {
		return "", fmt.Errorf("invalid WordPress URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("invalid WordPress URL: scheme and host are required")
	}

	p := strings.TrimRight(u.Path, "/")
	switch {
	case strings.HasSuffix(p, "/wp-json/wp/v2"):
	case strings.HasSuffix(p, "/wp-json"):
		p += "/wp/v2"
	default:
		p += "/wp-json/wp/v2"
	}

	u.Path = p
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

func readWithSizeLimit(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(&io.LimitedReader{R: r, N: limit + 1})
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("response exceeds %d bytes", limit)
	}
	return data, nil
}
