package zulu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the Zulu packages endpoint.
// See https://docs.azul.com/core/install/metadata-api
const DefaultBaseURL = "https://api.azul.com/metadata/v1/zulu/packages"

// Client talks to the Zulu metadata API. Calls are sequential; a single
// Client is reused for the package query and every checksum lookup.
type Client struct {
	client  *retryablehttp.Client
	baseURL string
	log     logrus.FieldLogger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at a different packages endpoint
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithRetryMax sets how many times a failed request is retried. Zero disables retries.
func WithRetryMax(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.client.RetryMax = n
		}
	}
}

// WithTimeout sets an overall timeout per request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.HTTPClient.Timeout = d
	}
}

// WithLogger routes request tracing to log
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
		c.client.Logger = leveledLogger{log: log}
	}
}

// NewClient creates a new metadata API client
func NewClient(opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.RetryWaitMin = 1 * time.Second
	rc.RetryWaitMax = 10 * time.Second
	rc.HTTPClient.Timeout = 0
	rc.Logger = nil
	// Hand non-200 responses back as-is so the caller sees the real status code
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		client:  rc,
		baseURL: DefaultBaseURL,
		log:     logrus.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PackagesURL returns the full query URL for req
func (c *Client) PackagesURL(req Request) string {
	return c.baseURL + "?" + req.Query().Encode()
}

// Packages queries the packages endpoint. Each element of the returned slice
// is one package object, left undecoded and in the order the API sent them.
func (c *Client) Packages(ctx context.Context, req Request) ([]json.RawMessage, error) {
	var packages []json.RawMessage
	if err := c.getJSON(ctx, c.PackagesURL(req), &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{URL: url, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}
