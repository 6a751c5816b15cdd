// Package api talks to the greeter backend: the time endpoint polled by the
// page and the greeting endpoint behind the Submit button.
package api

//go:generate mockgen -destination=../mocks/mock_service.go -package=mocks github.com/vcrobe/nojs-greeter/internal/api Service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const (
	TimePath     = "/api/time"
	SayHelloPath = "/api/sayhello"
)

// Service is what the page needs from the backend.
type Service interface {
	Time(ctx context.Context) (string, error)
	SayHello(ctx context.Context, name string) (string, error)
}

var _ Service = (*Client)(nil)

// Client is the HTTP implementation of Service. Requests are single shot:
// no retries and no timeout beyond the caller's context.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New returns a Client for the backend rooted at baseURL (scheme and host, e.g. the page origin).
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Time fetches the server's current time string.
func (c *Client) Time(ctx context.Context) (string, error) {
	return c.getText(ctx, TimePath, nil)
}

// SayHello asks the server to greet name. The name is sent URL-encoded.
func (c *Client) SayHello(ctx context.Context, name string) (string, error) {
	return c.getText(ctx, SayHelloPath, url.Values{"name": []string{name}})
}

func (c *Client) getText(ctx context.Context, path string, query url.Values) (string, error) {
	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &StatusError{Endpoint: path, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s body: %w", path, err)
	}
	return string(body), nil
}
