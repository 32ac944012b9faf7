// Package api is the authenticated JSON client for the Beyond the
// Bookshelf API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const defaultAPIBase = "https://beyond-the-bookshelf.onrender.com"

// Client is a bearer-token authenticated API client.
type Client struct {
	token   string
	apiBase string
	http    *http.Client
	log     *log.Logger
}

// New creates a Client with the given token and API base URL. If apiBase
// is empty the public deployment is used. An empty token is allowed; the
// client then refuses authenticated calls with ErrUnauthenticated before
// touching the network.
func New(token, apiBase string, logger *log.Logger) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	apiBase = strings.TrimRight(apiBase, "/")
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{
		token:   token,
		apiBase: apiBase,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logger,
	}
}

// HasToken reports whether the client holds a bearer token. Absence means
// "not authenticated", never a network error.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// do executes the request with standard headers.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if req.Header.Get("Content-Type") == "" && req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

// getJSON fetches url and decodes the response into out. Transport
// failures wrap ErrTransport; non-success statuses map through
// checkStatus.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		c.log.Warn("request failed", "url", url, "err", err)
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// postJSON sends body as JSON to url, discarding the response body.
func (c *Client) postJSON(ctx context.Context, url string, body interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		c.log.Warn("request failed", "url", url, "err", err)
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()
	return checkStatus(resp)
}

// url builds an API URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.apiBase + "/" + strings.Join(parts, "/")
}

// checkStatus returns a typed error for non-2xx responses, in the fixed
// priority order the UI depends on.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthenticated
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return &StatusError{Status: resp.StatusCode}
	}
}
