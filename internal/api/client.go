// Package api is the JSON-over-HTTP client for the BuildMaster backend.
// Every response is treated as untyped and re-validated before use; the
// backend owns all business logic and this client only moves data.
package api

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

// Sentinel errors for known conditions.
var (
	// ErrConnectivity indicates the collaborator was unreachable.
	ErrConnectivity = errors.New("connectivity error")

	// ErrUnauthorized indicates the collaborator rejected the session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRemote indicates the collaborator reported a failure.
	ErrRemote = errors.New("remote error")

	// ErrValidation indicates a request failed local validation and was
	// never sent.
	ErrValidation = errors.New("validation error")
)

// defaultTimeout matches the collaborator's documented client default.
const defaultTimeout = 10 * time.Second

// Client talks to the BuildMaster backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithToken supplies the bearer token for authenticated calls. The
// function is consulted per request so a fresh login is picked up
// without rebuilding the client.
func WithToken(fn func() string) Option {
	return func(c *Client) {
		c.token = fn
	}
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured collaborator base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the collaborator's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// do issues a request and decodes the response into out (when non-nil).
// Responses may arrive bare or wrapped in the {success, data, message}
// envelope; both are accepted.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = buf
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrConnectivity, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	return c.decode(resp, method, path, out)
}

// authorize attaches the session bearer token when one is available.
func (c *Client) authorize(req *http.Request) {
	if c.token == nil {
		return
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

// decode maps status codes to sentinel errors and unwraps the envelope.
func (c *Client) decode(resp *http.Response, method, path string, out any) error {
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response for %s %s: %v", ErrConnectivity, method, path, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s %s", ErrUnauthorized, method, path)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: %s %s returned %d: %s",
			ErrRemote, method, path, resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err == nil && (env.Data != nil || env.Message != "" || env.Error != "") {
		if !env.Success {
			msg := env.Message
			if msg == "" {
				msg = env.Error
			}
			if msg == "" {
				msg = "request rejected"
			}
			return fmt.Errorf("%w: %s", ErrRemote, msg)
		}
		if out == nil || env.Data == nil {
			return nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("parsing response data for %s %s: %w", method, path, err)
		}
		return nil
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("parsing response for %s %s: %w", method, path, err)
	}
	return nil
}
