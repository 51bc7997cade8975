// Package cdnclient talks to the CDN77 v3 REST API. Every command performs
// exactly one round trip: the response status is interpreted through the
// command's own rules first and a shared default table second, and success
// bodies are decoded into typed results. Failures come back as exitcode
// errors; nothing in this package retries or terminates the process.
package cdnclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"cdn77cli/config"
	"cdn77cli/pkg/exitcode"
)

// Version is the client version, reported in the User-Agent header and by
// the --version flag.
const Version = "0.1.0"

const userAgent = "cdn77cli/" + Version

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New builds an authenticated client. Request deadlines come from the
// caller's context, so the underlying http.Client carries no timeout of
// its own.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.APIToken,
		httpClient: &http.Client{},
	}
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	return c.send(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.send(ctx, http.MethodPost, path, body)
}

// send performs the single network round trip of a command invocation.
// Transport failures are terminal: the client performs no retries anywhere.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, exitcode.Unexpectedf("Failed to encode request body, e=%v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, exitcode.Unexpectedf("Failed to build API request, e=%v", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exitcode.Unexpectedf("Failed to send API request, e=%v", err)
	}
	return resp, nil
}

// decodeJSON deserializes a success body into out. A body that does not
// match the expected shape is a client/API contract bug, never user error.
func decodeJSON(body io.Reader, out any) error {
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return exitcode.Unexpectedf("Failed to deserialize response, e=%v", err)
	}
	return nil
}
