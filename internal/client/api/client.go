package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avillagran/boletera/internal/logging"
)

// DefaultTimeout is the fixed ceiling applied to every request; the backend
// contract has no cancellation semantics of its own.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer credential. An empty string means
// "no session" and the request is sent unauthenticated.
type TokenSource interface {
	Token() string
}

// Client dispatches JSON requests against a single backend origin.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// New creates a Client bound to baseURL. A non-positive timeout falls back
// to DefaultTimeout. The token source is wired in later via SetTokenSource
// because the session that owns the token is constructed on top of this
// client.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetTokenSource installs the reader for the current bearer token.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// Get issues a GET request and decodes the response into out (out may be nil).
func (c *Client) Get(ctx context.Context, path string, includeAuth bool, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, nil, includeAuth)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// GetRaw issues a GET request and returns the raw success body. It exists
// for the few endpoints whose response has no fixed schema.
func (c *Client) GetRaw(ctx context.Context, path string, includeAuth bool) ([]byte, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil, includeAuth)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, &ParseError{Err: fmt.Errorf("invalid JSON in response")}
	}
	return data, nil
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body any, includeAuth bool, out any) error {
	data, err := c.do(ctx, http.MethodPost, path, body, includeAuth)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body any, includeAuth bool, out any) error {
	data, err := c.do(ctx, http.MethodPut, path, body, includeAuth)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// Delete issues a DELETE request and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, includeAuth bool, out any) error {
	data, err := c.do(ctx, http.MethodDelete, path, nil, includeAuth)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// do builds the request, attaches headers and the optional bearer token,
// sends it, and normalizes the outcome: success body bytes, *APIError on a
// non-2xx status, *NetworkError on transport failure.
func (c *Client) do(ctx context.Context, method, path string, body any, includeAuth bool) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	if includeAuth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Debug(ctx, "request sent", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(resp.StatusCode, data),
		}
	}

	return data, nil
}

// errorMessage extracts the backend's {message} field from an error body,
// falling back to "HTTP <status>: <reason>".
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}

// decode unmarshals a success body into out. A malformed body is a
// *ParseError, never a silent empty success. An empty body is accepted only
// when the caller expects nothing.
func decode(data []byte, out any) error {
	if out == nil {
		if len(data) > 0 && !json.Valid(data) {
			return &ParseError{Err: fmt.Errorf("invalid JSON in response")}
		}
		return nil
	}
	if len(data) == 0 {
		return &ParseError{Err: fmt.Errorf("empty response body")}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}
