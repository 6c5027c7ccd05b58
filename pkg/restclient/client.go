// Package restclient is a small authenticated JSON client for the POS
// backend. Every response body is the backend's standard envelope
// {"success": bool, "message": string, "data": ...}, decoded exactly once
// here; callers only ever see the decoded payload or a classified *Error.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// Config holds the transport settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client issues authenticated requests against the backend. It attaches the
// bearer credential to every call and refuses locally, without a round trip,
// when the credential is absent or expired.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cred       *Credential
}

// NewClient creates a Client for the given backend and credential.
func NewClient(cfg Config, cred *Credential) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("restclient: base URL is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cred:       cred,
	}, nil
}

// Credential returns the credential object this client attaches to requests.
func (c *Client) Credential() *Credential {
	return c.cred
}

// Get issues an authenticated GET and decodes the envelope payload into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out, true)
}

// Put issues an authenticated PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out, true)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}

// PostPublic issues an unauthenticated POST. Only the login call uses it.
func (c *Client) PostPublic(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out, false)
}

// envelope is the backend's response wrapper. It is the one shape the
// backend is assumed to honor; no per-call body sniffing happens anywhere.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, authed bool) error {
	if authed {
		if c.cred.Empty() {
			return &Error{Kind: KindAuth, Message: "not logged in"}
		}
		if c.cred.Expired() {
			return &Error{Kind: KindAuth, Message: "session expired, please log in again"}
		}
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.cred.Token())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Message
		if decodeErr != nil || message == "" {
			message = strings.TrimSpace(string(raw))
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &Error{Kind: kindFor(resp.StatusCode), StatusCode: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		return &Error{Kind: KindRemote, StatusCode: resp.StatusCode, Message: "malformed response from backend"}
	}
	if !env.Success {
		return &Error{Kind: KindRemote, StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

func kindFor(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindRemote
	}
}
