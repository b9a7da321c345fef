package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weddify/services/notification"
	"weddify/session"

	"go.uber.org/zap"
)

// LoginPath is where the 401 interceptor sends the user.
const LoginPath = "/login"

// Navigator performs client-side navigation. The 401 interceptor uses it
// to force the user back to the login screen.
type Navigator interface {
	NavigateTo(path string)
}

// APIError is the backend's error shape.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error (%d): %s: %s", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// Client is the single HTTP client for the REST backend. Every request
// carries the bearer token when one is present; a 401 clears the session
// store, notifies, and navigates to the login screen. There is no retry
// policy; failures are surfaced once and left to the caller.
type Client struct {
	base      string
	http      *http.Client
	sessions  session.Store
	notifier  notification.Notifier
	navigator Navigator
	logger    *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, sessions session.Store, notifier notification.Notifier, navigator Navigator, logger *zap.Logger) *Client {
	return &Client{
		base:      strings.TrimSuffix(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		sessions:  sessions,
		notifier:  notifier,
		navigator: navigator,
		logger:    logger,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sess, ok := c.sessions.Get(); ok && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts are generic network failures, not a separate class.
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
		return &APIError{Status: resp.StatusCode, Message: "session expired"}
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if data, err := io.ReadAll(resp.Body); err == nil && len(data) > 0 {
			var decoded APIError
			if json.Unmarshal(data, &decoded) == nil && decoded.Message != "" {
				apiErr.Message = decoded.Message
				apiErr.Details = decoded.Details
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// handleUnauthorized runs the global auth-expiry recovery: the session
// is cleared, the user is told, and navigation is forced to the login
// screen. The triggering call still gets its error so callers can react.
func (c *Client) handleUnauthorized() {
	if err := c.sessions.Clear(); err != nil {
		c.logger.Warn("failed to clear session after 401", zap.Error(err))
	}
	c.notifier.Error("Your session has expired. Please login again.")
	if c.navigator != nil {
		c.navigator.NavigateTo(LoginPath)
	}
}
