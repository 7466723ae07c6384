// Package client is a typed API client for the hotel listing platform.
// Every operation runs the same pipeline: the request payload is
// shape-checked, dispatched through one shared HTTP wrapper that carries
// the bearer token and unwraps the response envelope, and the response is
// shape-checked before it reaches the caller.
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// genericFailure is surfaced when a failing response carries no message.
const genericFailure = "request failed"

const defaultTimeout = 10 * time.Second

// Notifier receives the transient user-facing notifications the pipeline
// emits: one-shot success messages and readable failure messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier drops all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// Client is the shared HTTP wrapper every API module dispatches through.
// It attaches the bearer token from the session, unwraps the
// {success, message?, data?} envelope, and tears the session down on 401.
type Client struct {
	baseURL       string
	http          *http.Client
	session       *Session
	notifier      Notifier
	onAuthExpired func()
}

type Option func(*Client)

// WithNotifier routes notifications somewhere visible to the user.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithHTTPClient overrides the underlying transport. Used by tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithAuthExpiredHook is invoked after a 401 has cleared the session.
// Hosts use it to force navigation to their login screen.
func WithAuthExpiredHook(fn func()) Option {
	return func(c *Client) { c.onAuthExpired = fn }
}

func New(baseURL string, session *Session, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		session:  session,
		notifier: NopNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session exposes the session store so hosts wire guards and the client to
// the same instance.
func (c *Client) Session() *Session { return c.session }

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) expireSession() {
	c.session.Logout()
	if c.onAuthExpired != nil {
		c.onAuthExpired()
	}
}

// do sends one request and applies the response-side envelope rules:
// 401 tears down the session unconditionally, success=false rejects even
// on HTTP 2xx, other non-2xx statuses become transport errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &TransportError{Message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		terr := &TransportError{Message: err.Error()}
		c.notifier.Error(terr.Message)
		return nil, terr
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		terr := &TransportError{Status: res.StatusCode, Message: err.Error()}
		c.notifier.Error(terr.Message)
		return nil, terr
	}

	var env envelope
	_ = json.Unmarshal(raw, &env) // tolerate non-envelope bodies

	message := env.Message
	if message == "" {
		message = genericFailure
	}

	if res.StatusCode == http.StatusUnauthorized {
		c.expireSession()
		c.notifier.Error(message)
		return nil, &AuthError{Message: message}
	}

	if env.Success != nil && !*env.Success {
		c.notifier.Error(message)
		if res.StatusCode >= 200 && res.StatusCode < 300 {
			return nil, &BusinessError{Message: message}
		}
		return nil, &TransportError{Status: res.StatusCode, Message: message}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		if env.Message == "" {
			message = http.StatusText(res.StatusCode)
		}
		c.notifier.Error(message)
		return nil, &TransportError{Status: res.StatusCode, Message: message}
	}

	return &env, nil
}
