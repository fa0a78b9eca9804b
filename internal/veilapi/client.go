// Package veilapi is the typed client for the Veil game backend. It owns
// request execution and bearer-token attachment; everything above it talks in
// DTOs and errors, never in raw HTTP.
package veilapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/tfg/veil-companion-go/internal/obslog"
)

// TokenSource yields the current bearer token, empty when logged out.
// session.Store satisfies it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Paths that must never carry an Authorization header.
var authSkipPaths = []string{"/api/auth/login", "/api/auth/register"}

func requiresAuth(path string) bool {
	for _, p := range authSkipPaths {
		if strings.Contains(path, p) {
			return false
		}
	}
	return true
}

// StatusError is a non-2xx backend reply. Message is the response body text,
// or the standard status text when the body was empty.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

type Client struct {
	baseURL string
	http    *fasthttp.Client
	tokens  TokenSource

	defaultTimeout time.Duration
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.defaultTimeout = d }
}

func WithMaxConnsPerHost(n int) Option {
	return func(c *Client) { c.http.MaxConnsPerHost = n }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &fasthttp.Client{ReadTimeout: 30 * time.Second, WriteTimeout: 30 * time.Second, MaxConnsPerHost: 16},
		defaultTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doJSON executes one request. No retries: the caller decides whether an
// operation is worth repeating.
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.SetContentType("application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	if c.tokens != nil && requiresAuth(path) {
		// A store hiccup must not fail the request; it just goes out anonymous.
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			obslog.L().Warn("token lookup failed, sending without auth",
				zap.String("path", path), zap.Error(err))
		} else if strings.TrimSpace(tok) != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		req.SetBody(payload)
	}

	if err := c.http.DoDeadline(req, resp, c.computeDeadline(ctx)); err != nil {
		obslog.L().Debug("request failed",
			zap.String("method", method), zap.String("path", path),
			zap.String("request_id", reqID), zap.Error(err))
		return fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	obslog.L().Debug("request done",
		zap.String("method", method), zap.String("path", path),
		zap.String("request_id", reqID), zap.Int("status", status))

	if status < 200 || status >= 300 {
		msg := strings.TrimSpace(truncate(string(resp.Body()), 512))
		if msg == "" {
			msg = fasthttp.StatusMessage(status)
		}
		return &StatusError{Status: status, Message: msg}
	}

	if out != nil {
		body := resp.Body()
		if len(body) == 0 {
			return fmt.Errorf("empty response body for %s %s", method, path)
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) computeDeadline(ctx context.Context) time.Time {
	clientDL := time.Now().Add(c.defaultTimeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(clientDL) {
		return dl
	}
	return clientDL
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
