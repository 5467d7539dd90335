// Package remote implements the tracker gateways over the REST API of the
// remote store.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/SscSPs/money_tracker/internal/core/ports"
)

const (
	// RequestIDHeader correlates client and server logs.
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 64 << 10
)

// Client talks JSON to the remote store. The bearer token is read from the
// credential provider on every request; without one the request goes out
// unauthenticated.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a client rooted at baseURL, e.g. "http://localhost:3000/api".
func NewClient(baseURL string, credentials ports.CredentialProvider, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{credentials: credentials, base: http.DefaultTransport},
		},
		logger: logger.With(slog.String("component", "remote")),
	}, nil
}

// bearerTransport stamps a request id on every request and hands requests to
// an oauth2.Transport when a token is stored.
type bearerTransport struct {
	credentials ports.CredentialProvider
	base        http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}
	token, ok := t.credentials.Get()
	if !ok {
		return t.base.RoundTrip(req)
	}
	authed := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   t.base,
	}
	return authed.RoundTrip(req)
}

// response is a fully read answer.
type response struct {
	status      int
	contentType string
	body        []byte
}

// send performs one request. in, when non-nil, is sent as JSON. Non-2xx
// answers are returned together with a *StatusError.
func (c *Client) send(ctx context.Context, method string, in any, segments ...string) (*response, error) {
	path, err := c.path(segments...)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Remote request failed", slog.String("method", method), slog.String("url", path), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s %s response: %w", method, path, err)
	}
	c.logger.Debug("Remote request",
		slog.String("method", method),
		slog.String("url", path),
		slog.String("request_id", req.Header.Get(RequestIDHeader)),
		slog.Int("status", res.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	out := &response{status: res.StatusCode, contentType: res.Header.Get("Content-Type"), body: raw}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return out, &StatusError{
			Method:     method,
			Path:       req.URL.Path,
			StatusCode: res.StatusCode,
			Message:    errorMessage(raw),
		}
	}
	return out, nil
}

// sendJSON performs a request and decodes a JSON answer into out.
func (c *Client) sendJSON(ctx context.Context, method string, in, out any, segments ...string) (int, error) {
	res, err := c.send(ctx, method, in, segments...)
	if err != nil {
		if res != nil {
			return res.status, err
		}
		return 0, err
	}
	if out == nil || res.status == http.StatusNoContent || len(res.body) == 0 {
		return res.status, nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return res.status, fmt.Errorf("decoding %s response: %w", method, err)
	}
	return res.status, nil
}

func (c *Client) path(segments ...string) (string, error) {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	full, err := url.JoinPath(c.baseURL, escaped...)
	if err != nil {
		return "", fmt.Errorf("building request URL: %w", err)
	}
	return full, nil
}

func errorMessage(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		return payload.Error
	}
	return ""
}
