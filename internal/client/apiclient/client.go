// Package apiclient is the HTTP client of the admin API. It attaches the
// stored bearer token to every call and classifies failures.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/client/credential"
)

const (
	// DefaultTimeout bounds a single call. Calls are never retried.
	DefaultTimeout = 10 * time.Second

	apiPrefix = "/api"
)

// ContentKind selects the request body encoding.
type ContentKind int

const (
	ContentJSON ContentKind = iota
	ContentMultipart
)

// Request is one API call. Path is relative to the /api prefix.
// Anonymous requests never carry the stored token.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Kind      ContentKind
	Anonymous bool
}

// Client talks to one admin API server.
type Client struct {
	origin *url.URL
	http   *http.Client
	store  credential.Store
	log    zerolog.Logger

	mu             sync.Mutex
	onUnauthorized []func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout on a copy of the http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client for the server at baseURL (scheme and host, e.g.
// http://localhost:8080).
func New(baseURL string, store credential.Store, opts ...Option) (*Client, error) {
	origin, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("apiclient: parse base url: %w", err)
	}
	if origin.Scheme == "" || origin.Host == "" {
		return nil, fmt.Errorf("apiclient: base url %q must be absolute", baseURL)
	}
	c := &Client{
		origin: origin,
		http:   &http.Client{Timeout: DefaultTimeout},
		store:  store,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Store returns the credential store the client reads tokens from.
func (c *Client) Store() credential.Store {
	return c.store
}

// OnUnauthorized registers fn to run after a 401 has cleared the stored token.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = append(c.onUnauthorized, fn)
	c.mu.Unlock()
}

// ResolveURL turns a file location returned by the server into an absolute URL.
func (c *Client) ResolveURL(location string) string {
	ref, err := url.Parse(location)
	if err != nil || ref.IsAbs() {
		return location
	}
	return c.origin.ResolveReference(ref).String()
}

// Do performs req and decodes a successful JSON response into out (if non-nil).
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	fail := func(kind error, status int, msg string, cause error) *Error {
		return &Error{Kind: kind, Status: status, Message: msg, Method: method, Path: req.Path, Cause: cause}
	}

	httpReq, err := c.newRequest(ctx, method, req)
	if err != nil {
		return fail(ErrTransport, 0, "", err)
	}

	attached := false
	if !req.Anonymous {
		token, err := c.store.Get()
		if err != nil {
			c.log.Warn().Err(err).Msg("read stored token")
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
			attached = true
		}
	}

	start := time.Now()
	c.log.Debug().Str("method", method).Str("path", req.Path).Msg("request")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", req.Path).Msg("transport failure")
		return fail(ErrTransport, 0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(ErrTransport, resp.StatusCode, "", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("response")

	if kind := classify(resp.StatusCode); kind != nil {
		apiErr := fail(kind, resp.StatusCode, errorMessage(resp.StatusCode, body), nil)
		switch kind {
		case ErrAuthenticationExpired:
			if attached {
				c.unauthorized()
			}
			c.log.Warn().Int("status", resp.StatusCode).Str("path", req.Path).Msg(apiErr.Message)
		case ErrServerFault:
			c.log.Error().Int("status", resp.StatusCode).Str("path", req.Path).Msg(apiErr.Message)
		default:
			c.log.Warn().Int("status", resp.StatusCode).Str("path", req.Path).Msg(apiErr.Message)
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fail(ErrMalformedResponse, resp.StatusCode, "response is not valid JSON", err)
	}
	return nil
}

// unauthorized clears the stored token once and notifies listeners.
func (c *Client) unauthorized() {
	if err := c.store.Clear(); err != nil {
		c.log.Error().Err(err).Msg("clear stored token")
	}
	c.mu.Lock()
	hooks := append([]func(){}, c.onUnauthorized...)
	c.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

func (c *Client) newRequest(ctx context.Context, method string, req Request) (*http.Request, error) {
	u := *c.origin
	u.Path = c.origin.Path + apiPrefix + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch req.Kind {
	case ContentMultipart:
		form, ok := req.Body.(*MultipartForm)
		if !ok {
			return nil, fmt.Errorf("multipart request needs *MultipartForm, got %T", req.Body)
		}
		buf, ct, err := form.encode()
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	default:
		if req.Body != nil {
			b, err := json.Marshal(req.Body)
			if err != nil {
				return nil, fmt.Errorf("encode body: %w", err)
			}
			body, contentType = bytes.NewReader(b), "application/json"
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	return httpReq, nil
}

func errorMessage(status int, body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.ToLower(http.StatusText(status))
}

