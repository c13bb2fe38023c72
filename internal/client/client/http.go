package client

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

	"github.com/google/uuid"
	"github.com/vltrn/datav/internal/common"
	"github.com/vltrn/datav/internal/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL      string
	http         *http.Client
	timeout      time.Duration
	tokens       TokenStore
	logger       logging.Logger
	onExpired    SessionExpiredFunc
	newRequestID func() string
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the default traced http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every call. Zero keeps the transport default (none).
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSessionExpiredHandler registers the redirect signal raised on a 401.
func WithSessionExpiredHandler(fn SessionExpiredFunc) Option {
	return func(c *HTTPClient) { c.onExpired = fn }
}

// NewHTTPClient validates baseURL and builds a client whose calls carry the
// current token from tokens.
func NewHTTPClient(baseURL string, tokens TokenStore, opts ...Option) (*HTTPClient, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("api base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("api base URL must be absolute http(s), got %q", baseURL)
	}
	if tokens == nil {
		return nil, errors.New("token store is required")
	}

	c := &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		tokens:       tokens,
		logger:       logging.Nop(),
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c, nil
}

// BaseURL returns the normalised base URL.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		return bytes.NewReader(data), nil
	}
}

// authorize sets the bearer header when a token exists.
func (c *HTTPClient) authorize(ctx context.Context, h http.Header) error {
	token, err := c.tokens.CurrentToken(ctx)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if token != "" {
		h.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return nil
}

// Request performs a JSON call and returns the raw response body, which is
// "null" for an empty 2xx response.
func (c *HTTPClient) Request(ctx context.Context, req Request) (json.RawMessage, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	log := c.logger.With("method", method, "path", req.Path)

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.url(req.Path), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set(common.ContentTypeHeaderName, common.JSONContentType)
	httpReq.Header.Set(common.AcceptHeaderName, common.JSONContentType)
	httpReq.Header.Set(common.RequestIDHeaderName, c.newRequestID())
	if err := c.authorize(ctx, httpReq.Header); err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		httpReq.Header.Del(k)
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	log.Debug(ctx, "API request", "request_id", httpReq.Header.Get(common.RequestIDHeaderName))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		rerr := &RequestError{Kind: KindNetwork, Message: msgNetwork, Err: err}
		log.Error(ctx, "API error", "kind", rerr.Kind, "error", err)
		return nil, rerr
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, c.expire(ctx, log)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		rerr := &RequestError{Kind: KindNetwork, StatusCode: resp.StatusCode, Message: msgNetwork, Err: err}
		log.Error(ctx, "API error", "kind", rerr.Kind, "status", resp.StatusCode, "error", err)
		return nil, rerr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorDetail(data)
		if msg == "" {
			msg = msgRequestFailed
		}
		rerr := &RequestError{Kind: KindHTTP, StatusCode: resp.StatusCode, Message: msg}
		log.Error(ctx, "API error", "kind", rerr.Kind, "status", resp.StatusCode, "detail", msg)
		return nil, rerr
	}

	out, rerr := decodeJSON(data, resp.StatusCode)
	if rerr != nil {
		log.Error(ctx, "API error", "kind", rerr.Kind, "status", resp.StatusCode)
		return nil, rerr
	}
	return out, nil
}

// expire clears the session and raises the redirect signal.
func (c *HTTPClient) expire(ctx context.Context, log logging.Logger) error {
	var clearErr error
	if err := c.tokens.ClearToken(ctx); err != nil {
		clearErr = err
		log.Error(ctx, "failed to clear expired session", "error", err)
	}
	if c.onExpired != nil {
		c.onExpired(ctx)
	}
	log.Warn(ctx, "API error", "kind", KindSessionExpired, "status", http.StatusUnauthorized)
	return &RequestError{
		Kind:       KindSessionExpired,
		StatusCode: http.StatusUnauthorized,
		Message:    msgSessionExpired,
		Err:        clearErr,
	}
}

func decodeJSON(data []byte, status int) (json.RawMessage, *RequestError) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(trimmed) {
		return nil, &RequestError{Kind: KindParse, StatusCode: status, Message: msgParse}
	}
	return json.RawMessage(trimmed), nil
}
