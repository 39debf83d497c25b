package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mobilevikings/viking-go/resilience"
)

const tracerName = "github.com/mobilevikings/viking-go/httpclient"

// Client is the HTTP transport with signing, classification, and opt-in
// resilience. It holds no mutable state and is safe for concurrent use;
// the signer it is configured with may not be.
type Client struct {
	httpClient *http.Client
	config     Config
	rl         *resilience.RateLimiter
	tracer     trace.Tracer
}

// New creates a new transport with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		tracer:     otel.Tracer(tracerName),
	}
	if cfg.RateLimiter != nil {
		c.rl = resilience.NewRateLimiter(*cfg.RateLimiter)
	}

	return c, nil
}

// WithSigner returns a copy of the client that signs requests with s.
// The underlying *http.Client and rate limiter are shared.
func (c *Client) WithSigner(s Signer) *Client {
	clone := *c
	clone.config.Signer = s
	return &clone
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Do executes an HTTP request and returns the complete response.
//
// A classifier error still carries the response that triggered it, so
// callers can inspect status, headers, and body.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if c.config.Retry != nil {
		return resilience.Retry(ctx, *c.config.Retry, func() (*Response, error) {
			return c.doOnce(ctx, req)
		})
	}
	return c.doOnce(ctx, req)
}

// doOnce executes a single attempt with rate limiting and tracing.
func (c *Client) doOnce(ctx context.Context, req Request) (*Response, error) {
	if c.rl != nil {
		if err := c.rl.Wait(ctx); err != nil {
			return nil, err
		}
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("HTTP %s", req.Method),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.request.method", req.Method)),
	)
	defer span.End()

	resp, err := c.executeRequest(ctx, req)
	if resp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}

// executeRequest builds, signs, and sends the HTTP request.
func (c *Client) executeRequest(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if c.config.Classifier != nil {
		if classErr := c.config.Classifier(result); classErr != nil {
			return result, classErr
		}
	}

	return result, nil
}

// buildRequest constructs a signed *http.Request. The signer runs before
// the query string is attached so signatures can cover the query values.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := req.Path
	if c.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		target = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewRequestError("encode body", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, NewRequestError("create request", err)
	}
	if httpReq.URL.RawQuery != "" {
		return nil, NewRequestError("path must not contain a query string", nil)
	}

	query := make(url.Values, len(req.Query))
	for k, v := range req.Query {
		query.Set(k, v)
	}

	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.config.Signer != nil {
		if err := c.config.Signer.Authorize(httpReq, query); err != nil {
			return nil, NewRequestError("sign request", err)
		}
	}
	if len(query) > 0 {
		httpReq.URL.RawQuery = query.Encode()
	}

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}
