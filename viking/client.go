package viking

import (
	"context"
	"net/http"
	"time"

	"github.com/gomodule/oauth1/oauth"
	"github.com/google/uuid"

	"github.com/mobilevikings/viking-go/httpclient"
	"github.com/mobilevikings/viking-go/logger"
)

// Client calls the Mobile Vikings API. It tracks the OAuth flow as an
// explicit state: unauthenticated, request token active, or access token
// active. Every token operation replaces the signing state wholesale.
//
// The zero value is not usable; create clients with New. A Client is not
// safe for concurrent use.
type Client struct {
	cfg      Config
	delegate *oauth.Client
	// consumerHTTP signs with the consumer credentials alone, for the
	// request-token fetch.
	consumerHTTP *httpclient.Client
	state        authState
	log          *logger.Logger
}

// New creates an API client.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport, err := httpclient.New(httpclient.Config{
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		Headers:     cfg.Headers,
		Classifier:  ClassifyResponse,
		Retry:       cfg.Retry,
		RateLimiter: cfg.RateLimiter,
	})
	if err != nil {
		return nil, err
	}

	delegate := &oauth.Client{
		Credentials: oauth.Credentials{
			Token:  cfg.ConsumerKey,
			Secret: cfg.ConsumerSecret,
		},
		TemporaryCredentialRequestURI: cfg.oauthURL("request_token"),
		ResourceOwnerAuthorizationURI: cfg.oauthURL("authorize"),
		TokenRequestURI:               cfg.oauthURL("access_token"),
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	c := &Client{
		cfg:      cfg,
		delegate: delegate,
		log:      log.WithComponent("viking"),
	}
	c.state = newAuthState(phaseUnauthenticated, nil, delegate, transport)
	c.consumerHTTP = c.state.http
	return c, nil
}

// FetchRequestToken fetches a request token, stores it as the active
// credential, and returns it.
//
// callback is the URL the user will be redirected to after granting
// access. Pass CallbackOutOfBand (or "") to have the Mobile Vikings site
// display the verification code instead.
func (c *Client) FetchRequestToken(ctx context.Context, callback string) (*Token, error) {
	if callback == "" {
		callback = CallbackOutOfBand
	}

	resp, err := c.do(ctx, "fetch_request_token", c.consumerHTTP, httpclient.Request{
		Method: http.MethodGet,
		Path:   c.delegate.TemporaryCredentialRequestURI,
		Query:  map[string]string{"oauth_callback": callback},
	})
	if err != nil {
		return nil, err
	}

	token, perr := ParseToken(string(resp.Body))
	if perr != nil {
		return nil, NewServerResponseError(resp, perr)
	}

	c.SetRequestToken(token)
	return token, nil
}

// SetRequestToken makes the client sign its calls with the given request
// token.
func (c *Client) SetRequestToken(token *Token) {
	c.transition(phaseRequestToken, token)
}

// AuthorizationURL returns the URL on the Mobile Vikings site where the
// user can grant the application access to their data. It is derived purely
// from the consumer and the stored request token; no request is made.
func (c *Client) AuthorizationURL() (string, error) {
	if c.state.phase != phaseRequestToken {
		return "", NewPreconditionError("no request token; fetch or set one first")
	}
	return c.delegate.AuthorizationURL(c.state.token.credentials(), nil), nil
}

// SetRequestVerifier attaches the verification code to the stored request
// token. The code arrives as the oauth_verifier query parameter on the
// callback URL, or is shown to the user directly for out-of-band flows.
func (c *Client) SetRequestVerifier(verifier string) error {
	if c.state.phase != phaseRequestToken {
		return NewPreconditionError("no request token to verify; fetch or set one first")
	}
	c.transition(phaseRequestToken, c.state.token.withVerifier(verifier))
	return nil
}

// FetchAccessToken exchanges the verified request token for an access
// token, stores it as the active credential, and returns it.
func (c *Client) FetchAccessToken(ctx context.Context) (*Token, error) {
	if c.state.phase != phaseRequestToken {
		return nil, NewPreconditionError("no request token; fetch or set one first")
	}
	if c.state.token.Verifier == "" {
		return nil, NewPreconditionError("request token has no verifier; call SetRequestVerifier first")
	}

	resp, err := c.do(ctx, "fetch_access_token", c.state.http, httpclient.Request{
		Method: http.MethodGet,
		Path:   c.delegate.TokenRequestURI,
		Query:  map[string]string{"oauth_verifier": c.state.token.Verifier},
	})
	if err != nil {
		return nil, err
	}

	token, perr := ParseToken(string(resp.Body))
	if perr != nil {
		return nil, NewServerResponseError(resp, perr)
	}

	c.SetAccessToken(token)
	return token, nil
}

// SetAccessToken makes the client sign its calls with the given access
// token, e.g. one re-used from an earlier authorization.
func (c *Client) SetAccessToken(token *Token) {
	c.transition(phaseAccessToken, token)
}

// Token returns the currently active token, or nil when unauthenticated.
func (c *Client) Token() *Token {
	return c.state.token
}

// Call calls an API method and returns the raw response.
//
// path is the API method name, "sim_balance" for example; see
// https://mobilevikings.com/api/2.0/doc/ for an overview. Known OAuth
// failures come back as *Error; any other non-2xx response is returned
// with a nil error, and the caller must check the response status.
func (c *Client) Call(ctx context.Context, method, path string, opts ...CallOption) (*httpclient.Response, error) {
	o := callOptions{format: c.cfg.Format}
	for _, opt := range opts {
		opt(&o)
	}

	return c.do(ctx, "call", c.state.http, httpclient.Request{
		Method:  method,
		Path:    path + "." + o.format,
		Query:   o.args,
		Body:    o.body,
		Headers: o.headers,
	})
}

// Get is a shortcut for Call with the GET method.
func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) (*httpclient.Response, error) {
	return c.Call(ctx, http.MethodGet, path, opts...)
}

// Post is a shortcut for Call with the POST method.
func (c *Client) Post(ctx context.Context, path string, opts ...CallOption) (*httpclient.Response, error) {
	return c.Call(ctx, http.MethodPost, path, opts...)
}

// transition replaces the authentication state with a fresh snapshot.
func (c *Client) transition(phase authPhase, token *Token) {
	c.state = newAuthState(phase, token, c.delegate, c.consumerHTTP)
	c.log.Debug("auth state changed", logger.Fields(
		logger.FieldOperation, "transition",
		logger.FieldStatus, phase.String(),
	))
}

// do executes one request with logging.
func (c *Client) do(ctx context.Context, op string, transport *httpclient.Client, req httpclient.Request) (*httpclient.Response, error) {
	fields := logger.Fields(
		logger.FieldRequestID, uuid.New().String(),
		logger.FieldOperation, op,
		logger.FieldMethod, req.Method,
		logger.FieldURL, req.Path,
	)

	start := time.Now()
	resp, err := transport.Do(ctx, req)
	fields[logger.FieldDuration] = time.Since(start).Milliseconds()
	if resp != nil {
		fields[logger.FieldStatus] = resp.StatusCode
	}

	if err != nil {
		c.log.WithError(err).Debug("api call failed", fields)
		return resp, err
	}
	c.log.Debug("api call", fields)
	return resp, nil
}

// CallOption configures a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	args    map[string]string
	body    any
	headers map[string]string
	format  string
}

// WithArgs adds query parameters to the call.
func WithArgs(args map[string]string) CallOption {
	return func(o *callOptions) {
		o.args = args
	}
}

// WithBody sets the request body.
func WithBody(body any) CallOption {
	return func(o *callOptions) {
		o.body = body
	}
}

// WithHeaders adds headers to the call.
func WithHeaders(headers map[string]string) CallOption {
	return func(o *callOptions) {
		o.headers = headers
	}
}

// WithFormat overrides the client's default output format for one call.
// The value is not validated; an unsupported format is simply forwarded to
// the server.
func WithFormat(format string) CallOption {
	return func(o *callOptions) {
		o.format = format
	}
}
