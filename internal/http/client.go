package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/azure-automation/internal/auth"
	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// headerContentLengthRaw bypasses Header canonicalization, see buildRequest.
const headerContentLengthRaw = "content-length"

// Client is the transport pipeline. It implements automation.Executor.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	userAgent    string
	logger       automation.Logger
	debug        bool
	timeout      time.Duration
	interceptors *automation.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output and retry messages.
func WithLogger(logger automation.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes retries of transport errors, 429 and 5xx responses.
// Zero values keep the defaults.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		if maxRetries > 0 {
			c.httpClient.RetryMax = maxRetries
		}

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// WithTimeout sets the timeout of the underlying *http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithInterceptors runs chain around every send.
func WithInterceptors(chain *automation.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a pipeline for baseURL. tokenManager may be nil for
// unauthenticated requests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	// Hand the last response back instead of a "giving up" error so the
	// caller sees the real status.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    constants.DefaultUserAgent,
		timeout:      constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient.HTTPClient != nil && client.timeout > 0 && client.httpClient.HTTPClient.Timeout == 0 {
		client.httpClient.HTTPClient.Timeout = client.timeout
	}

	if client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// BaseURL returns the endpoint relative URLs are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute implements automation.Executor.
func (c *Client) Execute(ctx context.Context, req *automation.WireRequest) (*automation.RawResponse, error) {
	if req.Headers == nil {
		req.Headers = make(http.Header)
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"operation": req.Operation,
			"method":    req.Method,
			"url":       httpReq.URL.String(),
		})
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		raw := &automation.RawResponse{Error: fmt.Errorf("executing request: %w", err)}
		_ = c.runResponseInterceptors(ctx, req, raw)

		return nil, raw.Error
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"operation":   req.Operation,
			"status_code": resp.StatusCode,
			"duration":    time.Since(start).String(),
		})
	}

	raw := &automation.RawResponse{
		StatusCode:   resp.StatusCode,
		Header:       resp.Header,
		Body:         body,
		HTTPResponse: resp,
	}

	if resp.StatusCode < constants.HTTPStatusOK || resp.StatusCode >= constants.HTTPStatusMultipleChoices {
		raw.Error = &automation.ResponseError{
			StatusCode: resp.StatusCode,
			Method:     req.Method,
			URL:        httpReq.URL.String(),
			Header:     resp.Header,
			Body:       body,
		}
	}

	err = c.runResponseInterceptors(ctx, req, raw)
	if err != nil {
		return raw, err
	}

	return raw, raw.Error
}

func (c *Client) buildRequest(ctx context.Context, req *automation.WireRequest) (*retryablehttp.Request, error) {
	var rawBody interface{}
	if len(req.Body) > 0 {
		rawBody = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, c.resolve(req.URL), rawBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", automation.ErrInvalidPath, err)
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting auth token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	accept := req.Accept
	if accept == "" {
		accept = constants.ContentTypeJSON
	}

	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", accept)
	}

	if rawBody != nil && req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	// net/http writes Content-Length: 0 for bodiless POST, PUT and PATCH only
	// and filters the canonical key out of Header. The lower-case key is
	// written verbatim on HTTP/1.1 and dropped by the HTTP/2 transport.
	if rawBody == nil && req.Method == http.MethodDelete {
		httpReq.Header[headerContentLengthRaw] = []string{"0"}
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	return httpReq, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *automation.WireRequest, raw *automation.RawResponse) error {
	if c.interceptors == nil {
		return nil
	}

	return c.interceptors.ExecuteResponseInterceptors(ctx, req, raw)
}

// resolve leaves absolute URLs, such as continuation links, untouched.
func (c *Client) resolve(target string) string {
	if strings.HasPrefix(target, "https://") || strings.HasPrefix(target, "http://") {
		return target
	}

	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}

	return c.baseURL + target
}

var _ automation.Executor = (*Client)(nil)
