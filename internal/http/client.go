// Package http provides the HTTP transport used by the resource clients.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/helpwire-io/deskapi/internal/auth"
	"github.com/helpwire-io/deskapi/internal/constants"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the low-level HTTP client. It resolves paths against the base
// endpoint, applies authentication, and maps failures onto the error types
// in the desk package.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	logger       desk.Logger
	debug        bool
	userAgent    string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger for debug output.
func WithLogger(logger desk.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig enables retries for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout sets the per-request timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a client for the given base endpoint. Requests are
// attempted exactly once unless WithRetryConfig enables retries.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 0
	httpClient.Logger = nil
	httpClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand back the final response when retries are exhausted so a non-2xx
	// status surfaces as an APIError rather than a swallowed body.
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   httpClient,
		userAgent:    "deskapi-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. A non-2xx status returns both the response and
// the parsed APIError so callers can inspect either.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.resolveURL(req)
	if err != nil {
		return nil, err
	}

	var bodyBytes []byte
	if req.Body != nil {
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.tokenManager != nil {
		header, authErr := c.tokenManager.GetAuthorizationHeader(ctx)
		if authErr != nil {
			return nil, fmt.Errorf("getting authorization header: %w", authErr)
		}

		httpReq.Header.Set("Authorization", header)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &desk.TransportError{URL: fullURL, Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &desk.TransportError{URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if httpResp.StatusCode >= 400 {
		return resp, desk.ParseAPIError(httpResp.StatusCode, respBody)
	}

	return resp, nil
}

// resolveURL builds the absolute request URL. Next-page locators arrive as
// absolute URLs, which are used as-is; everything else resolves against
// the base endpoint.
func (c *Client) resolveURL(req *Request) (string, error) {
	fullURL := req.Path
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = c.baseURL + req.Path
	}

	if len(req.Query) > 0 {
		parsed, err := url.Parse(fullURL)
		if err != nil {
			return "", fmt.Errorf("parsing request URL: %w", err)
		}

		query := parsed.Query()
		for key, values := range req.Query {
			for _, value := range values {
				query.Add(key, value)
			}
		}

		parsed.RawQuery = query.Encode()
		fullURL = parsed.String()
	}

	return fullURL, nil
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put executes a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch executes a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete executes a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
