// Package http implements the transport layer shared by the data contexts.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	nethttp "net/http"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/fivetwenty-io/cmsapi/internal/constants"
	"github.com/fivetwenty-io/cmsapi/pkg/cms"
)

// Request is an outgoing API request. URL is fully resolved; the data
// contexts own URI construction.
type Request struct {
	Method      string
	URL         string
	Headers     map[string]string
	ContentType string
	Body        []byte
}

// Response is the raw result of a dispatched request.
type Response struct {
	StatusCode int
	Status     string
	Headers    nethttp.Header
	Body       []byte
}

// Client dispatches requests synchronously. Persistent connections are
// disabled; every call opens and closes its own connection.
type Client struct {
	httpClient *nethttp.Client
	logger     cms.Logger
	userAgent  string
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a logger for debug output.
func WithLogger(logger cms.Logger) Option {
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

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new transport client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		httpClient: cleanhttp.DefaultClient(),
		userAgent:  "cmsapi-client/1.0",
	}

	client.httpClient.Timeout = constants.DefaultHTTPTimeout

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do sends the request and reads the full response body before returning.
// Any readable HTTP response is returned without error regardless of its
// status code. When the body read fails midway, the partial Response is
// returned together with the error so callers can still record the status.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var bodyReader io.Reader
	if len(req.Body) > 0 {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Close = true

	if len(req.Body) > 0 {
		httpReq.ContentLength = int64(len(req.Body))
	}

	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return resp, fmt.Errorf("reading response body: %w", err)
	}

	resp.Body = body

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         req.URL,
			"status_code": resp.StatusCode,
		})
	}

	return resp, nil
}
