// Package client implements the data contexts that build, authenticate,
// dispatch, and decode CMS API queries.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/cmsapi/internal/constants"
	internalhttp "github.com/fivetwenty-io/cmsapi/internal/http"
	"github.com/fivetwenty-io/cmsapi/pkg/cms"
)

// Context is the unauthenticated data context. It serves read and delete
// queries; mutating queries require an AuthContext. The host name is fixed
// at construction and the context is safe for reuse across sequential calls.
type Context struct {
	hostName      string
	http          *internalhttp.Client
	builder       requestBuilder
	allowMutating bool
}

// New creates an unauthenticated context for the given host.
func New(config *cms.Config) (*Context, error) {
	if config == nil {
		return nil, cms.ErrConfigRequired
	}

	hostName, err := NormalizeHostName(config.Host)
	if err != nil {
		return nil, err
	}

	return &Context{
		hostName: hostName,
		http:     internalhttp.NewClient(httpOptions(config)...),
		builder:  baseBuilder{},
	}, nil
}

// httpOptions translates the library config into transport options.
func httpOptions(config *cms.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		opts = append(opts, internalhttp.WithHTTPClient(config.HTTPClient))
	}

	return opts
}

// NormalizeHostName validates host and normalizes it to exactly one
// scheme-prefixed form without a trailing slash. Hosts without a scheme get
// "https://".
func NormalizeHostName(host string) (string, error) {
	trimmed := strings.TrimSpace(host)
	if trimmed == "" {
		return "", cms.ErrHostNameRequired
	}

	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}

	trimmed = strings.TrimSuffix(trimmed, "/")

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" || parsed.Path != "" || parsed.RawQuery != "" {
		return "", fmt.Errorf("%w: %q", cms.ErrInvalidHostName, host)
	}

	return trimmed, nil
}

// HostName returns the normalized host this context targets.
func (c *Context) HostName() string {
	return c.hostName
}

// Secure reports whether the context targets a TLS endpoint.
func (c *Context) Secure() bool {
	return strings.HasPrefix(c.hostName, "https://")
}

// GetResponse executes query and decodes the response body into result.
// Operational failures are recorded on the result's envelope; the returned
// error is reserved for nil arguments and for mutating queries issued on an
// unauthenticated context.
func (c *Context) GetResponse(ctx context.Context, query cms.Query, result cms.Result) error {
	if query == nil {
		return cms.ErrNilQuery
	}

	if result == nil {
		return cms.ErrNilResult
	}

	queryType := query.Type()
	if queryType.IsMutating() && !c.allowMutating {
		return fmt.Errorf("%w: %s", cms.ErrQueryRequiresAuth, queryType)
	}

	var body []byte

	if queryType.IsMutating() {
		if fields := query.Fields(); len(fields) > 0 {
			body = []byte(fields.Encode())
		}
	}

	uri := query.URI(c.hostName)

	req, err := c.builder.Build(ctx, uri, queryType, body)
	if err != nil {
		// Header application failed before dispatch; an operational
		// failure like any other.
		captureOutcome(result, uri, 0, nil, err)

		return nil
	}

	c.execute(ctx, req, query.Format(), result)

	return nil
}

// execute dispatches the request and maps every outcome onto the result.
// Elapsed time covers dispatch through body-read completion.
func (c *Context) execute(ctx context.Context, req *internalhttp.Request, format cms.ResponseFormat, result cms.Result) {
	start := time.Now()
	resp, err := c.http.Do(ctx, req)
	elapsed := time.Since(start)

	captureOutcome(result, req.URL, elapsed, resp, err)

	if err != nil || resp == nil {
		return
	}

	err = decodeBody(resp.Body, format, result)
	if err != nil {
		captureDecodeFailure(result, err)
	}
}

// GetPublicKey fetches the server's RSA public key through the fixed
// getpublickey action. The nil-key contract: ErrPublicKeyUnavailable when
// the response fails self-validation.
func (c *Context) GetPublicKey(ctx context.Context) (*cms.PublicKeyResponse, error) {
	query := &cms.ActionQuery{
		Action:    constants.PublicKeyAction,
		QueryType: cms.QueryTypeRead,
		Response:  cms.FormatJSON,
	}

	var key cms.PublicKeyResponse

	err := c.GetResponse(ctx, query, &key)
	if err != nil {
		return nil, err
	}

	if !key.IsValid() {
		return nil, cms.ErrPublicKeyUnavailable
	}

	return &key, nil
}
