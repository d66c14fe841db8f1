package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/cmsapi/internal/auth"
	"github.com/fivetwenty-io/cmsapi/internal/constants"
	internalhttp "github.com/fivetwenty-io/cmsapi/internal/http"
	"github.com/fivetwenty-io/cmsapi/pkg/cms"
)

// AuthContext is the authenticated data context. It extends Context with
// credential headers (plaintext or RSA-encrypted) and request bodies for
// Create and Update queries.
type AuthContext struct {
	*Context

	credentials *cms.Credentials

	// plain is a separate unauthenticated context against the same host.
	// The public-key fetch must go through it: authenticating the
	// getpublickey request would itself need the public key, which would
	// recurse without bound.
	plain *Context
}

// NewAuthenticated creates an authenticated context for the given host and
// credentials. Construction fails when the credentials are invalid or when
// encrypted headers are requested on a TLS host, where the transport
// already provides confidentiality.
func NewAuthenticated(config *cms.Config) (*AuthContext, error) {
	if config == nil {
		return nil, cms.ErrConfigRequired
	}

	credentials := &cms.Credentials{
		Username:       config.Username,
		Password:       config.Password,
		EncryptHeaders: config.EncryptHeaders,
	}

	err := credentials.Validate()
	if err != nil {
		return nil, err
	}

	plain, err := New(config)
	if err != nil {
		return nil, err
	}

	if credentials.EncryptHeaders && plain.Secure() {
		return nil, fmt.Errorf("%w: host %s", cms.ErrEncryptedHeadersOverTLS, plain.HostName())
	}

	authed := &Context{
		hostName:      plain.hostName,
		http:          plain.http,
		allowMutating: true,
	}

	authed.builder = &authBuilder{
		credentials: credentials,
		fetchKey:    plain.GetPublicKey,
	}

	return &AuthContext{
		Context:     authed,
		credentials: credentials,
		plain:       plain,
	}, nil
}

// GetPublicKey issues the getpublickey action through the unauthenticated
// context, never through the authenticated request path.
func (a *AuthContext) GetPublicKey(ctx context.Context) (*cms.PublicKeyResponse, error) {
	return a.plain.GetPublicKey(ctx)
}

// authBuilder builds authenticated requests: base request, credential
// headers, form content type and body for mutating verbs.
type authBuilder struct {
	credentials *cms.Credentials
	fetchKey    func(context.Context) (*cms.PublicKeyResponse, error)
}

func (b *authBuilder) Build(ctx context.Context, uri string, queryType cms.QueryType, body []byte) (*internalhttp.Request, error) {
	req := buildBaseRequest(uri, queryType)

	err := b.applyHeaders(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("applying credential headers: %w", err)
	}

	if req.Method == "POST" || req.Method == "PUT" {
		req.ContentType = constants.FormContentType
	}

	if queryType.IsMutating() && len(body) > 0 {
		req.Body = body
	}

	return req, nil
}

// applyHeaders sets the credential headers, plaintext or encrypted.
func (b *authBuilder) applyHeaders(ctx context.Context, req *internalhttp.Request) error {
	if b.credentials.EncryptHeaders {
		return b.applyEncryptedHeaders(ctx, req)
	}

	req.Headers[constants.HeaderUsername] = b.credentials.Username
	req.Headers[constants.HeaderPassword] = b.credentials.Password

	return nil
}

// applyEncryptedHeaders fetches the server key, encrypts the username and
// password independently, and flags the request as encrypted.
func (b *authBuilder) applyEncryptedHeaders(ctx context.Context, req *internalhttp.Request) error {
	key, err := b.fetchKey(ctx)
	if err != nil {
		return fmt.Errorf("fetching public key: %w", err)
	}

	username, err := auth.EncryptHeaderValue(b.credentials.Username, key)
	if err != nil {
		return fmt.Errorf("encrypting username: %w", err)
	}

	password, err := auth.EncryptHeaderValue(b.credentials.Password, key)
	if err != nil {
		return fmt.Errorf("encrypting password: %w", err)
	}

	req.Headers[constants.HeaderUsername] = username
	req.Headers[constants.HeaderPassword] = password
	req.Headers[constants.HeaderEncrypted] = constants.EncryptedFlagValue

	return nil
}
