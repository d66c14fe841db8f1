package cms

import (
	"context"
	"net/http"
)

// DataContext is the client-side representation of a connection to one CMS
// host. A context is immutable after construction and safe for reuse across
// sequential calls; construct a new context to target a different host.
type DataContext interface {
	// HostName returns the normalized, scheme-prefixed host this context
	// targets.
	HostName() string

	// GetResponse executes the query and decodes the response body into
	// result. Operational failures (network, HTTP status, parse) are
	// captured into the result's envelope and do not produce an error;
	// the returned error is reserved for programming mistakes such as a
	// nil query or nil result, or a query type the context cannot serve.
	GetResponse(ctx context.Context, query Query, result Result) error

	// GetPublicKey fetches the server's RSA public key via the fixed
	// getpublickey action. It returns ErrPublicKeyUnavailable when the
	// server response fails self-validation.
	GetPublicKey(ctx context.Context) (*PublicKeyResponse, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a DataContext.
//
// # Host normalization
//
// Host accepts a bare host name, or one prefixed with "http://" or
// "https://", with or without a trailing slash. The constructors normalize
// it to exactly one scheme-prefixed form without a trailing slash, adding
// "https://" when no scheme is present. A syntactically invalid host fails
// construction.
//
// # Authentication
//
// Providing a Username selects an authenticated context; Create and Update
// queries are only available there. EncryptHeaders on the credentials
// requests RSA encryption of the credential headers using key material
// fetched from the server, and is rejected on https hosts where the
// transport already provides confidentiality.
type Config struct {
	// Host is the target CMS host, e.g. "https://cms.example.com".
	Host string

	// Username and Password authenticate mutating queries. Both must be
	// set, or neither.
	Username string
	Password string

	// EncryptHeaders encrypts the credential headers with the server's
	// RSA public key. Incompatible with https hosts.
	EncryptHeaders bool

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging when a Logger is provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// HTTPClient overrides the underlying HTTP client. The default client
	// disables persistent connections and applies the standard timeout.
	HTTPClient *http.Client
}
