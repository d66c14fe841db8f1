package cms

import "errors"

// Configuration errors, raised synchronously at construction.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrHostNameRequired    = errors.New("host name is required")
	ErrInvalidHostName     = errors.New("invalid host name")
	ErrCredentialsRequired = errors.New("credentials are required")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	// ErrEncryptedHeadersOverTLS rejects the secure-transport plus
	// encrypted-headers combination: the server handles confidentiality
	// itself on TLS connections.
	ErrEncryptedHeadersOverTLS = errors.New("encrypted headers cannot be combined with a secure transport")
)

// Programming errors, raised synchronously by operations.
var (
	ErrNilQuery                 = errors.New("query must not be nil")
	ErrNilResult                = errors.New("result container must not be nil")
	ErrQueryRequiresAuth        = errors.New("create and update queries require an authenticated context")
	ErrUnsupportedFormat        = errors.New("unsupported response format")
	ErrEmptyHeaderValue         = errors.New("header value must not be empty")
	ErrNilPublicKey             = errors.New("public key must not be nil")
	ErrPublicKeyUnavailable     = errors.New("server did not return a usable public key")
	ErrPublicKeyMaterialMissing = errors.New("public key response is missing modulus or exponent")
)

// IsConfigurationError reports whether err is one of the construction-time
// configuration failures.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrHostNameRequired) ||
		errors.Is(err, ErrInvalidHostName) ||
		errors.Is(err, ErrCredentialsRequired) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrEncryptedHeadersOverTLS) ||
		errors.Is(err, ErrConfigRequired)
}
