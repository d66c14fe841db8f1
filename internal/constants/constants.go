package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Credential header names. The names and the "1" flag value are a
// wire-compatibility contract with the server and must not change.
const (
	// HeaderUsername carries the username, plaintext or base64 ciphertext.
	HeaderUsername = "username"

	// HeaderPassword carries the password, plaintext or base64 ciphertext.
	HeaderPassword = "password"

	// HeaderEncrypted flags that the credential headers are encrypted.
	HeaderEncrypted = "encrypted"

	// EncryptedFlagValue is the HeaderEncrypted value when encryption is on.
	EncryptedFlagValue = "1"
)

// Server actions.
const (
	// PublicKeyAction is the unauthenticated action returning the server's
	// RSA public key material.
	PublicKeyAction = "getpublickey"
)

// Content types.
const (
	// FormContentType is set on POST and PUT requests.
	FormContentType = "application/x-www-form-urlencoded"
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusInternalServerError is recorded on results when a call
	// fails without an HTTP response.
	HTTPStatusInternalServerError = 500
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the indent width for JSON and YAML output.
	JSONIndentSize = 2
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)
