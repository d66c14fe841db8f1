package cms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var credentialsValidator = validator.New()

// Credentials holds the username/password pair attached to authenticated
// requests, plus the flag selecting application-layer header encryption.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`

	// EncryptHeaders requests RSA encryption of the credential headers.
	// Only valid on non-TLS transports.
	EncryptHeaders bool
}

// Validate checks that both username and password are present. The returned
// error wraps ErrInvalidCredentials and names the offending field.
func (c *Credentials) Validate() error {
	if c == nil {
		return ErrCredentialsRequired
	}

	err := credentialsValidator.Struct(c)
	if err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			return fmt.Errorf("%w: %s is required", ErrInvalidCredentials, invalid[0].Field())
		}

		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	return nil
}
