// Package cmsclient provides the main entry point for creating CMS API data contexts
package cmsclient

import (
	"fmt"

	"github.com/fivetwenty-io/cmsapi/internal/client"
	"github.com/fivetwenty-io/cmsapi/pkg/cms"
)

// New creates a data context for the host in config. Providing a username
// selects an authenticated context; otherwise the context is read-only.
func New(config *cms.Config) (cms.DataContext, error) {
	if config == nil {
		return nil, cms.ErrConfigRequired
	}

	if config.Username != "" || config.Password != "" {
		authed, err := client.NewAuthenticated(config)
		if err != nil {
			return nil, fmt.Errorf("creating authenticated context: %w", err)
		}

		return authed, nil
	}

	plain, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating context: %w", err)
	}

	return plain, nil
}

// NewWithHost creates an unauthenticated context for a host (no auth).
func NewWithHost(host string) (cms.DataContext, error) {
	return New(&cms.Config{
		Host: host,
	})
}

// NewWithCredentials creates an authenticated context sending plaintext
// credential headers.
func NewWithCredentials(host, username, password string) (cms.DataContext, error) {
	return New(&cms.Config{
		Host:     host,
		Username: username,
		Password: password,
	})
}

// NewWithEncryptedHeaders creates an authenticated context that encrypts
// the credential headers with the server's RSA public key. Only valid for
// plain-http hosts.
func NewWithEncryptedHeaders(host, username, password string) (cms.DataContext, error) {
	return New(&cms.Config{
		Host:           host,
		Username:       username,
		Password:       password,
		EncryptHeaders: true,
	})
}
