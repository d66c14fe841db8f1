// Package auth implements credential header application and the RSA
// encryption of header values.
package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"github.com/fivetwenty-io/cmsapi/pkg/cms"
)

// Static errors for err113 compliance.
var (
	ErrExponentOutOfRange = errors.New("public key exponent is out of range")
)

// EncryptHeaderValue encrypts value with the server-supplied RSA public key
// and returns the base64-encoded ciphertext. PKCS#1 v1.5 padding is used,
// not OAEP; the server decrypts with the matching private key. The padding
// is randomized, so ciphertext differs between calls for the same input.
func EncryptHeaderValue(value string, key *cms.PublicKeyResponse) (string, error) {
	if value == "" {
		return "", cms.ErrEmptyHeaderValue
	}

	if key == nil {
		return "", cms.ErrNilPublicKey
	}

	pub, err := importPublicKey(key)
	if err != nil {
		return "", err
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, pub, []byte(value))
	if err != nil {
		return "", fmt.Errorf("encrypting header value: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// importPublicKey builds an rsa.PublicKey from the raw bytes of the modulus
// and exponent strings. The server transmits the key components as strings
// and the byte representation of those strings is the key material on the
// wire; they must not be decoded numerically.
func importPublicKey(key *cms.PublicKeyResponse) (*rsa.PublicKey, error) {
	if key.Modulus == "" || key.Exponent == "" {
		return nil, cms.ErrPublicKeyMaterialMissing
	}

	modulus := new(big.Int).SetBytes([]byte(key.Modulus))
	exponent := new(big.Int).SetBytes([]byte(key.Exponent))

	if !exponent.IsInt64() || exponent.Int64() < 2 || exponent.Int64() > int64(^uint32(0)) {
		return nil, ErrExponentOutOfRange
	}

	return &rsa.PublicKey{N: modulus, E: int(exponent.Int64())}, nil
}
