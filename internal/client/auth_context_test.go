package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/cmsapi/internal/constants"
	"github.com/fivetwenty-io/cmsapi/pkg/cms"
)

func newAuthTestContext(t *testing.T, host string, encrypt bool) *AuthContext {
	t.Helper()

	dataContext, err := NewAuthenticated(&cms.Config{
		Host:           host,
		Username:       "alice",
		Password:       "wonderland",
		EncryptHeaders: encrypt,
	})
	require.NoError(t, err)

	return dataContext
}

func TestNewAuthenticated_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *cms.Config
		wantErr error
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: cms.ErrConfigRequired,
		},
		{
			name:    "missing username",
			config:  &cms.Config{Host: "https://cms.example.com", Password: "pass"},
			wantErr: cms.ErrInvalidCredentials,
		},
		{
			name:    "missing password",
			config:  &cms.Config{Host: "https://cms.example.com", Username: "user"},
			wantErr: cms.ErrInvalidCredentials,
		},
		{
			name:    "invalid host",
			config:  &cms.Config{Host: "http://", Username: "user", Password: "pass"},
			wantErr: cms.ErrInvalidHostName,
		},
		{
			name: "encrypted headers over TLS",
			config: &cms.Config{
				Host:           "https://cms.example.com",
				Username:       "user",
				Password:       "pass",
				EncryptHeaders: true,
			},
			wantErr: cms.ErrEncryptedHeadersOverTLS,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewAuthenticated(testCase.config)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestNewAuthenticated_EncryptedOverTLSFailsBeforeDispatch(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	_, err := NewAuthenticated(&cms.Config{
		Host:           server.URL,
		Username:       "user",
		Password:       "pass",
		EncryptHeaders: true,
	})
	require.ErrorIs(t, err, cms.ErrEncryptedHeadersOverTLS)
	assert.Zero(t, requests, "the conflict must be rejected before any network call")
}

func TestAuthContext_PlaintextHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "alice", r.Header.Get(constants.HeaderUsername))
		assert.Equal(t, "wonderland", r.Header.Get(constants.HeaderPassword))
		assert.Empty(t, r.Header.Get(constants.HeaderEncrypted))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 1})
	}))
	defer server.Close()

	dataContext := newAuthTestContext(t, server.URL, false)

	var item cms.ContentItem

	err := dataContext.GetResponse(context.Background(), cms.NewContentGetQuery(1, cms.FormatJSON), &item)
	require.NoError(t, err)
	assert.True(t, item.OK())
}

func TestAuthContext_CreateSendsFormBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/createcontent", r.URL.Path)
		assert.Equal(t, constants.FormContentType, r.Header.Get("Content-Type"))
		assert.Positive(t, r.ContentLength)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Hello", r.PostForm.Get("title"))
		assert.Equal(t, "First post", r.PostForm.Get("body"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 10, "title": "Hello"})
	}))
	defer server.Close()

	dataContext := newAuthTestContext(t, server.URL, false)

	fields := url.Values{}
	fields.Set("title", "Hello")
	fields.Set("body", "First post")

	var item cms.ContentItem

	err := dataContext.GetResponse(context.Background(), cms.NewContentCreateQuery(fields, cms.FormatJSON), &item)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, item.StatusCode)
	assert.Equal(t, 10, item.ID)
}

func TestAuthContext_UpdateUsesPut(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/api/updatecontent", r.URL.Path)
		assert.Equal(t, constants.FormContentType, r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "3", r.PostForm.Get("id"))
		assert.Equal(t, "Renamed", r.PostForm.Get("title"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 3, "title": "Renamed"})
	}))
	defer server.Close()

	dataContext := newAuthTestContext(t, server.URL, false)

	fields := url.Values{}
	fields.Set("title", "Renamed")

	var item cms.ContentItem

	err := dataContext.GetResponse(context.Background(), cms.NewContentUpdateQuery(3, fields, cms.FormatJSON), &item)
	require.NoError(t, err)
	assert.Equal(t, 3, item.ID)
}

func TestAuthContext_ReadHasNoContentType(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Empty(t, r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 1})
	}))
	defer server.Close()

	dataContext := newAuthTestContext(t, server.URL, false)

	var item cms.ContentItem

	err := dataContext.GetResponse(context.Background(), cms.NewContentGetQuery(1, cms.FormatJSON), &item)
	require.NoError(t, err)
	assert.True(t, item.OK())
}

//nolint:funlen // Exercises the full encrypted-header handshake.
func TestAuthContext_EncryptedHeaders(t *testing.T) {
	t.Parallel()

	// Key components travel as strings; their UTF-8 bytes are the key
	// material. A 128-byte modulus string gives a 1024-bit key, enough
	// for the short credential plaintexts. Decrypt correctness is covered
	// by the round-trip test in internal/auth.
	const (
		wireModulus = "q3s8k1m2p9x4v7b0n5c6z8a1s2d3f4g5h6j7k8l9q0w1e2r3t4y5u6i7o8p9a0s1" +
			"d2f3g4h5j6k7l8q9w0e1r2t3y4u5i6o7p8a9s0d1f2g3h4j5k6l7q8w9e0r1t2y3"
		wireExponent = "AQAB"
	)

	keyRequests := 0
	contentRequests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/"+constants.PublicKeyAction {
			keyRequests++

			// The handshake request must be unauthenticated.
			assert.Empty(t, r.Header.Get(constants.HeaderUsername))
			assert.Empty(t, r.Header.Get(constants.HeaderPassword))
			assert.Empty(t, r.Header.Get(constants.HeaderEncrypted))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"modulus":  wireModulus,
				"exponent": wireExponent,
			})

			return
		}

		contentRequests++

		assert.Equal(t, constants.EncryptedFlagValue, r.Header.Get(constants.HeaderEncrypted))

		username := r.Header.Get(constants.HeaderUsername)
		password := r.Header.Get(constants.HeaderPassword)
		assert.NotEqual(t, "alice", username)
		assert.NotEqual(t, "wonderland", password)

		// Both headers are base64 ciphertext of one modulus-sized block.
		usernameCiphertext, err := base64.StdEncoding.DecodeString(username)
		require.NoError(t, err)
		assert.Len(t, usernameCiphertext, len(wireModulus))

		passwordCiphertext, err := base64.StdEncoding.DecodeString(password)
		require.NoError(t, err)
		assert.Len(t, passwordCiphertext, len(wireModulus))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 5})
	}))
	defer server.Close()

	dataContext := newAuthTestContext(t, server.URL, true)

	var item cms.ContentItem

	err := dataContext.GetResponse(context.Background(), cms.NewContentGetQuery(5, cms.FormatJSON), &item)
	require.NoError(t, err)

	assert.True(t, item.OK())
	assert.Equal(t, 5, item.ID)
	assert.Equal(t, 1, keyRequests)
	assert.Equal(t, 1, contentRequests)
}

func TestAuthContext_GetPublicKeyIsUnauthenticated(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/"+constants.PublicKeyAction, r.URL.Path)
		assert.Empty(t, r.Header.Get(constants.HeaderUsername))
		assert.Empty(t, r.Header.Get(constants.HeaderPassword))
		assert.Empty(t, r.Header.Get(constants.HeaderEncrypted))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"modulus":  "modulus-material",
			"exponent": "AQAB",
		})
	}))
	defer server.Close()

	dataContext := newAuthTestContext(t, server.URL, false)

	key, err := dataContext.GetPublicKey(context.Background())
	require.NoError(t, err)
	assert.True(t, key.IsValid())
}

func TestAuthContext_EncryptedHeaders_KeyFetchFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Key material missing; the handshake cannot proceed.
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	dataContext := newAuthTestContext(t, server.URL, true)

	var item cms.ContentItem

	err := dataContext.GetResponse(context.Background(), cms.NewContentGetQuery(1, cms.FormatJSON), &item)
	require.NoError(t, err, "header application failures are captured, never returned")

	assert.Equal(t, http.StatusInternalServerError, item.StatusCode)
	assert.Contains(t, item.ResponseInfo.ErrorMessage, "public key")
}
