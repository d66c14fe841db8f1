package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmshttp "github.com/fivetwenty-io/cmsapi/internal/http"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/listcontent", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			response := map[string]string{"title": "test-item"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := cmshttp.NewClient()

		req := &cmshttp.Request{
			Method: "GET",
			URL:    server.URL + "/api/listcontent",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "test-item", result["title"])
	})

	t.Run("persistent connections disabled", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.True(t, request.Close, "request should ask for connection close")
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cmshttp.NewClient()

		resp, err := client.Do(context.Background(), &cmshttp.Request{Method: "GET", URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body and content type", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))
			assert.Equal(t, int64(11), request.ContentLength)

			require.NoError(t, request.ParseForm())
			assert.Equal(t, "hello", request.PostForm.Get("title"))

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := cmshttp.NewClient()

		req := &cmshttp.Request{
			Method:      "POST",
			URL:         server.URL + "/api/createcontent",
			ContentType: "application/x-www-form-urlencoded",
			Body:        []byte("title=hello"),
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cmshttp.NewClient()

		req := &cmshttp.Request{
			Method: "GET",
			URL:    server.URL,
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error statuses are returned, not raised", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("upstream broken"))
		}))
		defer server.Close()

		client := cmshttp.NewClient()

		resp, err := client.Do(context.Background(), &cmshttp.Request{Method: "GET", URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, 502, resp.StatusCode)
		assert.Equal(t, "upstream broken", string(resp.Body))
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close()

		client := cmshttp.NewClient()

		resp, err := client.Do(context.Background(), &cmshttp.Request{Method: "GET", URL: server.URL})
		require.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := cmshttp.NewClient(cmshttp.WithLogger(logger), cmshttp.WithDebug(true))

		_, err := client.Do(context.Background(), &cmshttp.Request{Method: "GET", URL: server.URL})
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "cmsctl/test", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cmshttp.NewClient(cmshttp.WithUserAgent("cmsctl/test"))

		resp, err := client.Do(context.Background(), &cmshttp.Request{Method: "GET", URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}
