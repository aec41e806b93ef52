package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	automationhttp "github.com/fivetwenty-io/azure-automation/internal/http"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var errTokenUnavailable = errors.New("token unavailable")

// MockTokenManager for testing.
type MockTokenManager struct {
	token string
	err   error
	calls atomic.Int32
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	m.calls.Add(1)

	return m.token, m.err
}

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }

func (l *MockLogger) Info(msg string, fields map[string]interface{}) { l.add("info", msg, fields) }

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) { l.add("warn", msg, fields) }

func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		msg, _ := entry["msg"].(string)
		out = append(out, msg)
	}

	return out
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Execute(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/subscriptions/sub/providers/Microsoft.Automation/automationAccounts", request.URL.Path)
			assert.Equal(t, "api-version=2020-01-13-preview", request.URL.RawQuery)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "azure-automation-go", request.Header.Get("User-Agent"))

			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"value":[]}`))
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{token: "test-token"}
		client := automationhttp.NewClient(server.URL, tokenManager)

		resp, err := client.Execute(context.Background(), &automation.WireRequest{
			Operation: "AutomationAccounts.List",
			Method:    http.MethodGet,
			URL:       "/subscriptions/sub/providers/Microsoft.Automation/automationAccounts?api-version=2020-01-13-preview",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"value":[]}`, string(resp.Body))
		require.NotNil(t, resp.HTTPResponse)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	})

	t.Run("absolute URL is sent verbatim", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/next", request.URL.Path)
			assert.Equal(t, "api-version=2019-06-01&$skiptoken=abc", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := automationhttp.NewClient("https://management.invalid", nil)

		_, err := client.Execute(context.Background(), &automation.WireRequest{
			Method: http.MethodGet,
			URL:    server.URL + "/next?api-version=2019-06-01&$skiptoken=abc",
		})
		require.NoError(t, err)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPut, request.Method)
			assert.Equal(t, "text/powershell", request.Header.Get("Content-Type"))
			assert.Equal(t, "abc-123", request.Header.Get("x-ms-client-request-id"))

			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)
			assert.Equal(t, "Write-Output hello", string(body))

			writer.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, nil)

		headers := http.Header{}
		headers.Set("x-ms-client-request-id", "abc-123")

		resp, err := client.Execute(context.Background(), &automation.WireRequest{
			Method:      http.MethodPut,
			URL:         "/draft/content",
			Headers:     headers,
			Body:        []byte("Write-Output hello"),
			ContentType: "text/powershell",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		assert.Empty(t, resp.Body)
	})

	t.Run("request without body sends zero content length", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, int64(0), request.ContentLength)
			assert.Empty(t, request.TransferEncoding)
			assert.Empty(t, request.Header.Get("Content-Type"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, nil)

		_, err := client.Execute(context.Background(), &automation.WireRequest{
			Method: http.MethodPost,
			URL:    "/jobs/job/stop",
		})
		require.NoError(t, err)
	})

	t.Run("accept override", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "text/powershell", request.Header.Get("Accept"))
			_, _ = writer.Write([]byte("Write-Output hello"))
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, nil)

		resp, err := client.Execute(context.Background(), &automation.WireRequest{
			Method: http.MethodGet,
			URL:    "/runbooks/r/content",
			Accept: "text/powershell",
		})
		require.NoError(t, err)
		assert.Equal(t, "Write-Output hello", string(resp.Body))
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"code":"ResourceNotFound","message":"missing"}`))
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, nil)

		resp, err := client.Execute(context.Background(), &automation.WireRequest{
			Method: http.MethodGet,
			URL:    "/runbooks/missing",
		})
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.True(t, automation.IsNotFound(err))

		var respErr *automation.ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, http.MethodGet, respErr.Method)
		assert.Equal(t, server.URL+"/runbooks/missing", respErr.URL)
		assert.JSONEq(t, `{"code":"ResourceNotFound","message":"missing"}`, string(respErr.Body))
	})

	t.Run("token error", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			hits.Add(1)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, &MockTokenManager{err: errTokenUnavailable})

		resp, err := client.Execute(context.Background(), &automation.WireRequest{Method: http.MethodGet, URL: "/"})
		require.ErrorIs(t, err, errTokenUnavailable)
		assert.Nil(t, resp)
		assert.Equal(t, int32(0), hits.Load())
	})

	t.Run("token is requested for every call", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{token: "t"}
		client := automationhttp.NewClient(server.URL, tokenManager)

		for range 3 {
			_, err := client.Execute(context.Background(), &automation.WireRequest{Method: http.MethodGet, URL: "/"})
			require.NoError(t, err)
		}

		assert.Equal(t, int32(3), tokenManager.calls.Load())
	})
}

func TestClient_WithOptions(t *testing.T) {
	t.Parallel()

	t.Run("with logger and debug", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := automationhttp.NewClient(server.URL, nil,
			automationhttp.WithLogger(logger),
			automationhttp.WithDebug(true),
		)

		_, err := client.Execute(context.Background(), &automation.WireRequest{
			Operation: "Runbooks.Get",
			Method:    http.MethodGet,
			URL:       "/runbooks/r",
		})
		require.NoError(t, err)

		messages := logger.messages()
		assert.Contains(t, messages, "HTTP Request")
		assert.Contains(t, messages, "HTTP Response")
	})

	t.Run("with user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "my-tool/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, nil, automationhttp.WithUserAgent("my-tool/1.0"))

		_, err := client.Execute(context.Background(), &automation.WireRequest{Method: http.MethodGet, URL: "/"})
		require.NoError(t, err)
	})

	t.Run("with interceptors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "value", request.Header.Get("X-Custom"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		collector := automation.NewMetricsCollector()
		chain := automation.NewInterceptorChain()
		chain.AddRequestInterceptor(automation.HeaderInterceptor(map[string]string{"X-Custom": "value"}))
		chain.AddRequestInterceptor(automation.MetricsRequestInterceptor(collector))
		chain.AddResponseInterceptor(automation.MetricsResponseInterceptor(collector))

		client := automationhttp.NewClient(server.URL, nil, automationhttp.WithInterceptors(chain))

		_, err := client.Execute(context.Background(), &automation.WireRequest{
			Operation: "Runbooks.Get",
			Method:    http.MethodGet,
			URL:       "/runbooks/r",
		})
		require.NoError(t, err)

		metrics, ok := collector.GetMetrics("GET Runbooks.Get")
		require.True(t, ok)
		assert.Equal(t, int64(1), metrics.TotalRequests)
	})

	t.Run("with timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, nil,
			automationhttp.WithHTTPClient(&http.Client{}),
			automationhttp.WithTimeout(20*time.Millisecond),
			automationhttp.WithRetryConfig(1, time.Millisecond, time.Millisecond),
		)

		_, err := client.Execute(context.Background(), &automation.WireRequest{Method: http.MethodGet, URL: "/"})
		require.Error(t, err)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	t.Run("retries on server errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, nil,
			automationhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond),
		)

		resp, err := client.Execute(context.Background(), &automation.WireRequest{Method: http.MethodGet, URL: "/"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("retries on rate limit", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) == 1 {
				writer.WriteHeader(http.StatusTooManyRequests)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, nil,
			automationhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond),
		)

		_, err := client.Execute(context.Background(), &automation.WireRequest{Method: http.MethodGet, URL: "/"})
		require.NoError(t, err)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, nil,
			automationhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond),
		)

		resp, err := client.Execute(context.Background(), &automation.WireRequest{Method: http.MethodGet, URL: "/"})
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("exhausted retries surface the last status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := automationhttp.NewClient(server.URL, nil,
			automationhttp.WithRetryConfig(1, time.Millisecond, 5*time.Millisecond),
		)

		_, err := client.Execute(context.Background(), &automation.WireRequest{Method: http.MethodGet, URL: "/"})
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, automation.StatusCodeOf(err))
	})
}
