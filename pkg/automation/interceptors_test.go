package automation_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var errRejected = errors.New("rejected")

type recordingLogger struct {
	automation.NoopLogger

	debug []string
	errs  []string
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.debug = append(l.debug, msg) }

func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.errs = append(l.errs, msg) }

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := automation.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *automation.WireRequest) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *automation.WireRequest) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	req := &automation.WireRequest{Method: http.MethodGet, URL: "/test"}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
	assert.Equal(t, 2, chain.Len())
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := automation.NewInterceptorChain()
	called := false

	chain.AddRequestInterceptor(func(context.Context, *automation.WireRequest) error { return errRejected })
	chain.AddRequestInterceptor(func(context.Context, *automation.WireRequest) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &automation.WireRequest{})
	require.ErrorIs(t, err, errRejected)
	assert.False(t, called)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := automation.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *automation.WireRequest, resp *automation.RawResponse) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *automation.WireRequest, resp *automation.RawResponse) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	err := chain.ExecuteResponseInterceptors(ctx, &automation.WireRequest{}, &automation.RawResponse{StatusCode: http.StatusOK})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Request-ID":    "123456",
	}

	interceptor := automation.HeaderInterceptor(headers)
	req := &automation.WireRequest{Method: http.MethodGet, URL: "/test"}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "123456", req.Headers.Get("X-Request-ID"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &automation.WireRequest{Operation: "Jobs.Get", Method: http.MethodGet, URL: "/jobs/j"}

	require.NoError(t, automation.LoggingInterceptor(logger)(context.Background(), req))
	require.NoError(t, automation.LoggingResponseInterceptor(logger)(context.Background(), req, &automation.RawResponse{StatusCode: http.StatusOK}))
	require.NoError(t, automation.LoggingResponseInterceptor(logger)(context.Background(), req, &automation.RawResponse{
		StatusCode: http.StatusNotFound,
		Error:      &automation.ResponseError{StatusCode: http.StatusNotFound},
	}))

	assert.Equal(t, []string{"API Request", "API Response"}, logger.debug)
	assert.Equal(t, []string{"API Response Error"}, logger.errs)
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := automation.NewMetricsCollector()

	var (
		notifiedEndpoint string
		notifiedMetrics  automation.Metrics
	)

	collector.SetOnChange(func(endpoint string, metrics automation.Metrics) {
		notifiedEndpoint = endpoint
		notifiedMetrics = metrics
	})

	requestInterceptor := automation.MetricsRequestInterceptor(collector)
	responseInterceptor := automation.MetricsResponseInterceptor(collector)

	ctx := context.Background()
	req := &automation.WireRequest{Operation: "Runbooks.ListByAutomationAccount", Method: http.MethodGet}

	err := requestInterceptor(ctx, req)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	err = responseInterceptor(ctx, req, &automation.RawResponse{StatusCode: http.StatusOK})
	require.NoError(t, err)

	assert.Equal(t, "GET Runbooks.ListByAutomationAccount", notifiedEndpoint)
	assert.Equal(t, int64(1), notifiedMetrics.TotalRequests)
	assert.Equal(t, int64(0), notifiedMetrics.TotalErrors)
	assert.Positive(t, notifiedMetrics.AverageLatency)

	// A request that never passed the request interceptor has no start time.
	req2 := &automation.WireRequest{Operation: "Runbooks.ListByAutomationAccount", Method: http.MethodGet}

	err = responseInterceptor(ctx, req2, &automation.RawResponse{StatusCode: http.StatusInternalServerError})
	require.NoError(t, err)

	metrics, ok := collector.GetMetrics("GET Runbooks.ListByAutomationAccount")
	require.True(t, ok)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Equal(t, []string{"GET Runbooks.ListByAutomationAccount"}, collector.Endpoints())

	_, ok = collector.GetMetrics("GET Unknown")
	assert.False(t, ok)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRateLimiter(t *testing.T) {
	t.Parallel()

	t.Run("burst then wait for ctx", func(t *testing.T) {
		t.Parallel()

		limiter := automation.NewRateLimiter(1)
		t.Cleanup(limiter.Stop)

		require.NoError(t, limiter.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		require.ErrorIs(t, limiter.Wait(ctx), context.DeadlineExceeded)
	})

	t.Run("refills", func(t *testing.T) {
		t.Parallel()

		limiter := automation.NewRateLimiter(50)
		t.Cleanup(limiter.Stop)

		for range 50 {
			require.NoError(t, limiter.Wait(context.Background()))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		require.NoError(t, limiter.Wait(ctx))
	})

	t.Run("stop releases waiters", func(t *testing.T) {
		t.Parallel()

		limiter := automation.NewRateLimiter(0)
		require.NoError(t, limiter.Wait(context.Background()))

		errs := make(chan error, 1)

		go func() {
			errs <- limiter.Wait(context.Background())
		}()

		limiter.Stop()
		limiter.Stop()

		select {
		case err := <-errs:
			require.ErrorIs(t, err, automation.ErrRateLimiterStopped)
		case <-time.After(2 * time.Second):
			t.Fatal("waiter not released by Stop")
		}

		require.ErrorIs(t, limiter.Wait(context.Background()), automation.ErrRateLimiterStopped)
	})

	t.Run("interceptor", func(t *testing.T) {
		t.Parallel()

		limiter := automation.NewRateLimiter(1)
		t.Cleanup(limiter.Stop)

		chain := automation.NewInterceptorChain()
		chain.AddRequestInterceptor(automation.RateLimitInterceptor(limiter))

		req := &automation.WireRequest{Operation: "Runbooks.Get", Method: http.MethodGet}
		require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, chain.ExecuteRequestInterceptors(ctx, req), context.Canceled)
	})
}
