package automation

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *WireRequest) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *WireRequest, resp *RawResponse) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// Len returns the number of registered interceptors.
func (c *InterceptorChain) Len() int {
	return len(c.requestInterceptors) + len(c.responseInterceptors)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *WireRequest) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *WireRequest, resp *RawResponse) error {
	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// Common Interceptors

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *WireRequest) error {
		logger.Debug("API Request", map[string]interface{}{
			"operation": req.Operation,
			"method":    req.Method,
			"url":       req.URL,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *WireRequest, resp *RawResponse) error {
		fields := map[string]interface{}{
			"operation":   req.Operation,
			"method":      req.Method,
			"url":         req.URL,
			"status_code": resp.StatusCode,
		}

		if resp.Error != nil {
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *WireRequest) error {
		if req.Headers == nil {
			req.Headers = make(map[string][]string)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// RateLimiter is a token bucket refilled at a fixed rate by a background
// goroutine. Call Stop to release the goroutine.
type RateLimiter struct {
	bucket   chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows requestsPerSecond requests per second with bursts of
// the same size. Values below one are treated as one.
func NewRateLimiter(requestsPerSecond int) *RateLimiter {
	requestsPerSecond = max(requestsPerSecond, 1)

	limiter := &RateLimiter{
		bucket: make(chan struct{}, requestsPerSecond),
		stop:   make(chan struct{}),
	}

	for range requestsPerSecond {
		limiter.bucket <- struct{}{}
	}

	go limiter.refill(time.Second / time.Duration(requestsPerSecond))

	return limiter
}

func (l *RateLimiter) refill(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case l.bucket <- struct{}{}:
			default:
			}
		case <-l.stop:
			return
		}
	}
}

// Wait takes a token, blocking until one is available, ctx is done or the
// limiter is stopped.
func (l *RateLimiter) Wait(ctx context.Context) error {
	select {
	case <-l.stop:
		return ErrRateLimiterStopped
	default:
	}

	select {
	case <-l.bucket:
		return nil
	case <-l.stop:
		return ErrRateLimiterStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop ends the refill goroutine. Pending and later Wait calls fail with
// ErrRateLimiterStopped. Stop may be called more than once.
func (l *RateLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// RateLimitInterceptor holds every request until limiter hands out a token.
func RateLimitInterceptor(limiter *RateLimiter) RequestInterceptor {
	return func(ctx context.Context, req *WireRequest) error {
		return limiter.Wait(ctx)
	}
}

// Metrics holds counters for one operation.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector collects per-operation API metrics. It is safe for
// concurrent use.
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[string]*Metrics
	onChange func(endpoint string, metrics Metrics)
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metrics),
	}
}

// SetOnChange sets a callback for when metrics change. The callback receives a copy.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a copy of the metrics for an endpoint.
func (m *MetricsCollector) GetMetrics(endpoint string) (Metrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if metrics, ok := m.metrics[endpoint]; ok {
		return *metrics, true
	}

	return Metrics{}, false
}

// Endpoints returns the keys with recorded metrics.
func (m *MetricsCollector) Endpoints() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.metrics))
	for key := range m.metrics {
		keys = append(keys, key)
	}

	return keys
}

func (m *MetricsCollector) record(endpoint string, start time.Time, failed bool) {
	m.mu.Lock()

	metrics, ok := m.metrics[endpoint]
	if !ok {
		metrics = &Metrics{}
		m.metrics[endpoint] = metrics
	}

	metrics.TotalRequests++
	metrics.LastRequestTime = time.Now()

	if !start.IsZero() {
		metrics.TotalLatency += time.Since(start)
		metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
	}

	if failed {
		metrics.TotalErrors++
	}

	snapshot := *metrics
	onChange := m.onChange

	m.mu.Unlock()

	if onChange != nil {
		onChange(endpoint, snapshot)
	}
}

const metadataStartTime = "start_time"

// MetricsRequestInterceptor records request start time.
func MetricsRequestInterceptor(collector *MetricsCollector) RequestInterceptor {
	return func(ctx context.Context, req *WireRequest) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metadataStartTime] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records response metrics keyed by "<method> <operation>".
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *WireRequest, resp *RawResponse) error {
		name := req.Operation
		if name == "" {
			name = req.URL
		}

		var start time.Time
		if req.Metadata != nil {
			start, _ = req.Metadata[metadataStartTime].(time.Time)
		}

		failed := resp.Error != nil || resp.StatusCode >= 400

		collector.record(fmt.Sprintf("%s %s", req.Method, name), start, failed)

		return nil
	}
}
