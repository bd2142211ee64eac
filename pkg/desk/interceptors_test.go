package desk_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpwire-io/deskapi/pkg/desk"
)

type capturedLog struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	logs []capturedLog
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, capturedLog{"debug", msg, fields})
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, capturedLog{"info", msg, fields})
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, capturedLog{"warn", msg, fields})
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, capturedLog{"error", msg, fields})
}

func TestInterceptorChain_Order(t *testing.T) {
	chain := desk.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *desk.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *desk.Request) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &desk.Request{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	chain := desk.NewInterceptorChain()
	boom := errors.New("boom")

	chain.AddRequestInterceptor(func(ctx context.Context, req *desk.Request) error {
		return boom
	})

	reached := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *desk.Request) error {
		reached = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &desk.Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, reached)
}

func TestAuthenticationInterceptor(t *testing.T) {
	interceptor := desk.AuthenticationInterceptor(func(context.Context) (string, error) {
		return "Bearer test-token", nil
	})

	req := &desk.Request{Method: "GET", Path: "/api/v2/tags"}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", req.Headers.Get("Authorization"))
}

func TestAuthenticationInterceptor_ProviderError(t *testing.T) {
	boom := errors.New("token expired")
	interceptor := desk.AuthenticationInterceptor(func(context.Context) (string, error) {
		return "", boom
	})

	err := interceptor(context.Background(), &desk.Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestHeaderInterceptor(t *testing.T) {
	interceptor := desk.HeaderInterceptor(map[string]string{
		"X-Custom": "value",
	})

	req := &desk.Request{}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "value", req.Headers.Get("X-Custom"))
}

func TestLoggingInterceptors(t *testing.T) {
	logger := &recordingLogger{}
	req := &desk.Request{Method: "GET", Path: "/api/v2/tags"}

	err := desk.LoggingInterceptor(logger)(context.Background(), req)
	require.NoError(t, err)

	err = desk.LoggingResponseInterceptor(logger)(context.Background(), req, &desk.Response{StatusCode: 200})
	require.NoError(t, err)

	require.Len(t, logger.logs, 2)
	assert.Equal(t, "API Request", logger.logs[0].msg)
	assert.Equal(t, "API Response", logger.logs[1].msg)
	assert.Equal(t, 200, logger.logs[1].fields["status_code"])
}

func TestRateLimitResponseInterceptor_WarnsWhenLow(t *testing.T) {
	logger := &recordingLogger{}
	interceptor := desk.RateLimitResponseInterceptor(logger)

	headers := http.Header{}
	headers.Set("X-Rate-Limit-Remaining", "3")
	headers.Set("Retry-After", "60")

	err := interceptor(context.Background(), &desk.Request{}, &desk.Response{Headers: headers})
	require.NoError(t, err)
	require.Len(t, logger.logs, 1)
	assert.Equal(t, "warn", logger.logs[0].level)
	assert.Equal(t, 3, logger.logs[0].fields["remaining"])

	// Plenty of quota left, no warning
	headers.Set("X-Rate-Limit-Remaining", "400")

	err = interceptor(context.Background(), &desk.Request{}, &desk.Response{Headers: headers})
	require.NoError(t, err)
	assert.Len(t, logger.logs, 1)
}

func TestMetricsInterceptors(t *testing.T) {
	collector := desk.NewMetricsCollector()
	requestInterceptor := desk.MetricsRequestInterceptor(collector)
	responseInterceptor := desk.MetricsResponseInterceptor(collector)
	ctx := context.Background()

	req := &desk.Request{Method: "GET", Path: "/api/v2/tags"}
	require.NoError(t, requestInterceptor(ctx, req))
	require.NoError(t, responseInterceptor(ctx, req, &desk.Response{StatusCode: 200}))
	require.NoError(t, requestInterceptor(ctx, req))
	require.NoError(t, responseInterceptor(ctx, req, &desk.Response{StatusCode: 500}))

	metrics := collector.GetMetrics("GET /api/v2/tags")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.False(t, metrics.LastRequestTime.IsZero())

	assert.Nil(t, collector.GetMetrics("GET /api/v2/tickets"))
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	breaker := desk.NewCircuitBreaker(&desk.CircuitBreakerConfig{
		Threshold:        2,
		Timeout:          1 * time.Hour,
		SuccessThreshold: 1,
	})
	requestInterceptor := desk.CircuitBreakerRequestInterceptor(breaker)
	responseInterceptor := desk.CircuitBreakerResponseInterceptor(breaker)
	ctx := context.Background()

	req := &desk.Request{Method: "GET", Path: "/api/v2/tags"}
	failure := &desk.Response{StatusCode: 503}

	require.NoError(t, requestInterceptor(ctx, req))
	require.NoError(t, responseInterceptor(ctx, req, failure))
	require.NoError(t, requestInterceptor(ctx, req))
	require.NoError(t, responseInterceptor(ctx, req, failure))

	err := requestInterceptor(ctx, req)
	assert.ErrorIs(t, err, desk.ErrCircuitBreakerOpen)
}

func TestCircuitBreaker_RecoversAfterTimeout(t *testing.T) {
	breaker := desk.NewCircuitBreaker(&desk.CircuitBreakerConfig{
		Threshold:        1,
		Timeout:          1 * time.Millisecond,
		SuccessThreshold: 1,
	})
	requestInterceptor := desk.CircuitBreakerRequestInterceptor(breaker)
	responseInterceptor := desk.CircuitBreakerResponseInterceptor(breaker)
	ctx := context.Background()

	req := &desk.Request{Method: "GET", Path: "/api/v2/tags"}

	require.NoError(t, responseInterceptor(ctx, req, &desk.Response{StatusCode: 503}))
	require.Error(t, requestInterceptor(ctx, req))

	time.Sleep(5 * time.Millisecond)

	// Half-open probe succeeds and closes the circuit
	require.NoError(t, requestInterceptor(ctx, req))
	require.NoError(t, responseInterceptor(ctx, req, &desk.Response{StatusCode: 200}))
	require.NoError(t, requestInterceptor(ctx, req))
}
