package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{name: "defaults", cfg: DefaultLogConfig()},
		{name: "console", cfg: LogConfig{Level: "debug", Format: "console", Output: "stderr"}},
		{name: "empty level", cfg: LogConfig{}},
		{name: "with service", cfg: LogConfig{Level: "warn", Service: "avanegotiate"}},
		{name: "invalid level", cfg: LogConfig{Level: "shout"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestLogger_WithContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = trace.ContextWithSpanContext(ctx, sc)

	logger.WithContext(ctx).Info("decoded", String("content_type", "application/json"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
	assert.Equal(t, "application/json", fields["content_type"])
}

func TestLogger_WithContextWithoutFields(t *testing.T) {
	logger := NopLogger()
	assert.Same(t, logger, logger.WithContext(context.Background()))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
	ctx := ContextWithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
}

func TestGlobalLogger(t *testing.T) {
	SetGlobalLogger(nil)
	assert.NotNil(t, GetGlobalLogger())

	l := NopLogger()
	SetGlobalLogger(l)
	t.Cleanup(func() { SetGlobalLogger(nil) })
	assert.Same(t, l, GetGlobalLogger())
}

func TestMetrics_RecordRequest(t *testing.T) {
	m := NewMetrics("test")
	m.RecordRequest(http.MethodPost, "/v1/echo", http.StatusOK, 5*time.Millisecond, 42, "application/cbor")
	m.RecordRequest(http.MethodPost, "/v1/echo", http.StatusOK, time.Millisecond, 10, "application/json")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("POST", "/v1/echo", "200")))
	assert.Equal(t, "test", m.Namespace())
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("")
	m.SetBuildInfo("dev", "abc", "now")
	m.RecordRequest(http.MethodGet, "/v1/formats", http.StatusOK, time.Millisecond, 12, "application/json")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "negotiator_requests_total")
	assert.Contains(t, rec.Body.String(), "negotiator_build_info")
	assert.NotNil(t, m.Registry())
}

func TestNewTracer_Disabled(t *testing.T) {
	tracer, err := NewTracer(TracerConfig{ServiceName: "test"})
	require.NoError(t, err)

	assert.False(t, tracer.Enabled())
	assert.NotNil(t, tracer.Tracer())
	assert.NotNil(t, tracer.Provider())

	ctx, span := tracer.StartSpan(context.Background(), "op")
	span.End()
	assert.NotNil(t, ctx)
	assert.NoError(t, tracer.Shutdown(context.Background()))
}

func TestNewTracer_EnabledWithoutExporter(t *testing.T) {
	tracer, err := NewTracer(TracerConfig{ServiceName: "test", Enabled: true, SamplingRate: 1})
	require.NoError(t, err)
	assert.True(t, tracer.Enabled())
	assert.NotNil(t, tracer.Provider())

	ctx, span := tracer.StartSpan(context.Background(), "op")
	span.End()

	fields := extractContextFields(ctx)
	assert.Len(t, fields, 2)
	assert.NoError(t, tracer.Shutdown(context.Background()))
}

func TestCreateSampler(t *testing.T) {
	assert.Contains(t, createSampler(1).Description(), "AlwaysOn")
	assert.Contains(t, createSampler(0).Description(), "AlwaysOff")
	assert.Contains(t, createSampler(0.5).Description(), "TraceIDRatioBased")
}
