package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected Environment 'development', got %s", cfg.Environment)
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource("svc", "test")
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	got := map[attribute.Key]string{}
	for _, kv := range res.Attributes() {
		got[kv.Key] = kv.Value.Emit()
	}
	if got["service.name"] != "svc" {
		t.Errorf("expected service.name 'svc', got %q", got["service.name"])
	}
	if got["environment"] != "test" {
		t.Errorf("expected environment 'test', got %q", got["environment"])
	}
}

func TestNewMetricsWithNoopMeter(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	ctx := context.Background()
	m.RecordAdvance(ctx, "sequence", OutcomeValue)
	m.RecordDraw(ctx, "mt19937", "float64", 2)
	m.RecordReseed(ctx, "mt19937")
	m.RecordEntropyRead(ctx, time.Millisecond, true)
}

func TestNilMetricsRecordNothing(t *testing.T) {
	var m *Metrics
	ctx := context.Background()

	m.RecordAdvance(ctx, "callable", OutcomeExhausted)
	m.RecordDraw(ctx, "general", "bits", 4)
	m.RecordReseed(ctx, "general")
	m.RecordEntropyRead(ctx, time.Millisecond, false)
}

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					totals[m.Name] += dp.Value
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					totals[m.Name] += int64(dp.Count)
				}
			}
		}
	}
	return totals
}

func TestMetricsRecorded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	m, err := NewMetrics(provider.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		m.RecordAdvance(ctx, "sequence", OutcomeValue)
	}
	m.RecordAdvance(ctx, "sequence", OutcomeExhausted)
	m.RecordDraw(ctx, "mt19937", "float64", 2)
	m.RecordDraw(ctx, "mt19937", "bits", 5)
	m.RecordReseed(ctx, "mt19937")
	m.RecordEntropyRead(ctx, 2*time.Millisecond, true)

	totals := collectSums(t, reader)
	tests := []struct {
		metric string
		want   int64
	}{
		{MetricIteratorAdvance, 4},
		{MetricRandomDraw, 2},
		{MetricRandomWords, 7},
		{MetricRandomReseed, 1},
		{MetricEntropyDuration, 1},
	}
	for _, tc := range tests {
		t.Run(tc.metric, func(t *testing.T) {
			if totals[tc.metric] != tc.want {
				t.Errorf("expected %d, got %d", tc.want, totals[tc.metric])
			}
		})
	}
}

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func TestStartSpan(t *testing.T) {
	recorder := setupTestTracer(t)

	_, span := StartSpan(context.Background(), SpanEntropyRead)
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != SpanEntropyRead {
		t.Errorf("expected span name %q, got %q", SpanEntropyRead, spans[0].Name())
	}
	if spans[0].InstrumentationScope().Name != defaultTracerName {
		t.Errorf("expected tracer %q, got %q", defaultTracerName, spans[0].InstrumentationScope().Name)
	}
}

func TestSetSpanError(t *testing.T) {
	recorder := setupTestTracer(t)

	_, span := StartSpan(context.Background(), "failing")
	SetSpanError(span, fmt.Errorf("boom"))
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status().Code)
	}
	if spans[0].Status().Description != "boom" {
		t.Errorf("expected description 'boom', got %q", spans[0].Status().Description)
	}
	if len(spans[0].Events()) == 0 {
		t.Error("expected the error to be recorded as an event")
	}
}

func TestSetSpanErrorIgnoresNil(t *testing.T) {
	recorder := setupTestTracer(t)

	_, span := StartSpan(context.Background(), "ok")
	SetSpanError(span, nil)
	SetSpanError(nil, fmt.Errorf("no span"))
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 || spans[0].Status().Code != codes.Unset {
		t.Errorf("expected one span with unset status")
	}
}
