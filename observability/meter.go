package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/vmcore/logger"
)

// Advance outcomes.
const (
	OutcomeValue     = "value"
	OutcomeExhausted = "exhausted"
	OutcomeError     = "error"
)

// Metric names.
const (
	MetricIteratorAdvance = "iterator.advance.total"
	MetricRandomDraw      = "random.draw.total"
	MetricRandomWords     = "random.words.total"
	MetricRandomReseed    = "random.reseed.total"
	MetricEntropyDuration = "random.entropy.duration"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the embedding service.
	ServiceName string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName: serviceName,
		Environment: "development",
		Endpoint:    "localhost:4318",
		Insecure:    true,
		Interval:    15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.WithComponent("observability").Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded by iterators and random engines.
// A nil *Metrics records nothing.
type Metrics struct {
	advanceTotal    metric.Int64Counter
	drawTotal       metric.Int64Counter
	wordsTotal      metric.Int64Counter
	reseedTotal     metric.Int64Counter
	entropyDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	advanceTotal, err := meter.Int64Counter(MetricIteratorAdvance,
		metric.WithDescription("Iterator advances by iterator kind and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricIteratorAdvance, err)
	}

	drawTotal, err := meter.Int64Counter(MetricRandomDraw,
		metric.WithDescription("Random draws by algorithm and method"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRandomDraw, err)
	}

	wordsTotal, err := meter.Int64Counter(MetricRandomWords,
		metric.WithDescription("32-bit words consumed from random engines"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRandomWords, err)
	}

	reseedTotal, err := meter.Int64Counter(MetricRandomReseed,
		metric.WithDescription("Random engine reseeds by algorithm"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRandomReseed, err)
	}

	entropyDuration, err := meter.Float64Histogram(MetricEntropyDuration,
		metric.WithDescription("Duration of host entropy reads in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricEntropyDuration, err)
	}

	return &Metrics{
		advanceTotal:    advanceTotal,
		drawTotal:       drawTotal,
		wordsTotal:      wordsTotal,
		reseedTotal:     reseedTotal,
		entropyDuration: entropyDuration,
	}, nil
}

// RecordAdvance records one iterator advance.
func (m *Metrics) RecordAdvance(ctx context.Context, kind, outcome string) {
	if m == nil {
		return
	}
	m.advanceTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

// RecordDraw records one draw and the number of words it consumed.
func (m *Metrics) RecordDraw(ctx context.Context, algorithm, method string, words int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.String("method", method),
	)
	m.drawTotal.Add(ctx, 1, attrs)
	m.wordsTotal.Add(ctx, int64(words), metric.WithAttributes(
		attribute.String("algorithm", algorithm),
	))
}

// RecordReseed records an engine reseed.
func (m *Metrics) RecordReseed(ctx context.Context, algorithm string) {
	if m == nil {
		return
	}
	m.reseedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("algorithm", algorithm),
	))
}

// RecordEntropyRead records how long a host entropy read took.
func (m *Metrics) RecordEntropyRead(ctx context.Context, duration time.Duration, ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	m.entropyDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("status", status),
	))
}
