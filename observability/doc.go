// Package observability provides OpenTelemetry metrics and tracing for the
// runtime core.
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("vmcore"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("vmcore"))
//	it := iterator.Iter(list, iterator.WithMetrics(metrics))
//	eng, err := random.New(random.WithMetrics(metrics))
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("vmcore"))
//	defer tp.Shutdown(ctx)
//
// The random engine opens a span around host entropy reads, the only
// operation in the core that may block.
package observability
