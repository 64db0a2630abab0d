package random

import (
	"context"
	"io"

	"github.com/kbukum/vmcore/logger"
	"github.com/kbukum/vmcore/observability"
)

// MaxBits is the largest k accepted by Engine.Bits.
const MaxBits = 1 << 24

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics records draws and reseeds on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithMaxBits lowers the largest k accepted by Bits. Values outside
// (0, MaxBits] are ignored.
func WithMaxBits(n int) Option {
	return func(e *Engine) {
		if n > 0 && n <= MaxBits {
			e.maxBits = n
		}
	}
}

// WithEntropy replaces the host entropy source used for GeneralPurpose seeding.
func WithEntropy(r io.Reader) Option {
	return func(e *Engine) { e.entropy = r }
}

// WithContext sets the context used for telemetry around entropy reads.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) {
		if ctx != nil {
			e.ctx = ctx
		}
	}
}
