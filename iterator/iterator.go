package iterator

import (
	"context"
	"iter"

	"github.com/kbukum/vmcore/errors"
	"github.com/kbukum/vmcore/object"
	"github.com/kbukum/vmcore/observability"
)

// Iterator is the advance protocol shared by both adapters.
type Iterator interface {
	// Next returns the next value, or an error satisfying
	// errors.IsStopIteration when the iterator is exhausted.
	Next() (object.Value, error)
	// Iter returns the iterator itself; an iterator is its own iterable.
	Iter() Iterator
}

// LengthHinter is implemented by iterators that can estimate how many values remain.
type LengthHinter interface {
	LengthHint() (int, error)
}

// Option configures an iterator.
type Option func(*options)

type options struct {
	metrics *observability.Metrics
}

// WithMetrics records every advance on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func recordAdvance(m *observability.Metrics, kind string, err error) {
	if m == nil {
		return
	}
	outcome := observability.OutcomeValue
	switch {
	case err == nil:
	case errors.IsStopIteration(err):
		outcome = observability.OutcomeExhausted
	default:
		outcome = observability.OutcomeError
	}
	m.RecordAdvance(context.Background(), kind, outcome)
}

// LengthHint returns the remaining-length estimate, or def when it cannot
// estimate. Negative estimates are reported as 0.
func LengthHint(it Iterator, def int) int {
	h, ok := it.(LengthHinter)
	if !ok {
		return def
	}
	n, err := h.LengthHint()
	if err != nil {
		return def
	}
	return max(n, 0)
}

// Collect drains it into a slice. Exhaustion ends the loop; any other error
// is returned together with the values collected so far.
func Collect(it Iterator) ([]object.Value, error) {
	var out []object.Value
	if n := LengthHint(it, 0); n > 0 {
		out = make([]object.Value, 0, n)
	}
	for {
		v, err := it.Next()
		if err != nil {
			if errors.IsStopIteration(err) {
				return out, nil
			}
			return out, err
		}
		out = append(out, v)
	}
}

// ForEach calls fn for every value until it is exhausted or fn fails.
func ForEach(it Iterator, fn func(object.Value) error) error {
	for {
		v, err := it.Next()
		if err != nil {
			if errors.IsStopIteration(err) {
				return nil
			}
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

// All returns a range-over-func sequence over it. A failure is yielded once
// as (nil, err) and ends the sequence; exhaustion ends it silently.
func All(it Iterator) iter.Seq2[object.Value, error] {
	return func(yield func(object.Value, error) bool) {
		for {
			v, err := it.Next()
			if err != nil {
				if !errors.IsStopIteration(err) {
					yield(nil, err)
				}
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Puller adapts an Iterator to the pull protocol Next(ctx) (value, ok, err)
// used by streaming consumers.
type Puller struct {
	it Iterator
}

// Pull wraps it for context-aware pulling.
func Pull(it Iterator) *Puller {
	return &Puller{it: it}
}

// Next returns (value, true, nil) for each value and (nil, false, nil) once
// exhausted. A cancelled context is checked before advancing.
func (p *Puller) Next(ctx context.Context) (object.Value, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	v, err := p.it.Next()
	if err != nil {
		if errors.IsStopIteration(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, true, nil
}

// Close releases nothing; iterators hold no resources.
func (p *Puller) Close() error { return nil }
