package iterator

import (
	"sync/atomic"

	"github.com/kbukum/vmcore/errors"
	"github.com/kbukum/vmcore/object"
)

const kindCallable = "callable"

// CallableIterator calls a function until it returns the sentinel.
type CallableIterator struct {
	callable object.Callable
	sentinel object.Value
	done     atomic.Bool
	opts     options
}

// NewCallable returns an iterator over the results of callable, ending at the
// first result equal to sentinel.
func NewCallable(callable object.Callable, sentinel object.Value, opts ...Option) *CallableIterator {
	return &CallableIterator{
		callable: callable,
		sentinel: sentinel,
		opts:     buildOptions(opts),
	}
}

// Next invokes the callable once unless the sentinel has already been seen.
// Errors from the callable or from the equality check pass through and do
// not end the iteration.
func (c *CallableIterator) Next() (object.Value, error) {
	v, err := c.advance()
	recordAdvance(c.opts.metrics, kindCallable, err)
	return v, err
}

func (c *CallableIterator) advance() (object.Value, error) {
	if c.done.Load() {
		return nil, errors.StopIteration()
	}

	v, err := c.callable.Call()
	if err != nil {
		return nil, err
	}

	eq, err := object.Equal(v, c.sentinel)
	if err != nil {
		return nil, err
	}
	if eq {
		c.done.Store(true)
		return nil, errors.StopIteration()
	}
	return v, nil
}

// Iter returns c.
func (c *CallableIterator) Iter() Iterator { return c }

// Done reports whether the sentinel has been seen.
func (c *CallableIterator) Done() bool { return c.done.Load() }
