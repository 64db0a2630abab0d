package iterator

import (
	"sync/atomic"

	"github.com/kbukum/vmcore/errors"
	"github.com/kbukum/vmcore/object"
)

// Direction is the fixed walking order of a SequenceIterator.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}

const kindSequence = "sequence"

// SequenceIterator iterates an Indexable by position.
type SequenceIterator struct {
	position  atomic.Int64
	subject   object.Indexable
	direction Direction
	opts      options
}

// Iter returns a forward iterator over subject starting at index 0.
func Iter(subject object.Indexable, opts ...Option) *SequenceIterator {
	return newSequence(subject, Forward, 0, opts)
}

// NewReversed returns a reverse iterator over subject starting at length-1.
func NewReversed(subject object.Indexable, length int, opts ...Option) *SequenceIterator {
	return newSequence(subject, Reverse, int64(length)-1, opts)
}

// Reversed returns a reverse iterator over a subject that reports its length.
func Reversed(subject object.Indexable, opts ...Option) (*SequenceIterator, error) {
	sized, ok := subject.(object.Sized)
	if !ok {
		return nil, errors.LengthUnavailable(object.TypeName(subject))
	}
	return NewReversed(subject, sized.Len(), opts...), nil
}

func newSequence(subject object.Indexable, dir Direction, start int64, opts []Option) *SequenceIterator {
	s := &SequenceIterator{
		subject:   subject,
		direction: dir,
		opts:      buildOptions(opts),
	}
	s.position.Store(start)
	return s
}

// Next claims the next position and looks it up on the subject.
//
// An out-of-range lookup becomes end of iteration; any other lookup error is
// returned unchanged. Reverse iteration never looks up a negative index.
func (s *SequenceIterator) Next() (object.Value, error) {
	v, err := s.advance()
	recordAdvance(s.opts.metrics, kindSequence, err)
	return v, err
}

func (s *SequenceIterator) advance() (object.Value, error) {
	step := int64(1)
	if s.direction == Reverse {
		step = -1
	}
	pos := s.position.Add(step) - step
	if pos < 0 {
		return nil, errors.StopIteration()
	}

	v, err := s.subject.GetItem(int(pos))
	if err != nil && errors.IsIndexOutOfRange(err) {
		return nil, errors.StopIteration()
	}
	return v, err
}

// Iter returns s.
func (s *SequenceIterator) Iter() Iterator { return s }

// Direction returns the walking order fixed at construction.
func (s *SequenceIterator) Direction() Direction { return s.direction }

// LengthHint estimates how many values remain. It is a hint only: a subject
// mutated concurrently can make it wrong, and it may be negative once the
// cursor has run past the end.
func (s *SequenceIterator) LengthHint() (int, error) {
	pos := s.position.Load()
	if s.direction == Reverse {
		return int(pos + 1), nil
	}
	sized, ok := s.subject.(object.Sized)
	if !ok {
		return 0, errors.LengthUnavailable(object.TypeName(s.subject))
	}
	return int(int64(sized.Len()) - pos), nil
}
