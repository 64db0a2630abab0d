package object

import (
	"fmt"
	"math/big"
	"reflect"
)

// Value is an opaque runtime value.
type Value = any

// Indexable is an object supporting indexed lookup. GetItem must return an
// error carrying errors.ErrCodeIndexOutOfRange when index is past the end.
type Indexable interface {
	GetItem(index int) (Value, error)
}

// Sized is an object that can report its length.
type Sized interface {
	Len() int
}

// Callable is a zero-argument invocable.
type Callable interface {
	Call() (Value, error)
}

// CallableFunc adapts a plain function to Callable.
type CallableFunc func() (Value, error)

// Call invokes f.
func (f CallableFunc) Call() (Value, error) { return f() }

// Equaler is implemented by values with their own equality semantics.
type Equaler interface {
	Equal(other Value) (bool, error)
}

// Equal reports whether a and b are equal.
//
// An Equaler on either side decides first (a before b). Big integers compare
// by value. Otherwise values are equal when Go's == holds, which is only
// attempted when both dynamic types are comparable.
func Equal(a, b Value) (bool, error) {
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	if eq, ok := b.(Equaler); ok {
		return eq.Equal(a)
	}
	if ai, ok := a.(*big.Int); ok {
		if bi, ok := b.(*big.Int); ok {
			if ai == nil || bi == nil {
				return ai == bi, nil
			}
			return ai.Cmp(bi) == 0, nil
		}
		return false, nil
	}
	if a == nil || b == nil {
		return a == nil && b == nil, nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false, nil
	}
	return a == b, nil
}

// TypeName returns a short name for v's dynamic type, used in error messages.
func TypeName(v Value) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
