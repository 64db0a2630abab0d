package object

import (
	"sync"

	"github.com/kbukum/vmcore/errors"
)

// List is a growable sequence safe for concurrent use.
type List struct {
	mu    sync.RWMutex
	items []Value
}

// NewList creates a List holding a copy of items.
func NewList(items ...Value) *List {
	return &List{items: append([]Value(nil), items...)}
}

// GetItem returns the item at index or an IndexOutOfRange error.
func (l *List) GetItem(index int) (Value, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.items) {
		return nil, errors.IndexOutOfRange(index, len(l.items))
	}
	return l.items[index], nil
}

// SetItem replaces the item at index.
func (l *List) SetItem(index int, v Value) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.items) {
		return errors.IndexOutOfRange(index, len(l.items))
	}
	l.items[index] = v
	return nil
}

// Append adds values to the end of the list.
func (l *List) Append(vs ...Value) {
	l.mu.Lock()
	l.items = append(l.items, vs...)
	l.mu.Unlock()
}

// Truncate drops every item at or past n.
func (l *List) Truncate(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n < len(l.items) {
		clear(l.items[n:])
		l.items = l.items[:n]
	}
}

// Len returns the current length.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Items returns a snapshot copy of the list contents.
func (l *List) Items() []Value {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Value(nil), l.items...)
}
