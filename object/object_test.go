package object

import (
	stderrors "errors"
	"math/big"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/kbukum/vmcore/errors"
)

type caseless string

func (c caseless) Equal(other Value) (bool, error) {
	s, ok := other.(string)
	if !ok {
		return false, nil
	}
	return strings.EqualFold(s, string(c)), nil
}

type failingEq struct{}

func (failingEq) Equal(Value) (bool, error) { return false, stderrors.New("boom") }

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"ints", 3, 3, true},
		{"different ints", 3, 4, false},
		{"int vs int64", 3, int64(3), false},
		{"strings", "x", "x", true},
		{"nil nil", nil, nil, true},
		{"nil vs value", nil, 0, false},
		{"slices are never equal", []int{1}, []int{1}, false},
		{"big ints by value", big.NewInt(42), big.NewInt(42), true},
		{"big int vs int", big.NewInt(42), 42, false},
		{"equaler left", caseless("done"), "DONE", true},
		{"equaler right", "DONE", caseless("done"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Equal(tc.a, tc.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestEqualPropagatesError(t *testing.T) {
	if _, err := Equal(failingEq{}, 1); err == nil {
		t.Fatal("expected equality error to propagate")
	}
}

func TestListGetItem(t *testing.T) {
	l := NewList("a", "b")
	v, err := l.GetItem(1)
	if err != nil || v != "b" {
		t.Fatalf("GetItem(1) = %v, %v", v, err)
	}

	for _, idx := range []int{-1, 2, 10} {
		if _, err := l.GetItem(idx); !errors.IsIndexOutOfRange(err) {
			t.Errorf("GetItem(%d) error = %v, want index out of range", idx, err)
		}
	}
}

func TestListMutation(t *testing.T) {
	l := NewList(1, 2, 3)
	l.Append(4, 5)
	if l.Len() != 5 {
		t.Fatalf("expected len 5, got %d", l.Len())
	}
	if err := l.SetItem(0, 10); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	if err := l.SetItem(9, 0); !errors.IsIndexOutOfRange(err) {
		t.Errorf("expected out of range, got %v", err)
	}
	l.Truncate(2)
	if got := l.Items(); !slices.Equal(got, []Value{10, 2}) {
		t.Errorf("unexpected items after truncate: %v", got)
	}
	l.Truncate(-3)
	if l.Len() != 0 {
		t.Errorf("expected empty list, got %d", l.Len())
	}
}

func TestListConcurrentAppend(t *testing.T) {
	l := NewList()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Append(j)
			}
		}()
	}
	wg.Wait()
	if l.Len() != 800 {
		t.Errorf("expected 800 items, got %d", l.Len())
	}
}

func TestCallableFunc(t *testing.T) {
	var f Callable = CallableFunc(func() (Value, error) { return 7, nil })
	v, err := f.Call()
	if err != nil || v != 7 {
		t.Errorf("Call() = %v, %v", v, err)
	}
}

func TestUint32Words(t *testing.T) {
	tests := []struct {
		name string
		x    *big.Int
		want []uint32
	}{
		{"nil", nil, nil},
		{"zero", big.NewInt(0), nil},
		{"small", big.NewInt(42), []uint32{42}},
		{"negative uses magnitude", big.NewInt(-42), []uint32{42}},
		{"two words", new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(5)), []uint32{5, 0, 1}},
		{"max uint32", big.NewInt(0xFFFFFFFF), []uint32{0xFFFFFFFF}},
		{"just over", big.NewInt(0x1_0000_0001), []uint32{1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Uint32Words(tc.x)
			if !slices.Equal(got, tc.want) {
				t.Errorf("Uint32Words(%v) = %v, want %v", tc.x, got, tc.want)
			}
		})
	}
}

func TestIntFromUint32Words(t *testing.T) {
	x, _ := new(big.Int).SetString("873491343714207852616756591005", 10)
	got := IntFromUint32Words(Uint32Words(x))
	if got.Cmp(x) != 0 {
		t.Errorf("round trip mismatch: %v != %v", got, x)
	}
	if IntFromUint32Words(nil).Sign() != 0 {
		t.Error("expected zero for no words")
	}
}

func TestTypeName(t *testing.T) {
	if TypeName(nil) != "nil" {
		t.Error("expected nil type name")
	}
	if TypeName(NewList()) != "*object.List" {
		t.Errorf("unexpected type name %q", TypeName(NewList()))
	}
}
