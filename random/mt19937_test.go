package random

import "testing"

// Reference words for MT19937 keyed with init_by_array over the seed's
// 32-bit words.
func TestMT19937ReferenceWords(t *testing.T) {
	m := newMT19937([]uint32{42})
	want := []uint32{2746317213, 478163327, 107420369}
	for i, w := range want {
		if got := m.Uint32(); got != w {
			t.Fatalf("word %d = %d, want %d", i, got, w)
		}
	}
}

func TestMT19937SeedState(t *testing.T) {
	m := newMT19937([]uint32{42})
	if m.mti != mtN {
		t.Errorf("expected index %d after seeding, got %d", mtN, m.mti)
	}
	if m.mt[0] != 0x80000000 {
		t.Errorf("expected mt[0] = 0x80000000, got %#x", m.mt[0])
	}
	if m.mt[1] != 3564348608 {
		t.Errorf("expected mt[1] = 3564348608, got %d", m.mt[1])
	}
}

func TestMT19937EmptyKeyIsZeroWord(t *testing.T) {
	a := newMT19937(nil)
	b := newMT19937([]uint32{0})
	for i := 0; i < 10; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("empty key diverged from single zero word at draw %d", i)
		}
	}
}

func TestMT19937LongKey(t *testing.T) {
	key := make([]uint32, mtN+10)
	for i := range key {
		key[i] = uint32(i * 2654435761)
	}
	a := newMT19937(key)
	b := newMT19937(key)
	for i := 0; i < 2*mtN; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("generators with the same long key diverged at draw %d", i)
		}
	}
}
