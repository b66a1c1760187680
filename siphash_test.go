// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "testing"

func TestSiphash24Deterministic(t *testing.T) {
	key := siphashKey{k0: 0x0706050403020100, k1: 0x0f0e0d0c0b0a0908}
	a := siphashString(&key, "hello, world")
	b := siphashString(&key, "hello, world")
	if a != b {
		t.Fatalf("siphash24 not deterministic: %x != %x", a, b)
	}
}

func TestSiphash24DifferentKeysDiffer(t *testing.T) {
	k1 := siphashKey{k0: 1, k1: 2}
	k2 := siphashKey{k0: 3, k1: 4}
	if siphashString(&k1, "same input") == siphashString(&k2, "same input") {
		t.Fatal("different keys produced the same hash (extremely unlikely, check key wiring)")
	}
}

func TestSiphash24EmptyInput(t *testing.T) {
	key := siphashKey{}
	// must not panic on a zero-length message
	_ = siphash24(&key, nil)
	_ = siphash24(&key, []byte{})
}

func TestSiphash24VariesByLength(t *testing.T) {
	key := siphashKey{k0: 42, k1: 7}
	short := siphash24(&key, []byte("a"))
	long := siphash24(&key, []byte("aa"))
	if short == long {
		t.Fatal("hash of differently-sized inputs collided unexpectedly")
	}
}

func FuzzSiphash24(f *testing.F) {
	f.Add([]byte("seed"))
	f.Add([]byte{})
	key := siphashKey{k0: 0x1111111111111111, k1: 0x2222222222222222}
	f.Fuzz(func(t *testing.T, data []byte) {
		h1 := siphash24(&key, data)
		h2 := siphash24(&key, data)
		if h1 != h2 {
			t.Fatalf("siphash24 not deterministic for %x: %x != %x", data, h1, h2)
		}
	})
}

func TestSymbolTableInternStable(t *testing.T) {
	key := siphashKey{k0: 1, k1: 2}
	st := newSymbolTable()
	id1 := st.intern(&key, "foo")
	id2 := st.intern(&key, "foo")
	if id1 != id2 {
		t.Fatalf("interning the same string twice produced different ids: %d != %d", id1, id2)
	}
	id3 := st.intern(&key, "bar")
	if id3 == id1 {
		t.Fatal("distinct strings interned to the same id")
	}
	if st.name(id1) != "foo" || st.name(id3) != "bar" {
		t.Fatalf("reverse lookup mismatch: %q %q", st.name(id1), st.name(id3))
	}
}

func TestSymbolTableGrowsAndStaysConsistent(t *testing.T) {
	key := siphashKey{k0: 9, k1: 10}
	st := newSymbolTable()
	ids := make(map[string]int32)
	for i := 0; i < 500; i++ {
		s := string(rune('a'+i%26)) + string(rune('A'+(i/26)%26))
		id := st.intern(&key, s)
		ids[s] = id
	}
	for s, id := range ids {
		if st.name(id) != s {
			t.Fatalf("name(%d) = %q, want %q after growth", id, st.name(id), s)
		}
		if got := st.intern(&key, s); got != id {
			t.Fatalf("re-interning %q changed id from %d to %d", s, id, got)
		}
	}
}
