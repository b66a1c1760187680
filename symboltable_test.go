// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "testing"

func TestSymbolTableStartsAtCapacityTwo(t *testing.T) {
	st := newSymbolTable()
	if len(st.entries) != 2 {
		t.Fatalf("initial symbol table capacity = %d, want 2", len(st.entries))
	}
}

func TestSymbolTableInternRoutesThroughRobinHoodLookup(t *testing.T) {
	st := newSymbolTable()
	var key siphashKey
	key.k0, key.k1 = 1, 2

	id1 := st.intern(&key, "alpha")
	id2 := st.intern(&key, "beta")
	if id1 == id2 {
		t.Fatal("distinct names must get distinct ids")
	}
	if got := st.intern(&key, "alpha"); got != id1 {
		t.Fatalf("re-interning alpha returned %d, want %d", got, id1)
	}

	h := siphashString(&key, "alpha")
	got, ok := st.lookup(h)
	if !ok || got != id1 {
		t.Fatalf("lookup(hash of alpha) = (%d, %v), want (%d, true)", got, ok, id1)
	}

	if st.name(id1) != "alpha" || st.name(id2) != "beta" {
		t.Fatalf("name() reverse lookup mismatch: %q, %q", st.name(id1), st.name(id2))
	}
}

func TestSymbolTableGrowsPastInitialCapacity(t *testing.T) {
	st := newSymbolTable()
	var key siphashKey
	key.k0, key.k1 = 7, 9
	names := []string{"one", "two", "three", "four", "five", "six", "seven"}
	ids := make(map[string]int32, len(names))
	for _, n := range names {
		ids[n] = st.intern(&key, n)
	}
	for _, n := range names {
		if st.intern(&key, n) != ids[n] {
			t.Fatalf("id for %q changed after growth", n)
		}
		if st.name(ids[n]) != n {
			t.Fatalf("name(%d) = %q, want %q", ids[n], st.name(ids[n]), n)
		}
	}
}
