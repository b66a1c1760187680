// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "testing"

func TestSizeClassForExactAndRounding(t *testing.T) {
	cases := []struct {
		size uintptr
		want int
	}{
		{0, 0},
		{8, 0},
		{9, 1},
		{2048, 51},
		{2049, 52},
		{8388608, numSizeClasses - 1},
	}
	for _, c := range cases {
		got := sizeClassFor(c.size)
		if got != c.want {
			t.Errorf("sizeClassFor(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestSizeClassForOversizeIsManual(t *testing.T) {
	if id := sizeClassFor(8388609); id != -1 {
		t.Fatalf("expected -1 for oversized request, got %d", id)
	}
}

func TestSizeClassPoolAllocFreeReuse(t *testing.T) {
	p := newSizeClassPool(32, 4)
	a := p.alloc()
	b := p.alloc()
	if a == b {
		t.Fatal("alloc returned the same block twice")
	}
	p.free(a)
	c := p.alloc()
	if c != a {
		t.Fatalf("expected free'd block to be reused, got different pointer")
	}
	p.free(b)
	p.free(c)
}

func TestSizeClassPoolExpandsAcrossPages(t *testing.T) {
	p := newSizeClassPool(16, 2)
	seen := make(map[uintptr]bool)
	for i := 0; i < 10; i++ {
		ptr := p.alloc()
		addr := uintptr(ptr)
		if seen[addr] {
			t.Fatalf("alloc returned a duplicate live pointer at iteration %d", i)
		}
		seen[addr] = true
	}
}

func TestAllocatorRoutesOversizeToManual(t *testing.T) {
	a := &Allocator{}
	for i := range sizeClasses {
		a.general[i] = newSizeClassPool(sizeClasses[i], 4)
	}
	_, isManual, poolID := a.alloc(8388608 + 1)
	if !isManual || poolID != manualPoolID {
		t.Fatalf("expected manual allocation for oversized request, got isManual=%v poolID=%d", isManual, poolID)
	}
}

func TestAllocatorRoutesSmallToGeneralPool(t *testing.T) {
	a := &Allocator{}
	for i := range sizeClasses {
		a.general[i] = newSizeClassPool(sizeClasses[i], 4)
	}
	_, isManual, poolID := a.alloc(10)
	if isManual {
		t.Fatal("expected pool-backed allocation for a small request")
	}
	if poolID != 1 {
		t.Fatalf("expected pool id 1 (16-byte class) for a 10-byte request, got %d", poolID)
	}
}
