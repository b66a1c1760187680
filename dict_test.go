// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "testing"

func TestDictSetGetDel(t *testing.T) {
	rt := InitRuntime()
	d := newDictValue(rt)

	k1 := newString(rt, "one")
	v1 := newInt(rt, 1)
	DictSet(rt, d, k1, v1)

	got, ok := DictGet(rt, d, newString(rt, "one"))
	if !ok {
		t.Fatal("expected key \"one\" to be present")
	}
	if IntValue(got) != 1 {
		t.Fatalf("got value %d, want 1", IntValue(got))
	}

	if DictLen(d) != 1 {
		t.Fatalf("DictLen = %d, want 1", DictLen(d))
	}

	if !DictDel(rt, d, newString(rt, "one")) {
		t.Fatal("expected delete of present key to succeed")
	}
	if DictLen(d) != 0 {
		t.Fatalf("DictLen after delete = %d, want 0", DictLen(d))
	}
	if _, ok := DictGet(rt, d, newString(rt, "one")); ok {
		t.Fatal("key still present after delete")
	}
}

func TestDictOverwriteValue(t *testing.T) {
	rt := InitRuntime()
	d := newDictValue(rt)
	key := newString(rt, "k")
	DictSet(rt, d, key, newInt(rt, 1))
	DictSet(rt, d, newString(rt, "k"), newInt(rt, 2))
	if DictLen(d) != 1 {
		t.Fatalf("overwrite grew dict to %d entries, want 1", DictLen(d))
	}
	got, _ := DictGet(rt, d, newString(rt, "k"))
	if IntValue(got) != 2 {
		t.Fatalf("got %d, want 2 after overwrite", IntValue(got))
	}
}

func TestDictIntFloatKeyEquivalence(t *testing.T) {
	rt := InitRuntime()
	d := newDictValue(rt)
	DictSet(rt, d, newInt(rt, 2), newString(rt, "two"))
	got, ok := DictGet(rt, d, newFloat(rt, 2.0))
	if !ok {
		t.Fatal("expected int key 2 to be found via equivalent float key 2.0")
	}
	if StringGo(got) != "two" {
		t.Fatalf("got %q, want \"two\"", StringGo(got))
	}
}

func TestDictGrowsPastLoadFactor(t *testing.T) {
	rt := InitRuntime()
	d := newDictValue(rt)
	const n = 200
	for i := 0; i < n; i++ {
		DictSet(rt, d, newInt(rt, int64(i)), newInt(rt, int64(i*i)))
	}
	if DictLen(d) != n {
		t.Fatalf("DictLen = %d, want %d", DictLen(d), n)
	}
	for i := 0; i < n; i++ {
		got, ok := DictGet(rt, d, newInt(rt, int64(i)))
		if !ok {
			t.Fatalf("missing key %d after growth", i)
		}
		if IntValue(got) != int64(i*i) {
			t.Fatalf("key %d: got %d, want %d", i, IntValue(got), i*i)
		}
	}
}

func TestSetAddContainsRemove(t *testing.T) {
	rt := InitRuntime()
	s := newSetValue(rt)
	SetAdd(rt, s, newInt(rt, 1))
	SetAdd(rt, s, newInt(rt, 1)) // duplicate, must not double-count semantically
	if !SetContains(rt, s, newInt(rt, 1)) {
		t.Fatal("expected set to contain 1")
	}
	if !SetRemove(rt, s, newInt(rt, 1)) {
		t.Fatal("expected remove of present member to succeed")
	}
	if SetContains(rt, s, newInt(rt, 1)) {
		t.Fatal("set still contains 1 after remove")
	}
}
