// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "testing"

func TestHashInstanceFallsBackToIdentityWithoutDunderHash(t *testing.T) {
	rt := InitRuntime()
	a := newInstanceValue(rt, rt.InternTypeName("Widget"))
	b := newInstanceValue(rt, rt.InternTypeName("Widget"))
	if Hash(rt, a) == Hash(rt, b) {
		t.Fatal("distinct instances without __hash__ should not hash identically (pointer identity)")
	}
	if Hash(rt, a) != Hash(rt, a) {
		t.Fatal("hashing the same instance twice should be stable")
	}
}

func TestHashInstanceCallsDunderHash(t *testing.T) {
	rt := InitRuntime()
	inst := newInstanceValue(rt, rt.InternTypeName("Widget"))

	fn := newFunctionValue(rt, rt.names.dunderHash, func(rt *Runtime, args Value, _ Value) Value {
		return newInt(rt, 99)
	})
	SetMember(rt, inst, rt.names.dunderHash, fn)
	Decref(rt, fn)

	if got := Hash(rt, inst); got != 99 {
		t.Fatalf("Hash(instance) = %d, want 99 (via __hash__)", got)
	}
}
