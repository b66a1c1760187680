// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

// intValue is a boxed 64-bit signed integer. The guest language's
// integers are fixed-width here; arbitrary precision is an explicit
// Non-goal (§9).
type intValue struct {
	Header
	I int64
}

func newInt(rt *Runtime, i int64) Value {
	ptr := rt.alloc.allocIntBlock()
	iv := (*intValue)(ptr)
	iv.Tag = TagInt
	iv.PoolID = dedicatedIntPoolID
	iv.TypeName = rt.names.typeInt
	iv.Refcount = 1
	iv.I = i
	return Value(ptr)
}

func asInt(v Value) *intValue { return (*intValue)(v) }

// IntValue returns the boxed integer's value. The caller must have
// already checked TagOf(v) == TagInt.
func IntValue(v Value) int64 { return asInt(v).I }

// floatValue is a boxed IEEE-754 double.
type floatValue struct {
	Header
	F float64
}

func newFloat(rt *Runtime, f float64) Value {
	ptr := rt.alloc.allocFloatBlock()
	fv := (*floatValue)(ptr)
	fv.Tag = TagFloat
	fv.PoolID = dedicatedFloatPoolID
	fv.TypeName = rt.names.typeFloat
	fv.Refcount = 1
	fv.F = f
	return Value(ptr)
}

func asFloat(v Value) *floatValue { return (*floatValue)(v) }

// FloatValue returns the boxed float's value. The caller must have
// already checked TagOf(v) == TagFloat.
func FloatValue(v Value) float64 { return asFloat(v).F }

// newBoolValue allocates a fresh boolean: per §3/§4.5, a bool is a
// TagInt variant living in the int pool with Header.Boolean set and I
// holding 0 or 1, not a distinct base-tagged type. Called once at
// bootstrap to build the True/False singletons (runtime.go); guest
// code reaches them through newBool instead of allocating its own.
func newBoolValue(rt *Runtime, b bool) Value {
	ptr := rt.alloc.allocIntBlock()
	iv := (*intValue)(ptr)
	iv.Tag = TagInt
	iv.PoolID = dedicatedIntPoolID
	iv.TypeName = rt.names.typeBool
	iv.Refcount = 1
	iv.Boolean = b
	if b {
		iv.I = 1
	}
	return Value(ptr)
}

// newBool returns one of the two interned boolean singletons rather
// than allocating.
func newBool(rt *Runtime, b bool) Value {
	if b {
		return rt.trueValue
	}
	return rt.falseValue
}

// BoolValue returns the truth value stored in a boolean's header.
func BoolValue(v Value) bool { return header(v).Boolean }
