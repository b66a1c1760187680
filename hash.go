// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "math"

// pyHashInf is the sentinel magnitude used for the hash of +/-Inf,
// matching the reference runtime's PY_HASH_INF so that hash(float('inf'))
// stays stable across a rebuild even though it is otherwise an
// arbitrary constant.
const pyHashInf = 314159

func uintptrOf(v Value) uintptr {
	return uintptr(v)
}

// hashInt64 hashes an integer by value. -1 is remapped to -2: this
// runtime (like the reference it's grounded on) reserves -1 as an
// internal "hash computation failed" sentinel, so no legitimate hash
// may ever equal it.
func hashInt64(i int64) uint64 {
	if i == -1 {
		i = -2
	}
	return uint64(i)
}

// hashFloat decomposes f into mantissa/exponent via frexp the way the
// reference runtime's hash_float does, so that floats equal under ==
// to an int (e.g. 2.0 and 2) hash identically — required for dict/set
// lookups to treat them as the same key per keyEqual.
func hashFloat(f float64) uint64 {
	if math.IsInf(f, 1) {
		return pyHashInf
	}
	if math.IsInf(f, -1) {
		h := int64(-pyHashInf)
		return uint64(h)
	}
	if math.IsNaN(f) {
		return 0
	}
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		if i := int64(f); float64(i) == f {
			return hashInt64(i)
		}
	}
	mantissa, exp := math.Frexp(f)
	var h int64
	for mantissa != 0 {
		h = ((h << 28) & 0x7fffffffffff) | (h >> (64 - 28))
		mantissa *= 268435456.0 // 2^28
		exp -= 28
		y := int64(mantissa)
		mantissa -= float64(y)
		h += y
		if h >= 0x7fffffffffff {
			h -= 0x7fffffffffff
		}
	}
	if exp >= 0 {
		e := uint(exp % 61)
		h = ((h << e) & 0x7fffffffffff) | (h >> (61 - e))
	} else {
		e := uint((-exp) % 61)
		h = (h >> e) | ((h << (61 - e)) & 0x7fffffffffff)
	}
	if f < 0 {
		h = -h
	}
	if h == -1 {
		h = -2
	}
	return uint64(h)
}

// hashPointerValue hashes v by identity: its own address, mixed the
// same way the symbol table mixes SipHash output.
func hashPointerValue(v Value) uint64 {
	return mixSymKey(uint64(uintptrOf(v)))
}

// Hash computes the dispatchable hash of v per §4.10/§9: numeric types
// by value, strings/bytes by their cached content hash, tuples by a
// polynomial over their elements' hashes, instances through a __hash__
// member when their attribute dict holds one (hashInstance), and
// everything else by identity.
func Hash(rt *Runtime, v Value) uint64 {
	switch TagOf(v) {
	case TagInt:
		return hashInt64(IntValue(v))
	case TagFloat:
		return hashFloat(FloatValue(v))
	case TagString:
		return stringCachedHash(rt, v)
	case TagBytes:
		return bytesCachedHash(rt, v)
	case TagTuple:
		return hashTuple(rt, v)
	case TagInstance:
		return hashInstance(rt, v)
	case TagBase:
		return hashPointerValue(v)
	default:
		return hashPointerValue(v)
	}
}

// hashInstance implements §4.10's instance rule: if the attribute dict
// holds a __hash__ member, call it with the instance as sole
// positional argument (args.items[0], §4.8/§6) and take its int result;
// otherwise hash by pointer identity.
func hashInstance(rt *Runtime, v Value) uint64 {
	iv := asInstance(v)
	nameVal := newString(rt, rt.TypeName(rt.names.dunderHash))
	fn, ok := DictGet(rt, iv.Attrs, nameVal)
	Decref(rt, nameVal)
	if !ok || TagOf(fn) != TagFunction {
		return hashPointerValue(v)
	}
	args := newTuple(rt, []Value{v})
	result := Call(rt, fn, args, nil)
	Decref(rt, args)
	h := uint64(IntValue(result))
	Decref(rt, result)
	return h
}

// hashTuple folds element hashes into a single value with the
// reference runtime's 17-seed, 31-multiplier polynomial (the same
// constants CPython-derived runtimes commonly use for tuple hashing).
func hashTuple(rt *Runtime, v Value) uint64 {
	tv := asTuple(v)
	h := uint64(17)
	for i := 0; i < tv.length; i++ {
		elem := tupleItemAt(tv, i)
		h = h*31 + Hash(rt, elem)
	}
	return h
}
