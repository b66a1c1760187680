// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "unsafe"

// tupleValue is an immutable fixed-length array of Values. The element
// array is allocated separately (manual, variable-length) from the
// fixed-shape header the way strings and bytes are — only the element
// count is known at construction, not the payload size class.
type tupleValue struct {
	Header
	length int
	items  unsafe.Pointer // *[length]Value
}

func newTuple(rt *Runtime, elems []Value) Value {
	ptr := rt.alloc.allocManual(unsafe.Sizeof(tupleValue{}))
	tv := (*tupleValue)(ptr)
	tv.Tag = TagTuple
	tv.IsManual = true
	tv.PoolID = manualPoolID
	tv.TypeName = rt.names.typeTuple
	tv.Refcount = 1
	tv.length = len(elems)

	if len(elems) > 0 {
		backing := make([]Value, len(elems))
		copy(backing, elems)
		for _, e := range backing {
			Incref(e)
		}
		tv.items = unsafe.Pointer(unsafe.SliceData(backing))
	}
	return Value(ptr)
}

func asTuple(v Value) *tupleValue { return (*tupleValue)(v) }

// TupleLen reports the element count of v.
func TupleLen(v Value) int { return asTuple(v).length }

func tupleItemAt(tv *tupleValue, i int) Value {
	return unsafe.Slice((*Value)(tv.items), tv.length)[i]
}

// TupleGet returns the i'th element (borrowed), normalizing negative
// indices the way §4.11's item protocol does, aborting with
// IndexError if i is out of range after normalization.
func TupleGet(v Value, i int) Value {
	tv := asTuple(v)
	if i < 0 {
		i += tv.length
	}
	if i < 0 || i >= tv.length {
		abort(IndexError, "tuple index %d out of range for length %d", i, tv.length)
	}
	return tupleItemAt(tv, i)
}

// CatTuple implements §6's cat_tuple: a new tuple holding a's elements
// followed by b's.
func CatTuple(rt *Runtime, a, b Value) Value {
	ta, tb := asTuple(a), asTuple(b)
	out := make([]Value, 0, ta.length+tb.length)
	for i := 0; i < ta.length; i++ {
		out = append(out, tupleItemAt(ta, i))
	}
	for i := 0; i < tb.length; i++ {
		out = append(out, tupleItemAt(tb, i))
	}
	return newTuple(rt, out)
}

// PrependTuple implements §6's prepend_tuple: a new tuple with head
// followed by t's existing elements, used when the calling convention
// needs to splice an implicit receiver onto a call's positional args
// (args.items[0], per §4.8/§6).
func PrependTuple(rt *Runtime, head Value, t Value) Value {
	tv := asTuple(t)
	out := make([]Value, 0, tv.length+1)
	out = append(out, head)
	for i := 0; i < tv.length; i++ {
		out = append(out, tupleItemAt(tv, i))
	}
	return newTuple(rt, out)
}

func tupleTeardown(rt *Runtime, v Value) {
	tv := asTuple(v)
	for i := 0; i < tv.length; i++ {
		Decref(rt, tupleItemAt(tv, i))
	}
}
