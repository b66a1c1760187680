// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "unsafe"

// listValue is a geometric-growth pointer vector: doubling capacity on
// overflow, shrinking to half when usage drops to a quarter, grounded
// on the reference runtime's list.h. attrs holds only attributes the
// guest program assigns itself; the built-in append/pop/remove/clear/
// index/extend methods live in the shared rt.listMethods table instead
// (protocol.go's GetMember), never in a per-list dict, so a list never
// ends up referencing its own bound methods.
type listValue struct {
	Header
	size     int
	capacity int
	data     unsafe.Pointer // *[capacity]Value, manual allocation
	attrs    Value          // TagDict, nil until the guest sets its first attribute
}

const listInitialCapacity = 4

func newListValue(rt *Runtime) Value {
	ptr := rt.alloc.allocListBlock()
	lv := (*listValue)(ptr)
	lv.Tag = TagList
	lv.PoolID = dedicatedListPoolID
	lv.TypeName = rt.names.typeList
	lv.Refcount = 1
	return Value(ptr)
}

func asList(v Value) *listValue { return (*listValue)(v) }

func listSlice(lv *listValue) []Value {
	if lv.data == nil {
		return nil
	}
	return unsafe.Slice((*Value)(lv.data), lv.capacity)[:lv.size]
}

func listReserve(lv *listValue, newCap int) {
	backing := make([]Value, newCap)
	copy(backing, listSlice(lv))
	lv.data = unsafe.Pointer(unsafe.SliceData(backing))
	lv.capacity = newCap
}

// ListAppend adds v to the end of l, doubling capacity when full. v is
// incref'd; the caller's own reference is unaffected.
func ListAppend(l, v Value) {
	lv := asList(l)
	if lv.size == lv.capacity {
		newCap := lv.capacity * 2
		if newCap < listInitialCapacity {
			newCap = listInitialCapacity
		}
		listReserve(lv, newCap)
	}
	Incref(v)
	unsafe.Slice((*Value)(lv.data), lv.capacity)[lv.size] = v
	lv.size++
}

// ListLen reports the current element count.
func ListLen(l Value) int { return asList(l).size }

// ListGet returns the element at normalized index i (borrowed),
// aborting with IndexError if out of range.
func ListGet(l Value, i int) Value {
	lv := asList(l)
	if i < 0 {
		i += lv.size
	}
	if i < 0 || i >= lv.size {
		abort(IndexError, "list index %d out of range for length %d", i, lv.size)
	}
	return listSlice(lv)[i]
}

// ListSet replaces the element at normalized index i, incref'ing the
// new value and decref'ing the old one.
func ListSet(rt *Runtime, l Value, i int, v Value) {
	lv := asList(l)
	if i < 0 {
		i += lv.size
	}
	if i < 0 || i >= lv.size {
		abort(IndexError, "list index %d out of range for length %d", i, lv.size)
	}
	s := listSlice(lv)
	Incref(v)
	Decref(rt, s[i])
	s[i] = v
}

// listMaybeShrink halves capacity once usage drops to a quarter of it,
// matching list.h's optional shrink behavior in list_remove.
func listMaybeShrink(lv *listValue) {
	if lv.capacity > listInitialCapacity && lv.size <= lv.capacity/4 {
		listReserve(lv, lv.capacity/2)
	}
}

// ListRemoveAt removes and decref's the element at normalized index i,
// shifting later elements down.
func ListRemoveAt(rt *Runtime, l Value, i int) {
	lv := asList(l)
	if i < 0 {
		i += lv.size
	}
	if i < 0 || i >= lv.size {
		abort(IndexError, "list index %d out of range for length %d", i, lv.size)
	}
	s := listSlice(lv)
	Decref(rt, s[i])
	copy(s[i:], s[i+1:])
	lv.size--
	listMaybeShrink(lv)
}

// ListFind returns the index of the first element equal to v under
// keyEqual's rules, or -1.
func ListFind(rt *Runtime, l Value, v Value) int {
	lv := asList(l)
	for i, e := range listSlice(lv) {
		if keyEqual(rt, e, v) {
			return i
		}
	}
	return -1
}

// ListExtend appends every element of other (a list) onto l.
func ListExtend(l, other Value) {
	for _, v := range listSlice(asList(other)) {
		ListAppend(l, v)
	}
}

// ListConcat returns a new list holding a's elements followed by b's.
func ListConcat(rt *Runtime, a, b Value) Value {
	out := newListValue(rt)
	ListExtend(out, a)
	ListExtend(out, b)
	return out
}

func listTeardown(rt *Runtime, v Value) {
	lv := asList(v)
	for _, e := range listSlice(lv) {
		Decref(rt, e)
	}
	if lv.attrs != nil {
		Decref(rt, lv.attrs)
	}
}
