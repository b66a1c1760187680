// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "unsafe"

// Incref bumps v's reference count. A nil Value is a no-op: the
// runtime's None is a real interned object, but a Go nil Value
// represents "no object" and is never refcounted.
func Incref(v Value) {
	if v == nil {
		return
	}
	header(v).Refcount++
}

// Decref drops v's reference count, tearing the value down and
// returning its storage to the allocator once it reaches zero. Each
// variant's teardown first releases the references it holds on other
// values (container elements, attribute dicts) before
// the value's own block is freed, so a deep decref chain runs
// depth-first the same way the reference runtime's DECREF macro does.
func Decref(rt *Runtime, v Value) {
	if v == nil {
		return
	}
	h := header(v)
	h.Refcount--
	if h.Refcount > 0 {
		return
	}
	teardown(rt, v)
}

func teardown(rt *Runtime, v Value) {
	h := header(v)
	switch h.Tag {
	case TagBase:
		// None is a process singleton; nothing owned to release.
	case TagInstance:
		iv := asInstance(v)
		Decref(rt, iv.Attrs)
	case TagInt, TagFloat:
		// no owned references
	case TagString:
		sv := asString(v)
		rt.alloc.free(sv.data, true, manualPoolID)
	case TagBytes:
		bv := asBytes(v)
		if bv.data != nil {
			rt.alloc.free(bv.data, true, manualPoolID)
		}
	case TagTuple:
		tupleTeardown(rt, v)
		tv := asTuple(v)
		if tv.items != nil {
			rt.alloc.free(tv.items, true, manualPoolID)
		}
	case TagList:
		listTeardown(rt, v)
		lv := asList(v)
		if lv.data != nil {
			rt.alloc.free(lv.data, true, manualPoolID)
		}
	case TagDict:
		dictTeardown(rt, v)
	case TagSet:
		setTeardown(rt, v)
	case TagFunction:
		// owns no receiver (§4.8/§6); nothing owned to release.
	}
	rt.alloc.free(unsafe.Pointer(v), h.IsManual, h.PoolID)
}

func dictTeardown(rt *Runtime, v Value) {
	dv := asDict(v)
	for i := range dv.table.entries {
		e := &dv.table.entries[i]
		if e.used {
			Decref(rt, e.key)
			Decref(rt, e.value)
		}
	}
}

func setTeardown(rt *Runtime, v Value) {
	sv := asSet(v)
	for i := range sv.table.entries {
		e := &sv.table.entries[i]
		if e.used {
			Decref(rt, e.key)
		}
	}
}
