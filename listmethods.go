// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

// buildListMethods constructs the shared append/pop/remove/clear/
// index/extend Function values every list's attribute lookup falls
// back to, built once at bootstrap (runtime.go) and shared by every
// list value in the process. Per §4.8/§6 the receiver travels as
// args.items[0] instead of being closed over: GetMember returns the
// same Function to every list, so a list never ends up owning a
// reference back to its own bound methods (the cycle that convention
// exists to avoid).
func buildListMethods(rt *Runtime) map[int32]Value {
	methods := make(map[int32]Value, 6)
	add := func(name int32, impl NativeFunc) {
		methods[name] = newFunctionValue(rt, name, impl)
	}

	add(rt.names.methodAppend, func(rt *Runtime, args Value, _ Value) Value {
		self := TupleGet(args, 0)
		ListAppend(self, TupleGet(args, 1))
		return rt.None()
	})

	add(rt.names.methodPop, func(rt *Runtime, args Value, _ Value) Value {
		self := TupleGet(args, 0)
		idx := -1
		if TupleLen(args) > 1 {
			idx = int(IntValue(TupleGet(args, 1)))
		}
		lv := asList(self)
		if idx < 0 {
			idx += lv.size
		}
		v := ListGet(self, idx)
		Incref(v)
		ListRemoveAt(rt, self, idx)
		return v
	})

	add(rt.names.methodRemove, func(rt *Runtime, args Value, _ Value) Value {
		self := TupleGet(args, 0)
		target := TupleGet(args, 1)
		idx := ListFind(rt, self, target)
		if idx < 0 {
			abort(ValueError, "value not found in list")
		}
		ListRemoveAt(rt, self, idx)
		return rt.None()
	})

	add(rt.names.methodClear, func(rt *Runtime, args Value, _ Value) Value {
		self := TupleGet(args, 0)
		lv := asList(self)
		for lv.size > 0 {
			ListRemoveAt(rt, self, lv.size-1)
		}
		return rt.None()
	})

	add(rt.names.methodIndex, func(rt *Runtime, args Value, _ Value) Value {
		self := TupleGet(args, 0)
		target := TupleGet(args, 1)
		idx := ListFind(rt, self, target)
		if idx < 0 {
			abort(ValueError, "value not found in list")
		}
		return newInt(rt, int64(idx))
	})

	add(rt.names.methodExtend, func(rt *Runtime, args Value, _ Value) Value {
		self := TupleGet(args, 0)
		ListExtend(self, TupleGet(args, 1))
		return rt.None()
	})

	return methods
}
