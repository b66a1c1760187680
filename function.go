// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

// NativeFunc is the shape every callable this runtime can invoke
// through the call protocol (§4.11) must have: positional args as a
// Tuple, keyword args as a Dict. A bound method's receiver is never
// threaded separately — per §4.8/§6 it travels as args.items[0], the
// same tuple every other positional argument rides in. Generated code
// registers its own compiled entry points by wrapping them in a
// NativeFunc the same way this package wraps its own built-in list
// methods (listmethods.go).
type NativeFunc func(rt *Runtime, args Value, kwargs Value) Value

// functionValue is a callable: a name symbol id for diagnostics/
// introspection and the Go closure that actually runs when called. A
// function owns no receiver — see NativeFunc — so looking one up off
// an object's attribute dict never creates a reference back to that
// object.
type functionValue struct {
	Header
	name int32
	impl NativeFunc
}

func newFunctionValue(rt *Runtime, name int32, impl NativeFunc) Value {
	ptr := rt.alloc.allocFuncBlock()
	fv := (*functionValue)(ptr)
	fv.Tag = TagFunction
	fv.PoolID = dedicatedFuncPoolID
	fv.TypeName = rt.names.typeFunction
	fv.Refcount = 1
	fv.name = name
	fv.impl = impl
	return Value(ptr)
}

func asFunction(v Value) *functionValue { return (*functionValue)(v) }

// Call invokes fn with the given positional tuple and keyword dict, per
// §4.11's call protocol: the caller retains ownership of args/kwargs
// and must decref both after the call returns.
func Call(rt *Runtime, fn Value, args Value, kwargs Value) Value {
	f := asFunction(fn)
	return f.impl(rt, args, kwargs)
}
