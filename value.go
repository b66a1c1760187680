// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

// baseValue is the shell for the one singleton, attribute-less value
// the runtime bootstraps: None. Booleans are a TagInt variant
// (intfloat.go), not base-tagged — see §3/§4.5. Its only payload is
// the Header itself.
type baseValue struct {
	Header
}

func newBaseValue(rt *Runtime, tag Tag, typeName int32) Value {
	ptr := rt.alloc.allocBase()
	bv := (*baseValue)(ptr)
	bv.Tag = tag
	bv.PoolID = dedicatedBasePoolID
	bv.TypeName = typeName
	bv.Refcount = 1
	return Value(ptr)
}

// instanceValue is a user-defined object: a type-name symbol id (in
// Header.TypeName) plus an attribute dict holding its fields and bound
// methods. The class/method-table lookup itself belongs to the guest
// compiler's generated code, not this core; this runtime only stores
// and walks the attribute dict.
type instanceValue struct {
	Header
	Attrs Value // TagDict, owned
}

func newInstanceValue(rt *Runtime, typeName int32) Value {
	ptr := rt.alloc.allocInstance()
	iv := (*instanceValue)(ptr)
	iv.Tag = TagInstance
	iv.PoolID = dedicatedInstancePoolID
	iv.TypeName = typeName
	iv.Refcount = 1
	iv.Attrs = newDictValue(rt)
	return Value(ptr)
}

func asInstance(v Value) *instanceValue { return (*instanceValue)(v) }
