// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

// builtinNames is the bootstrap table of C12: every dunder, type name,
// and built-in method name the runtime dispatches on by identity gets
// interned once at startup into a stable symbol id, so hot-path
// dispatch (operator overloads, attribute protocol, stringification)
// compares int32s instead of re-hashing strings. Grounded on the
// reference runtime's BuiltinNames table. byName maps each name
// interned here to its id; it holds exactly the names that also have a
// dedicated field, and nothing else is added to it.
type builtinNames struct {
	// type names
	typeNone, typeBool, typeInt, typeFloat, typeBytes, typeString int32
	typeTuple, typeList, typeDict, typeSet, typeFunction           int32

	// arithmetic / comparison dunders
	dunderAdd, dunderSub, dunderMul, dunderTrueDiv, dunderFloorDiv int32
	dunderMod, dunderPow, dunderNeg                                int32
	dunderEq, dunderNe, dunderLt, dunderLe, dunderGt, dunderGe     int32

	// protocol dunders
	dunderLen, dunderCall, dunderHash, dunderStr, dunderRepr int32
	dunderGetItem, dunderSetItem, dunderGetAttr, dunderSetAttr int32
	dunderInit                                                 int32

	// built-in list method names
	methodAppend, methodPop, methodRemove, methodClear int32
	methodIndex, methodExtend                          int32

	byName map[string]int32
}

func newBuiltinNames(st *symbolTable, key *siphashKey) *builtinNames {
	n := &builtinNames{byName: make(map[string]int32, 64)}
	in := func(s string) int32 {
		id := st.intern(key, s)
		n.byName[s] = id
		return id
	}

	n.typeNone = in("NoneType")
	n.typeBool = in("bool")
	n.typeInt = in("int")
	n.typeFloat = in("float")
	n.typeBytes = in("bytes")
	n.typeString = in("str")
	n.typeTuple = in("tuple")
	n.typeList = in("list")
	n.typeDict = in("dict")
	n.typeSet = in("set")
	n.typeFunction = in("function")

	n.dunderAdd = in("__add__")
	n.dunderSub = in("__sub__")
	n.dunderMul = in("__mul__")
	n.dunderTrueDiv = in("__truediv__")
	n.dunderFloorDiv = in("__floordiv__")
	n.dunderMod = in("__mod__")
	n.dunderPow = in("__pow__")
	n.dunderNeg = in("__neg__")
	n.dunderEq = in("__eq__")
	n.dunderNe = in("__ne__")
	n.dunderLt = in("__lt__")
	n.dunderLe = in("__le__")
	n.dunderGt = in("__gt__")
	n.dunderGe = in("__ge__")

	n.dunderLen = in("__len__")
	n.dunderCall = in("__call__")
	n.dunderHash = in("__hash__")
	n.dunderStr = in("__str__")
	n.dunderRepr = in("__repr__")
	n.dunderGetItem = in("__getitem__")
	n.dunderSetItem = in("__setitem__")
	n.dunderGetAttr = in("__getattr__")
	n.dunderSetAttr = in("__setattr__")
	n.dunderInit = in("__init__")

	n.methodAppend = in("append")
	n.methodPop = in("pop")
	n.methodRemove = in("remove")
	n.methodClear = in("clear")
	n.methodIndex = in("index")
	n.methodExtend = in("extend")

	return n
}

// InternTypeName returns the stable symbol id for name, interning it on
// first sight. Exposed so a compiler front-end can register guest
// class names against this runtime's symbol table.
func (rt *Runtime) InternTypeName(name string) int32 {
	return rt.symbols.intern(&rt.sipKey, name)
}

// TypeName returns the printable name a previously-interned symbol id
// was registered under.
func (rt *Runtime) TypeName(id int32) string {
	return rt.symbols.name(id)
}
