// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import (
	"fmt"
	"strconv"
	"strings"
)

// attrsOf returns the attribute dict backing v's attribute protocol,
// or nil if v's variant doesn't carry one (ints, floats, bytes,
// strings, tuples have no attribute dict of their own). A list's dict
// holds only attributes the guest program assigned itself — its
// built-in methods live in rt.listMethods instead (see GetMember),
// never in this dict, so a list never references its own methods.
func attrsOf(rt *Runtime, v Value) Value {
	switch TagOf(v) {
	case TagInstance:
		return asInstance(v).Attrs
	case TagList:
		lv := asList(v)
		if lv.attrs == nil {
			lv.attrs = newDictValue(rt)
		}
		return lv.attrs
	default:
		return nil
	}
}

// GetMember looks up name on v's attribute dict and returns an owned
// reference (the caller must eventually Decref it) — the one
// deliberate asymmetry in this protocol, preserved from the reference
// runtime's NgGetMember rather than smoothed over into a borrowed
// return like GetItem/DictGet use. Aborts with KeyError if absent.
//
// A list checks its own (guest-assigned) attributes first, then falls
// back to the shared built-in method table: the returned Function
// carries no receiver of its own (§4.8/§6 — the caller packs self into
// args.items[0] before calling it), so looking up "append" never makes
// the list reference itself.
func GetMember(rt *Runtime, v Value, name int32) Value {
	if TagOf(v) == TagList {
		if lv := asList(v); lv.attrs != nil {
			nameVal := newString(rt, rt.TypeName(name))
			val, ok := DictGet(rt, lv.attrs, nameVal)
			Decref(rt, nameVal)
			if ok {
				Incref(val)
				return val
			}
		}
		if fn, ok := rt.listMethods[name]; ok {
			Incref(fn)
			return fn
		}
		abort(KeyError, "no attribute %q", rt.TypeName(name))
	}
	attrs := attrsOf(rt, v)
	if attrs == nil {
		abort(TypeError, "%s has no attributes", TagOf(v).String())
	}
	nameVal := newString(rt, rt.TypeName(name))
	val, ok := DictGet(rt, attrs, nameVal)
	Decref(rt, nameVal)
	if !ok {
		abort(KeyError, "no attribute %q", rt.TypeName(name))
	}
	Incref(val)
	return val
}

// SetMember stores value under name on v's attribute dict. value is
// borrowed in; the dict takes its own reference.
func SetMember(rt *Runtime, v Value, name int32, value Value) {
	attrs := attrsOf(rt, v)
	if attrs == nil {
		abort(TypeError, "%s has no attributes", TagOf(v).String())
	}
	nameVal := newString(rt, rt.TypeName(name))
	DictSet(rt, attrs, nameVal, value)
	Decref(rt, nameVal)
}

// DelMember removes name from v's attribute dict.
func DelMember(rt *Runtime, v Value, name int32) {
	attrs := attrsOf(rt, v)
	if attrs == nil {
		abort(TypeError, "%s has no attributes", TagOf(v).String())
	}
	nameVal := newString(rt, rt.TypeName(name))
	found := DictDel(rt, attrs, nameVal)
	Decref(rt, nameVal)
	if !found {
		abort(KeyError, "no attribute %q", rt.TypeName(name))
	}
}

// GetItem implements the container half of §4.11: lists and tuples
// normalize a negative index and bounds-check, dicts delegate to
// DictGet (aborting with KeyError on a miss), anything else is a
// TypeError. The returned Value is borrowed, matching DictGet/ListGet.
func GetItem(rt *Runtime, container, key Value) Value {
	switch TagOf(container) {
	case TagList:
		return ListGet(container, int(IntValue(key)))
	case TagTuple:
		return TupleGet(container, int(IntValue(key)))
	case TagDict:
		val, ok := DictGet(rt, container, key)
		if !ok {
			abort(KeyError, "key not found")
		}
		return val
	default:
		abort(TypeError, "%s does not support item access", TagOf(container).String())
		return nil
	}
}

// SetItem implements the mutable half: lists accept an index, dicts
// accept any key. Tuples are immutable and always a TypeError.
func SetItem(rt *Runtime, container, key, value Value) {
	switch TagOf(container) {
	case TagList:
		ListSet(rt, container, int(IntValue(key)), value)
	case TagDict:
		DictSet(rt, container, key, value)
	default:
		abort(TypeError, "%s does not support item assignment", TagOf(container).String())
	}
}

// Len implements §4.11's length protocol: O(1) for the containers that
// track their own size, a TypeError for anything else (int, float, and
// every instance — Len does not dispatch to a guest __len__ member).
func Len(container Value) int {
	switch TagOf(container) {
	case TagList:
		return ListLen(container)
	case TagTuple:
		return TupleLen(container)
	case TagString:
		return StringLen(container)
	case TagBytes:
		return BytesLen(container)
	case TagDict:
		return DictLen(container)
	default:
		abort(TypeError, "%s has no len()", TagOf(container).String())
		return 0
	}
}

// ToString implements §4.11's stringify protocol: the printable
// representation used by the guest's str()/print, not its repr(). Lists
// render as "[a, b]" and tuples as "(a, b)" (a one-element tuple as
// "(a,)"); elements are stringified with ToString, so string elements
// appear unquoted. An instance renders as "<TypeName object>"; a guest
// __str__ member is not consulted.
func ToString(rt *Runtime, v Value) string {
	if v == nil {
		return "None"
	}
	switch TagOf(v) {
	case TagBase:
		return "None"
	case TagInt:
		if header(v).TypeName == rt.names.typeBool {
			if BoolValue(v) {
				return "True"
			}
			return "False"
		}
		return fmt.Sprintf("%d", IntValue(v))
	case TagFloat:
		return formatFloat(FloatValue(v))
	case TagString:
		return StringGo(v)
	case TagBytes:
		return fmt.Sprintf("b%q", BytesGo(v))
	case TagTuple:
		return "(" + joinedRepr(rt, tupleElements(v), true) + ")"
	case TagList:
		return "[" + joinedRepr(rt, listSlice(asList(v)), false) + "]"
	case TagDict:
		return dictToString(rt, v)
	case TagSet:
		return setToString(rt, v)
	case TagInstance:
		return fmt.Sprintf("<%s object>", rt.TypeName(header(v).TypeName))
	case TagFunction:
		return fmt.Sprintf("<function %s>", rt.TypeName(asFunction(v).name))
	default:
		return "<object>"
	}
}

// formatFloat implements §4.11's float formatting rule directly: %f,
// not the variable-precision %g the general ToString path used to use.
func formatFloat(f float64) string {
	return fmt.Sprintf("%f", f)
}

func tupleElements(v Value) []Value {
	tv := asTuple(v)
	out := make([]Value, tv.length)
	for i := range out {
		out[i] = tupleItemAt(tv, i)
	}
	return out
}

func joinedRepr(rt *Runtime, elems []Value, parenWrapSingle bool) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = ToString(rt, e)
	}
	s := strings.Join(parts, ", ")
	if parenWrapSingle && len(elems) == 1 {
		s += ","
	}
	return s
}

func dictToString(rt *Runtime, v Value) string {
	dv := asDict(v)
	var parts []string
	for _, e := range dv.table.entries {
		if e.used {
			parts = append(parts, fmt.Sprintf("%s: %s", ToString(rt, e.key), ToString(rt, e.value)))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func setToString(rt *Runtime, v Value) string {
	sv := asSet(v)
	var parts []string
	for _, e := range sv.table.entries {
		if e.used {
			parts = append(parts, ToString(rt, e.key))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// JoinedStr concatenates the ToString of each element with sep between
// them, the runtime-side implementation of the guest's str.join.
func JoinedStr(rt *Runtime, sep string, elems []Value) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = ToString(rt, e)
	}
	return strings.Join(parts, sep)
}

// CatStr concatenates two guest strings into a new one.
func CatStr(rt *Runtime, a, b Value) Value {
	return newString(rt, StringGo(a)+StringGo(b))
}

// FormatValue implements §4.11/§6's format_value: a float whose spec
// contains a ".N" directive renders with N fractional digits; every
// other value (and a float whose spec carries no such directive) falls
// back to ToString.
func FormatValue(rt *Runtime, v Value, spec string) string {
	if TagOf(v) == TagFloat {
		if prec, ok := floatPrecisionFromSpec(spec); ok {
			return fmt.Sprintf("%.*f", prec, FloatValue(v))
		}
	}
	return ToString(rt, v)
}

// floatPrecisionFromSpec extracts N out of a ".N" directive anywhere in
// spec, the minimal format mini-language §4.11 calls for.
func floatPrecisionFromSpec(spec string) (int, bool) {
	dot := strings.IndexByte(spec, '.')
	if dot < 0 {
		return 0, false
	}
	end := dot + 1
	for end < len(spec) && spec[end] >= '0' && spec[end] <= '9' {
		end++
	}
	if end == dot+1 {
		return 0, false
	}
	n, err := strconv.Atoi(spec[dot+1 : end])
	if err != nil {
		return 0, false
	}
	return n, true
}
