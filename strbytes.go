// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "unsafe"

// stringValue stores its code points in the narrowest of three fixed
// widths (1/2/4 bytes) that fits the widest code point present,
// chosen by a two-pass decode: a first pass over the UTF-8 input to
// find the maximum code point and count, then a second pass to encode
// into the chosen width. Header.Boolean doubles as the ASCII flag and
// Header.Reserved carries the chosen StringKind, mirroring the
// reference runtime's UnicodeObject family (C9).
type stringValue struct {
	Header
	length int // code point count
	data   unsafe.Pointer
	hash   uint64
}

func stringKindFor(maxCP rune) StringKind {
	switch {
	case maxCP < 0x100:
		return StringKind8
	case maxCP < 0x10000:
		return StringKind16
	default:
		return StringKind32
	}
}

func newString(rt *Runtime, s string) Value {
	runes := []rune(s)
	var maxCP rune
	ascii := true
	for _, r := range runes {
		if r > maxCP {
			maxCP = r
		}
		if r > 0x7f {
			ascii = false
		}
	}
	kind := stringKindFor(maxCP)
	width := uintptr(1)
	switch kind {
	case StringKind16:
		width = 2
	case StringKind32:
		width = 4
	}

	n := uintptr(len(runes))
	ptr := rt.alloc.allocManual(n*width + 1) // +1: inline NUL terminator slot
	hdrPtr := rt.alloc.allocManual(unsafe.Sizeof(stringValue{}))
	sv := (*stringValue)(hdrPtr)
	sv.Tag = TagString
	sv.IsManual = true
	sv.PoolID = manualPoolID
	sv.TypeName = rt.names.typeString
	sv.Refcount = 1
	sv.Boolean = ascii
	sv.Reserved = kind
	sv.length = len(runes)
	sv.data = ptr
	// Hashed over the original UTF-8 input bytes (pre-decode, §4.5),
	// not the width-encoded storage chosen above, and cached eagerly
	// since s is only available here.
	sv.hash = siphashBytes(&rt.sipKey, []byte(s))

	switch kind {
	case StringKind8:
		buf := unsafe.Slice((*uint8)(ptr), n+1)
		for i, r := range runes {
			buf[i] = uint8(r)
		}
		buf[n] = 0
	case StringKind16:
		buf := unsafe.Slice((*uint16)(ptr), n)
		for i, r := range runes {
			buf[i] = uint16(r)
		}
	case StringKind32:
		buf := unsafe.Slice((*uint32)(ptr), n)
		for i, r := range runes {
			buf[i] = uint32(r)
		}
	}

	return Value(hdrPtr)
}

func asString(v Value) *stringValue { return (*stringValue)(v) }

// StringLen reports the code point count of v.
func StringLen(v Value) int { return asString(v).length }

// StringRuneAt returns the code point at index i (already normalized
// by the caller), aborting with IndexError if out of range.
func StringRuneAt(v Value, i int) rune {
	sv := asString(v)
	if i < 0 || i >= sv.length {
		abort(IndexError, "string index %d out of range for length %d", i, sv.length)
	}
	switch sv.Reserved {
	case StringKind8:
		return rune(unsafe.Slice((*uint8)(sv.data), sv.length)[i])
	case StringKind16:
		return rune(unsafe.Slice((*uint16)(sv.data), sv.length)[i])
	default:
		return rune(unsafe.Slice((*uint32)(sv.data), sv.length)[i])
	}
}

// StringGo reconstructs a native Go string from v, for output and
// interop with the host (formatting, stderr diagnostics, etc).
func StringGo(v Value) string {
	sv := asString(v)
	runes := make([]rune, sv.length)
	for i := range runes {
		runes[i] = StringRuneAt(v, i)
	}
	return string(runes)
}

// stringCachedHash returns v's SipHash, computed once at construction
// time over the original UTF-8 input bytes (§4.5 — pre-decode, not the
// width-encoded internal storage). Per §9 this runtime treats a hash
// collision between two distinct strings as equality for dict/set key
// purposes rather than falling back to a byte compare.
func stringCachedHash(rt *Runtime, v Value) uint64 {
	return asString(v).hash
}

// bytesValue is an immutable byte string.
type bytesValue struct {
	Header
	length  int
	data    unsafe.Pointer
	hash    uint64
	hashSet bool
}

func newBytes(rt *Runtime, b []byte) Value {
	hdrPtr := rt.alloc.allocManual(unsafe.Sizeof(bytesValue{}))
	bv := (*bytesValue)(hdrPtr)
	bv.Tag = TagBytes
	bv.IsManual = true
	bv.PoolID = manualPoolID
	bv.TypeName = rt.names.typeBytes
	bv.Refcount = 1
	bv.length = len(b)
	if len(b) > 0 {
		backing := rt.alloc.allocManual(uintptr(len(b)))
		copy(unsafe.Slice((*byte)(backing), len(b)), b)
		bv.data = backing
	}
	return Value(hdrPtr)
}

func asBytes(v Value) *bytesValue { return (*bytesValue)(v) }

// BytesLen reports the byte length of v.
func BytesLen(v Value) int { return asBytes(v).length }

// BytesGo returns a copy of v's bytes.
func BytesGo(v Value) []byte {
	bv := asBytes(v)
	if bv.length == 0 {
		return nil
	}
	out := make([]byte, bv.length)
	copy(out, unsafe.Slice((*byte)(bv.data), bv.length))
	return out
}

func bytesCachedHash(rt *Runtime, v Value) uint64 {
	bv := asBytes(v)
	if !bv.hashSet {
		var raw []byte
		if bv.length > 0 {
			raw = unsafe.Slice((*byte)(bv.data), bv.length)
		}
		bv.hash = siphashBytes(&rt.sipKey, raw)
		bv.hashSet = true
	}
	return bv.hash
}
