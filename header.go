// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "unsafe"

// Tag identifies the runtime representation of a Value. It replaces a
// class hierarchy: generated code and the core switch on Tag instead of
// dispatching through a vtable.
type Tag uint8

const (
	TagBase Tag = iota
	TagInstance
	TagInt
	TagFloat
	TagBytes
	TagString
	TagTuple
	TagList
	TagDict
	TagSet
	TagFunction
)

func (t Tag) String() string {
	switch t {
	case TagBase:
		return "base"
	case TagInstance:
		return "instance"
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagBytes:
		return "bytes"
	case TagString:
		return "string"
	case TagTuple:
		return "tuple"
	case TagList:
		return "list"
	case TagDict:
		return "dict"
	case TagSet:
		return "set"
	case TagFunction:
		return "function"
	default:
		return "unknown"
	}
}

// StringKind is the storage width chosen for a String's code points, the
// minimum of {1, 2, 4} bytes sufficient to hold every code point in the
// source text.
type StringKind uint8

const (
	StringKind8 StringKind = iota
	StringKind16
	StringKind32
)

// PoolID space: 0..numSizeClasses-1 name a general size-classed pool;
// the dedicated*PoolID constants name a pool sized for one fixed
// variant shape; manualPoolID marks a block served by the system
// allocator, freed only by letting the garbage collector reclaim it.
const (
	dedicatedBasePoolID uint8 = numSizeClasses + iota
	dedicatedInstancePoolID
	dedicatedIntPoolID
	dedicatedFloatPoolID
	dedicatedListPoolID
	dedicatedDictPoolID
	dedicatedSetPoolID
	dedicatedFuncPoolID
	manualPoolID
)

// Header is the fixed 16-byte prefix shared by every guest value.
// Implementations must write IsManual/PoolID exactly once, at
// construction, and never forge them afterward: teardown routes the
// block back through whichever allocator those two fields name.
type Header struct {
	Tag       Tag        // 5 bits of a byte in the C source; kept in its own byte here
	Boolean   bool       // repurposed per variant: ASCII-only for strings, truth value for bool
	Reserved  StringKind // repurposed per variant: string storage kind
	IsManual  bool       // true: block came from the system allocator, not a pool
	PoolID    uint8      // which pool produced this block: a general size class, a dedicated pool, or manualPoolID
	_         [2]byte    // padding to keep TypeName 4-byte aligned
	TypeName  int32      // stable-within-process symbol id for the type's printable name
	Refcount  int32      // signed; 1 at construction, torn down at 0
}

// headerSize is the fixed prefix size every variant embeds. The
// reference C runtime packs this into 16 bytes with bitfields; this
// port keeps the same fields but lets Go lay them out naturally since
// a stable cross-rebuild ABI is explicitly not a goal here.
const headerSize = unsafe.Sizeof(Header{})

// Value is an opaque handle to any guest object: a pointer to a
// variant's memory whose first field is always a Header. There is no
// interface-based dispatch here on purpose — callers read Header.Tag
// to decide which concrete variant layout the pointer beneath it has,
// the same way the teacher's buffer package reinterprets a raw []byte
// as a fixed-size buffer array via unsafe.Slice/unsafe.Add.
type Value unsafe.Pointer

// header reinterprets v as its common Header prefix. Every constructor
// in this package guarantees that prefix is valid for any non-nil v.
func header(v Value) *Header {
	return (*Header)(v)
}

// TagOf reports the type tag of v, or TagBase for a nil Value.
func TagOf(v Value) Tag {
	if v == nil {
		return TagBase
	}
	return header(v).Tag
}

// IsNil reports whether v is the nil Value (the guest language's None
// is a distinct interned instance, not this nil).
func IsNil(v Value) bool {
	return v == nil
}
