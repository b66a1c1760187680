// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

// cstringScratchSize is the 64 KiB scratch buffer C9/§4.9 specifies
// for assembling a NUL-terminated UTF-8 C-string on demand for foreign
// callers. §4.9/§5 describe this as thread-local; since §5 makes the
// whole runtime single-threaded by contract (doc.go's Concurrency
// section), one package-level buffer serves the same purpose here
// without per-thread machinery a multi-threaded host would need — see
// DESIGN.md.
const cstringScratchSize = 64 * 1024

var cstringScratch [cstringScratchSize]byte

func fillScratch(s string) []byte {
	if len(s) >= cstringScratchSize {
		abort(MemoryError, "value exceeds the %d-byte cstring scratch buffer", cstringScratchSize)
	}
	n := copy(cstringScratch[:], s)
	cstringScratch[n] = 0
	return cstringScratch[:n+1]
}

// ToCString implements §6's to_cstring: v's stringification, encoded
// NUL-terminated into the shared scratch buffer. The returned slice is
// only valid until the next call that fills the buffer (ToCString,
// TypeNameCString).
func ToCString(rt *Runtime, v Value) []byte {
	return fillScratch(ToString(rt, v))
}

// TypeNameOf returns v's type name, the same name ToString's instance
// branch and error diagnostics print.
func TypeNameOf(rt *Runtime, v Value) string {
	if v == nil {
		return rt.TypeName(rt.names.typeNone)
	}
	return rt.TypeName(header(v).TypeName)
}

// TypeNameCString implements §6's type_name(v) → cstr.
func TypeNameCString(rt *Runtime, v Value) []byte {
	return fillScratch(TypeNameOf(rt, v))
}

// GetTypeName implements §6's get_type_name(v, buffer, size): it writes
// v's type name into the caller-supplied buffer, truncating to fit and
// NUL-terminating within it, and returns the number of bytes written
// not counting the terminator.
func GetTypeName(rt *Runtime, v Value, buffer []byte) int {
	if len(buffer) == 0 {
		return 0
	}
	name := TypeNameOf(rt, v)
	n := copy(buffer, name)
	if n < len(buffer) {
		buffer[n] = 0
	} else {
		n = len(buffer) - 1
		buffer[n] = 0
	}
	return n
}
