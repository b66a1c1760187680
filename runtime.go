// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import (
	"crypto/rand"
	"encoding/binary"
)

// Runtime is the single handle compiled code threads through every
// call into this package: the allocator, the interned-name symbol
// table, the process's SipHash key, the built-in name table, and the
// singleton None/True/False values. A Runtime is not safe to share
// across goroutines; see doc.go's Concurrency section.
type Runtime struct {
	_       noCopy
	alloc   *Allocator
	symbols *symbolTable
	sipKey  siphashKey
	names   *builtinNames

	noneValue  Value
	trueValue  Value
	falseValue Value

	// listMethods holds the shared, receiver-less append/pop/remove/
	// clear/index/extend Function values every list's GetMember falls
	// back to. Built once at bootstrap (listmethods.go) so no list ever
	// owns a reference to its own bound methods.
	listMethods map[int32]Value
}

// InitRuntime allocates and bootstraps a new Runtime: the pool
// allocator, the symbol table, a fresh OS-CSPRNG-sourced SipHash key,
// the built-in name table, and the None/True/False singletons.
func InitRuntime() *Runtime {
	rt := &Runtime{
		alloc:   newAllocator(),
		symbols: newSymbolTable(),
	}
	var keyBytes [16]byte
	if _, err := rand.Read(keyBytes[:]); err != nil {
		abort(MemoryError, "could not seed siphash key: %v", err)
	}
	rt.sipKey.k0 = binary.LittleEndian.Uint64(keyBytes[0:8])
	rt.sipKey.k1 = binary.LittleEndian.Uint64(keyBytes[8:16])

	rt.names = newBuiltinNames(rt.symbols, &rt.sipKey)

	rt.noneValue = newBaseValue(rt, TagBase, rt.names.typeNone)
	rt.trueValue = newBoolValue(rt, true)
	rt.falseValue = newBoolValue(rt, false)
	rt.listMethods = buildListMethods(rt)

	return rt
}

// None returns the interned None singleton. Callers that store it must
// still incref: every Value handed out by this package is a borrowed
// reference unless documented otherwise.
func (rt *Runtime) None() Value { return rt.noneValue }
