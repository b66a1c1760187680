// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package corert is the runtime core linked into binaries produced by a
// compiler for a dynamically-typed, reference-counted, object-oriented
// guest language. It provides the universal object model, value
// allocation, reference-count memory management, hashing, comparison,
// arithmetic dispatch, attribute/item protocols, and the backing
// containers (dict, list, tuple, bytes, string, instance) that compiled
// code calls into. Nothing outside this package is in scope: the
// front-end parser, type-checker, code generator and CLI are external
// collaborators that only ever call the surface described here.
//
// # Object model
//
// Every guest value shares a fixed 16-byte Header as its first field:
// a 5-bit type tag, allocation provenance (pool id or manual), a
// type-name symbol id, and a signed refcount. There is no vtable —
// dispatch is a switch on Header.Tag, and a Value is an unsafe.Pointer
// reinterpreted through that tag. See header.go.
//
// # Allocation
//
// Fixed-size variants (int, float, None, dict/set/list/instance shells,
// function) are served by pool allocators (pool.go, pages.go):
// pages of blocks threaded onto a free list, grouped into partial/full
// lists per pool so alloc/free stay O(1) and empty pages shrink back to
// the system allocator. Strings, bytes and tuples — both their shells
// and their variable-length payloads — come from the system allocator
// and are marked manual in their Header.
//
// # Containers
//
// Dict (dict.go) is a Robin Hood open-addressed hash table keyed by
// hash with backward-shift deletion. List (list.go) is a
// geometric-growth pointer vector; its append/pop/remove/clear/index/
// extend methods are reached through the same GetMember attribute
// protocol instances use, but are shared, receiver-less Function
// values (listmethods.go) rather than attributes stored on the list
// itself — the calling convention packs the receiver into the call's
// positional tuple instead (args.items[0], §4.8/§6).
//
// # Concurrency
//
// The runtime is single-threaded per process by contract: no operation
// here takes a lock or blocks. A *Runtime handle is threaded through
// every call; nothing is safe to share across goroutines without
// external synchronization the guest compiler never emits.
//
// # Failure
//
// There is no exception mechanism. Every operation that cannot proceed
// (type mismatch, zero division, index/key error, allocator exhaustion)
// writes a single diagnostic line to stderr and aborts the process; see
// errors.go.
package corert
