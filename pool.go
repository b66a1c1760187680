// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "unsafe"

// numSizeClasses is the fixed pool count C1 mandates: size → pool
// lookup is a linear scan over this table, same as the reference
// runtime's alloc().
const numSizeClasses = 64

// sizeClasses is the payload size of each of the 64 general-purpose
// pools, rising from 8 bytes through 8 MiB. Ported from the reference
// C runtime's block_sizes table (original_source builtin.h);
// blocksPerPage mirrors its block_prpge table, shrinking as blocks
// grow so a page never commits an unreasonable amount of memory for a
// size class that's rarely hot.
var sizeClasses = [numSizeClasses]uintptr{
	8, 16, 24, 32, 40, 48, 56, 64, 72, 80, 88, 96, 104, 112, 120, 128,
	144, 160, 176, 192, 208, 224, 240, 256, 272, 288, 304, 320, 336, 352, 368, 384,
	416, 448, 480, 512, 576, 640, 704, 768, 832, 896, 960, 1024,
	1152, 1280, 1408, 1536, 1664, 1792, 1920, 2048,
	4096, 8192, 16384, 32768, 65536, 131072, 262144, 524288,
	1048576, 2097152, 4194304, 8388608,
}

var blocksPerPage = [numSizeClasses]uintptr{
	128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128,
	64, 64, 64, 64, 64, 64, 64, 64, 64, 64, 64, 64, 64, 64, 64, 64,
	32, 32, 32, 32, 16, 16, 16, 16, 16, 16, 16, 16,
	8, 8, 8, 8, 8, 8, 8, 8,
	4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4,
}

// dedicatedPools holds the per-variant-shape pools C1 keeps alongside
// the 64 general pools, sized to the variant's Go struct layout rather
// than to a generic size class — values allocated through these are
// always the same fixed shape, so there's no benefit to routing them
// through the general table.
type dedicatedPools struct {
	base     *sizeClassPool
	instance *sizeClassPool
	ints     *sizeClassPool
	floats   *sizeClassPool
	lists    *sizeClassPool
	dicts    *sizeClassPool
	sets     *sizeClassPool
	funcs    *sizeClassPool
}

// Allocator is the size-classed pool allocator of C1: 64 general pools
// (the sizeClasses table) plus a handful of pools dedicated to the runtime's own
// fixed-shape variants.
type Allocator struct {
	_       noCopy
	general [numSizeClasses]*sizeClassPool
	byShape dedicatedPools
}

func newAllocator() *Allocator {
	a := &Allocator{}
	for i := range sizeClasses {
		a.general[i] = newSizeClassPool(sizeClasses[i], blocksPerPage[i])
	}
	a.byShape = dedicatedPools{
		base:     newSizeClassPool(unsafe.Sizeof(baseValue{}), 1024),
		instance: newSizeClassPool(unsafe.Sizeof(instanceValue{}), 512),
		ints:     newSizeClassPool(unsafe.Sizeof(intValue{}), 2048),
		floats:   newSizeClassPool(unsafe.Sizeof(floatValue{}), 2048),
		lists:    newSizeClassPool(unsafe.Sizeof(listValue{}), 256),
		dicts:    newSizeClassPool(unsafe.Sizeof(dictValue{}), 256),
		sets:     newSizeClassPool(unsafe.Sizeof(setValue{}), 256),
		funcs:    newSizeClassPool(unsafe.Sizeof(functionValue{}), 512),
	}
	return a
}

// sizeClassFor returns the index of the smallest general pool whose
// payload fits size, or -1 if size exceeds every class (the block is
// then served by the system allocator and marked manual).
func sizeClassFor(size uintptr) int {
	for i, s := range sizeClasses {
		if size <= s {
			return i
		}
	}
	return -1
}

// alloc draws size bytes for a general (non-dedicated) allocation,
// reporting the provenance the caller must stamp into the value's
// Header so teardown can route the block back correctly.
func (a *Allocator) alloc(size uintptr) (ptr unsafe.Pointer, isManual bool, poolID uint8) {
	id := sizeClassFor(size)
	if id == -1 {
		return a.allocManual(size), true, manualPoolID
	}
	return a.general[id].alloc(), false, uint8(id)
}

// allocManual serves an oversized or variable-length block directly
// from the system allocator (ordinary Go heap allocation, reclaimed by
// the garbage collector — there is no manual free call in this port;
// see DESIGN.md).
func (a *Allocator) allocManual(size uintptr) unsafe.Pointer {
	if size == 0 {
		size = 1
	}
	mem := safeMake(size, "manual block")
	return unsafe.Pointer(unsafe.SliceData(mem))
}

// free routes ptr back to the pool or system allocator named by
// isManual/poolID, per §4.6's provenance contract.
func (a *Allocator) free(ptr unsafe.Pointer, isManual bool, poolID uint8) {
	if isManual {
		return // system-allocated: drop the reference, GC reclaims it
	}
	if pool := a.dedicatedPoolByID(poolID); pool != nil {
		pool.free(ptr)
		return
	}
	if int(poolID) >= len(a.general) {
		abort(MemoryError, "corrupt pool id %d on free", poolID)
	}
	a.general[poolID].free(ptr)
}

// dedicatedPoolByID returns the fixed-shape pool named by poolID, or
// nil if poolID names a general size class instead.
func (a *Allocator) dedicatedPoolByID(poolID uint8) *sizeClassPool {
	switch poolID {
	case dedicatedBasePoolID:
		return a.byShape.base
	case dedicatedInstancePoolID:
		return a.byShape.instance
	case dedicatedIntPoolID:
		return a.byShape.ints
	case dedicatedFloatPoolID:
		return a.byShape.floats
	case dedicatedListPoolID:
		return a.byShape.lists
	case dedicatedDictPoolID:
		return a.byShape.dicts
	case dedicatedSetPoolID:
		return a.byShape.sets
	case dedicatedFuncPoolID:
		return a.byShape.funcs
	default:
		return nil
	}
}

// allocBase, allocInstance, ... draw a block from the pool dedicated
// to that variant's fixed shape. They do not touch the Header: the
// calling constructor stamps the fields teardown needs to free it again.
func (a *Allocator) allocBase() unsafe.Pointer     { return a.byShape.base.alloc() }
func (a *Allocator) allocInstance() unsafe.Pointer { return a.byShape.instance.alloc() }
func (a *Allocator) allocIntBlock() unsafe.Pointer { return a.byShape.ints.alloc() }
func (a *Allocator) allocFloatBlock() unsafe.Pointer {
	return a.byShape.floats.alloc()
}
func (a *Allocator) allocListBlock() unsafe.Pointer { return a.byShape.lists.alloc() }
func (a *Allocator) allocDictBlock() unsafe.Pointer { return a.byShape.dicts.alloc() }
func (a *Allocator) allocSetBlock() unsafe.Pointer  { return a.byShape.sets.alloc() }
func (a *Allocator) allocFuncBlock() unsafe.Pointer { return a.byShape.funcs.alloc() }
