// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

// symbolTable is the integer-keyed Robin Hood table C2 describes: it
// interns strings (type names, attribute names, dunder names) to
// stable int32 ids so the rest of the runtime can compare names by a
// single integer instead of re-hashing or re-comparing bytes. Grounded
// on the original runtime's hmap.h, generalized from its void* values
// to int32 symbol ids and given a parallel id→string slice for the
// reverse lookup dunder dispatch needs.
type symbolTable struct {
	entries []symEntry
	mask    uint64
	count   int

	names []string // id → printable name, append-only
}

type symEntry struct {
	used  bool
	key   uint64 // SipHash of the interned string
	value int32  // symbol id
	psl   uint32
}

const symTableInitialCapacity = 2
const symTableLoadFactorPercent = 85

func newSymbolTable() *symbolTable {
	st := &symbolTable{
		entries: make([]symEntry, symTableInitialCapacity),
		mask:    symTableInitialCapacity - 1,
	}
	return st
}

// mixSymKey spreads a SipHash output across the table's index space the
// way hmap.h's _hmap_hash finishes a raw key: a SplitMix64-style
// xor-shift-multiply finalizer, using the MurmurHash3 fmix64 constants.
func mixSymKey(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

func (st *symbolTable) resize(newCap uint64) {
	old := st.entries
	st.entries = make([]symEntry, newCap)
	st.mask = newCap - 1
	st.count = 0
	for _, e := range old {
		if e.used {
			st.insert(e.key, e.value)
		}
	}
}

// insert places key/value via Robin Hood probing: an entry that has
// probed further than the incumbent steals its slot and keeps probing
// with the displaced entry, exactly as hmap_put does.
func (st *symbolTable) insert(key uint64, value int32) {
	if (st.count+1)*100 >= len(st.entries)*symTableLoadFactorPercent {
		st.resize(uint64(len(st.entries)) * 2)
	}
	idx := mixSymKey(key) & st.mask
	incoming := symEntry{used: true, key: key, value: value, psl: 0}
	for {
		slot := &st.entries[idx]
		if !slot.used {
			*slot = incoming
			st.count++
			return
		}
		if slot.key == incoming.key {
			slot.value = incoming.value
			return
		}
		if slot.psl < incoming.psl {
			incoming, *slot = *slot, incoming
		}
		incoming.psl++
		idx = (idx + 1) & st.mask
	}
}

func (st *symbolTable) lookup(key uint64) (int32, bool) {
	idx := mixSymKey(key) & st.mask
	psl := uint32(0)
	for {
		slot := &st.entries[idx]
		if !slot.used || psl > slot.psl {
			return 0, false
		}
		if slot.key == key {
			return slot.value, true
		}
		psl++
		idx = (idx + 1) & st.mask
	}
}

// intern returns the stable symbol id for s, assigning a fresh one on
// first sight. Grounded on the original runtime's get_symbol_id, which
// caches a per-string hash→id mapping so repeated lookups of the same
// attribute/dunder name avoid re-hashing the bytes. The Robin Hood
// table is the sole source of truth here: a genuine SipHash collision
// between two distinct names is treated as the same symbol, the same
// risk posture §9 already accepts for string/bytes dict keys.
func (st *symbolTable) intern(key *siphashKey, s string) int32 {
	h := siphashString(key, s)
	if id, ok := st.lookup(h); ok {
		return id
	}
	id := int32(len(st.names))
	st.names = append(st.names, s)
	st.insert(h, id)
	return id
}

func (st *symbolTable) name(id int32) string {
	if int(id) < 0 || int(id) >= len(st.names) {
		return ""
	}
	return st.names[id]
}
