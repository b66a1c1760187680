// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

// objTable is the Robin Hood open-addressed hash table backing both
// Dict and Set (§4.7): hash-ordered probing with PSL (probe sequence
// length) tracked per slot, backward-shift deletion, grown at an 85%
// load factor. Grounded on the reference runtime's dict_set/dict_get/
// dict_del in builtin.h, generalized from int64 keys to arbitrary
// guest Values hashed and compared per keyHash/keyEqual below.
type objTable struct {
	entries []objEntry
	mask    uint64
	count   int
}

type objEntry struct {
	used  bool
	hash  uint64
	key   Value
	value Value // for a Set, value == key
	psl   uint32
}

const objTableInitialCapacity = 2
const objTableLoadFactorPercent = 85

func newObjTable() *objTable {
	return &objTable{
		entries: make([]objEntry, objTableInitialCapacity),
		mask:    objTableInitialCapacity - 1,
	}
}

// keyHash implements §9's deliberate key-equality rules: numeric keys
// hash by value (so 1 and 1.0 collide into the same bucket path),
// strings/bytes by their cached content hash, and everything else
// (instances, containers, functions) by pointer identity — two
// distinct instances are always distinct keys even if "equal" by some
// guest-level __eq__.
func keyHash(rt *Runtime, v Value) uint64 {
	switch TagOf(v) {
	case TagInt:
		return hashInt64(IntValue(v))
	case TagFloat:
		return hashFloat(FloatValue(v))
	case TagString:
		return stringCachedHash(rt, v)
	case TagBytes:
		return bytesCachedHash(rt, v)
	case TagBase:
		return hashPointer(v)
	default:
		return hashPointer(v)
	}
}

func hashPointer(v Value) uint64 {
	return mixSymKey(uint64(uintptrOf(v)))
}

// keyEqual follows the same rule set as keyHash: numeric keys compare
// by value across int/float, strings/bytes compare by cached hash only
// (a genuine SipHash collision is treated as equality, per §9 rather
// than falling back to a byte compare), everything else by identity.
func keyEqual(rt *Runtime, a, b Value) bool {
	ta, tb := TagOf(a), TagOf(b)
	switch {
	case ta == TagInt && tb == TagInt:
		return IntValue(a) == IntValue(b)
	case ta == TagFloat && tb == TagFloat:
		return FloatValue(a) == FloatValue(b)
	case ta == TagInt && tb == TagFloat:
		return float64(IntValue(a)) == FloatValue(b)
	case ta == TagFloat && tb == TagInt:
		return FloatValue(a) == float64(IntValue(b))
	case ta == TagString && tb == TagString:
		return stringCachedHash(rt, a) == stringCachedHash(rt, b)
	case ta == TagBytes && tb == TagBytes:
		return bytesCachedHash(rt, a) == bytesCachedHash(rt, b)
	default:
		return a == b
	}
}

func (t *objTable) resize(rt *Runtime, newCap uint64) {
	old := t.entries
	t.entries = make([]objEntry, newCap)
	t.mask = newCap - 1
	t.count = 0
	for _, e := range old {
		if e.used {
			t.insert(rt, e.hash, e.key, e.value)
		}
	}
}

func (t *objTable) insert(rt *Runtime, hash uint64, key, value Value) {
	idx := hash & t.mask
	incoming := objEntry{used: true, hash: hash, key: key, value: value, psl: 0}
	for {
		slot := &t.entries[idx]
		if !slot.used {
			*slot = incoming
			t.count++
			return
		}
		if slot.hash == incoming.hash && keyEqual(rt, slot.key, incoming.key) {
			slot.value = incoming.value
			return
		}
		if slot.psl < incoming.psl {
			incoming, *slot = *slot, incoming
		}
		incoming.psl++
		idx = (idx + 1) & t.mask
	}
}

func (t *objTable) set(rt *Runtime, key, value Value) {
	if (t.count+1)*100 >= len(t.entries)*objTableLoadFactorPercent {
		t.resize(rt, uint64(len(t.entries))*2)
	}
	t.insert(rt, keyHash(rt, key), key, value)
}

func (t *objTable) find(rt *Runtime, key Value) (int, bool) {
	hash := keyHash(rt, key)
	idx := hash & t.mask
	psl := uint32(0)
	for {
		slot := &t.entries[idx]
		if !slot.used || psl > slot.psl {
			return 0, false
		}
		if slot.hash == hash && keyEqual(rt, slot.key, key) {
			return int(idx), true
		}
		psl++
		idx = (idx + 1) & t.mask
	}
}

func (t *objTable) get(rt *Runtime, key Value) (Value, bool) {
	idx, ok := t.find(rt, key)
	if !ok {
		return nil, false
	}
	return t.entries[idx].value, true
}

// del removes key via backward-shift deletion: each slot after the
// removed one that has a nonzero PSL shifts back one slot, restoring
// the invariant that no entry sits farther from its ideal slot than it
// needs to.
func (t *objTable) del(rt *Runtime, key Value) bool {
	idx, ok := t.find(rt, key)
	if !ok {
		return false
	}
	i := uint64(idx)
	for {
		next := (i + 1) & t.mask
		if !t.entries[next].used || t.entries[next].psl == 0 {
			t.entries[i] = objEntry{}
			break
		}
		t.entries[next].psl--
		t.entries[i] = t.entries[next]
		i = next
	}
	t.count--
	return true
}

// dictValue is the Dict variant: a pointer-table of key→value pairs.
type dictValue struct {
	Header
	table *objTable
}

func newDictValue(rt *Runtime) Value {
	ptr := rt.alloc.allocDictBlock()
	dv := (*dictValue)(ptr)
	dv.Tag = TagDict
	dv.PoolID = dedicatedDictPoolID
	dv.TypeName = rt.names.typeDict
	dv.Refcount = 1
	dv.table = newObjTable()
	return Value(ptr)
}

func asDict(v Value) *dictValue { return (*dictValue)(v) }

// DictSet stores value under key, overwriting any existing value.
// Both key and value are borrowed in; the dict takes its own reference
// by incref'ing both.
func DictSet(rt *Runtime, d, key, value Value) {
	dv := asDict(d)
	if old, existed := dv.table.get(rt, key); existed {
		Incref(value)
		dv.table.set(rt, key, value)
		Decref(rt, old)
		return
	}
	Incref(key)
	Incref(value)
	dv.table.set(rt, key, value)
}

// DictGet returns the value stored under key, or (nil, false). The
// returned Value is borrowed — the dict still owns the reference.
func DictGet(rt *Runtime, d, key Value) (Value, bool) {
	return asDict(d).table.get(rt, key)
}

// DictDel removes key, decref'ing the stored key and value. Reports
// whether the key was present (per §7, a missing key is a KeyError at
// the caller's discretion, not raised here).
func DictDel(rt *Runtime, d, key Value) bool {
	dv := asDict(d)
	idx, ok := dv.table.find(rt, key)
	if !ok {
		return false
	}
	storedKey, storedValue := dv.table.entries[idx].key, dv.table.entries[idx].value
	if !dv.table.del(rt, key) {
		return false
	}
	Decref(rt, storedKey)
	Decref(rt, storedValue)
	return true
}

// DictLen reports the number of entries currently stored.
func DictLen(d Value) int { return asDict(d).table.count }

// setValue is the Set variant: an objTable used as a collection of
// unique keys, each entry's value equal to its key.
type setValue struct {
	Header
	table *objTable
}

func newSetValue(rt *Runtime) Value {
	ptr := rt.alloc.allocSetBlock()
	sv := (*setValue)(ptr)
	sv.Tag = TagSet
	sv.PoolID = dedicatedSetPoolID
	sv.TypeName = rt.names.typeSet
	sv.Refcount = 1
	sv.table = newObjTable()
	return Value(ptr)
}

func asSet(v Value) *setValue { return (*setValue)(v) }

// SetAdd inserts key, incref'ing it only if it wasn't already present.
func SetAdd(rt *Runtime, s, key Value) {
	sv := asSet(s)
	if _, ok := sv.table.get(rt, key); ok {
		return
	}
	Incref(key)
	sv.table.set(rt, key, key)
}

// SetContains reports whether key is a member of s.
func SetContains(rt *Runtime, s, key Value) bool {
	_, ok := asSet(s).table.get(rt, key)
	return ok
}

// SetRemove deletes key from s, decref'ing the stored member if present.
func SetRemove(rt *Runtime, s, key Value) bool {
	sv := asSet(s)
	idx, ok := sv.table.find(rt, key)
	if !ok {
		return false
	}
	stored := sv.table.entries[idx].key
	sv.table.del(rt, key)
	Decref(rt, stored)
	return true
}
