package memo

import (
	"sync"
	"sync/atomic"
)

// Table is a bounded memo table with two-generation eviction. Entries are
// written to the head generation; once maxSize entries have been stored, the
// generations rotate and the stale one is emptied. A lookup tries the head
// generation first, then the previous one, so recently warm entries survive
// a rotation.
//
// Safe for concurrent use: the head index and the generation maps are
// published atomically, so a store racing a rotation lands in whichever
// generation it observed — at worst a later miss, never a torn read.
type Table[K comparable, V any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTable returns an empty table that rotates after maxSize stores.
// Panics if maxSize is 0.
func NewTable[K comparable, V any](maxSize uint32) *Table[K, V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Table[K, V]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

// Load returns the memoized value for key, consulting both generations.
func (t *Table[K, V]) Load(key K) (V, bool) {
	headIdx := t.headIdx.Load()
	v, ok := t.memos[headIdx].Load().Load(key)
	if !ok {
		v, ok = t.memos[1-headIdx].Load().Load(key)
		if !ok {
			var zero V
			return zero, false
		}
	}
	return v.(V), true
}

// Store records a value for key, rotating the generations when the head is
// full. The CAS elects a single rotator; the fresh map is installed before
// the head index moves, so readers never observe a stale generation at the
// new head.
func (t *Table[K, V]) Store(key K, value V) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		headIdx := 1 - t.headIdx.Load()
		t.memos[headIdx].Store(&sync.Map{})
		t.headIdx.Store(headIdx)
	}
	t.memos[t.headIdx.Load()].Load().Store(key, value)
	t.size.Add(1)
}
