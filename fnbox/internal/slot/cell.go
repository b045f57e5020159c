package slot

import "unsafe"

// Size is the capacity of the inline region in bytes. Seven machine words:
// together with the owning container's discriminant and table pointer this
// keeps the whole container within a cache line on 64-bit targets.
const Size = 56

// Align is the alignment guaranteed for the inline region. A Cell must sit at
// a pointer-aligned offset in its owner (keep it the first field); buf is the
// first field of the Cell, so it inherits that alignment.
const Align = 8

// Cell is the storage of one container: a fixed inline region and a heap
// pointer slot. Exactly one representation is live at a time; the owner's
// discriminant says which. The inline region may only ever hold pointer-free
// values (see Eligible) — the collector does not scan buf.
type Cell struct {
	buf [Size]byte
	ptr unsafe.Pointer
}

// Inline returns the address of the inline region.
func (c *Cell) Inline() unsafe.Pointer {
	return unsafe.Pointer(&c.buf)
}

// Ptr returns the heap slot. Meaningful only when the owner is in heap mode.
func (c *Cell) Ptr() unsafe.Pointer {
	return c.ptr
}

// SetPtr stores a box address in the heap slot. The slot is a real pointer as
// far as the collector is concerned, so the box stays reachable.
func (c *Cell) SetPtr(p unsafe.Pointer) {
	c.ptr = p
}
