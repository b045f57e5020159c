package fnbox

import (
	"github.com/fnbox/fnbox/fnbox/internal/slot"
)

// Swap exchanges the contents of f and other: held callables, storage modes,
// dispatch tables. It never panics — every path below moves values only
// through the non-panicking table entries — and at no step do two live values
// occupy the same storage.
//
// The case analysis, in priority order:
//
//  1. self-swap or both unbound: nothing to do
//  2. same concrete type, both inline: the type's own in-place exchange
//  3. one side unbound: one-way transfer
//  4. both boxed, any types: exchange the pointer slots
//  5. mixed inline/boxed or both inline with different types: relocate
//     through a local staging cell
//
// In all cases the table pointers are exchanged last, so each side's
// recorded table matches whatever physically ended up in its storage.
func (f *Function[P, R]) Swap(other *Function[P, R]) {
	if f == other || (f.tab == nil && other.tab == nil) {
		return
	}

	switch {
	case f.tab == other.tab && !f.heap && !other.heap:
		f.tab.Swap(f.cell.Inline(), other.cell.Inline())

	case f.tab == nil:
		f.heap = other.heap
		if other.heap {
			f.cell.SetPtr(other.cell.Ptr())
			other.cell.SetPtr(nil)
		} else {
			// Move scrubs its source, so the transfer leaves
			// other's region dead.
			other.tab.Move(f.cell.Inline(), other.cell.Inline())
		}

	case other.tab == nil:
		other.heap = f.heap
		if f.heap {
			other.cell.SetPtr(f.cell.Ptr())
			f.cell.SetPtr(nil)
		} else {
			f.tab.Move(other.cell.Inline(), f.cell.Inline())
		}

	case f.heap && other.heap:
		p := f.cell.Ptr()
		f.cell.SetPtr(other.cell.Ptr())
		other.cell.SetPtr(p)

	case f.heap:
		// f boxed, other inline: stage other's value, hand f's box to
		// other, land the staged value in f's inline region.
		var tmp slot.Cell
		other.tab.Move(tmp.Inline(), other.cell.Inline())

		other.heap = true
		other.cell.SetPtr(f.cell.Ptr())

		f.heap = false
		f.cell.SetPtr(nil)
		other.tab.Move(f.cell.Inline(), tmp.Inline())

	case other.heap:
		var tmp slot.Cell
		f.tab.Move(tmp.Inline(), f.cell.Inline())

		f.heap = true
		f.cell.SetPtr(other.cell.Ptr())

		other.heap = false
		other.cell.SetPtr(nil)
		f.tab.Move(other.cell.Inline(), tmp.Inline())

	default:
		// Both inline, different types. Two different concrete types
		// cannot share either side's in-place exchange; relocate
		// through the staging cell so only one region is ever in
		// transit.
		var tmp slot.Cell
		f.tab.Move(tmp.Inline(), f.cell.Inline())
		other.tab.Move(f.cell.Inline(), other.cell.Inline())
		f.tab.Move(other.cell.Inline(), tmp.Inline())
	}

	f.tab, other.tab = other.tab, f.tab
}
