package vtable

import (
	"reflect"
	"unsafe"

	"github.com/google/uuid"

	"github.com/fnbox/fnbox/fnbox/internal/slot"
)

// Invoker is the callable contract the table is generated against. It mirrors
// the public fnbox.Callable constraint structurally; redeclaring it here keeps
// this package free of an import cycle with the container package.
type Invoker[P, R any] interface {
	Invoke(P) R
}

// Cloner is the optional deep-copy hook a callable may implement, checked
// dynamically inside the copy entry; everything else duplicates by plain
// assignment. The container package re-exports it as fnbox.Cloner.
type Cloner[F any] interface {
	CloneCallable() F
}

// Table is the per-concrete-type dispatch bundle. One canonical instance
// exists per concrete callable type (see For); containers compare tables by
// pointer identity to take the same-type swap fast path. A Table is immutable
// after construction and safe to share across goroutines.
//
// Every operation takes erased storage addresses. The address must hold a
// live value of the table's concrete type; callers are responsible for
// passing the representation their discriminant says is active.
type Table[P, R any] struct {
	// ID identifies the table in logs.
	ID uuid.UUID

	// GoType is the concrete callable type the table dispatches for.
	GoType reflect.Type

	// Hash is the xxhash fingerprint of GoType's name, the registry's
	// shard key.
	Hash uint64

	// Inline is the construction selector's verdict for GoType: true if
	// values live in the inline region, false if they are boxed. Decided
	// once here and never revisited.
	Inline bool

	// Invoke calls the value at self with p.
	Invoke func(self unsafe.Pointer, p P) R

	// Destroy scrubs the value at self back to the zero value. It never
	// panics. For inline values this severs nothing (they are
	// pointer-free); for boxed values it drops captured references early
	// rather than waiting for the box itself to die.
	Destroy func(self unsafe.Pointer)

	// Release tears down a boxed value: scrub, then surrender the box to
	// the collector. Never panics. The owner must also clear its pointer
	// slot.
	Release func(box unsafe.Pointer)

	// Copy duplicates the value at src into dst, which must be unoccupied
	// storage of sufficient size. Uses CloneCallable when the type
	// provides it, so it may panic; on panic dst holds nothing usable and
	// must not be adopted.
	Copy func(dst, src unsafe.Pointer)

	// Move transfers the value at src into dst and scrubs src. Go moves
	// are assignments, so Move never panics.
	Move func(dst, src unsafe.Pointer)

	// Swap exchanges two live values of this type in place. Parallel
	// assignment through a temporary; never panics.
	Swap func(a, b unsafe.Pointer)

	// Clone allocates a fresh box and copies the value at src into it.
	// May panic (via Copy); the abandoned box is reclaimed by the
	// collector, so a failed clone leaks nothing.
	Clone func(src unsafe.Pointer) unsafe.Pointer
}

// newTable generates the dispatch bundle for concrete type F. Called once per
// type by the registry; everything here is straight-line code over typed
// reinterpretations of the erased addresses.
func newTable[P, R any, F Invoker[P, R]]() *Table[P, R] {
	goType := reflect.TypeFor[F]()

	t := &Table[P, R]{
		ID:     uuid.New(),
		GoType: goType,
		Hash:   hash(goType.String()),
		Inline: slot.Eligible(goType),
	}

	t.Invoke = func(self unsafe.Pointer, p P) R {
		return (*(*F)(self)).Invoke(p)
	}

	t.Destroy = func(self unsafe.Pointer) {
		var zero F
		*(*F)(self) = zero
	}

	// Deallocation is the collector's job; Release exists so heap
	// teardown still scrubs captured references promptly.
	t.Release = t.Destroy

	t.Copy = func(dst, src unsafe.Pointer) {
		s := (*F)(src)
		if c, ok := any(*s).(Cloner[F]); ok {
			*(*F)(dst) = c.CloneCallable()
			return
		}
		*(*F)(dst) = *s
	}

	t.Move = func(dst, src unsafe.Pointer) {
		s := (*F)(src)
		*(*F)(dst) = *s
		var zero F
		*s = zero
	}

	t.Swap = func(a, b unsafe.Pointer) {
		pa, pb := (*F)(a), (*F)(b)
		*pa, *pb = *pb, *pa
	}

	t.Clone = func(src unsafe.Pointer) unsafe.Pointer {
		box := new(F)
		t.Copy(unsafe.Pointer(box), src)
		return unsafe.Pointer(box)
	}

	return t
}

// Storage names the table's storage class for logs and diagnostics.
func (t *Table[P, R]) Storage() string {
	if t.Inline {
		return "inline"
	}
	return "boxed"
}
