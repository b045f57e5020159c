package fnbox

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/fnbox/fnbox/fnbox/internal/slot"
	"github.com/fnbox/fnbox/fnbox/internal/vtable"
)

// ErrUnbound is returned by TryInvoke when the Function holds no callable.
var ErrUnbound = errors.New("fnbox: function is unbound")

// Function is a value-semantic container for any callable taking P and
// returning R. The concrete callable type is erased: a Function's declaration
// site never names it, and two Functions of the same instantiation can hold
// entirely different concrete types.
//
// Small pointer-free callables are stored in place inside the Function;
// everything else lives in a heap box owned exclusively by the Function.
// Which mode was chosen is invisible to callers.
//
// The zero value is an unbound Function. Duplicate with Clone or Assign —
// a plain struct copy of a heap-mode Function aliases the box, the same
// hazard as copying a bytes.Buffer.
//
// Usage:
//
//	double := fnbox.Of(func(x int) int { return x * 2 })
//	double.Invoke(5) // 10
//
// A Function is an ordinary value type: distinct instances need no
// synchronization, a shared instance needs external synchronization.
type Function[P, R any] struct {
	cell slot.Cell
	heap bool
	tab  *vtable.Table[P, R]
}

// Of binds a plain function.
func Of[P, R any](f func(P) R) Function[P, R] {
	return Bind[P, R](Func[P, R](f))
}

// Bind binds any callable value. Naming F explicitly at the call site is the
// explicit-type construction form; usually F is inferred from v.
func Bind[P, R any, F Callable[P, R]](v F) Function[P, R] {
	tab := vtable.For[P, R, F]()

	var f Function[P, R]
	if tab.Inline {
		*(*F)(f.cell.Inline()) = v
	} else {
		box := new(F)
		*box = v
		f.cell.SetPtr(unsafe.Pointer(box))
		f.heap = true
	}
	f.tab = tab
	return f
}

// Emplace replaces f's content with a callable built by mk, the analogue of
// constructing in place from constructor arguments. The fresh value is bound
// into a temporary and swapped in, so if mk panics f is left untouched.
func Emplace[P, R any, F Callable[P, R]](f *Function[P, R], mk func() F) {
	tmp := Bind[P, R](mk())
	f.Swap(&tmp)
	tmp.Reset()
}

// Rebind replaces f's content with the ready callable v, through the same
// temporary-then-swap shape as Emplace.
func Rebind[P, R any, F Callable[P, R]](f *Function[P, R], v F) {
	tmp := Bind[P, R](v)
	f.Swap(&tmp)
	tmp.Reset()
}

// Clone returns an independent copy of f. An unbound Function clones to an
// unbound Function. If the callable's CloneCallable hook panics, the panic
// propagates and the half-built copy never escapes.
func (f *Function[P, R]) Clone() Function[P, R] {
	var g Function[P, R]
	if f.tab == nil {
		return g
	}

	g.heap = f.heap
	if f.heap {
		g.cell.SetPtr(f.tab.Clone(f.cell.Ptr()))
	} else {
		f.tab.Copy(g.cell.Inline(), f.cell.Inline())
	}
	g.tab = f.tab
	return g
}

// Assign replaces f's content with a copy of other's. Strong guarantee: the
// copy is taken first, then swapped in, so a panicking copy leaves f exactly
// as it was. Self-assignment is a no-op.
func (f *Function[P, R]) Assign(other *Function[P, R]) {
	if f == other {
		return
	}
	tmp := other.Clone()
	f.Swap(&tmp)
	tmp.Reset()
}

// MoveFrom transfers other's content into f, destroying f's previous content.
// Afterwards other is unbound: a heap box changes owner by pointer steal, an
// inline value is moved and its source scrubbed. Never panics.
// Self-move is a no-op.
func (f *Function[P, R]) MoveFrom(other *Function[P, R]) {
	if f == other {
		return
	}
	f.Reset()
	if other.tab == nil {
		return
	}

	f.heap = other.heap
	if other.heap {
		f.cell.SetPtr(other.cell.Ptr())
		other.cell.SetPtr(nil)
	} else {
		other.tab.Move(f.cell.Inline(), other.cell.Inline())
	}
	f.tab = other.tab
	other.tab = nil
}

// Move returns a Function owning f's content, leaving f unbound.
func (f *Function[P, R]) Move() Function[P, R] {
	var g Function[P, R]
	g.MoveFrom(f)
	return g
}

// Reset destroys f's content, if any, leaving f unbound. Never panics.
func (f *Function[P, R]) Reset() {
	if f.tab == nil {
		return
	}

	if f.heap {
		f.tab.Release(f.cell.Ptr())
		f.cell.SetPtr(nil)
	} else {
		f.tab.Destroy(f.cell.Inline())
	}
	f.tab = nil
}

// Invoke calls the held callable with p. f must be bound; invoking an
// unbound Function panics. Whatever the callable panics with propagates
// unchanged, and invocation never mutates f's storage.
//
// *Function satisfies Callable, so Functions compose: a Function can be
// bound inside another Function.
func (f *Function[P, R]) Invoke(p P) R {
	if f.tab == nil {
		panic(ErrUnbound)
	}

	if f.heap {
		return f.tab.Invoke(f.cell.Ptr(), p)
	}
	return f.tab.Invoke(f.cell.Inline(), p)
}

// TryInvoke is the non-panicking variant: it reports ErrUnbound instead of
// panicking when f holds no callable.
func (f *Function[P, R]) TryInvoke(p P) (R, error) {
	if f.tab == nil {
		var zero R
		return zero, ErrUnbound
	}
	return f.Invoke(p), nil
}

// Bound reports whether f holds a callable.
func (f *Function[P, R]) Bound() bool {
	return f.tab != nil
}

// String names the held callable's concrete type and storage class for
// diagnostics. It never invokes the callable.
func (f *Function[P, R]) String() string {
	if f.tab == nil {
		return "Function[unbound]"
	}
	return fmt.Sprintf("Function[%v, %s, table %s]", f.tab.GoType, f.tab.Storage(), f.tab.ID)
}
