package fnbox

import (
	"github.com/fnbox/fnbox/fnbox/internal/vtable"
)

// Callable is the contract a concrete type must satisfy to be held by a
// Function. Any type with an Invoke method of the matching shape qualifies;
// there is no registration step and no common base type.
type Callable[P, R any] interface {
	Invoke(P) R
}

// Func adapts a plain function to Callable so it can be bound directly.
// Method values and field-getter closures go through the same adapter.
type Func[P, R any] func(P) R

func (f Func[P, R]) Invoke(p P) R { return f(p) }

// Cloner is the optional deep-copy hook. A callable that captures state it
// does not want shared between copies implements CloneCallable; Clone and
// Assign route through it via the dispatch table's copy entry. Callables
// without the hook are duplicated by plain assignment, which for
// inline-resident types is already a full copy.
//
// CloneCallable may panic; the copy in progress is abandoned and the
// destination container is left exactly as it was.
type Cloner[F any] = vtable.Cloner[F]
