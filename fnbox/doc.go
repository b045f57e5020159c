// Package fnbox provides a value-semantic, type-erased callable container
// with a small-buffer optimization.
//
// A Function[P, R] can hold any concrete value whose type satisfies
// Callable[P, R] — a plain function via the Of adapter, a method value, a
// stateful struct with an Invoke method — without its declaration site ever
// naming the concrete type. Behind the uniform surface, a per-type dispatch
// table carries the type-specific operations and is shared by every Function
// holding that type.
//
// # Storage
//
// Each Function owns a fixed 56-byte inline region and a heap pointer slot;
// exactly one is live at a time. A concrete type is placed inline when it
// fits, is suitably aligned, and carries no pointers (the collector does not
// scan the inline region); everything else is boxed on the heap. The choice
// is made once per concrete type and is invisible to callers.
//
// # Value semantics
//
// Functions copy with Clone/Assign, transfer with MoveFrom/Swap, and are
// torn down with Reset. Assign and Emplace stage through a temporary and
// swap, so a panic while copying or constructing leaves the destination
// exactly as it was. A moved-from Function presents as unbound.
//
// # Concurrency
//
// A Function is an ordinary value type with no internal synchronization.
// Distinct instances are independent, even when they share a dispatch table
// — tables are immutable after registration. A single instance shared
// across goroutines needs external synchronization, like any value type.
//
// Usage:
//
//	double := fnbox.Of(func(x int) int { return x * 2 })
//	halve := fnbox.Of(func(x int) int { return x / 2 })
//
//	keep := double.Clone()
//	double.Swap(&halve)
//
//	double.Invoke(5) // 2
//	keep.Invoke(5)   // 10
package fnbox
