// Package memo provides result memoization for fnbox Functions.
//
// Wrap takes a Function over a comparable payload type and returns a new
// Function that consults a bounded two-generation cache before delegating.
// The wrapped callable must be pure for the given payload: memo assumes equal
// payloads produce equal results.
package memo

import (
	"github.com/fnbox/fnbox/fnbox"
)

type cached[P comparable, R any] struct {
	inner *fnbox.Function[P, R]
	table *Table[P, R]
}

func (c cached[P, R]) Invoke(p P) R {
	if v, ok := c.table.Load(p); ok {
		return v
	}
	v := c.inner.Invoke(p)
	c.table.Store(p, v)
	return v
}

// Wrap returns a Function that memoizes inner's results, keeping at most
// maxEntries live entries before the cache starts recycling (see Table).
// The returned Function delegates through the inner pointer, so reassigning
// inner redirects the wrapper too — take inner.Clone() first if that is not
// wanted. Panics if maxEntries is 0.
func Wrap[P comparable, R any](inner *fnbox.Function[P, R], maxEntries uint32) fnbox.Function[P, R] {
	return fnbox.Bind[P, R](cached[P, R]{
		inner: inner,
		table: NewTable[P, R](maxEntries),
	})
}
