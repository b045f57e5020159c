package memo_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnbox/fnbox/fnbox"
	"github.com/fnbox/fnbox/memo"
)

func TestWrap_Memoizes(t *testing.T) {
	calls := 0
	inner := fnbox.Of(func(x int) int {
		calls++
		return x * x
	})

	squared := memo.Wrap(&inner, 32)

	require.Equal(t, 25, squared.Invoke(5))
	require.Equal(t, 25, squared.Invoke(5))
	require.Equal(t, 25, squared.Invoke(5))
	assert.Equal(t, 1, calls, "repeated payloads must hit the cache")

	require.Equal(t, 49, squared.Invoke(7))
	assert.Equal(t, 2, calls)
}

func TestWrap_StaysCorrectAcrossRotation(t *testing.T) {
	calls := 0
	inner := fnbox.Of(func(x int) int {
		calls++
		return x + 1
	})

	// Tiny capacity forces generation rotation.
	inc := memo.Wrap(&inner, 2)

	for x := 0; x < 50; x++ {
		assert.Equal(t, x+1, inc.Invoke(x))
	}
	assert.Equal(t, 50, calls)

	// Every payload was evicted or not, results stay right either way.
	for x := 0; x < 50; x++ {
		assert.Equal(t, x+1, inc.Invoke(x))
	}
}

func TestWrap_IsAnOrdinaryFunction(t *testing.T) {
	inner := fnbox.Of(func(x int) int { return x * 2 })
	wrapped := memo.Wrap(&inner, 8)

	clone := wrapped.Clone()
	assert.Equal(t, 10, clone.Invoke(5))

	var moved fnbox.Function[int, int]
	moved.MoveFrom(&wrapped)
	assert.False(t, wrapped.Bound())
	assert.Equal(t, 10, moved.Invoke(5))
}

func TestWrap_ZeroCapacityPanics(t *testing.T) {
	inner := fnbox.Of(func(x int) int { return x })
	assert.Panics(t, func() { memo.Wrap(&inner, 0) })
}

func TestTable_LoadStore(t *testing.T) {
	tbl := memo.NewTable[string, int](4)

	_, ok := tbl.Load("a")
	assert.False(t, ok)

	tbl.Store("a", 1)
	got, ok := tbl.Load("a")
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

// Tiny capacity keeps the table rotating while goroutines store and load
// concurrently; run with -race. Hits across either generation must still
// return the value stored for the key.
func TestTable_ConcurrentRotation(t *testing.T) {
	tbl := memo.NewTable[int, int](2)

	const goroutines = 8
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := (g + i) % 16
				tbl.Store(k, k*10)
				if v, ok := tbl.Load(k); ok {
					assert.Equal(t, k*10, v)
				}
			}
		}(g)
	}
	wg.Wait()
}

// Clones of a memoized Function share one cache; invoking them from
// separate goroutines must be safe.
func TestWrap_ConcurrentInvokeAcrossClones(t *testing.T) {
	inner := fnbox.Of(func(x int) int { return x * x })
	wrapped := memo.Wrap(&inner, 4)

	const goroutines = 8
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		clone := wrapped.Clone()
		go func(f fnbox.Function[int, int], g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				x := (g + i) % 10
				assert.Equal(t, x*x, f.Invoke(x))
			}
		}(clone, g)
	}
	wg.Wait()
}

func TestTable_RecentEntriesSurviveRotation(t *testing.T) {
	tbl := memo.NewTable[int, int](2)

	tbl.Store(1, 10)
	tbl.Store(2, 20)
	// Head is full; the next store rotates generations.
	tbl.Store(3, 30)

	got, ok := tbl.Load(3)
	require.True(t, ok)
	assert.Equal(t, 30, got)

	// The pre-rotation generation is still consulted.
	if got, ok := tbl.Load(2); ok {
		assert.Equal(t, 20, got)
	}
}
