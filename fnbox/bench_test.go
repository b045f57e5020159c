package fnbox_test

import (
	"testing"

	"github.com/fnbox/fnbox/fnbox"
)

func BenchmarkDirectCall(b *testing.B) {
	m := multipliers{2, 4, 6}
	for i := 0; i < b.N; i++ {
		_ = m.Invoke(5)
	}
}

func BenchmarkInvokeInline(b *testing.B) {
	f := fnbox.Bind[int, int](multipliers{2, 4, 6})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Invoke(5)
	}
}

func BenchmarkInvokeBoxed(b *testing.B) {
	f := fnbox.Of(double)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Invoke(5)
	}
}

func BenchmarkBindInline(b *testing.B) {
	for i := 0; i < b.N; i++ {
		f := fnbox.Bind[int, int](multipliers{2, 4, 6})
		_ = f
	}
}

func BenchmarkBindBoxed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		f := fnbox.Of(double)
		_ = f
	}
}

func BenchmarkSwapSameType(b *testing.B) {
	x := fnbox.Bind[int, int](multipliers{2, 4, 6})
	y := fnbox.Bind[int, int](multipliers{3, 5, 7})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Swap(&y)
	}
}

func BenchmarkSwapMixedStorage(b *testing.B) {
	x := fnbox.Bind[int, int](multipliers{2, 4, 6})
	y := fnbox.Of(double)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Swap(&y)
	}
}
