package vec_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vec"
)

// BenchmarkAppendGrowth measures amortized append cost across element sizes.
// Compares raw-slot growth against the builtin append baseline.
func BenchmarkAppendGrowth(b *testing.B) {
	type elem16 struct{ a, b int64 }
	type elem64 struct{ a, b, c, d, e, f, g, h int64 }

	b.Run("Vec_8B", func(b *testing.B) {
		v := vec.New[int64]()
		defer v.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = v.Push(int64(i))
		}
	})
	b.Run("Builtin_8B", func(b *testing.B) {
		var s []int64
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s = append(s, int64(i))
		}
		_ = s
	})

	b.Run("Vec_16B", func(b *testing.B) {
		v := vec.New[elem16]()
		defer v.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = v.Push(elem16{a: int64(i)})
		}
	})
	b.Run("Builtin_16B", func(b *testing.B) {
		var s []elem16
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s = append(s, elem16{a: int64(i)})
		}
		_ = s
	})

	b.Run("Vec_64B", func(b *testing.B) {
		v := vec.New[elem64]()
		defer v.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = v.Push(elem64{a: int64(i)})
		}
	})
	b.Run("Builtin_64B", func(b *testing.B) {
		var s []elem64
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s = append(s, elem64{a: int64(i)})
		}
		_ = s
	})
}

// BenchmarkPreReserved measures append cost when capacity is reserved up
// front, isolating the slot-write path from growth.
func BenchmarkPreReserved(b *testing.B) {
	sizes := []int{1 << 10, 1 << 14, 1 << 18}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("Vec_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := vec.New[int]()
				if err := v.Reserve(n); err != nil {
					b.Fatal(err)
				}
				for j := 0; j < n; j++ {
					_ = v.Push(j)
				}
				v.Release()
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s := make([]int, 0, n)
				for j := 0; j < n; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}
}

// BenchmarkGrowthReallocations reports how many reallocations a growth
// sequence performs per final length.
func BenchmarkGrowthReallocations(b *testing.B) {
	for _, n := range []int{1 << 8, 1 << 12, 1 << 16} {
		b.Run(fmt.Sprintf("n-%d", n), func(b *testing.B) {
			var growths int
			for i := 0; i < b.N; i++ {
				v := vec.New[int]()
				for j := 0; j < n; j++ {
					_ = v.Push(j)
				}
				growths = v.Growths()
				v.Release()
			}
			b.ReportMetric(float64(growths), "reallocs")
		})
	}
}
