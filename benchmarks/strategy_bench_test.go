package array_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/array"
)

// BenchmarkStrategies compares build/teardown cycles across the shipped
// allocation strategies at several working-set sizes
func BenchmarkStrategies(b *testing.B) {
	sizes := []int{16, 256, 4096}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Heap_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a := array.New[int64]()
				for j := int64(0); j < int64(size); j++ {
					a.Push(j)
				}
				a.Release()
			}
		})

		b.Run(fmt.Sprintf("Bump_%d", size), func(b *testing.B) {
			arena := array.NewBump(1 << 20)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				a := array.NewIn[int64](array.NewBumpStrategy[int64](arena))
				for j := int64(0); j < int64(size); j++ {
					a.Push(j)
				}
				a.Release()
				arena.Reset()
			}
		})

		b.Run(fmt.Sprintf("Pool_%d", size), func(b *testing.B) {
			pool := array.NewPoolStrategy[int64](size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				a := array.NewIn[int64](pool)
				for j := int64(0); j < int64(size); j++ {
					a.Push(j)
				}
				a.Release()
			}
		})
	}
}

// BenchmarkReserveUpFront measures what a single Reserve saves over
// repeated doubling
func BenchmarkReserveUpFront(b *testing.B) {
	const n = 10_000

	b.Run("Reserved", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a := array.WithCapacity[int](n)
			for j := 0; j < n; j++ {
				a.Push(j)
			}
		}
	})

	b.Run("Unreserved", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a := array.New[int]()
			for j := 0; j < n; j++ {
				a.Push(j)
			}
		}
	})
}

// BenchmarkIteration compares the three iteration forms
func BenchmarkIteration(b *testing.B) {
	build := func() *array.Array[int] {
		a := array.WithCapacity[int](1000)
		for i := 0; i < 1000; i++ {
			a.Push(i)
		}
		return a
	}

	b.Run("Slice", func(b *testing.B) {
		a := build()
		b.ResetTimer()
		sum := 0
		for i := 0; i < b.N; i++ {
			for _, v := range a.Slice() {
				sum += v
			}
		}
		_ = sum
	})

	b.Run("Values", func(b *testing.B) {
		a := build()
		b.ResetTimer()
		sum := 0
		for i := 0; i < b.N; i++ {
			for v := range a.Values() {
				sum += v
			}
		}
		_ = sum
	})

	b.Run("IntoIter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			a := build()
			b.StartTimer()
			sum := 0
			for v := range a.IntoIter().Values() {
				sum += v
			}
			_ = sum
		}
	})
}
