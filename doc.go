// Package array implements a generic, contiguous, growable sequence with a
// pluggable allocation strategy.
//
// # Overview
//
// An Array[T] owns a raw element region obtained from a Strategy and tracks
// how much of it is initialized. It offers the usual growable-array
// primitives (push, pop, insert, remove, swap-remove, retain) plus three
// iteration forms:
//
//   - Borrowing iteration over the live elements (Slice, All, Values)
//   - A consuming, owning iterator that takes the storage with it (IntoIter)
//   - A range-removing iterator that excises a sub-range lazily (Drain)
//
// This is useful for:
//
//   - Controlling where element storage comes from (heap, bump arena, pool)
//   - Batch-built, batch-destroyed collections with arena-backed storage
//   - Workloads that need O(1) unordered removal or in-place filtering
//
// # Basic Usage
//
//	a := array.New[int]()
//	defer a.Release() // Drop everything, return the region
//
//	for i := 0; i < 20; i++ {
//		a.Push(i)
//	}
//
//	// Excise the first five elements
//	d := a.Drain(0, 5)
//	for v := range d.Values() { // Values closes the drain for you
//		fmt.Println(v)
//	}
//
//	// Consume the rest, taking ownership of the storage
//	for v := range a.IntoIter().Values() {
//		fmt.Println(v)
//	}
//
// # Allocation Strategies
//
// Arrays allocate through the Strategy interface: Allocate, Grow, Shrink
// and Deallocate, each given a Layout (element size and alignment times a
// count). Four implementations ship with the package:
//
//   - Heap: typed allocation from the Go heap (the default; safe for any
//     element type, reclamation left to the collector)
//   - BumpStrategy: regions carved from a chunked Bump arena, reclaimed
//     wholesale by Reset or Release
//   - PoolStrategy: fixed-capacity regions recycled through a sync.Pool
//   - SafeStrategy: a mutex wrapper for sharing one strategy instance
//
// CountingStrategy wraps any of them with per-operation counters.
//
// # Growth
//
// Automatic growth rounds the requested capacity up to the next power of
// two, amortizing reallocation to O(1) per push. Zero-size element types
// never allocate at all: capacity is unbounded and only the length is
// tracked.
//
// # Ownership and Cleanup
//
// Go has no destructors, so removal is explicit: every operation that
// vacates a slot zeroes it, letting the collector reclaim whatever the
// element referenced. Release drops all elements and returns the region to
// the strategy; it is implemented by handing the storage to an IntoIter and
// closing it, so exactly one code path ever performs cleanup. A Drain or
// IntoIter left unfinished still squares the array away in its Close, which
// the Values sequences invoke even when a loop body panics.
//
// # Thread Safety
//
// An Array is not internally locked. At most one accessor (a direct caller,
// a Drain, or an IntoIter) may hold it at a time, and moving an array to
// another goroutine is sound whenever its element type and strategy are.
// SafeStrategy serializes a shared strategy; it does not serialize arrays.
//
// # Error Handling
//
// Operations with a natural "did not apply" outcome (Pop, Remove,
// SwapRemove, Insert, PushWithinCapacity, Get) report it with an extra
// return value. Allocation failure and index-contract violations (Swap,
// Drain bounds) are caller or environment errors and panic.
package array
