package array

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
	"strings"
	"unsafe"
)

// Array is a contiguous growable sequence of T backed by a region obtained
// from a Strategy. The zero value is an empty array using the Heap strategy.
//
// The region holds cap elements; the prefix [0, len) is initialized and the
// rest is vacant. Vacated slots are always zeroed so the collector can
// reclaim whatever they referenced.
//
// An Array is not safe for concurrent use. At most one accessor (a direct
// caller, a Drain, or an IntoIter) may hold it at a time.
type Array[T any] struct {
	len   int
	buf   []T
	alloc Strategy[T]
}

// New creates an empty array using the Heap strategy.
func New[T any]() *Array[T] {
	return NewIn[T](Heap[T]{})
}

// NewIn creates an empty array that allocates through the given strategy.
// The array owns the strategy reference for its entire lifetime.
func NewIn[T any](alloc Strategy[T]) *Array[T] {
	return &Array[T]{alloc: alloc}
}

// WithCapacity creates an empty array with room for at least n elements.
func WithCapacity[T any](n int) *Array[T] {
	return WithCapacityIn[T](n, Heap[T]{})
}

// WithCapacityIn creates an empty array with room for at least n elements,
// allocating through the given strategy.
func WithCapacityIn[T any](n int, alloc Strategy[T]) *Array[T] {
	a := NewIn[T](alloc)
	a.Reserve(n)
	return a
}

// Of creates an array holding the given values.
func Of[T any](vals ...T) *Array[T] {
	a := WithCapacity[T](len(vals))
	a.Append(vals...)
	return a
}

// Collect creates an array from a finite sequence.
func Collect[T any](seq iter.Seq[T]) *Array[T] {
	return CollectIn(seq, Heap[T]{})
}

// CollectIn creates an array from a finite sequence, allocating through the
// given strategy.
func CollectIn[T any](seq iter.Seq[T], alloc Strategy[T]) *Array[T] {
	a := NewIn[T](alloc)
	a.Extend(seq)
	return a
}

// zeroSized reports whether T occupies no storage. Such element types never
// touch the strategy; capacity is unbounded and only len is tracked.
func zeroSized[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 0
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// strategy returns the array's strategy, defaulting the zero value to Heap.
func (a *Array[T]) strategy() Strategy[T] {
	if a.alloc == nil {
		a.alloc = Heap[T]{}
	}
	return a.alloc
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return a.len
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.len == 0
}

// Cap returns the number of elements the array can hold without
// reallocating. Zero-size element types report an unbounded capacity.
func (a *Array[T]) Cap() int {
	if zeroSized[T]() {
		return math.MaxInt
	}
	return len(a.buf)
}

// Reserve ensures at least additional more elements can be pushed without a
// reallocation. Growth is to the next power of two, so any sequence of
// pushes reallocates O(log n) times. Panics if the strategy fails.
func (a *Array[T]) Reserve(additional int) {
	newMin := a.len + additional
	if a.Cap() >= newMin {
		return
	}
	newCap := nextPowerOfTwo(newMin)
	newLayout := LayoutOf[T](newCap)
	if a.buf == nil {
		region, err := a.strategy().Allocate(newLayout)
		if err != nil {
			fatalAlloc("allocation", newLayout, err)
		}
		a.buf = region
		return
	}
	region, err := a.strategy().Grow(a.buf, LayoutOf[T](len(a.buf)), newLayout)
	if err != nil {
		fatalAlloc("grow", newLayout, err)
	}
	a.buf = region
}

// Push appends a value, growing the region if necessary.
func (a *Array[T]) Push(v T) {
	a.Reserve(1)
	if !zeroSized[T]() {
		a.buf[a.len] = v
	}
	a.len++
}

// PushWithinCapacity appends a value only if a free slot already exists.
// It never allocates; it reports false when the array is full.
func (a *Array[T]) PushWithinCapacity(v T) bool {
	if a.len == a.Cap() {
		return false
	}
	if !zeroSized[T]() {
		a.buf[a.len] = v
	}
	a.len++
	return true
}

// Pop removes and returns the last element. It reports false when the array
// is empty.
func (a *Array[T]) Pop() (T, bool) {
	var v T
	if a.len == 0 {
		return v, false
	}
	a.len--
	if !zeroSized[T]() {
		v = a.buf[a.len]
		a.clearSlot(a.len)
	}
	return v, true
}

// Get returns the element at index i. It reports false when i is out of
// range.
func (a *Array[T]) Get(i int) (T, bool) {
	var v T
	if i < 0 || i >= a.len {
		return v, false
	}
	if !zeroSized[T]() {
		v = a.buf[i]
	}
	return v, true
}

// Remove removes and returns the element at index i, shifting everything
// after it one slot left. Relative order is preserved; cost is O(n-i).
// It reports false when i is out of range.
func (a *Array[T]) Remove(i int) (T, bool) {
	var v T
	if i < 0 || i >= a.len {
		return v, false
	}
	a.len--
	if !zeroSized[T]() {
		v = a.buf[i]
		copy(a.buf[i:], a.buf[i+1:a.len+1])
		a.clearSlot(a.len)
	}
	return v, true
}

// Insert places v at index i, shifting elements at and after i one slot
// right. Cost is O(n-i). It reports false when i is out of range; the caller
// keeps the value either way.
func (a *Array[T]) Insert(i int, v T) bool {
	if i < 0 || i > a.len {
		return false
	}
	a.Reserve(1)
	if !zeroSized[T]() {
		copy(a.buf[i+1:a.len+1], a.buf[i:a.len])
		a.buf[i] = v
	}
	a.len++
	return true
}

// Swap exchanges the elements at indices i and j. Both must be in range;
// an out-of-range index is a caller logic error and panics.
func (a *Array[T]) Swap(i, j int) {
	if i < 0 || i >= a.len {
		panic(fmt.Sprintf("array: swap index %d out of range for length %d", i, a.len))
	}
	if j < 0 || j >= a.len {
		panic(fmt.Sprintf("array: swap index %d out of range for length %d", j, a.len))
	}
	if !zeroSized[T]() {
		a.buf[i], a.buf[j] = a.buf[j], a.buf[i]
	}
}

// SwapRemove removes and returns the element at index i by moving the last
// element into its place. O(1); does not preserve relative order. It reports
// false when i is out of range.
func (a *Array[T]) SwapRemove(i int) (T, bool) {
	var v T
	if i < 0 || i >= a.len {
		return v, false
	}
	a.len--
	if !zeroSized[T]() {
		v = a.buf[i]
		a.buf[i] = a.buf[a.len]
		a.clearSlot(a.len)
	}
	return v, true
}

// ShrinkToFit releases unused capacity down to exactly Len. A no-op for
// zero-size element types and when there is no excess; when the array is
// empty the region is released entirely.
func (a *Array[T]) ShrinkToFit() {
	if zeroSized[T]() || a.buf == nil || a.len == len(a.buf) {
		return
	}
	oldLayout := LayoutOf[T](len(a.buf))
	if a.len == 0 {
		a.strategy().Deallocate(a.buf, oldLayout)
		a.buf = nil
		return
	}
	newLayout := LayoutOf[T](a.len)
	region, err := a.strategy().Shrink(a.buf, oldLayout, newLayout)
	if err != nil {
		fatalAlloc("shrink", newLayout, err)
	}
	a.buf = region
}

// Retain keeps only the elements for which pred returns true, preserving
// their relative order. The predicate receives a pointer and may mutate the
// element before deciding.
//
// If pred panics partway through, every element from the current read
// position to the original length is still dropped and Len is left covering
// only the confirmed-kept prefix.
func (a *Array[T]) Retain(pred func(*T) bool) {
	n := a.len
	read, write := 0, 0
	defer func() {
		for ; read < n; read++ {
			a.clearSlot(read)
		}
		a.len = write
	}()
	for read < n {
		if !pred(a.slot(read)) {
			a.clearSlot(read)
			read++
			continue
		}
		if write != read && !zeroSized[T]() {
			a.buf[write] = a.buf[read]
			a.clearSlot(read)
		}
		write++
		read++
	}
}

// Clear drops every element, keeping the region for reuse.
func (a *Array[T]) Clear() {
	for i := 0; i < a.len; i++ {
		a.clearSlot(i)
	}
	a.len = 0
}

// Slice returns the live elements as a slice aliasing the array's region.
// The view is valid until the next operation that reallocates or changes
// Len; elements may be read and mutated through it.
func (a *Array[T]) Slice() []T {
	if zeroSized[T]() {
		return make([]T, a.len)
	}
	return a.buf[:a.len:a.len]
}

// All returns an index/value sequence over the live elements, in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.len; i++ {
			var v T
			if !zeroSized[T]() {
				v = a.buf[i]
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a value sequence over the live elements, in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.len; i++ {
			var v T
			if !zeroSized[T]() {
				v = a.buf[i]
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Extend pushes every value of a finite sequence onto the array.
func (a *Array[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		a.Push(v)
	}
}

// Append pushes the given values onto the array.
func (a *Array[T]) Append(vals ...T) {
	a.Reserve(len(vals))
	for _, v := range vals {
		a.Push(v)
	}
}

// String renders the live elements as an ordered listing.
func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}

// Release drops every element and returns the region to the strategy. It is
// defined as consuming the array through its owning iterator, so exactly one
// code path ever performs "drop remaining, then free". The array is left
// empty and may be reused.
func (a *Array[T]) Release() {
	a.IntoIter().Close()
}

// slot returns a pointer to the element at index i. For zero-size element
// types there is no storage; a scratch zero value is handed out instead.
func (a *Array[T]) slot(i int) *T {
	if zeroSized[T]() {
		var scratch T
		return &scratch
	}
	return &a.buf[i]
}

// clearSlot zeroes a vacated slot so the collector can reclaim whatever the
// element referenced.
func (a *Array[T]) clearSlot(i int) {
	if i < len(a.buf) {
		var zero T
		a.buf[i] = zero
	}
}
