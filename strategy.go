package array

import (
	"fmt"
	"unsafe"
)

// Layout describes a memory region as element size and alignment times an
// element count. Strategies receive the layout of both the old and the new
// region so they can size, align and copy without knowing the element type's
// identity.
type Layout struct {
	Size  uintptr // size of one element in bytes
	Align uintptr // required alignment of one element
	Count int     // number of elements the region holds
}

// LayoutOf returns the layout for a region of count elements of type T.
func LayoutOf[T any](count int) Layout {
	var zero T
	return Layout{
		Size:  unsafe.Sizeof(zero),
		Align: unsafe.Alignof(zero),
		Count: count,
	}
}

// Bytes returns the total size of the region in bytes.
func (l Layout) Bytes() uintptr {
	return l.Size * uintptr(l.Count)
}

// Strategy supplies raw element regions to an Array. A region is a full
// []T slice whose length is the region's capacity in elements; the Array
// tracks which prefix of it is initialized.
//
// Grow and Shrink must return a region holding the old region's first
// new.Count elements (for Grow, all of them). A returned error is treated
// by the Array as fatal.
type Strategy[T any] interface {
	// Allocate returns a fresh region of layout.Count elements.
	Allocate(layout Layout) ([]T, error)

	// Grow returns a larger region containing the old region's elements.
	Grow(region []T, old, new Layout) ([]T, error)

	// Shrink returns a smaller region keeping the first new.Count elements.
	Shrink(region []T, old, new Layout) ([]T, error)

	// Deallocate releases a region previously obtained from this strategy.
	Deallocate(region []T, layout Layout)
}

// Heap is the default strategy. It allocates typed regions straight from the
// Go heap, so it is safe for element types containing pointers, and leaves
// reclamation to the garbage collector.
type Heap[T any] struct{}

// Allocate returns a region of layout.Count elements.
func (Heap[T]) Allocate(layout Layout) ([]T, error) {
	return make([]T, layout.Count), nil
}

// Grow allocates a larger region and copies the old contents in.
func (Heap[T]) Grow(region []T, _, new Layout) ([]T, error) {
	next := make([]T, new.Count)
	copy(next, region)
	return next, nil
}

// Shrink allocates a smaller region keeping the first new.Count elements,
// letting the collector reclaim the old one.
func (Heap[T]) Shrink(region []T, _, new Layout) ([]T, error) {
	next := make([]T, new.Count)
	copy(next, region[:new.Count])
	return next, nil
}

// Deallocate is a no-op; the garbage collector reclaims the region.
func (Heap[T]) Deallocate([]T, Layout) {}

// fatalAlloc converts a strategy failure into a panic. Continuing after a
// failed allocation would leave the array without the capacity its caller
// was promised.
func fatalAlloc(op string, layout Layout, err error) {
	panic(fmt.Sprintf("array: %s of %d bytes failed: %v", op, layout.Bytes(), err))
}
