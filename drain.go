package array

import (
	"fmt"
	"iter"
)

// Drain lazily removes the sub-range [holeStart, holeEnd) from an Array.
// Elements may be consumed from either end; anything not consumed is still
// removed when the drain is closed, and the surviving tail is shifted down
// to close the gap.
//
// A Drain borrows its array exclusively. The array must not be touched until
// Close has run; Close must always run, so the usual form is
//
//	d := a.Drain(lo, hi)
//	defer d.Close()
//
// or consuming through Values, which closes on the caller's behalf.
type Drain[T any] struct {
	arr       *Array[T]
	holeStart int
	holeEnd   int
	start     int // next index to yield from the front
	end       int // one past the next index to yield from the back
}

// Drain removes the elements in [start, end) from the array, returning an
// iterator over them in their original order. The bounds must satisfy
// 0 <= start <= end <= Len; anything else is a caller logic error and
// panics. Empty and full ranges are both valid.
func (a *Array[T]) Drain(start, end int) *Drain[T] {
	if start < 0 || start > end || end > a.len {
		panic(fmt.Sprintf("array: drain bounds [%d:%d) out of range for length %d", start, end, a.len))
	}
	return &Drain[T]{
		arr:       a,
		holeStart: start,
		holeEnd:   end,
		start:     start,
		end:       end,
	}
}

// Len returns the number of elements not yet yielded.
func (d *Drain[T]) Len() int {
	return d.end - d.start
}

// Next removes and returns the first not-yet-yielded element. It reports
// false when the window is exhausted.
func (d *Drain[T]) Next() (T, bool) {
	var v T
	if d.arr == nil || d.start >= d.end {
		return v, false
	}
	if !zeroSized[T]() {
		v = d.arr.buf[d.start]
		d.arr.clearSlot(d.start)
	}
	d.start++
	return v, true
}

// NextBack removes and returns the last not-yet-yielded element: the end
// cursor retreats first, exposing the element it then reads. It reports
// false when the window is exhausted.
func (d *Drain[T]) NextBack() (T, bool) {
	var v T
	if d.arr == nil || d.start >= d.end {
		return v, false
	}
	d.end--
	if !zeroSized[T]() {
		v = d.arr.buf[d.end]
		d.arr.clearSlot(d.end)
	}
	return v, true
}

// Skip advances the front cursor by up to n elements without yielding them.
// Skipped elements are dropped in place; they are removals, not elements
// left behind. Returns the number actually skipped.
func (d *Drain[T]) Skip(n int) int {
	if d.arr == nil {
		return 0
	}
	skipped := 0
	for ; skipped < n && d.start < d.end; skipped++ {
		d.arr.clearSlot(d.start)
		d.start++
	}
	return skipped
}

// SkipBack retreats the back cursor by up to n elements without yielding
// them, dropping each in place. Returns the number actually skipped.
func (d *Drain[T]) SkipBack(n int) int {
	if d.arr == nil {
		return 0
	}
	skipped := 0
	for ; skipped < n && d.start < d.end; skipped++ {
		d.end--
		d.arr.clearSlot(d.end)
	}
	return skipped
}

// Values returns the remaining elements as a forward sequence. The drain is
// closed when the sequence stops, whether the elements ran out, the caller
// broke the loop, or the loop body panicked.
func (d *Drain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			v, ok := d.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Close finalizes the drain: whatever remains in the window is dropped, the
// tail beyond the hole is shifted down to close the gap, and the array's
// length is updated. Correct after zero, partial, or full consumption, and
// idempotent.
func (d *Drain[T]) Close() {
	if d.arr == nil {
		return
	}
	a := d.arr
	d.arr = nil
	fullLen := a.len
	for i := d.start; i < d.end; i++ {
		a.clearSlot(i)
	}
	tail := fullLen - d.holeEnd
	if !zeroSized[T]() && tail > 0 && d.holeStart != d.holeEnd {
		copy(a.buf[d.holeStart:], a.buf[d.holeEnd:fullLen])
	}
	newLen := d.holeStart + tail
	for i := newLen; i < fullLen; i++ {
		a.clearSlot(i)
	}
	a.len = newLen
}
