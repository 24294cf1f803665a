package array

import "iter"

// IntoIter owns an Array's storage outright and consumes it from either
// end. Whatever is left unconsumed when Close runs is dropped there, and
// the region itself is returned to the strategy, so the iterator is the
// single place "drop remaining, then free" ever happens.
type IntoIter[T any] struct {
	buf   []T
	len   int // one past the last live element; the back cursor
	start int // first live element; the front cursor
	alloc Strategy[T]
}

// IntoIter transfers the array's storage into an owning iterator. The array
// is reset to the zero value: an empty, reusable array whose own Release is
// a no-op, so cleanup can only ever run through the returned iterator.
func (a *Array[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		buf:   a.buf,
		len:   a.len,
		alloc: a.strategy(),
	}
	*a = Array[T]{}
	return it
}

// Len returns the number of elements not yet consumed.
func (it *IntoIter[T]) Len() int {
	return it.len - it.start
}

// Next removes and returns the first remaining element. It reports false
// when the iterator is exhausted.
func (it *IntoIter[T]) Next() (T, bool) {
	var v T
	if it.start >= it.len {
		return v, false
	}
	if !zeroSized[T]() {
		v = it.buf[it.start]
		var zero T
		it.buf[it.start] = zero
	}
	it.start++
	return v, true
}

// NextBack removes and returns the last remaining element, decrementing the
// owned length. It reports false when the iterator is exhausted.
func (it *IntoIter[T]) NextBack() (T, bool) {
	var v T
	if it.start >= it.len {
		return v, false
	}
	it.len--
	if !zeroSized[T]() {
		v = it.buf[it.len]
		var zero T
		it.buf[it.len] = zero
	}
	return v, true
}

// Skip advances the front cursor by up to n elements, dropping each in
// place. Returns the number actually skipped.
func (it *IntoIter[T]) Skip(n int) int {
	skipped := 0
	for ; skipped < n && it.start < it.len; skipped++ {
		if !zeroSized[T]() {
			var zero T
			it.buf[it.start] = zero
		}
		it.start++
	}
	return skipped
}

// SkipBack retreats the back cursor by up to n elements, dropping each in
// place. Returns the number actually skipped.
func (it *IntoIter[T]) SkipBack(n int) int {
	skipped := 0
	for ; skipped < n && it.start < it.len; skipped++ {
		it.len--
		if !zeroSized[T]() {
			var zero T
			it.buf[it.len] = zero
		}
	}
	return skipped
}

// Values returns the remaining elements as a forward sequence. The iterator
// is closed when the sequence stops, whether the elements ran out, the
// caller broke the loop, or the loop body panicked.
func (it *IntoIter[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Close drops every remaining element and returns the region to the
// strategy. Idempotent.
func (it *IntoIter[T]) Close() {
	if it.alloc == nil {
		return
	}
	it.Skip(it.Len())
	if !zeroSized[T]() && it.buf != nil {
		it.alloc.Deallocate(it.buf, LayoutOf[T](len(it.buf)))
	}
	it.buf = nil
	it.alloc = nil
}
