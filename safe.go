package array

import "sync"

// SafeStrategy is a mutex-protected wrapper around another Strategy. It
// exists for sharing one underlying strategy (a Bump arena, say) between
// arrays owned by different goroutines. It does not make the arrays
// themselves safe for concurrent use.
type SafeStrategy[T any] struct {
	mu    sync.Mutex
	inner Strategy[T]
}

// NewSafeStrategy wraps inner so its operations are serialized.
func NewSafeStrategy[T any](inner Strategy[T]) *SafeStrategy[T] {
	return &SafeStrategy[T]{inner: inner}
}

// Allocate thread-safely allocates a region from the wrapped strategy.
func (s *SafeStrategy[T]) Allocate(layout Layout) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Allocate(layout)
}

// Grow thread-safely grows a region through the wrapped strategy.
func (s *SafeStrategy[T]) Grow(region []T, old, new Layout) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Grow(region, old, new)
}

// Shrink thread-safely shrinks a region through the wrapped strategy.
func (s *SafeStrategy[T]) Shrink(region []T, old, new Layout) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Shrink(region, old, new)
}

// Deallocate thread-safely releases a region through the wrapped strategy.
func (s *SafeStrategy[T]) Deallocate(region []T, layout Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Deallocate(region, layout)
}
