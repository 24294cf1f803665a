package array

import "sync"

// DefaultPoolCapacity is the region capacity, in elements, pooled by
// PoolStrategy when none is given.
const DefaultPoolCapacity = 1024

// PoolStrategy recycles regions of one fixed capacity through a sync.Pool.
// Requests at or under that capacity are served from the pool; larger ones
// fall through to plain allocation and are never pooled. Deallocated
// regions are cleared before being returned to the pool so they hold no
// stale element references.
//
// The strategy itself is safe to share between goroutines; the arrays
// allocating through it are not.
type PoolStrategy[T any] struct {
	capacity int
	pool     *sync.Pool
}

// NewPoolStrategy returns a strategy pooling regions of the given capacity
// in elements. If capacity <= 0, DefaultPoolCapacity is used.
func NewPoolStrategy[T any](capacity int) *PoolStrategy[T] {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}
	return &PoolStrategy[T]{
		capacity: capacity,
		pool: &sync.Pool{
			New: func() any {
				region := make([]T, capacity)
				return &region
			},
		},
	}
}

// Capacity returns the pooled region capacity in elements.
func (p *PoolStrategy[T]) Capacity() int {
	return p.capacity
}

// Allocate returns a region of layout.Count elements, recycled from the
// pool when it fits the pooled capacity.
func (p *PoolStrategy[T]) Allocate(layout Layout) ([]T, error) {
	if layout.Count > p.capacity {
		return make([]T, layout.Count), nil
	}
	region := *p.pool.Get().(*[]T)
	return region[:layout.Count], nil
}

// Grow extends the region in place when its pooled backing already has the
// room, and falls back to a fresh region plus copy otherwise. The old
// region is recycled.
func (p *PoolStrategy[T]) Grow(region []T, old, new Layout) ([]T, error) {
	if new.Count <= cap(region) {
		return region[:new.Count], nil
	}
	next, err := p.Allocate(new)
	if err != nil {
		return nil, err
	}
	copy(next, region)
	p.Deallocate(region, old)
	return next, nil
}

// Shrink truncates the region in place, keeping its backing so it can
// still be recycled whole.
func (p *PoolStrategy[T]) Shrink(region []T, _, new Layout) ([]T, error) {
	return region[:new.Count], nil
}

// Deallocate clears the region and, when it matches the pooled capacity,
// returns it to the pool. Oversized regions are left to the collector.
func (p *PoolStrategy[T]) Deallocate(region []T, _ Layout) {
	if cap(region) != p.capacity {
		return
	}
	full := region[:cap(region)]
	clear(full)
	p.pool.Put(&full)
}
