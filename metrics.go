package array

// SizeInUse returns the total number of bytes currently allocated in the
// bump arena. This includes internal fragmentation due to alignment.
func (b *Bump) SizeInUse() int {
	if b.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range b.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (b *Bump) NumChunks() int {
	if b.chunks == nil {
		return 0
	}
	return len(b.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks in the arena.
func (b *Bump) Capacity() int {
	if b.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range b.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (b *Bump) Utilization() float64 {
	capacity := b.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(b.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this arena.
func (b *Bump) ChunkSize() int {
	return b.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (b *Bump) Metrics() BumpMetrics {
	return BumpMetrics{
		SizeInUse:   b.SizeInUse(),
		Capacity:    b.Capacity(),
		NumChunks:   b.NumChunks(),
		ChunkSize:   b.ChunkSize(),
		Utilization: b.Utilization(),
	}
}

// BumpMetrics contains statistical information about a bump arena.
type BumpMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// CountingStrategy wraps another Strategy and counts every operation it
// performs, along with the bytes currently handed out. Not goroutine-safe;
// it is primarily an instrument for tests and diagnostics, answering
// questions like "did this workload ever reallocate".
type CountingStrategy[T any] struct {
	inner   Strategy[T]
	metrics StrategyMetrics
}

// NewCountingStrategy wraps inner with operation counting.
func NewCountingStrategy[T any](inner Strategy[T]) *CountingStrategy[T] {
	return &CountingStrategy[T]{inner: inner}
}

// Allocate counts the call and delegates to the wrapped strategy.
func (c *CountingStrategy[T]) Allocate(layout Layout) ([]T, error) {
	region, err := c.inner.Allocate(layout)
	if err != nil {
		return nil, err
	}
	c.metrics.Allocates++
	c.addInUse(int(layout.Bytes()))
	return region, nil
}

// Grow counts the call and delegates to the wrapped strategy.
func (c *CountingStrategy[T]) Grow(region []T, old, new Layout) ([]T, error) {
	next, err := c.inner.Grow(region, old, new)
	if err != nil {
		return nil, err
	}
	c.metrics.Grows++
	c.addInUse(int(new.Bytes()) - int(old.Bytes()))
	return next, nil
}

// Shrink counts the call and delegates to the wrapped strategy.
func (c *CountingStrategy[T]) Shrink(region []T, old, new Layout) ([]T, error) {
	next, err := c.inner.Shrink(region, old, new)
	if err != nil {
		return nil, err
	}
	c.metrics.Shrinks++
	c.addInUse(int(new.Bytes()) - int(old.Bytes()))
	return next, nil
}

// Deallocate counts the call and delegates to the wrapped strategy.
func (c *CountingStrategy[T]) Deallocate(region []T, layout Layout) {
	c.inner.Deallocate(region, layout)
	c.metrics.Deallocates++
	c.addInUse(-int(layout.Bytes()))
}

// Metrics returns a snapshot of the counters.
func (c *CountingStrategy[T]) Metrics() StrategyMetrics {
	return c.metrics
}

// Reallocations returns how many times a region had to be acquired or
// regrown: the sum of Allocate and Grow calls.
func (c *CountingStrategy[T]) Reallocations() int {
	return c.metrics.Allocates + c.metrics.Grows
}

func (c *CountingStrategy[T]) addInUse(delta int) {
	c.metrics.BytesInUse += delta
	if c.metrics.BytesInUse > c.metrics.PeakBytes {
		c.metrics.PeakBytes = c.metrics.BytesInUse
	}
}

// StrategyMetrics contains per-operation counters for a CountingStrategy.
type StrategyMetrics struct {
	Allocates   int // Allocate calls that succeeded
	Grows       int // Grow calls that succeeded
	Shrinks     int // Shrink calls that succeeded
	Deallocates int // Deallocate calls
	BytesInUse  int // Bytes handed out and not yet returned
	PeakBytes   int // High-water mark of BytesInUse
}
