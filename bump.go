package array

import "unsafe"

// DefaultChunkSize is the default chunk size for new bump arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk represents a single memory chunk within a bump arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Bump is a chunked bump allocator. Regions carved from it are reclaimed
// all at once by Reset or Release, never individually, which makes it a fit
// for batch-built arrays that are torn down together. Not goroutine-safe;
// wrap a BumpStrategy in a SafeStrategy for concurrent use.
//
// Chunks are plain byte memory: the collector does not trace pointers
// stored inside them, so bump-backed arrays should hold pointer-free
// element types.
type Bump struct {
	chunks       []chunk
	chunkSize    int
	currentChunk *chunk
}

// NewBump creates a bump arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewBump(chunkSize int) *Bump {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	b := &Bump{chunkSize: chunkSize}
	b.grow(chunkSize)
	return b
}

// AllocBytes returns an n-byte slice pointing into the arena's backing
// chunk, aligned for any Go type. The caller must ensure the arena remains
// reachable while the returned slice is in use. Returns nil if n <= 0.
func (b *Bump) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}

	// Fast path: use cached current chunk
	c := b.currentChunk
	if c != nil {
		off := alignPtr(c.offset)
		if off+uintptr(n) <= uintptr(len(c.buf)) {
			start := int(off)
			c.offset = off + uintptr(n)
			return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[start])), n)
		}
	}

	return b.allocBytesSlow(n)
}

// allocBytesSlow handles allocation when the fast path fails
func (b *Bump) allocBytesSlow(n int) []byte {
	b.panicIfReleased()

	b.grow(n)
	c := b.currentChunk
	off := alignPtr(c.offset)
	start := int(off)
	c.offset = off + uintptr(n)
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[start])), n)
}

// EnsureCapacity ensures the current chunk has at least n free bytes.
// If not, it grows the arena with a new chunk.
func (b *Bump) EnsureCapacity(n int) {
	b.panicIfReleased()
	ci := len(b.chunks) - 1
	if ci < 0 {
		b.grow(n)
		return
	}
	c := &b.chunks[ci]
	off := alignPtr(c.offset)
	if uintptr(n)+off > uintptr(len(c.buf)) {
		b.grow(n)
	}
}

// Reset resets allocation offsets to zero but keeps allocated chunks for
// reuse. Every region previously carved from the arena becomes invalid.
func (b *Bump) Reset() {
	b.panicIfReleased()
	for i := range b.chunks {
		b.chunks[i].offset = 0
	}
	if len(b.chunks) > 0 {
		b.currentChunk = &b.chunks[0]
	}
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation will panic.
func (b *Bump) Release() {
	b.chunks = nil
	b.currentChunk = nil
}

// grow appends a new chunk of at least min bytes.
func (b *Bump) grow(min int) {
	size := b.chunkSize
	if min > size {
		size = min
	}
	b.chunks = append(b.chunks, chunk{buf: make([]byte, size)})
	b.currentChunk = &b.chunks[len(b.chunks)-1]
}

// panicIfReleased panics if the arena has been released.
func (b *Bump) panicIfReleased() {
	if b.chunks == nil {
		panic("array: bump arena use after Release()")
	}
}

// alignPtr aligns the offset up to pointer size alignment, which satisfies
// the alignment of every Go type.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}

// BumpStrategy carves element regions for one Array out of a Bump arena.
// Several strategies may share one arena. Grown regions abandon their old
// space inside the arena; it is reclaimed wholesale by Reset or Release,
// so Deallocate is a no-op.
type BumpStrategy[T any] struct {
	Arena *Bump
}

// NewBumpStrategy returns a strategy allocating from the given arena.
func NewBumpStrategy[T any](arena *Bump) BumpStrategy[T] {
	return BumpStrategy[T]{Arena: arena}
}

// Allocate carves a fresh region of layout.Count elements from the arena.
func (s BumpStrategy[T]) Allocate(layout Layout) ([]T, error) {
	if layout.Count == 0 {
		return nil, nil
	}
	b := s.Arena.AllocBytes(int(layout.Bytes()))
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), layout.Count), nil
}

// Grow carves a larger region and copies the old contents in. The old
// region's space is not reclaimed until the arena is Reset or Released.
func (s BumpStrategy[T]) Grow(region []T, _, new Layout) ([]T, error) {
	next, err := s.Allocate(new)
	if err != nil {
		return nil, err
	}
	copy(next, region)
	return next, nil
}

// Shrink truncates the region in place. Bump memory cannot be handed back
// piecemeal, so no bytes move.
func (s BumpStrategy[T]) Shrink(region []T, _, new Layout) ([]T, error) {
	return region[:new.Count], nil
}

// Deallocate is a no-op; the arena reclaims everything on Reset or Release.
func (s BumpStrategy[T]) Deallocate([]T, Layout) {}
