package array

import (
	"slices"
	"testing"
)

func TestNewPoolStrategy(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{"default capacity", 0, DefaultPoolCapacity},
		{"negative capacity", -1, DefaultPoolCapacity},
		{"custom capacity", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPoolStrategy[int](tt.capacity)
			if p.Capacity() != tt.expected {
				t.Errorf("NewPoolStrategy(%d) capacity = %d, want %d", tt.capacity, p.Capacity(), tt.expected)
			}
		})
	}
}

func TestPoolStrategyAllocate(t *testing.T) {
	p := NewPoolStrategy[int](16)

	region, err := p.Allocate(LayoutOf[int](8))
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(region) != 8 || cap(region) != 16 {
		t.Errorf("region len, cap = %d, %d, want 8, 16", len(region), cap(region))
	}

	// Oversized requests fall through to plain allocation.
	big, err := p.Allocate(LayoutOf[int](100))
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(big) != 100 || cap(big) != 100 {
		t.Errorf("oversized region len, cap = %d, %d, want 100, 100", len(big), cap(big))
	}
}

func TestPoolStrategyRecycles(t *testing.T) {
	p := NewPoolStrategy[*int](4)

	region, _ := p.Allocate(LayoutOf[*int](4))
	v := 42
	region[0] = &v
	p.Deallocate(region, LayoutOf[*int](4))

	// The recycled region comes back cleared.
	next, _ := p.Allocate(LayoutOf[*int](4))
	for i, ptr := range next {
		if ptr != nil {
			t.Errorf("recycled slot %d still referenced", i)
		}
	}
}

func TestPoolStrategyGrowInPlace(t *testing.T) {
	p := NewPoolStrategy[int](16)
	region, _ := p.Allocate(LayoutOf[int](4))
	copy(region, []int{1, 2, 3, 4})

	grown, err := p.Grow(region, LayoutOf[int](4), LayoutOf[int](8))
	if err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if len(grown) != 8 || !slices.Equal(grown[:4], []int{1, 2, 3, 4}) {
		t.Errorf("Grow lost contents: %v", grown)
	}
	if &grown[0] != &region[0] {
		t.Error("Grow within pooled capacity should extend in place")
	}

	// Growing past the pooled capacity moves to a fresh region.
	moved, err := p.Grow(grown, LayoutOf[int](8), LayoutOf[int](32))
	if err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if !slices.Equal(moved[:4], []int{1, 2, 3, 4}) {
		t.Errorf("Grow lost contents: %v", moved[:8])
	}
}

func TestPoolStrategyArray(t *testing.T) {
	p := NewPoolStrategy[int](8)

	for round := 0; round < 3; round++ {
		a := NewIn[int](p)
		for i := 0; i < 8; i++ {
			a.Push(i)
		}
		if !slices.Equal(a.Slice(), []int{0, 1, 2, 3, 4, 5, 6, 7}) {
			t.Fatalf("round %d: %v", round, a.Slice())
		}
		a.Release()
	}
}
