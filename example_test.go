package array

import (
	"fmt"
	"slices"
)

// Example demonstrates basic array usage
func Example() {
	a := New[int]()
	defer a.Release() // Always clean up

	for i := 0; i < 20; i++ {
		a.Push(i)
	}

	// Excise the first five elements
	for v := range a.Drain(0, 5).Values() {
		fmt.Println("drained", v)
	}

	fmt.Println(a)
	// Output:
	// drained 0
	// drained 1
	// drained 2
	// drained 3
	// drained 4
	// [5 6 7 8 9 10 11 12 13 14 15 16 17 18 19]
}

// ExampleCollect demonstrates building an array from a sequence and
// consuming it with the owning iterator
func ExampleCollect() {
	a := Collect(slices.Values([]string{"ant", "bee", "cat"}))

	v, _ := a.Pop()
	fmt.Println("popped:", v)

	for v := range a.IntoIter().Values() {
		fmt.Println("consumed:", v)
	}
	// Output:
	// popped: cat
	// consumed: ant
	// consumed: bee
}

// ExampleArray_SwapRemove demonstrates O(1) unordered removal
func ExampleArray_SwapRemove() {
	a := Of(10, 20, 30, 40)
	defer a.Release()

	v, _ := a.SwapRemove(1)
	fmt.Println("removed:", v)
	fmt.Println("remaining:", a)
	// Output:
	// removed: 20
	// remaining: [10 40 30]
}

// ExampleArray_Retain demonstrates in-place filtering
func ExampleArray_Retain() {
	a := Of(1, 2, 3, 4, 5, 6)
	defer a.Release()

	a.Retain(func(v *int) bool { return *v%2 == 0 })
	fmt.Println(a)
	// Output:
	// [2 4 6]
}

// ExampleNewBumpStrategy demonstrates arena-backed storage with wholesale
// teardown
func ExampleNewBumpStrategy() {
	arena := NewBump(1024)
	defer arena.Release()

	a := NewIn[int64](NewBumpStrategy[int64](arena))
	for i := int64(0); i < 20; i++ {
		a.Push(i)
	}

	fmt.Println("length:", a.Len())
	fmt.Println("arena bytes in use:", arena.SizeInUse())

	// Reclaim every region the arena handed out, all at once.
	arena.Reset()
	fmt.Println("after reset:", arena.SizeInUse())
	// Output:
	// length: 20
	// arena bytes in use: 504
	// after reset: 0
}

// ExampleNewCountingStrategy demonstrates observing allocation behavior
func ExampleNewCountingStrategy() {
	counting := NewCountingStrategy[int](Heap[int]{})
	a := NewIn[int](counting)

	a.Reserve(100)
	for i := 0; i < 100; i++ {
		a.Push(i)
	}

	m := counting.Metrics()
	fmt.Println("allocates:", m.Allocates)
	fmt.Println("grows:", m.Grows)
	fmt.Println("capacity:", a.Cap())
	// Output:
	// allocates: 1
	// grows: 0
	// capacity: 128
}
