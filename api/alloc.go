// Package api define types and interfaces common to memory
// allocators implemented by this module.
package api

import "unsafe"

// Mallocer interface for custom memory management.
type Mallocer interface {
	// Slabs allocatable block sizes, one per order.
	Slabs() (sizes []int64)

	// Alloc allocate a block of at least `n` bytes from the arena,
	// rounded up to the nearest block size. Allocated addresses are
	// always aligned to their block size, relative to the arena base.
	Alloc(n int64) (unsafe.Pointer, error)

	// Slabsize return the block size backing a live allocation.
	Slabsize(ptr unsafe.Pointer) (int64, error)

	// Free a block back to the arena, merging it with its buddy while
	// the buddy is also free.
	Free(ptr unsafe.Pointer) error

	// Freecounts return the number of free blocks at each order,
	// indexed by order.
	Freecounts() []int64

	// Release arena and all its resources.
	Release()

	// Info of memory accounting for this arena.
	Info() (capacity, heap, alloc, overhead int64)

	// Utilization map of block-size and the percentage of arena
	// capacity held live at that size.
	Utilization() ([]int, []float64)
}
