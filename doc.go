// Package vec implements a generic contiguous growable vector built
// directly on raw slot storage, without Go's built-in slice growth.
//
// # Overview
//
// A Vec owns one contiguous block of raw storage sized for exactly Cap()
// element slots, of which the first Len() hold live elements. Storage
// ownership, element lifetime, and growth are managed explicitly:
//
//   - Block allocates and frees untyped storage and never touches element
//     lifetimes.
//   - Vec constructs and destroys elements in Block slots, exactly once per
//     live element, and replaces the block wholesale when it must grow.
//
// This split keeps reallocation and copy work minimal and makes the failure
// behavior of every operation precise. It is useful for:
//
//   - Large sequences where growth and reallocation count must be controlled
//   - Element types owning resources that need exact destroy-once semantics
//   - Reducing garbage collection pressure with off-heap storage (see below)
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Always clean up
//
//	for i := 1; i <= 3; i++ {
//		if err := v.Push(i); err != nil {
//			return err
//		}
//	}
//
//	v.Insert(1, 9)        // [1 9 2 3]
//	v.Erase(0)            // [9 2 3]
//	*v.At(0) = 10         // [10 2 3]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifecycle
//
// Elements move bitwise: Push, Insert, TakeFrom, and growth transfer values
// without copying resources, and a transfer never fails. Duplication is
// different: NewFrom and CopyFrom copy elements, by plain assignment for
// ordinary types, or through the Cloner interface for types that own
// resources. Clone may fail, and those operations propagate the failure.
//
// Destruction is explicit and runs exactly once per live element. Types
// owning external resources implement Disposer; the vector calls Dispose
// before a slot goes back to raw. Slots whose element was moved elsewhere
// are never disposed.
//
// # Failure Guarantees
//
//   - NewLen, NewFrom, Reserve, Resize, Push, and growing Insert leave the
//     vector exactly as it was when they fail.
//   - CopyFrom falls back to copy-and-swap when the source does not fit in
//     the current capacity, which is equally safe; the storage-reuse path
//     keeps the vector valid but may leave a partially overwritten prefix
//     when a clone fails.
//   - Pop, Erase, TakeFrom, Swap, Clear, and Release never fail.
//   - Out-of-range indices and positions are programming errors and panic.
//
// # Storage Backends
//
// By default blocks are typed slabs on the Go heap: pointer fields inside
// elements stay visible to the garbage collector, and the collector
// reclaims a slab once its block is released. Building with the vec_offheap
// tag on Linux maps blocks with mmap instead; Release then returns the
// pages to the kernel immediately, and allocation failures surface as
// ErrAllocation. Off-heap storage is untyped and invisible to the garbage
// collector, so it suits pointer-free element types.
//
// # Important Notes
//
//   - Pointers and slices from At, Slice, and Slot are valid only until the
//     next capacity-changing operation.
//   - The zero Vec is an empty vector ready for use.
//   - Vec is not goroutine-safe; callers serialize concurrent access.
//   - With vec_offheap, prefer element types without pointer fields; the
//     collector cannot see pointers stored in mapped pages.
//
// # Metrics and Monitoring
//
// The vector reports storage statistics for monitoring growth behavior:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Reallocations: %d\n", m.Growths)
package vec
