package vec

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrAllocation is returned when raw storage for a block cannot be obtained.
// Wrap context is attached at the failure site; match with errors.Is.
var ErrAllocation = errors.New("vec: allocation failure")

// maxAllocBytes caps a single raw allocation request.
const maxAllocBytes = math.MaxInt >> 1

// slotBytes returns the byte size of a raw allocation holding capacity slots
// of elemSize bytes each, or an AllocationFailure when the request cannot be
// represented.
func slotBytes(elemSize, capacity int) (int, error) {
	if capacity < 0 {
		return 0, errors.Wrapf(ErrAllocation, "negative capacity %d", capacity)
	}
	if elemSize > 0 && capacity > maxAllocBytes/elemSize {
		return 0, errors.Wrapf(ErrAllocation, "%d slots of %d bytes exceed the allocator limit", capacity, elemSize)
	}
	return elemSize * capacity, nil
}

// typedView reinterprets raw as a slice of n slots of T.
// raw must span at least n slots and be aligned for T.
func typedView[T any](raw []byte, n int) []T {
	if n == 0 || len(raw) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
}
