//go:build vec_offheap && linux

package vec

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// allocSlots obtains zeroed storage for capacity slots of T from the kernel
// via an anonymous private mapping, viewed as typed slots. Mappings are page
// aligned, which satisfies any element alignment. Off-heap slots are
// invisible to the garbage collector, so this backend suits pointer-free
// element types.
func allocSlots[T any](capacity int) ([]byte, []T, error) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	size, err := slotBytes(elemSize, capacity)
	if err != nil {
		return nil, nil, err
	}
	if capacity == 0 {
		return nil, nil, nil
	}
	if elemSize == 0 {
		// Zero-sized elements need slot bookkeeping but no mapping.
		return nil, make([]T, capacity), nil
	}
	raw, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrAllocation, "mmap %d bytes: %v", size, err)
	}
	return raw, typedView[T](raw, capacity), nil
}

// freeSlots returns the mapping to the kernel. raw must be the exact slice
// produced by allocSlots.
func freeSlots(raw []byte) {
	if raw == nil {
		return
	}
	_ = unix.Munmap(raw)
}
