//go:build !vec_offheap || !linux

package vec

import "unsafe"

// allocSlots obtains zeroed storage for capacity slots of T from the Go
// heap. The slab is typed so pointer fields inside elements stay visible to
// the garbage collector. The raw handle is nil on this backend; the
// collector reclaims the slab once the owning block drops its slice.
func allocSlots[T any](capacity int) ([]byte, []T, error) {
	var zero T
	if _, err := slotBytes(int(unsafe.Sizeof(zero)), capacity); err != nil {
		return nil, nil, err
	}
	if capacity == 0 {
		return nil, nil, nil
	}
	return nil, make([]T, capacity), nil
}

// freeSlots is a no-op on the heap backend.
func freeSlots(raw []byte) {}
