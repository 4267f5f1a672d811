package vec

// noCopy flags accidental shallow copies to go vet's copylocks check.
// Copying a Block or a Vec would leave two owners of one raw buffer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Block owns one contiguous raw allocation sized for exactly Cap() slots of
// T. Capacity is fixed for the block's lifetime. A Block never constructs or
// destroys elements: slots hold raw (zeroed) storage until a caller writes
// an element, and the caller must destroy any live elements before Release,
// because Release frees the storage without looking at it.
//
// Ownership of the storage is exclusive. Transfer it with Swap; never copy
// a Block value.
type Block[T any] struct {
	noCopy noCopy

	raw   []byte // off-heap mapping handle; nil on the heap backend
	slots []T    // slot storage, len == capacity
}

// NewBlock allocates raw storage for capacity slots of T. capacity 0 is
// valid and allocates nothing. No element is constructed.
func NewBlock[T any](capacity int) (*Block[T], error) {
	b := &Block[T]{}
	if err := b.alloc(capacity); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Block[T]) alloc(capacity int) error {
	raw, slots, err := allocSlots[T](capacity)
	if err != nil {
		return err
	}
	b.raw = raw
	b.slots = slots
	return nil
}

// Cap returns the slot count, fixed for the block's lifetime.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// Slot returns a pointer to slot i. The slot may be raw or hold a live
// element; the caller tracks which. Panics when i is out of range.
func (b *Block[T]) Slot(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic("vec: block slot index out of range")
	}
	return &b.slots[i]
}

// Swap exchanges the storage of two blocks in O(1) without touching slot
// contents. This is the only way ownership moves between blocks.
func (b *Block[T]) Swap(other *Block[T]) {
	b.raw, other.raw = other.raw, b.raw
	b.slots, other.slots = other.slots, b.slots
}

// Release frees the raw storage and leaves the block with capacity 0.
// Live elements are not destroyed here; the caller does that first.
func (b *Block[T]) Release() {
	freeSlots(b.raw)
	b.raw = nil
	b.slots = nil
}
