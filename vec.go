package vec

import (
	"iter"

	"github.com/pkg/errors"
)

// Vec is a contiguous growable sequence of T built on raw slot storage.
// Slots [0, Len()) hold live elements in insertion order; slots
// [Len(), Cap()) are raw. The zero Vec is an empty vector ready for use.
//
// Vec is not safe for concurrent use; callers serialize access externally.
// Never copy a Vec value (go vet flags it); move contents with TakeFrom or
// Swap instead.
type Vec[T any] struct {
	data    Block[T]
	size    int
	growths int
}

// New returns an empty vector with no storage.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// NewLen returns a vector of n zero-value elements with capacity n.
// On allocation failure no vector is produced.
func NewLen[T any](n int) (*Vec[T], error) {
	v := &Vec[T]{}
	if err := v.data.alloc(n); err != nil {
		return nil, err
	}
	// Value-initialize explicitly rather than trusting the backend's
	// zeroing.
	clear(v.data.slots[:n])
	v.size = n
	return v, nil
}

// NewFrom returns a deep, independent copy of other: same sequence of
// values, distinct storage. Elements are duplicated with cloneOf, so Cloner
// types control their own copies. On any failure no vector is produced,
// every element cloned so far is destroyed, and other is untouched.
func NewFrom[T any](other *Vec[T]) (*Vec[T], error) {
	v := &Vec[T]{}
	if err := v.data.alloc(other.size); err != nil {
		return nil, err
	}
	for i := 0; i < other.size; i++ {
		c, err := cloneOf(other.data.slots[i])
		if err != nil {
			destroyRange(v.data.slots[:i])
			v.data.Release()
			return nil, errors.Wrapf(err, "vec: clone element %d", i)
		}
		v.data.slots[i] = c
	}
	v.size = other.size
	return v, nil
}

// NewTake returns a vector owning other's storage and elements, in O(1).
// other is left empty with no storage. Never fails.
func NewTake[T any](other *Vec[T]) *Vec[T] {
	v := &Vec[T]{}
	v.TakeFrom(other)
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.size
}

// Cap returns the slot capacity of the current block.
func (v *Vec[T]) Cap() int {
	return v.data.Cap()
}

// At returns a pointer to element i. The pointer stays valid until the next
// capacity-changing operation. Panics when i is out of range.
func (v *Vec[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return &v.data.slots[i]
}

// Slice returns the live elements as a slice sharing the vector's storage.
// Any capacity-changing operation invalidates the slice.
func (v *Vec[T]) Slice() []T {
	return v.data.slots[:v.size]
}

// Reserve grows capacity to at least n; it is a no-op when the current
// capacity already suffices. On failure the vector is unchanged.
func (v *Vec[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	return v.regrow(n)
}

// Push appends x, growing storage when the block is full. Ownership of x
// transfers to the vector. On failure the vector is unchanged.
func (v *Vec[T]) Push(x T) error {
	if v.size == v.data.Cap() {
		if err := v.regrow(v.grownCap()); err != nil {
			return err
		}
	}
	v.data.slots[v.size] = x
	v.size++
	return nil
}

// Pop destroys the last element. No-op on an empty vector; never fails.
func (v *Vec[T]) Pop() {
	if v.size == 0 {
		return
	}
	v.size--
	destroy(&v.data.slots[v.size])
}

// Resize changes the live element count to n. Growing value-initializes the
// new tail, reserving capacity first if needed; shrinking destroys the
// excess tail. On failure the vector is unchanged. Panics when n is
// negative.
func (v *Vec[T]) Resize(n int) error {
	switch {
	case n < 0:
		panic("vec: negative length")
	case n == v.size:
		return nil
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		clear(v.data.slots[v.size:n])
	default:
		destroyRange(v.data.slots[n:v.size])
	}
	v.size = n
	return nil
}

// Insert places x at position i, shifting later elements one slot toward
// the back. i may equal Len(), which appends. Ownership of x transfers to
// the vector. With growth the operation leaves the vector unchanged on
// failure; without growth nothing can fail. Panics when i is out of range.
func (v *Vec[T]) Insert(i int, x T) error {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	if v.size == v.data.Cap() {
		return v.insertGrow(i, x)
	}
	if i < v.size {
		// Backward-safe shift. The bitwise duplicate left at i is
		// overwritten by x, not destroyed: its element now lives one
		// slot back.
		copy(v.data.slots[i+1:v.size+1], v.data.slots[i:v.size])
	}
	v.data.slots[i] = x
	v.size++
	return nil
}

// Erase destroys the element at position i and shifts later elements one
// slot toward the front. Never fails. Panics when i is out of range.
func (v *Vec[T]) Erase(i int) {
	if i < 0 || i >= v.size {
		panic("vec: erase position out of range")
	}
	destroy(&v.data.slots[i])
	copy(v.data.slots[i:v.size-1], v.data.slots[i+1:v.size])
	// The last slot holds a bitwise duplicate after the shift; its
	// element moved forward, so forget it rather than dispose it.
	forget(v.data.slots[v.size-1 : v.size])
	v.size--
}

// CopyFrom makes v element-wise equal to rhs.
//
// When rhs does not fit in the current capacity, the copy is built aside
// and swapped in, so failure leaves v unchanged. Otherwise storage is
// reused: the overlapping prefix is overwritten element by element, extra
// tail elements are cloned in, and excess elements are destroyed exactly
// once. A clone failure on the reuse path leaves v valid and consistent,
// with the prefix already overwritten.
func (v *Vec[T]) CopyFrom(rhs *Vec[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.data.Cap() {
		tmp, err := NewFrom(rhs)
		if err != nil {
			return err
		}
		v.TakeFrom(tmp)
		return nil
	}
	overlap := min(v.size, rhs.size)
	for i := 0; i < overlap; i++ {
		c, err := cloneOf(rhs.data.slots[i])
		if err != nil {
			return errors.Wrapf(err, "vec: clone element %d", i)
		}
		destroy(&v.data.slots[i])
		v.data.slots[i] = c
	}
	for i := v.size; i < rhs.size; i++ {
		c, err := cloneOf(rhs.data.slots[i])
		if err != nil {
			return errors.Wrapf(err, "vec: clone element %d", i)
		}
		v.data.slots[i] = c
		v.size = i + 1
	}
	if rhs.size < v.size {
		destroyRange(v.data.slots[rhs.size:v.size])
		v.size = rhs.size
	}
	return nil
}

// TakeFrom moves rhs's storage and elements into v in O(1): v's own
// elements are destroyed and its storage freed, then rhs is left empty with
// no storage. Never fails.
func (v *Vec[T]) TakeFrom(rhs *Vec[T]) {
	if v == rhs {
		return
	}
	destroyRange(v.data.slots[:v.size])
	v.data.Release()
	v.data.Swap(&rhs.data)
	v.size = rhs.size
	rhs.size = 0
}

// Swap exchanges the contents of two vectors in O(1).
func (v *Vec[T]) Swap(other *Vec[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Clear destroys all live elements and keeps the storage for reuse.
func (v *Vec[T]) Clear() {
	destroyRange(v.data.slots[:v.size])
	v.size = 0
}

// Release destroys all live elements and frees the storage. The vector is
// left empty and may be reused; it grows fresh storage on demand.
func (v *Vec[T]) Release() {
	destroyRange(v.data.slots[:v.size])
	v.size = 0
	v.data.Release()
}

// All returns an index/value iterator over the live elements. Restartable.
// Mutating capacity during a traversal invalidates it.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live elements in index order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.slots[i]) {
				return
			}
		}
	}
}

// regrow transfers the live elements into a fresh block of exactly capacity
// slots and adopts it. Allocation happens before any element is touched, so
// failure leaves the vector unchanged. Element transfer is bitwise and
// cannot fail; the vacated slots are forgotten, not disposed.
func (v *Vec[T]) regrow(capacity int) error {
	nb, err := NewBlock[T](capacity)
	if err != nil {
		return err
	}
	copy(nb.slots, v.data.slots[:v.size])
	forget(v.data.slots[:v.size])
	v.data.Swap(nb)
	nb.Release()
	v.growths++
	return nil
}

// insertGrow builds the post-insert sequence in a fresh block: x at its
// target slot, the old prefix and suffix transferred on either side.
func (v *Vec[T]) insertGrow(i int, x T) error {
	nb, err := NewBlock[T](v.grownCap())
	if err != nil {
		return err
	}
	nb.slots[i] = x
	copy(nb.slots[:i], v.data.slots[:i])
	copy(nb.slots[i+1:], v.data.slots[i:v.size])
	forget(v.data.slots[:v.size])
	v.data.Swap(nb)
	nb.Release()
	v.growths++
	v.size++
	return nil
}

// grownCap returns the doubling-policy capacity for one more element.
func (v *Vec[T]) grownCap() int {
	if v.size == 0 {
		return 1
	}
	return 2 * v.size
}
