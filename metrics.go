package vec

import "unsafe"

// Metrics contains a statistics snapshot of a vector.
type Metrics struct {
	Len           int     // live elements
	Cap           int     // slot capacity of the current block
	ElemSize      int     // bytes per slot
	BytesLive     int     // bytes spanned by live elements
	BytesReserved int     // bytes spanned by all slots
	Growths       int     // reallocations performed since creation
	Utilization   float64 // ratio of live to total slots (0.0-1.0)
}

// Growths returns the number of reallocations the vector has performed.
// A sequence of N pushes from empty performs O(log N) of them.
func (v *Vec[T]) Growths() int {
	return v.growths
}

// Metrics returns a snapshot of vector statistics.
func (v *Vec[T]) Metrics() Metrics {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	m := Metrics{
		Len:           v.size,
		Cap:           v.data.Cap(),
		ElemSize:      elemSize,
		BytesLive:     v.size * elemSize,
		BytesReserved: v.data.Cap() * elemSize,
		Growths:       v.growths,
	}
	if m.Cap > 0 {
		m.Utilization = float64(m.Len) / float64(m.Cap)
	}
	return m
}
