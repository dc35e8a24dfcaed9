package vector

// SlotBytes returns the size in bytes of one element slot.
func (v *Vector[T]) SlotBytes() int {
	return int(slotSize[T]())
}

// BytesReserved returns the size in bytes of the whole buffer.
func (v *Vector[T]) BytesReserved() int {
	return v.Capacity() * v.SlotBytes()
}

// BytesInUse returns the size in bytes of the live elements.
func (v *Vector[T]) BytesInUse() int {
	return v.size * v.SlotBytes()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Reallocations returns how many times the buffer has been replaced by a
// larger one.
func (v *Vector[T]) Reallocations() int {
	return v.reallocations
}

// Relocated returns the total number of elements moved or copied into a
// new buffer across all reallocations.
func (v *Vector[T]) Relocated() int {
	return v.relocated
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:          v.size,
		Capacity:      v.Capacity(),
		SlotBytes:     v.SlotBytes(),
		BytesReserved: v.BytesReserved(),
		BytesInUse:    v.BytesInUse(),
		Utilization:   v.Utilization(),
		Reallocations: v.reallocations,
		Relocated:     v.relocated,
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Reserved slots
	SlotBytes     int     // Bytes per slot
	BytesReserved int     // Capacity * SlotBytes
	BytesInUse    int     // Size * SlotBytes
	Utilization   float64 // Ratio of live elements to capacity (0.0-1.0)
	Reallocations int     // Buffer replacements caused by growth
	Relocated     int     // Elements carried over by those replacements
}
