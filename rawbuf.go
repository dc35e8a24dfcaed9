package vector

import "fmt"

// RawBuffer owns storage for a fixed number of element slots.
// It has no notion of which slots are live: it never constructs or destroys
// elements, it only reserves and releases storage.
//
// A RawBuffer must not be copied. Use Take to transfer ownership.
type RawBuffer[T any] struct {
	slots []T
}

// AllocateBuffer returns a buffer with n unconstructed slots.
// n == 0 yields the empty buffer without error.
func AllocateBuffer[T any](n int) (RawBuffer[T], error) {
	slots, err := allocate[T](n)
	if err != nil {
		return RawBuffer[T]{}, err
	}
	return RawBuffer[T]{slots: slots}, nil
}

// Capacity returns the number of slots in the buffer.
func (b *RawBuffer[T]) Capacity() int {
	return len(b.slots)
}

// Slots returns every slot of the buffer, live or not.
func (b *RawBuffer[T]) Slots() []T {
	return b.slots
}

// Offset returns the slots from i to the end of the buffer.
// i == Capacity() is the one-past-end position and yields an empty slice.
func (b *RawBuffer[T]) Offset(i int) []T {
	if i < 0 || i > len(b.slots) {
		panic(fmt.Sprintf("vector: offset %d out of range [0:%d]", i, len(b.slots)))
	}
	return b.slots[i:]
}

// At returns a pointer to slot i. i must be less than Capacity().
func (b *RawBuffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Sprintf("vector: slot %d out of range [0:%d)", i, len(b.slots)))
	}
	return &b.slots[i]
}

// Take transfers ownership of the storage to the returned buffer.
// b is left empty.
func (b *RawBuffer[T]) Take() RawBuffer[T] {
	slots := b.slots
	b.slots = nil
	return RawBuffer[T]{slots: slots}
}

// Swap exchanges storage with other without touching any slot.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Deallocate drops the storage. Element hooks are not run; the caller must
// already have destroyed every live element.
func (b *RawBuffer[T]) Deallocate() {
	b.slots = nil
}
