package vector

import (
	"fmt"

	"github.com/pkg/errors"
)

// Vector is a resizable contiguous array of T built on a RawBuffer.
// Slots [0, Size()) hold live elements; the rest of the buffer is reserved
// but unconstructed. The zero value is an empty vector ready to use.
//
// Vector is not goroutine-safe. A Vector must not be copied; use Clone,
// Move or MoveFrom.
type Vector[T any] struct {
	buf  RawBuffer[T]
	size int

	reallocations int
	relocated     int
}

// New returns an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector of n value-constructed elements with capacity n.
func NewSized[T any](n int) (*Vector[T], error) {
	v := &Vector[T]{}
	buf, err := AllocateBuffer[T](n)
	if err != nil {
		return nil, err
	}
	v.buf.Swap(&buf)
	if err := constructRange(traitsOf[T](), v.buf.Slots()); err != nil {
		v.buf.Deallocate()
		return nil, err
	}
	v.size = n
	return v, nil
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of slots reserved.
func (v *Vector[T]) Capacity() int {
	return v.buf.Capacity()
}

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Ptr returns a pointer to element i. The pointer is invalidated by any
// operation that reallocates.
func (v *Vector[T]) Ptr(i int) *T {
	if debugChecks && (i < 0 || i >= v.size) {
		panic(fmt.Sprintf("vector: index %d out of range [0:%d)", i, v.size))
	}
	return v.buf.At(i)
}

// At returns element i.
func (v *Vector[T]) At(i int) T {
	return *v.Ptr(i)
}

// Set replaces element i with x, destroying the previous element.
func (v *Vector[T]) Set(i int, x T) {
	p := v.Ptr(i)
	if traitsOf[T]().destroy {
		any(p).(Destroyer).Destroy()
	}
	*p = x
}

// Front returns the first element.
func (v *Vector[T]) Front() T {
	return v.At(0)
}

// Back returns the last element.
func (v *Vector[T]) Back() T {
	return v.At(v.size - 1)
}

// live returns the slots holding live elements.
func (v *Vector[T]) live() []T {
	return v.buf.Slots()[:v.size]
}

// Reserve grows capacity to at least n. Existing elements are relocated
// into the new buffer; if that fails the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Capacity() {
		return nil
	}
	nb, err := AllocateBuffer[T](n)
	if err != nil {
		return err
	}
	t := traitsOf[T]()
	if err := relocate(t, nb.Slots(), v.live(), 0); err != nil {
		return err
	}
	v.commit(t, &nb)
	return nil
}

// commit disposes of the relocated originals and installs nb as storage.
func (v *Vector[T]) commit(t traits, nb *RawBuffer[T]) {
	discardRelocated(t, v.live())
	v.buf.Swap(nb)
	nb.Deallocate()
	v.reallocations++
	v.relocated += v.size
}

// grownCapacity is the capacity used when appending to a full vector.
func (v *Vector[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	return 2 * v.size
}

// Resize changes the number of elements to n, destroying the tail or
// value-constructing new elements. If constructing a new element fails the
// ones built by this call are destroyed and the size is unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	t := traitsOf[T]()
	if n <= v.size {
		destroyRange(t, v.buf.Slots()[n:v.size])
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	if err := constructRange(t, v.buf.Slots()[v.size:n]); err != nil {
		return err
	}
	v.size = n
	return nil
}

// PushBack appends x, taking ownership of it. If PushBack fails, x still
// belongs to the caller.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.emplaceBack(traitsOf[T](), func(p *T) error {
		*p = x
		return nil
	}, false)
	return err
}

// PushBackCopy appends a copy of x.
func (v *Vector[T]) PushBackCopy(x T) error {
	t := traitsOf[T]()
	_, err := v.emplaceBack(t, func(p *T) error {
		c, err := copyOf(t, &x)
		if err != nil {
			return err
		}
		*p = c
		return nil
	}, true)
	return err
}

// EmplaceBack constructs a new last element in place. init receives the
// unconstructed slot and fills it in. The returned pointer is valid until
// the next reallocation.
func (v *Vector[T]) EmplaceBack(init func(*T) error) (*T, error) {
	return v.emplaceBack(traitsOf[T](), init, true)
}

// emplaceBack builds a new last element with init. owned tells whether the
// vector owns what init built, which decides how it is discarded on failure.
func (v *Vector[T]) emplaceBack(t traits, init func(*T) error, owned bool) (*T, error) {
	if v.size < v.Capacity() {
		p := v.buf.At(v.size)
		if err := init(p); err != nil {
			var zero T
			*p = zero
			return nil, errors.Wrap(err, "construct element")
		}
		v.size++
		return p, nil
	}

	nb, err := AllocateBuffer[T](v.grownCapacity())
	if err != nil {
		return nil, err
	}
	// The new element goes in first so a failing init never touches the
	// current buffer.
	p := nb.At(v.size)
	if err := init(p); err != nil {
		return nil, errors.Wrap(err, "construct element")
	}
	if err := relocate(t, nb.Slots()[:v.size], v.live(), 0); err != nil {
		discardNew(t, p, owned)
		return nil, err
	}
	v.commit(t, &nb)
	v.size++
	return p, nil
}

// PopBack destroys the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	if debugChecks && v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	destroy(traitsOf[T](), v.buf.At(v.size-1))
	v.size--
}

// Clear destroys every element. Capacity is kept.
func (v *Vector[T]) Clear() {
	destroyRange(traitsOf[T](), v.live())
	v.size = 0
}

// Release destroys every element and drops the buffer.
// The vector stays usable and empty.
func (v *Vector[T]) Release() {
	v.Clear()
	v.buf.Deallocate()
}

// Swap exchanges contents with other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// Move transfers the contents of v into a new vector in constant time.
// v is left empty.
func (v *Vector[T]) Move() *Vector[T] {
	w := &Vector[T]{buf: v.buf.Take(), size: v.size}
	v.size = 0
	return w
}

// MoveFrom replaces the contents of v with those of src, which is left
// empty. The previous elements of v are destroyed.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	v.buf.Swap(&src.buf)
	v.size, src.size = src.size, 0
}
