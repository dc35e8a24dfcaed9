package vector

import (
	"fmt"

	"github.com/pkg/errors"
)

// Emplace constructs a new element at index pos, shifting the elements at
// pos and after one place right. pos may equal Size(). init receives an
// unconstructed value to fill in and may read the vector's elements.
//
// When the vector has to grow, a failure leaves it unchanged. When it has
// spare capacity, a failing move while shifting is not rolled back.
func (v *Vector[T]) Emplace(pos int, init func(*T) error) (*T, error) {
	return v.emplace(pos, init, true)
}

func (v *Vector[T]) emplace(pos int, init func(*T) error, owned bool) (*T, error) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0:%d]", pos, v.size))
	}
	t := traitsOf[T]()
	switch {
	case pos == v.size:
		return v.emplaceBack(t, init, owned)
	case v.size < v.Capacity():
		return v.emplaceShift(t, pos, init, owned)
	default:
		return v.emplaceGrow(t, pos, init, owned)
	}
}

// Insert inserts x at index pos, taking ownership of it. If Insert fails
// before x is stored, x still belongs to the caller.
func (v *Vector[T]) Insert(pos int, x T) error {
	_, err := v.emplace(pos, func(p *T) error {
		*p = x
		return nil
	}, false)
	return err
}

// InsertCopy inserts a copy of x at index pos.
func (v *Vector[T]) InsertCopy(pos int, x T) error {
	t := traitsOf[T]()
	_, err := v.emplace(pos, func(p *T) error {
		c, err := copyOf(t, &x)
		if err != nil {
			return err
		}
		*p = c
		return nil
	}, true)
	return err
}

func (v *Vector[T]) emplaceShift(t traits, pos int, init func(*T) error, owned bool) (*T, error) {
	// init may refer to elements about to shift, so it runs on a temporary.
	var tmp T
	if err := init(&tmp); err != nil {
		return nil, errors.Wrap(err, "construct element")
	}
	s := v.buf.Slots()
	last, err := moveOut(t, &s[v.size-1])
	if err != nil {
		discardNew(t, &tmp, owned)
		return nil, errors.Wrapf(err, "move element %d", v.size-1)
	}
	s[v.size] = last
	v.size++

	for i := v.size - 2; i > pos; i-- {
		if err := moveAssign(t, &s[i], &s[i-1]); err != nil {
			discardNew(t, &tmp, owned)
			return nil, errors.Wrapf(err, "shift element %d", i-1)
		}
	}
	if err := moveAssign(t, &s[pos], &tmp); err != nil {
		discardNew(t, &tmp, owned)
		return nil, errors.Wrapf(err, "move element into %d", pos)
	}
	retire(t, &tmp)
	return &s[pos], nil
}

func (v *Vector[T]) emplaceGrow(t traits, pos int, init func(*T) error, owned bool) (*T, error) {
	nb, err := AllocateBuffer[T](v.grownCapacity())
	if err != nil {
		return nil, err
	}
	s, old := nb.Slots(), v.live()
	if err := init(&s[pos]); err != nil {
		return nil, errors.Wrap(err, "construct element")
	}
	if err := relocate(t, s[:pos], old[:pos], 0); err != nil {
		discardNew(t, &s[pos], owned)
		return nil, err
	}
	if err := relocate(t, s[pos+1:v.size+1], old[pos:], pos); err != nil {
		destroyRange(t, s[:pos])
		discardNew(t, &s[pos], owned)
		return nil, err
	}
	v.commit(t, &nb)
	v.size++
	return v.buf.At(pos), nil
}

// Erase removes the element at index pos, shifting later elements one
// place left. A failing move while shifting is not rolled back: the error
// is returned and Size() is unchanged.
func (v *Vector[T]) Erase(pos int) error {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0:%d)", pos, v.size))
	}
	t := traitsOf[T]()
	s := v.live()
	for i := pos; i+1 < len(s); i++ {
		if err := moveAssign(t, &s[i], &s[i+1]); err != nil {
			return errors.Wrapf(err, "shift element %d", i+1)
		}
	}
	if last := &s[len(s)-1]; pos == len(s)-1 {
		destroy(t, last)
	} else {
		retire(t, last)
	}
	v.size--
	return nil
}
