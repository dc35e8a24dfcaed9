package vector

import "github.com/pkg/errors"

// Clone returns an independent copy of v with capacity equal to its size.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	t := traitsOf[T]()
	if t.moveOnly {
		return nil, ErrNotCopyable
	}
	w := &Vector[T]{}
	buf, err := AllocateBuffer[T](v.size)
	if err != nil {
		return nil, err
	}
	w.buf.Swap(&buf)
	if err := copyRange(t, w.buf.Slots(), v.live()); err != nil {
		w.buf.Deallocate()
		return nil, err
	}
	w.size = v.size
	return w, nil
}

// CopyFrom replaces the contents of v with a copy of src.
//
// If src does not fit in v's capacity, a full copy is built first and
// swapped in, so a failure leaves v unchanged. Otherwise v's buffer is
// reused: elements are assigned in place and a failure may leave some of
// them already replaced.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	t := traitsOf[T]()
	if t.moveOnly {
		return ErrNotCopyable
	}
	if src.size > v.Capacity() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	dst, from := v.buf.Slots(), src.live()
	common := min(v.size, src.size)
	for i := 0; i < common; i++ {
		if err := copyAssign(t, &dst[i], &from[i]); err != nil {
			return errors.Wrapf(err, "assign element %d", i)
		}
	}
	if src.size < v.size {
		destroyRange(t, dst[src.size:v.size])
	} else if err := copyRange(t, dst[v.size:src.size], from[v.size:]); err != nil {
		return err
	}
	v.size = src.size
	return nil
}
