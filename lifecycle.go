package vector

import "github.com/pkg/errors"

// Element types opt into lifecycle behaviour by implementing any of the
// interfaces below on their pointer type. A type implementing none of them
// is constructed as its zero value, copied and moved by assignment, and
// needs no destruction.

// Constructor is implemented by element types whose value construction
// needs more than the zero value, or can fail.
type Constructor interface {
	Construct() error
}

// Destroyer is implemented by element types that release something when
// they are destroyed. Destroy must be safe to call on the zero value and on
// a moved-from value.
type Destroyer interface {
	Destroy()
}

// Copier is implemented by element types whose copy construction can fail
// or must go deeper than assignment.
type Copier[T any] interface {
	Copy() (T, error)
}

// Mover is implemented by element types whose move construction can fail.
// Move returns the moved value and leaves the receiver in a moved-from state
// that is still destroyed later.
type Mover[T any] interface {
	Move() (T, error)
}

// MoveOnly marks element types that cannot be copied. Relocation of such
// types always moves, even when their Move can fail.
type MoveOnly interface {
	MoveOnly()
}

// traits is the lifecycle policy of an element type.
type traits struct {
	construct bool
	destroy   bool
	copier    bool
	mover     bool
	moveOnly  bool
}

// traitsOf queries the lifecycle capabilities of T.
func traitsOf[T any]() traits {
	p := any((*T)(nil))
	var t traits
	_, t.construct = p.(Constructor)
	_, t.destroy = p.(Destroyer)
	_, t.copier = p.(Copier[T])
	_, t.mover = p.(Mover[T])
	_, t.moveOnly = p.(MoveOnly)
	return t
}

// relocateByMove reports whether relocation transfers elements into a new
// buffer rather than duplicating them: true when moving cannot fail, or when
// the type cannot be copied and moving is the only option.
func (t traits) relocateByMove() bool {
	return !t.mover || t.moveOnly
}

// construct value-constructs the slot p.
func construct[T any](t traits, p *T) error {
	var zero T
	*p = zero
	if t.construct {
		if err := any(p).(Constructor).Construct(); err != nil {
			*p = zero
			return err
		}
	}
	return nil
}

// constructRange value-constructs every slot of s. On failure the slots
// constructed so far are destroyed.
func constructRange[T any](t traits, s []T) error {
	for i := range s {
		if err := construct(t, &s[i]); err != nil {
			destroyRange(t, s[:i])
			return errors.Wrapf(err, "construct element %d", i)
		}
	}
	return nil
}

// destroy runs the destructor of *p and returns the slot to its
// unconstructed state.
func destroy[T any](t traits, p *T) {
	if t.destroy {
		any(p).(Destroyer).Destroy()
	}
	var zero T
	*p = zero
}

func destroyRange[T any](t traits, s []T) {
	if t.destroy {
		for i := range s {
			any(&s[i]).(Destroyer).Destroy()
		}
	}
	clear(s)
}

// discardNew disposes of an element built for an insertion that then
// failed. Values the caller handed over are cleared, not destroyed, since
// the caller still owns them.
func discardNew[T any](t traits, p *T, owned bool) {
	if owned {
		destroy(t, p)
		return
	}
	var zero T
	*p = zero
}

// retire disposes of a slot whose value was moved out. Without a Mover the
// move already cleared it.
func retire[T any](t traits, p *T) {
	if t.mover {
		destroy(t, p)
	}
}

func retireRange[T any](t traits, s []T) {
	if t.mover {
		destroyRange(t, s)
	}
}

// copyOf copy-constructs a new value from *src.
func copyOf[T any](t traits, src *T) (T, error) {
	switch {
	case t.moveOnly:
		var zero T
		return zero, ErrNotCopyable
	case t.copier:
		return any(src).(Copier[T]).Copy()
	default:
		return *src, nil
	}
}

// moveOut move-constructs a new value from *src.
func moveOut[T any](t traits, src *T) (T, error) {
	if t.mover {
		return any(src).(Mover[T]).Move()
	}
	v := *src
	var zero T
	*src = zero
	return v, nil
}

// moveAssign replaces *dst with a value moved out of *src.
// *dst is left as it was if the move fails.
func moveAssign[T any](t traits, dst, src *T) error {
	v, err := moveOut(t, src)
	if err != nil {
		return err
	}
	if t.destroy {
		any(dst).(Destroyer).Destroy()
	}
	*dst = v
	return nil
}

// copyAssign replaces *dst with a copy of *src.
// *dst is left as it was if the copy fails.
func copyAssign[T any](t traits, dst, src *T) error {
	v, err := copyOf(t, src)
	if err != nil {
		return err
	}
	if t.destroy {
		any(dst).(Destroyer).Destroy()
	}
	*dst = v
	return nil
}

// copyRange copy-constructs src into the unconstructed slots dst.
// On failure the slots filled so far are destroyed.
func copyRange[T any](t traits, dst, src []T) error {
	for i := range src {
		v, err := copyOf(t, &src[i])
		if err != nil {
			destroyRange(t, dst[:i])
			return errors.Wrapf(err, "copy element %d", i)
		}
		dst[i] = v
	}
	return nil
}

// relocate fills the unconstructed slots dst with the elements of src,
// moving or copying them according to t. base is the index of src[0] in
// its vector and only feeds error messages.
//
// On failure the slots of dst filled so far are destroyed. Under the copy
// strategy src is untouched; under the move strategy elements already moved
// out of src stay moved-from.
func relocate[T any](t traits, dst, src []T, base int) error {
	byMove := t.relocateByMove()
	for i := range src {
		var (
			v   T
			err error
		)
		if byMove {
			v, err = moveOut(t, &src[i])
		} else {
			v, err = copyOf(t, &src[i])
		}
		if err != nil {
			destroyRange(t, dst[:i])
			return errors.Wrapf(err, "relocate element %d", base+i)
		}
		dst[i] = v
	}
	return nil
}

// discardRelocated disposes of the originals once relocation has committed.
// Copied originals are still live and get destroyed; moved ones are retired.
func discardRelocated[T any](t traits, s []T) {
	if t.relocateByMove() {
		retireRange(t, s)
		return
	}
	destroyRange(t, s)
}
