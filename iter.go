package vector

import "iter"

// All returns an iterator over index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.slots[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}

// Pointers returns an iterator over index/pointer pairs, for modifying
// elements in place. The vector must not grow during iteration.
func (v *Vector[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.buf.slots[i]) {
				return
			}
		}
	}
}
