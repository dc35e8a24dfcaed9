package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugIndexChecks(t *testing.T) {
	if !debugChecks {
		t.Skip("index checks against Size() need the vectordebug build tag")
	}
	v := fromInts(t, 1, 2, 3)
	assert.Equal(t, 4, v.Capacity())

	assert.PanicsWithValue(t, "vector: index 3 out of range [0:3)", func() { v.At(3) })
	assert.Panics(t, func() { *v.Ptr(3) = 1 })

	var empty Vector[int]
	assert.PanicsWithValue(t, "vector: PopBack on empty vector", func() { empty.PopBack() })
}

func TestIndexBeyondCapacityAlwaysPanics(t *testing.T) {
	v := fromInts(t, 1, 2, 3)
	assert.Panics(t, func() { v.At(4) })
	assert.Panics(t, func() { v.Ptr(-1) })
}
