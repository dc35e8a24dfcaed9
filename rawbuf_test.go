package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateBuffer(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		capacity int
	}{
		{"empty", 0, 0},
		{"single slot", 1, 1},
		{"many slots", 1024, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := AllocateBuffer[int](tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, b.Capacity())
			if tt.n == 0 {
				assert.Nil(t, b.Slots(), "empty buffer should hold no storage")
			}
		})
	}
}

func TestRawBufferOffset(t *testing.T) {
	b, err := AllocateBuffer[int](4)
	require.NoError(t, err)

	assert.Len(t, b.Offset(0), 4)
	assert.Len(t, b.Offset(3), 1)
	// One past the end is a valid position marker.
	assert.Len(t, b.Offset(4), 0)

	assert.Panics(t, func() { b.Offset(5) })
	assert.Panics(t, func() { b.Offset(-1) })
}

func TestRawBufferAt(t *testing.T) {
	b, err := AllocateBuffer[int](4)
	require.NoError(t, err)

	*b.At(2) = 42
	assert.Equal(t, 42, b.Slots()[2])
	assert.Same(t, &b.Slots()[2], b.At(2))

	assert.Panics(t, func() { b.At(4) })
	assert.Panics(t, func() { b.At(-1) })

	var empty RawBuffer[int]
	assert.Panics(t, func() { empty.At(0) })
}

func TestRawBufferTake(t *testing.T) {
	b, err := AllocateBuffer[string](3)
	require.NoError(t, err)
	*b.At(0) = "kept"

	moved := b.Take()
	assert.Equal(t, 0, b.Capacity())
	assert.Nil(t, b.Slots())
	assert.Equal(t, 3, moved.Capacity())
	assert.Equal(t, "kept", *moved.At(0))
}

func TestRawBufferSwap(t *testing.T) {
	a, err := AllocateBuffer[int](2)
	require.NoError(t, err)
	b, err := AllocateBuffer[int](5)
	require.NoError(t, err)
	*a.At(0) = 1
	*b.At(0) = 2

	a.Swap(&b)
	assert.Equal(t, 5, a.Capacity())
	assert.Equal(t, 2, b.Capacity())
	assert.Equal(t, 2, *a.At(0))
	assert.Equal(t, 1, *b.At(0))
}

func TestRawBufferDeallocate(t *testing.T) {
	led := &ledger{}
	b, err := AllocateBuffer[tracked](2)
	require.NoError(t, err)
	*b.At(0) = newTracked(led, 1)

	b.Deallocate()
	assert.Equal(t, 0, b.Capacity())
	// Deallocation never runs element hooks.
	assert.Equal(t, 0, led.destroyed)
	// Deallocating twice is harmless.
	b.Deallocate()
}
