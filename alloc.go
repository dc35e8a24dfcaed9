package vector

import (
	"unsafe"

	"github.com/pkg/errors"
)

// MaxAllocBytes is the largest single buffer, in bytes, AllocateBuffer will request.
const MaxAllocBytes = 1 << 40

var (
	// ErrAllocation is returned when storage for the requested number of slots
	// cannot be obtained.
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrNotCopyable is returned when a copy is requested for a MoveOnly element type.
	ErrNotCopyable = errors.New("vector: element type is move-only")
)

// slotSize returns the size in bytes of a single T slot.
func slotSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocate returns storage for n slots. The slots hold the zero value, which
// the rest of the package treats as "not constructed".
// Returns nil without error if n == 0.
func allocate[T any](n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrAllocation, "negative slot count %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if size := uint64(slotSize[T]()); size > 0 && uint64(n) > MaxAllocBytes/size {
		return nil, errors.Wrapf(ErrAllocation, "%d slots of %d bytes exceed %d bytes", n, size, uint64(MaxAllocBytes))
	}
	return make([]T, n), nil
}
