// Package vector implements a generic resizable array on top of explicit
// raw slot storage.
//
// # Overview
//
// Storage and element lifecycle are kept apart:
//
//   - RawBuffer owns a fixed number of slots and knows nothing about which
//     of them hold live elements.
//   - Vector owns one RawBuffer, tracks how many leading slots are live, and
//     decides how elements are constructed, relocated and destroyed.
//
// # Basic Usage
//
//	var v vector.Vector[int] // the zero value is ready to use
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_ = v.Insert(1, 5) // [1 5 2]
//	_ = v.Erase(0)     // [5 2]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifecycle
//
// Element types opt into lifecycle hooks by implementing, on their pointer
// type, any of Constructor, Destroyer, Copier, Mover and MoveOnly. The set
// of hooks is a property of the type and fixes how the vector treats it:
//
//   - Without a Mover, moving an element cannot fail. It is a transfer that
//     clears the source slot.
//   - With a Mover, moving can fail. When the vector grows, such elements are
//     copied into the new buffer and the originals destroyed only once every
//     copy succeeded, unless the type is MoveOnly.
//
// Hook failures are returned as errors.
//
// # Failure Guarantees
//
// Growth (Reserve, PushBack, EmplaceBack, Emplace on a full vector) either
// completes or leaves size, capacity and contents as they were. Erase, the
// in-place branch of CopyFrom and Emplace with spare capacity do not roll
// back: on failure the vector stays valid but may be partly updated.
//
// Index preconditions are checked by the slot bounds checks. Building with
// the vectordebug tag additionally checks indexes against Size().
//
// # Thread Safety
//
// Vector is not goroutine-safe. Callers serialize access.
package vector
