// SPDX-License-Identifier: MIT

// Package arena provides slot storage addressed by opaque, generation-counted
// handles.
//
// An Arena[T, V] owns values of type V; callers only ever hold Handle[T]
// values. The phantom type T keeps handles of different element kinds apart
// at compile time, so a vertex handle can never be passed where an edge
// handle is expected.
//
// Handles:
//
//   - The zero Handle is the nil handle and never refers to a live slot.
//   - Equality is the only meaningful operation outside the owning arena.
//   - Removing an element bumps the slot generation; any handle captured
//     before the removal becomes stale and fails with ErrDanglingHandle,
//     even after the slot is reused.
//
// Operations:
//
//	Insert(v V) Handle[T]            // O(1) amortized
//	Get(h) (V, error)                // O(1)
//	Ptr(h) (*V, error)               // O(1), pointer valid until the next Insert
//	Set(h, v) error                  // O(1)
//	Remove(h) error                  // O(1)
//	Contains(h) bool                 // O(1)
//	Keys() []Handle[T]               // O(slots), ascending slot order
//	Len() int                        // O(1)
//
// Concurrency: an Arena has no internal locking. Concurrent readers are safe;
// any Insert, Set or Remove requires exclusive access.
package arena
