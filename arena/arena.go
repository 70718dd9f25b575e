// SPDX-License-Identifier: MIT

package arena

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for arena operations.
var (
	// ErrDanglingHandle indicates a handle that is nil, out of range, freed or stale.
	ErrDanglingHandle = errors.New("arena: dangling handle")

	// ErrBadHandleText indicates malformed input to Handle.UnmarshalText.
	ErrBadHandleText = errors.New("arena: malformed handle text")
)

// Handle is an opaque reference to one slot of an Arena[T, V].
//
// index is the slot position plus one, so that the zero Handle is nil.
type Handle[T any] struct {
	index      uint32
	generation uint32
}

// IsNil reports whether h is the zero handle.
func (h Handle[T]) IsNil() bool { return h.index == 0 }

// String renders h for diagnostics as "index:generation", or "nil".
func (h Handle[T]) String() string {
	if h.IsNil() {
		return "nil"
	}

	return strconv.FormatUint(uint64(h.index-1), 10) + ":" + strconv.FormatUint(uint64(h.generation), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (h Handle[T]) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Handle[T]) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "nil" {
		*h = Handle[T]{}
		return nil
	}
	idx, gen, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadHandleText, s)
	}
	i, err := strconv.ParseUint(idx, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrBadHandleText, s, err)
	}
	if i == math.MaxUint32 {
		// index is stored plus one and would wrap to the nil handle.
		return fmt.Errorf("%w: %q: index out of range", ErrBadHandleText, s)
	}
	g, err := strconv.ParseUint(gen, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrBadHandleText, s, err)
	}
	*h = Handle[T]{index: uint32(i) + 1, generation: uint32(g)}

	return nil
}

type slot[V any] struct {
	generation uint32
	occupied   bool
	value      V
}

// Arena stores values of type V addressed by Handle[T].
type Arena[T, V any] struct {
	slots []slot[V]
	free  []uint32 // slot positions available for reuse, LIFO
	live  int
}

// New returns an empty arena with room for capacity values before growing.
func New[T, V any](capacity int) *Arena[T, V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Arena[T, V]{slots: make([]slot[V], 0, capacity)}
}

// Insert stores v and returns its handle.
func (a *Arena[T, V]) Insert(v V) Handle[T] {
	a.live++
	if n := len(a.free); n > 0 {
		pos := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[pos]
		s.occupied = true
		s.value = v

		return Handle[T]{index: pos + 1, generation: s.generation}
	}
	a.slots = append(a.slots, slot[V]{generation: 1, occupied: true, value: v})

	return Handle[T]{index: uint32(len(a.slots)), generation: 1}
}

// lookup returns the live slot for h, or nil.
func (a *Arena[T, V]) lookup(h Handle[T]) *slot[V] {
	if h.index == 0 || int(h.index) > len(a.slots) {
		return nil
	}
	s := &a.slots[h.index-1]
	if !s.occupied || s.generation != h.generation {
		return nil
	}

	return s
}

// Get returns the value stored under h.
func (a *Arena[T, V]) Get(h Handle[T]) (V, error) {
	s := a.lookup(h)
	if s == nil {
		var zero V
		return zero, fmt.Errorf("%w: %s", ErrDanglingHandle, h)
	}

	return s.value, nil
}

// Ptr returns a pointer to the value stored under h. The pointer is
// invalidated by the next Insert.
func (a *Arena[T, V]) Ptr(h Handle[T]) (*V, error) {
	s := a.lookup(h)
	if s == nil {
		return nil, fmt.Errorf("%w: %s", ErrDanglingHandle, h)
	}

	return &s.value, nil
}

// Set replaces the value stored under h.
func (a *Arena[T, V]) Set(h Handle[T], v V) error {
	s := a.lookup(h)
	if s == nil {
		return fmt.Errorf("%w: %s", ErrDanglingHandle, h)
	}
	s.value = v

	return nil
}

// Remove frees the slot of h. Every copy of h becomes stale.
func (a *Arena[T, V]) Remove(h Handle[T]) error {
	s := a.lookup(h)
	if s == nil {
		return fmt.Errorf("%w: %s", ErrDanglingHandle, h)
	}
	var zero V
	s.value = zero
	s.occupied = false
	s.generation++
	a.free = append(a.free, h.index-1)
	a.live--

	return nil
}

// Contains reports whether h refers to a live value.
func (a *Arena[T, V]) Contains(h Handle[T]) bool { return a.lookup(h) != nil }

// Len returns the number of live values.
func (a *Arena[T, V]) Len() int { return a.live }

// Keys returns the live handles in ascending slot order.
func (a *Arena[T, V]) Keys() []Handle[T] {
	keys := make([]Handle[T], 0, a.live)
	for i := range a.slots {
		if a.slots[i].occupied {
			keys = append(keys, Handle[T]{index: uint32(i) + 1, generation: a.slots[i].generation})
		}
	}

	return keys
}
