package hexasphere

import (
	"github.com/hextile/hexasphere/coord"
)

// Hexasphere is a fixed store of one T per cell of a coord.Tiling: one Top,
// one Bottom, and five chunks of Inside cells. It owns no mesh geometry of
// its own — T is whatever payload a builder (BuildFromSurrounding,
// BuildAndDual, BuildChunkedDual) was asked to produce per coordinate, from
// a bare vertex index up to a full rendered polygon.
type Hexasphere[T any] struct {
	tiling coord.Tiling
	top    T
	bottom T
	chunks [5][]T
}

// Tiling returns the coordinate system this store is indexed by.
func (h *Hexasphere[T]) Tiling() coord.Tiling { return h.tiling }

// slotsPerChunk is the row stride within a chunk: the 2(n+1) long positions
// of one short row. A chunk holds n+1 such rows, 2(n+1)^2 cells in all.
func (h *Hexasphere[T]) slotsPerChunk() int {
	return 2 * (h.tiling.Subdivisions + 1)
}

// ptr returns the address of c's storage slot. Callers must have already
// validated c with coord.Tiling.IsValid; this indexes chunk/short/long
// arithmetic directly, the same way the reference implementation's Index
// impl does, and will panic on an out-of-range Inside coordinate exactly
// as an out-of-bounds slice access would.
func (h *Hexasphere[T]) ptr(c coord.Coordinate) *T {
	switch c.Kind {
	case coord.KindTop:
		return &h.top
	case coord.KindBottom:
		return &h.bottom
	default:
		idx := c.Short*h.slotsPerChunk() + c.Long
		return &h.chunks[c.Chunk][idx]
	}
}

// Get returns the value stored at c.
func (h *Hexasphere[T]) Get(c coord.Coordinate) (T, error) {
	if !h.tiling.IsValid(c) {
		var zero T
		return zero, ErrInvalidCoordinate
	}
	return *h.ptr(c), nil
}

// MustGet is Get without the validity check, for callers that already know
// c is valid (e.g. one produced by coord.Tiling.Surrounding).
func (h *Hexasphere[T]) MustGet(c coord.Coordinate) T {
	return *h.ptr(c)
}

// Set overwrites the value stored at c.
func (h *Hexasphere[T]) Set(c coord.Coordinate, v T) error {
	if !h.tiling.IsValid(c) {
		return ErrInvalidCoordinate
	}
	*h.ptr(c) = v
	return nil
}

// GetMany reads several coordinates at once. Unlike GetManyMut it allows
// repeats, since shared read access never aliases unsafely.
func (h *Hexasphere[T]) GetMany(cs []coord.Coordinate) ([]T, error) {
	out := make([]T, len(cs))
	for i, c := range cs {
		v, err := h.Get(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// GetManyMut returns mutable-through pointers to each of cs's slots, or
// ErrDuplicateCoordinate if any two entries in cs name the same cell —
// granting two live pointers into the same slot would let a caller observe
// or create inconsistent aliasing. This mirrors the reference
// implementation's get_many_mut, minus the unsafe pointer arithmetic Rust's
// borrow checker forces there: once distinctness is established, Go's
// garbage-collected pointers into struct fields and slice elements are
// already safe to hand out.
func (h *Hexasphere[T]) GetManyMut(cs []coord.Coordinate) ([]*T, error) {
	for i, c := range cs {
		if !h.tiling.IsValid(c) {
			return nil, ErrInvalidCoordinate
		}
		for j, other := range cs {
			if i != j && c == other {
				return nil, ErrDuplicateCoordinate
			}
		}
	}
	out := make([]*T, len(cs))
	for i, c := range cs {
		out[i] = h.ptr(c)
	}
	return out, nil
}

// All calls fn for the value at every cell, in Top, Bottom, then
// chunk-major order.
func (h *Hexasphere[T]) All(fn func(T)) {
	fn(h.top)
	fn(h.bottom)
	for _, chunk := range h.chunks {
		for _, v := range chunk {
			fn(v)
		}
	}
}

// AllMut calls fn with a pointer to the value at every cell, letting the
// caller mutate in place.
func (h *Hexasphere[T]) AllMut(fn func(*T)) {
	fn(&h.top)
	fn(&h.bottom)
	for ci := range h.chunks {
		for i := range h.chunks[ci] {
			fn(&h.chunks[ci][i])
		}
	}
}

// ChangeType maps every stored value through to, producing a new
// Hexasphere over the same tiling with a (possibly different) element type.
func ChangeType[T, Q any](h *Hexasphere[T], to func(T) Q) *Hexasphere[Q] {
	out := &Hexasphere[Q]{
		tiling: h.tiling,
		top:    to(h.top),
		bottom: to(h.bottom),
	}
	for i, chunk := range h.chunks {
		mapped := make([]Q, len(chunk))
		for j, v := range chunk {
			mapped[j] = to(v)
		}
		out.chunks[i] = mapped
	}
	return out
}
