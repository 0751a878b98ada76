package coord

// maxRing is the largest neighborhood a cell on this tiling ever has: a
// hexagon has 6 neighbors, a pentagon (the two poles and the ten chunk
// corners) has 5.
const maxRing = 6

// Ring is a stack-allocated, bounded-capacity sequence of at most 6 values
// of T, used throughout this module for cell neighborhoods and the
// mesh-vertex adjacency rings that produce them. It mirrors the role of
// ArrayVec<T, 6> in the reference implementation: values are stored inline
// in a fixed array, never heap-allocated. At takes its index modulo Len, so
// indexing past either end wraps around the ring instead of panicking.
//
// The zero value is an empty Ring, ready to use.
type Ring[T comparable] struct {
	items [maxRing]T
	n     int
}

// RingOf builds a Ring from 2 to 6 values. It returns ErrRingSize if len(vs)
// is outside that range — a Ring never models fewer than 2 neighbors (the
// smallest valid tiling cell still has a closed loop of neighbors) or more
// than 6.
func RingOf[T comparable](vs ...T) (Ring[T], error) {
	var r Ring[T]
	if len(vs) < 2 || len(vs) > maxRing {
		return r, ErrRingSize
	}
	for _, v := range vs {
		r.items[r.n] = v
		r.n++
	}
	return r, nil
}

// Push appends v to the ring. It panics with ErrRingFull if the ring
// already holds 6 elements — pushing a 7th neighbor onto a hexasphere cell
// is a programming error, never a recoverable runtime condition.
func (r *Ring[T]) Push(v T) {
	if r.n >= maxRing {
		panic(ErrRingFull)
	}
	r.items[r.n] = v
	r.n++
}

// Len returns the number of elements currently stored (5 or 6 for a
// fully-built neighborhood ring, possibly fewer mid-construction).
func (r Ring[T]) Len() int { return r.n }

// At returns the element at index i, taken modulo Len so callers can index
// past the end to walk the ring cyclically (used pervasively by RotateFrom
// and by the neighborhood-rule callers in dual and traverse).
func (r Ring[T]) At(i int) T {
	n := r.n
	idx := ((i % n) + n) % n
	return r.items[idx]
}

// Slice returns the ring's contents as a freshly allocated slice in walk
// order. Callers that only need to range over the ring should prefer this;
// callers on a hot path should prefer At/Len to avoid the allocation.
func (r Ring[T]) Slice() []T {
	out := make([]T, r.n)
	copy(out, r.items[:r.n])
	return out
}

// IndexOf returns the position of v in the ring and true, or (0, false) if
// v is not present.
func (r Ring[T]) IndexOf(v T) (int, bool) {
	for i := 0; i < r.n; i++ {
		if r.items[i] == v {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether v appears anywhere in the ring.
func (r Ring[T]) Contains(v T) bool {
	_, ok := r.IndexOf(v)
	return ok
}

// RotateFrom finds previous in the ring and returns the element `by` slots
// away from it, modulo the ring's length. This is the rotate_by primitive
// the grid-population walk (hexasphere.BuildFromSurrounding) and the line
// continuation walk (traverse.ContinueLine) both depend on. It panics if
// previous is not present — callers always supply a previous ring member by
// construction, so a miss indicates caller error, not a recoverable one.
func (r Ring[T]) RotateFrom(previous T, by int) T {
	idx, ok := r.IndexOf(previous)
	if !ok {
		panic("coord: RotateFrom: previous element not found in ring")
	}
	return r.At(idx + by)
}
