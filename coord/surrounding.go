package coord

// Tiling holds the one parameter — subdivision count — that the coordinate
// system and its neighborhood rule are defined against. It is an immutable
// value type; all of its methods are pure functions of n and their
// argument, ported case-by-case from the reference implementation's
// Chunked::surrounding rather than re-derived, since the seam and pole
// arithmetic is easy to get subtly wrong by eye.
type Tiling struct {
	Subdivisions int
}

// New returns a Tiling for the given subdivision count.
func New(subdivisions int) Tiling {
	return Tiling{Subdivisions: subdivisions}
}

// ringOf5 and ringOf6 build rings through RingOf and discard its error,
// since every literal neighbor list below is known by construction to have
// exactly 5 or 6 entries.
func ringOf5(a, b, c, d, e Coordinate) Ring[Coordinate] {
	r, _ := RingOf(a, b, c, d, e)
	return r
}

func ringOf6(a, b, c, d, e, f Coordinate) Ring[Coordinate] {
	r, _ := RingOf(a, b, c, d, e, f)
	return r
}

// Surrounding returns the neighbors of coord in canonical walk order: each
// consecutive pair in the ring shares an edge of the cell, and the order is
// determined purely by the coordinate, independent of how the tiling was
// built. The ring has length 5 for Top, Bottom, and the ten chunk-corner
// cells, and length 6 everywhere else.
//
// Surrounding is total on valid coordinates (see IsValid); the behavior on
// an invalid coordinate is unspecified (it may index out of range and
// panic, the same contract the reference implementation has for its
// debug-unreachable corner cases).
func (t Tiling) Surrounding(c Coordinate) Ring[Coordinate] {
	n := t.Subdivisions

	switch c.Kind {
	case KindTop:
		return ringOf5(
			Inside(0, 0, 0),
			Inside(1, 0, 0),
			Inside(2, 0, 0),
			Inside(3, 0, 0),
			Inside(4, 0, 0),
		)
	case KindBottom:
		return ringOf5(
			Inside(4, n, 2*n+1),
			Inside(3, n, 2*n+1),
			Inside(2, n, 2*n+1),
			Inside(1, n, 2*n+1),
			Inside(0, n, 2*n+1),
		)
	}

	chunk := c.Chunk
	short := c.Short
	long := c.Long
	prevChunk := (chunk + 4) % 5
	nextChunk := (chunk + 1) % 5

	if n == 0 {
		if long == 0 {
			return ringOf5(
				Top,
				Inside(prevChunk, 0, 0),
				Inside(prevChunk, 0, 1),
				Inside(chunk, 0, 1),
				Inside(nextChunk, 0, 0),
			)
		}
		return ringOf5(
			Inside(chunk, 0, 0),
			Inside(prevChunk, 0, 1),
			Bottom,
			Inside(nextChunk, 0, 1),
			Inside(nextChunk, 0, 0),
		)
	}

	if short == n {
		switch {
		case long == 0:
			return ringOf5(
				Inside(chunk, short-1, 0),
				Inside(prevChunk, 0, short),
				Inside(prevChunk, 0, short+1),
				Inside(chunk, short, 1),
				Inside(chunk, short-1, 1),
			)
		case long == n+1:
			return ringOf5(
				Inside(chunk, short, long-1),
				Inside(prevChunk, 0, short+long),
				Inside(chunk, short, long+1),
				Inside(chunk, short-1, long+1),
				Inside(chunk, short-1, long),
			)
		case long <= n:
			return ringOf6(
				Inside(chunk, short, long-1),
				Inside(prevChunk, 0, short+long),
				Inside(prevChunk, 0, short+long+1),
				Inside(chunk, short, long+1),
				Inside(chunk, short-1, long+1),
				Inside(chunk, short-1, long),
			)
		case long <= 2*n:
			return ringOf6(
				Inside(chunk, short, long-1),
				Inside(prevChunk, long-n-2, 2*n+1),
				Inside(prevChunk, long-n-1, 2*n+1),
				Inside(chunk, short, long+1),
				Inside(chunk, short-1, long+1),
				Inside(chunk, short-1, long),
			)
		default: // long == 2n+1
			return ringOf6(
				Inside(chunk, short, long-1),
				Inside(prevChunk, short-1, long),
				Inside(prevChunk, short, long),
				Bottom,
				Inside(nextChunk, short, long),
				Inside(chunk, short-1, long),
			)
		}
	}

	if short == 0 {
		switch {
		case long == 0:
			return ringOf6(
				Top,
				Inside(prevChunk, 0, 0),
				Inside(prevChunk, 0, 1),
				Inside(chunk, 1, 0),
				Inside(chunk, 0, 1),
				Inside(nextChunk, 0, 0),
			)
		case long <= n:
			return ringOf6(
				Inside(chunk, 0, long-1),
				Inside(chunk, 1, long-1),
				Inside(chunk, 1, long),
				Inside(chunk, 0, long+1),
				Inside(nextChunk, long, 0),
				Inside(nextChunk, long-1, 0),
			)
		case long <= 2*n:
			return ringOf6(
				Inside(chunk, 0, long-1),
				Inside(chunk, 1, long-1),
				Inside(chunk, 1, long),
				Inside(chunk, 0, long+1),
				Inside(nextChunk, n, long-n),
				Inside(nextChunk, n, long-n-1),
			)
		default: // long == 2n+1
			return ringOf6(
				Inside(chunk, 0, long-1),
				Inside(chunk, 1, long-1),
				Inside(chunk, 1, long),
				Inside(nextChunk, n, n+2),
				Inside(nextChunk, n, n+1),
				Inside(nextChunk, n, n),
			)
		}
	}

	// Interior: 0 < short < n.
	switch {
	case long == 0:
		return ringOf6(
			Inside(chunk, short-1, 0),
			Inside(prevChunk, 0, short),
			Inside(prevChunk, 0, short+1),
			Inside(chunk, short+1, 0),
			Inside(chunk, short, 1),
			Inside(chunk, short-1, 1),
		)
	case long <= 2*n:
		return ringOf6(
			Inside(chunk, short, long-1),
			Inside(chunk, short+1, long-1),
			Inside(chunk, short+1, long),
			Inside(chunk, short, long+1),
			Inside(chunk, short-1, long+1),
			Inside(chunk, short-1, long),
		)
	default: // long == 2n+1
		return ringOf6(
			Inside(chunk, short, long-1),
			Inside(chunk, short+1, long-1),
			Inside(chunk, short+1, long),
			Inside(nextChunk, n, n+2+short),
			Inside(nextChunk, n, n+1+short),
			Inside(chunk, short-1, long),
		)
	}
}

// IsValid reports whether coord is addressable on this tiling: Top and
// Bottom always are; an Inside coordinate is valid iff chunk < 5, short <=
// n, and long <= 2n+1.
func (t Tiling) IsValid(c Coordinate) bool {
	switch c.Kind {
	case KindTop, KindBottom:
		return true
	default:
		return c.Chunk < 5 && c.Short <= t.Subdivisions && c.Long <= 2*t.Subdivisions+1
	}
}

// CellCount returns the total number of cells on this tiling:
// 10(n+1)^2 + 2.
func (t Tiling) CellCount() int {
	n := t.Subdivisions + 1
	return 10*n*n + 2
}

// IterAll enumerates every valid coordinate exactly once: Top, then Bottom,
// then Inside coordinates in lexicographic (chunk, short, long) order —
// matching the reference implementation's iter_all.
func (t Tiling) IterAll(yield func(Coordinate) bool) {
	if !yield(Top) {
		return
	}
	if !yield(Bottom) {
		return
	}
	n := t.Subdivisions
	for chunk := uint8(0); chunk < 5; chunk++ {
		for short := 0; short <= n; short++ {
			for long := 0; long < 2*(n+1); long++ {
				if !yield(Inside(chunk, short, long)) {
					return
				}
			}
		}
	}
}

// All collects IterAll's output into a slice. Prefer IterAll directly when
// iterating a large tiling without wanting the full allocation.
func (t Tiling) All() []Coordinate {
	out := make([]Coordinate, 0, t.CellCount())
	t.IterAll(func(c Coordinate) bool {
		out = append(out, c)
		return true
	})
	return out
}
