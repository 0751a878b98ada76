// File: coord/coord_test.go
package coord

import (
	"testing"
)

//----------------------------------------------------------------------------//
// Surrounding: poles
//----------------------------------------------------------------------------//

// TestSurrounding_Poles verifies the five chunk-seam neighbors of Top and
// Bottom on an n=3 tiling (Bottom's neighbors sit at short=n, long=2n+1).
func TestSurrounding_Poles(t *testing.T) {
	tl := New(3)

	top := tl.Surrounding(Top)
	if top.Len() != 5 {
		t.Fatalf("Surrounding(Top).Len() = %d; want 5", top.Len())
	}
	for chunk := uint8(0); chunk < 5; chunk++ {
		want := Inside(chunk, 0, 0)
		if !top.Contains(want) {
			t.Errorf("Surrounding(Top) missing %s", want)
		}
	}

	bottom := tl.Surrounding(Bottom)
	if bottom.Len() != 5 {
		t.Fatalf("Surrounding(Bottom).Len() = %d; want 5", bottom.Len())
	}
	for chunk := uint8(0); chunk < 5; chunk++ {
		want := Inside(chunk, 3, 7)
		if !bottom.Contains(want) {
			t.Errorf("Surrounding(Bottom) missing %s", want)
		}
	}
}

//----------------------------------------------------------------------------//
// Surrounding: interior and chunk seam, n=3
//----------------------------------------------------------------------------//

// TestSurrounding_Interior checks a cell strictly inside a chunk (not on any
// short/long boundary) has exactly 6 neighbors, each itself valid.
func TestSurrounding_Interior(t *testing.T) {
	tl := New(3)
	c := Inside(2, 1, 3)

	ring := tl.Surrounding(c)
	if ring.Len() != 6 {
		t.Fatalf("Surrounding(%s).Len() = %d; want 6", c, ring.Len())
	}
	for i := 0; i < ring.Len(); i++ {
		n := ring.At(i)
		if !tl.IsValid(n) {
			t.Errorf("Surrounding(%s)[%d] = %s is not valid", c, i, n)
		}
	}
}

// TestSurrounding_ChunkSeam checks the short==n, long==0 chunk corner on the
// seam with the previous chunk: it is a pentagon with 5 neighbors, all valid.
func TestSurrounding_ChunkSeam(t *testing.T) {
	tl := New(3)
	c := Inside(0, 3, 0)

	ring := tl.Surrounding(c)
	if ring.Len() != 5 {
		t.Fatalf("Surrounding(%s).Len() = %d; want 5", c, ring.Len())
	}
	for i := 0; i < ring.Len(); i++ {
		n := ring.At(i)
		if !tl.IsValid(n) {
			t.Errorf("Surrounding(%s)[%d] = %s is not valid", c, i, n)
		}
	}
}

//----------------------------------------------------------------------------//
// Reciprocity and coverage
//----------------------------------------------------------------------------//

// TestSurrounding_Reciprocity verifies that for every cell on a n=3 tiling,
// every neighbor it reports in turn reports it back: the neighbor relation
// is symmetric.
func TestSurrounding_Reciprocity(t *testing.T) {
	tl := New(3)

	for _, c := range tl.All() {
		ring := tl.Surrounding(c)
		for i := 0; i < ring.Len(); i++ {
			neighbor := ring.At(i)
			back := tl.Surrounding(neighbor)
			if !back.Contains(c) {
				t.Errorf("Surrounding(%s) contains %s, but Surrounding(%s) does not contain %s",
					c, neighbor, neighbor, c)
			}
		}
	}
}

// TestSurrounding_Valence verifies that every cell has valence 6, except for
// the 12 pentagons (Top, Bottom, and the 10 chunk corners at short==n with
// long==0 or long==n+1), which have valence 5.
func TestSurrounding_Valence(t *testing.T) {
	tl := New(3)
	pentagons := 0

	for _, c := range tl.All() {
		ring := tl.Surrounding(c)
		switch ring.Len() {
		case 5:
			pentagons++
		case 6:
			// ordinary hexagon cell, nothing further to check here
		default:
			t.Errorf("Surrounding(%s).Len() = %d; want 5 or 6", c, ring.Len())
		}
	}
	if pentagons != 12 {
		t.Errorf("pentagon count = %d; want 12", pentagons)
	}
}

// TestIterAll_Coverage verifies IterAll / All enumerate exactly
// 10(n+1)^2+2 coordinates for n=3 (162), all valid and all distinct.
func TestIterAll_Coverage(t *testing.T) {
	tl := New(3)
	want := 10*4*4 + 2 // 162

	all := tl.All()
	if len(all) != want {
		t.Fatalf("len(All()) = %d; want %d", len(all), want)
	}
	if tl.CellCount() != want {
		t.Errorf("CellCount() = %d; want %d", tl.CellCount(), want)
	}

	seen := make(map[Coordinate]bool, len(all))
	for _, c := range all {
		if !tl.IsValid(c) {
			t.Errorf("All() produced invalid coordinate %s", c)
		}
		if seen[c] {
			t.Errorf("All() produced duplicate coordinate %s", c)
		}
		seen[c] = true
	}
}

// TestIterAll_EarlyStop verifies IterAll honors a yield that returns false.
func TestIterAll_EarlyStop(t *testing.T) {
	tl := New(2)
	count := 0
	tl.IterAll(func(c Coordinate) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Fatalf("IterAll stopped after %d calls; want 3", count)
	}
}

//----------------------------------------------------------------------------//
// Coordinate: String, Compare
//----------------------------------------------------------------------------//

func TestCoordinate_String(t *testing.T) {
	cases := []struct {
		c    Coordinate
		want string
	}{
		{Top, "Top"},
		{Bottom, "Bottom"},
		{Inside(2, 1, 3), "I(2, 1, 3)"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("%#v.String() = %q; want %q", tc.c, got, tc.want)
		}
	}
}

func TestCoordinate_Compare(t *testing.T) {
	if Top.Compare(Bottom) <= 0 {
		t.Errorf("Top.Compare(Bottom) should be > 0")
	}
	if Bottom.Compare(Inside(0, 0, 0)) <= 0 {
		t.Errorf("Bottom.Compare(Inside) should be > 0")
	}
	if Inside(0, 0, 0).Compare(Inside(0, 0, 1)) >= 0 {
		t.Errorf("Inside(0,0,0).Compare(Inside(0,0,1)) should be < 0")
	}
	if Inside(1, 0, 0).Compare(Inside(0, 9, 9)) <= 0 {
		t.Errorf("higher chunk should compare greater regardless of short/long")
	}
	if Inside(0, 0, 0).Compare(Inside(0, 0, 0)) != 0 {
		t.Errorf("equal coordinates should compare equal")
	}
}

//----------------------------------------------------------------------------//
// Ring
//----------------------------------------------------------------------------//

func TestRingOf_SizeValidation(t *testing.T) {
	if _, err := RingOf(1); err != ErrRingSize {
		t.Errorf("RingOf(1) error = %v; want ErrRingSize", err)
	}
	if _, err := RingOf(1, 2, 3, 4, 5, 6, 7); err != ErrRingSize {
		t.Errorf("RingOf(7 elems) error = %v; want ErrRingSize", err)
	}
	if _, err := RingOf(1, 2); err != nil {
		t.Errorf("RingOf(2 elems) error = %v; want nil", err)
	}
}

func TestRing_PushPanicsWhenFull(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Push onto a full ring should panic")
		}
	}()
	r, _ := RingOf(1, 2, 3, 4, 5, 6)
	r.Push(7)
}

func TestRing_AtWrapsModularly(t *testing.T) {
	r, _ := RingOf("a", "b", "c", "d", "e", "f")
	if got := r.At(6); got != "a" {
		t.Errorf("At(6) = %q; want %q", got, "a")
	}
	if got := r.At(-1); got != "f" {
		t.Errorf("At(-1) = %q; want %q", got, "f")
	}
}

func TestRing_RotateFrom(t *testing.T) {
	r, _ := RingOf("a", "b", "c", "d", "e", "f")
	if got := r.RotateFrom("c", 1); got != "d" {
		t.Errorf("RotateFrom(c, 1) = %q; want %q", got, "d")
	}
	if got := r.RotateFrom("a", -1); got != "f" {
		t.Errorf("RotateFrom(a, -1) = %q; want %q", got, "f")
	}
}

func TestRing_RotateFromPanicsWhenAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("RotateFrom with an absent previous element should panic")
		}
	}()
	r, _ := RingOf("a", "b", "c")
	r.RotateFrom("z", 1)
}
