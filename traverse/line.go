package traverse

import "github.com/hextile/hexasphere/coord"

// ChooseFunc breaks the ambiguity ContinueLine hits whenever a line of
// sight passes through a pentagon: rotating +3 and -3 around the
// pentagon's 5-neighbor ring lands on two different cells instead of one,
// and only the caller (who knows the line's actual direction in space) can
// say which continuation is correct. prev and next are the two cells the
// line has just crossed; options holds the two rotation candidates in an
// unspecified order.
type ChooseFunc func(prev, next coord.Coordinate, options [2]coord.Coordinate) coord.Coordinate

// Line continues a straight line of cells across the tiling one step at a
// time, ported from the reference implementation's LineCont/continue_line:
// each step rotates the ring around the current cell, starting from the
// previous cell, by 3 positions in each direction — for a hexagon those two
// rotations agree (a straight line through a hexagon's center always exits
// the opposite edge), and only a pentagon ever needs ChooseFunc.
type Line struct {
	tiling coord.Tiling
	prev   coord.Coordinate
	next   coord.Coordinate
	choose ChooseFunc
}

// ContinueLine starts a Line walking from the step (from, to): the next
// call to Next resumes the line past to, as if it had already crossed from
// from into to.
func ContinueLine(t coord.Tiling, from, to coord.Coordinate, choose ChooseFunc) *Line {
	return &Line{tiling: t, prev: from, next: to, choose: choose}
}

// Next advances the line by one cell and returns it.
func (l *Line) Next() coord.Coordinate {
	surrounding := l.tiling.Surrounding(l.next)
	choiceA := surrounding.RotateFrom(l.prev, 3)
	choiceB := surrounding.RotateFrom(l.prev, -3)

	choice := choiceA
	if choiceA != choiceB {
		choice = l.choose(l.prev, l.next, [2]coord.Coordinate{choiceA, choiceB})
	}

	l.prev = l.next
	l.next = choice
	return choice
}

// Take advances the line n steps and returns each cell visited, in order.
func (l *Line) Take(n int) []coord.Coordinate {
	out := make([]coord.Coordinate, n)
	for i := 0; i < n; i++ {
		out[i] = l.Next()
	}
	return out
}
