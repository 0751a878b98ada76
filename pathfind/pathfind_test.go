// File: pathfind/pathfind_test.go
package pathfind

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hextile/hexasphere/coord"
)

//----------------------------------------------------------------------------//
// AStar
//----------------------------------------------------------------------------//

func TestAStar_SameStartAndGoal(t *testing.T) {
	tl := coord.New(3)
	path, cost, err := AStar(tl, coord.Top, coord.Top, uniformWeight, zeroHeuristic)
	if err != nil {
		t.Fatalf("AStar: %v", err)
	}
	if len(path) != 1 || path[0] != coord.Top {
		t.Fatalf("path = %v; want [Top]", path)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
}

func TestAStar_FindsAdjacentPath(t *testing.T) {
	tl := coord.New(3)
	goal := coord.Inside(0, 0, 0)

	path, cost, err := AStar(tl, coord.Top, goal, uniformWeight, zeroHeuristic)
	if err != nil {
		t.Fatalf("AStar: %v", err)
	}
	if len(path) != 2 {
		t.Fatalf("len(path) = %d; want 2 (Top is adjacent to I(0,0,0))", len(path))
	}
	if path[0] != coord.Top || path[len(path)-1] != goal {
		t.Errorf("path = %v; want to start at Top and end at goal", path)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
}

func TestAStar_ImpassableGoalIsUnreachable(t *testing.T) {
	tl := coord.New(3)
	goal := coord.Inside(0, 0, 0)

	alwaysBlockGoal := func(from, to coord.Coordinate) (int, bool) {
		if to == goal {
			return 0, false
		}
		return 1, true
	}

	_, _, err := AStar(tl, coord.Top, goal, alwaysBlockGoal, zeroHeuristic)
	if err != ErrNoPath {
		t.Fatalf("AStar error = %v; want ErrNoPath", err)
	}
}

func TestAStar_MultiStepPath(t *testing.T) {
	tl := coord.New(3)
	start := coord.Inside(0, 0, 0)
	goal := coord.Inside(0, 3, 0)

	path, _, err := AStar(tl, start, goal, uniformWeight, zeroHeuristic)
	if err != nil {
		t.Fatalf("AStar: %v", err)
	}
	for i := 0; i+1 < len(path); i++ {
		if !tl.Surrounding(path[i]).Contains(path[i+1]) {
			t.Errorf("path step %s -> %s is not an edge", path[i], path[i+1])
		}
	}
	if path[len(path)-1] != goal {
		t.Errorf("path does not end at goal: %v", path)
	}
}

func uniformWeight(from, to coord.Coordinate) (int, bool) { return 1, true }
func zeroHeuristic(c coord.Coordinate) int                { return 0 }

func TestAStar_MaxExpansionsStopsSearch(t *testing.T) {
	tl := coord.New(3)
	start := coord.Inside(0, 0, 0)
	goal := coord.Inside(0, 3, 0)

	_, _, err := AStar(tl, start, goal, uniformWeight, zeroHeuristic, WithMaxExpansions(1))
	if err != ErrNoPath {
		t.Fatalf("AStar with MaxExpansions(1) error = %v; want ErrNoPath", err)
	}

	_, _, err = AStar(tl, start, goal, uniformWeight, zeroHeuristic)
	if err != nil {
		t.Fatalf("AStar without a cap should still find the path: %v", err)
	}
}

//----------------------------------------------------------------------------//
// FindPoint
//----------------------------------------------------------------------------//

func TestFindPoint_FindsTopWhenPointingAtTop(t *testing.T) {
	tl := coord.New(2)
	positions := simplePositionTable(tl)

	top := positions[coord.Top]
	got := FindPoint(tl, top, func(c coord.Coordinate) r3.Vec { return positions[c] })
	if got != coord.Top {
		t.Errorf("FindPoint(Top's own position) = %s; want Top", got)
	}
}

func TestFindPoint_FindsBottomWhenPointingAtBottom(t *testing.T) {
	tl := coord.New(2)
	positions := simplePositionTable(tl)

	bottom := positions[coord.Bottom]
	got := FindPoint(tl, bottom, func(c coord.Coordinate) r3.Vec { return positions[c] })
	if got != coord.Bottom {
		t.Errorf("FindPoint(Bottom's own position) = %s; want Bottom", got)
	}
}

// simplePositionTable lays every coordinate out on a unit sphere by
// latitude (short+long+1, the cell's step count from Top, out of the 3(n+1)
// steps between the poles) and longitude (chunk, long) — close enough to a
// real hexasphere layout for FindPoint's hill-climb to behave the same way,
// since every cell but Bottom then has a neighbor strictly further south.
func simplePositionTable(tl coord.Tiling) map[coord.Coordinate]r3.Vec {
	out := map[coord.Coordinate]r3.Vec{
		coord.Top:    {X: 0, Y: 0, Z: 1},
		coord.Bottom: {X: 0, Y: 0, Z: -1},
	}
	n := tl.Subdivisions
	for chunk := uint8(0); chunk < 5; chunk++ {
		for short := 0; short <= n; short++ {
			for long := 0; long < 2*(n+1); long++ {
				lat := 1.0 - 2.0*float64(short+long+1)/float64(3*(n+1))
				radius := math.Sqrt(math.Max(0, 1-lat*lat))
				lon := 2 * math.Pi * (float64(chunk) + float64(long)/float64(2*(n+1))) / 5.0
				out[coord.Inside(chunk, short, long)] = r3.Vec{
					X: radius * math.Cos(lon),
					Y: radius * math.Sin(lon),
					Z: lat,
				}
			}
		}
	}
	return out
}
