package pathfind

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hextile/hexasphere/coord"
)

// PositionFunc gives the unit-sphere position a cell is rendered at, so
// FindPoint can measure how close a candidate cell is to the target point.
type PositionFunc func(c coord.Coordinate) r3.Vec

// FindPoint locates the cell whose position is nearest point, starting the
// search at Top and greedily hill-climbing to the first neighbor (in
// Surrounding order) that reduces the distance, stopping as soon as no neighbor improves
// on the current cell. Ported from the reference implementation's
// find_point: this is not guaranteed to find the global nearest cell on a
// pathological mesh, but converges in practice because the dual mesh's
// distance function has no local minima other than the true nearest cell.
func FindPoint(t coord.Tiling, point r3.Vec, position PositionFunc) coord.Coordinate {
	distance := func(c coord.Coordinate) float64 {
		return 1.0 - r3.Dot(point, position(c))
	}

	current := coord.Top
	bestDistance := distance(current)

outer:
	for {
		ring := t.Surrounding(current)
		for i := 0; i < ring.Len(); i++ {
			candidate := ring.At(i)
			d := distance(candidate)
			if d < bestDistance {
				bestDistance = d
				current = candidate
				continue outer
			}
		}
		return current
	}
}
