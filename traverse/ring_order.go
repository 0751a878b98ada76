package traverse

import "github.com/hextile/hexasphere/coord"

// RingOrder reorders coordinates in place into a connected walk — each
// consecutive pair borders the next under Surrounding — and then fixes the
// walk's winding direction so it runs consistently around inside: the set
// of cells the ring encloses. Ported from the reference implementation's
// ring_order.
//
// It returns ErrEmptyRing if coordinates is empty, ErrRingBroken if the
// cells in coordinates do not form one connected ring, and
// ErrChiralityUndetermined if the winding direction cannot be determined
// (every common neighbor of the first two ring cells lies in inside). A
// ring of a single cell is returned as is, with no error.
func RingOrder(t coord.Tiling, coordinates []coord.Coordinate, inside map[coord.Coordinate]struct{}) error {
	if len(coordinates) == 0 {
		return ErrEmptyRing
	}

	all := make(map[coord.Coordinate]struct{}, len(coordinates))
	for _, c := range coordinates {
		all[c] = struct{}{}
	}

	visited := make(map[coord.Coordinate]struct{}, len(coordinates))
	ordered := make([]coord.Coordinate, 0, len(coordinates))

	current := coordinates[0]
	visited[current] = struct{}{}
	ordered = append(ordered, current)

	for len(visited) != len(all) {
		ring := t.Surrounding(current)
		found := false
		var next coord.Coordinate
		for i := 0; i < ring.Len(); i++ {
			x := ring.At(i)
			if _, inAll := all[x]; !inAll {
				continue
			}
			if _, seen := visited[x]; seen {
				continue
			}
			next = x
			found = true
			break
		}
		if !found {
			return ErrRingBroken
		}

		visited[next] = struct{}{}
		ordered = append(ordered, next)
		current = next
	}

	copy(coordinates, ordered)

	if len(coordinates) < 2 {
		return nil
	}

	first := coordinates[0]
	second := coordinates[1]

	firstSurrounding := t.Surrounding(first)
	secondSurrounding := t.Surrounding(second)

	var commonOut coord.Coordinate
	found := false
	for i := 0; i < secondSurrounding.Len(); i++ {
		x := secondSurrounding.At(i)
		if _, isInside := inside[x]; isInside {
			continue
		}
		if firstSurrounding.Contains(x) {
			commonOut = x
			found = true
			break
		}
	}
	if !found {
		return ErrChiralityUndetermined
	}

	outSurrounding := t.Surrounding(commonOut)
	idx, ok := outSurrounding.IndexOf(second)
	if !ok {
		return ErrChiralityUndetermined
	}
	if first != outSurrounding.At(idx+1) {
		reverseCoordinates(coordinates)
	}
	return nil
}

func reverseCoordinates(cs []coord.Coordinate) {
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
}
