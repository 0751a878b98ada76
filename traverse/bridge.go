package traverse

import "github.com/hextile/hexasphere/coord"

// Bridge finds a minimum-cost sequence of cells connecting any cell in src
// to any cell in dst: stepping into a passable cell is free, stepping into
// an impassable one costs 1 (think of it as the number of cells that would
// need to be "converted" — water filled in, terrain leveled — to link two
// separate regions of a map). It returns the path (including both
// endpoints) and its total cost, or ErrNoPath if src and dst are on
// disconnected components of the tiling even after paying to convert every
// impassable cell.
//
// This is a 0-1 BFS (a deque-based shortest path search specialized to
// edge weights of only 0 or 1, avoiding the full overhead of AStar's
// binary heap), adapted from the reference gridgraph package's
// ExpandIsland — the same algorithm, generalized from a rectangular grid's
// 4/8-neighbor offsets to coord.Surrounding.
func Bridge(t coord.Tiling, src, dst []coord.Coordinate, passable func(coord.Coordinate) bool) ([]coord.Coordinate, int, error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrNoEndpoints
	}

	dstSet := make(map[coord.Coordinate]struct{}, len(dst))
	for _, c := range dst {
		dstSet[c] = struct{}{}
	}

	dist := make(map[coord.Coordinate]int)
	prev := make(map[coord.Coordinate]coord.Coordinate)
	hasPrev := make(map[coord.Coordinate]bool)

	// deque entries carry the distance they were enqueued with, so a cell
	// reached again at a lower cost (after its earlier, costlier entry is
	// still sitting in the deque) can be told apart from a stale one on pop
	// — the same staleness guard ExpandIsland's 0-1 BFS uses.
	type queued struct {
		c coord.Coordinate
		d int
	}

	deque := make([]queued, 0, len(src))
	for _, c := range src {
		dist[c] = 0
		deque = append(deque, queued{c: c, d: 0})
	}

	var target coord.Coordinate
	found := false

	for len(deque) > 0 {
		item := deque[0]
		deque = deque[1:]
		u := item.c

		if item.d > dist[u] {
			continue
		}

		if _, ok := dstSet[u]; ok {
			target = u
			found = true
			break
		}

		ring := t.Surrounding(u)
		for i := 0; i < ring.Len(); i++ {
			v := ring.At(i)
			step := 0
			if !passable(v) {
				step = 1
			}
			nd := dist[u] + step
			old, seen := dist[v]
			if !seen || nd < old {
				dist[v] = nd
				prev[v] = u
				hasPrev[v] = true
				if step == 0 {
					deque = append([]queued{{c: v, d: nd}}, deque...)
				} else {
					deque = append(deque, queued{c: v, d: nd})
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}

	var path []coord.Coordinate
	for at := target; ; {
		path = append([]coord.Coordinate{at}, path...)
		if !hasPrev[at] {
			break
		}
		at = prev[at]
	}

	return path, dist[target], nil
}
