package pathfind

import (
	"container/heap"
	"math"

	"github.com/hextile/hexasphere/coord"
)

// pqNode and nodePQ are a container/heap min-heap ordered by f-score,
// generalizing hexcore's path.AStar priority queue from axial hex
// coordinates to coord.Coordinate.
type pqNode struct {
	c coord.Coordinate
	f float64
}

type nodePQ []*pqNode

func (p nodePQ) Len() int            { return len(p) }
func (p nodePQ) Less(i, j int) bool  { return p[i].f < p[j].f }
func (p nodePQ) Swap(i, j int)       { p[i], p[j] = p[j], p[i] }
func (p *nodePQ) Push(x interface{}) { *p = append(*p, x.(*pqNode)) }
func (p *nodePQ) Pop() interface{} {
	old := *p
	n := len(old)
	x := old[n-1]
	*p = old[:n-1]
	return x
}

// WeightFunc reports the cost of moving from one cell to an adjacent one,
// or ok=false if the move is impossible (a wall, an impassable biome, …).
type WeightFunc func(from, to coord.Coordinate) (cost int, ok bool)

// HeuristicFunc estimates the remaining cost from c to the search's goal.
// For an admissible heuristic (one that never overestimates), AStar finds
// an optimal path; dual.StepsBetween on the underlying mesh points is the
// natural choice.
type HeuristicFunc func(c coord.Coordinate) int

// AStarOptions configures AStar beyond its required arguments.
type AStarOptions struct {
	// MaxExpansions caps the number of cells popped off the open set before
	// giving up with ErrNoPath, guarding against a non-admissible or buggy
	// heuristic turning the search into a near-exhaustive tiling walk.
	// Zero (the default) means unlimited.
	MaxExpansions int
}

// AStarOption is a functional option for AStar, in the same style as the
// teacher's dijkstra.Option.
type AStarOption func(*AStarOptions)

// WithMaxExpansions sets AStarOptions.MaxExpansions.
func WithMaxExpansions(n int) AStarOption {
	return func(o *AStarOptions) { o.MaxExpansions = n }
}

// AStar finds a minimum-weight path from start to goal over t, expanding
// each cell's neighbors with t.Surrounding and weighing each edge with
// weight. It returns the path (including both endpoints) and its total
// weight, or ErrNoPath if goal is unreachable (or MaxExpansions is hit
// first).
//
// Ported from the reference implementation's astar, which wraps the
// `pathfinding` crate's implementation; this module has no such crate to
// wrap, so the search itself — not just its call shape — is implemented
// directly here, using the same min-heap-by-f-score structure hexcore's
// path.AStar already demonstrates for a different coordinate system.
func AStar(t coord.Tiling, start, goal coord.Coordinate, weight WeightFunc, heuristic HeuristicFunc, opts ...AStarOption) ([]coord.Coordinate, int, error) {
	if start == goal {
		return []coord.Coordinate{start}, 0, nil
	}

	var cfg AStarOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	open := &nodePQ{}
	heap.Init(open)
	push := func(c coord.Coordinate, f float64) { heap.Push(open, &pqNode{c: c, f: f}) }

	g := map[coord.Coordinate]int{start: 0}
	came := map[coord.Coordinate]coord.Coordinate{}
	closed := map[coord.Coordinate]bool{}

	push(start, float64(heuristic(start)))

	expansions := 0
	for open.Len() > 0 {
		if cfg.MaxExpansions > 0 && expansions >= cfg.MaxExpansions {
			return nil, 0, ErrNoPath
		}
		expansions++

		cur := heap.Pop(open).(*pqNode).c
		if closed[cur] {
			continue
		}
		closed[cur] = true

		if cur == goal {
			path := []coord.Coordinate{goal}
			k := goal
			for k != start {
				k = came[k]
				path = append(path, k)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, g[goal], nil
		}

		ring := t.Surrounding(cur)
		for i := 0; i < ring.Len(); i++ {
			next := ring.At(i)
			if closed[next] {
				continue
			}
			step, ok := weight(cur, next)
			if !ok {
				continue
			}
			tentative := g[cur] + step
			old, seen := g[next]
			if !seen || tentative < old {
				g[next] = tentative
				came[next] = cur
				f := float64(tentative + heuristic(next))
				if math.IsNaN(f) || math.IsInf(f, 0) {
					f = float64(tentative)
				}
				push(next, f)
			}
		}
	}

	return nil, 0, ErrNoPath
}
