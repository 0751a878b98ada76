package traverse

import "errors"

// ErrEmptyRing indicates RingOrder was given zero coordinates to order.
var ErrEmptyRing = errors.New("traverse: ring order requires at least one coordinate")

// ErrRingBroken indicates RingOrder's walk could not find an unvisited
// neighbor among the remaining coordinates before every coordinate had been
// visited — the input set is not a single connected ring under Surrounding.
var ErrRingBroken = errors.New("traverse: coordinates do not form a connected ring")

// ErrChiralityUndetermined indicates RingOrder could not find the outside
// neighbor needed to fix the ring's winding direction: every cell adjacent
// to both of the first two ring cells lies in inside.
var ErrChiralityUndetermined = errors.New("traverse: could not determine ring chirality")

// ErrNoEndpoints indicates Bridge was given an empty src or dst set.
var ErrNoEndpoints = errors.New("traverse: bridge requires at least one source and one destination cell")

// ErrNoPath indicates Bridge's 0-1 BFS exhausted the tiling without ever
// reaching a destination cell.
var ErrNoPath = errors.New("traverse: no path connects the given regions")
