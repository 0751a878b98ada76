package pathfind

import "errors"

// ErrNoPath indicates AStar exhausted every reachable cell without finding
// the goal.
var ErrNoPath = errors.New("pathfind: no path to goal")
