// Package pathfind implements the two search algorithms the reference
// implementation builds on top of a populated Hexasphere: AStar, a
// shortest-weighted-path search over coord.Surrounding, and FindPoint, a
// greedy hill-climb that locates the cell nearest an arbitrary point on the
// sphere.
//
// AStar's priority queue is a container/heap min-heap of (coordinate,
// f-score) pairs, the same shape hexcore's path.AStar uses for its axial
// hex grid — this module generalizes that shape to coord.Coordinate instead
// of rewriting it, since no Go package in this module's dependency graph
// supplies a ready-made weighted graph search (the reference
// implementation instead calls out to the `pathfinding` crate, which has
// no equivalent here).
package pathfind
