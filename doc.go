// Package hexasphere builds and manipulates a geodesic hex/pentagon tiling
// of a sphere: a subdivided icosahedron (icogen) whose faces are converted
// to a dual mesh of mostly-hexagonal, twelve-pentagonal cells (dual), each
// addressed by a compact Coordinate (coord) and stored in an indexed,
// generic Hexasphere[T] (hexasphere).
//
// Subpackages:
//
//	coord/     — Coordinate addressing, neighbor rule (Tiling.Surrounding), Ring[T]
//	meshadj/   — triangle-index-list to per-vertex neighbor-ring adjacency builder
//	dual/      — icosahedron-to-dual-mesh geometry (face centers, shared edges)
//	hexasphere/ — indexed cell storage and the three mesh-to-Hexasphere builders
//	traverse/  — line-of-sight walks, flood fill, ring ordering, region bridging
//	pathfind/  — A* shortest path and nearest-cell lookup over the tiling
//	icogen/    — ambient icosahedron subdivider used to manufacture test meshes
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// functional specification and the grounding ledger tying each package back
// to its reference implementation.
package hexasphere
