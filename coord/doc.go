// Package coord defines the addressing scheme for a subdivided-icosahedron
// hexagonal tiling: the Coordinate type, the bounded-capacity Ring used for
// neighbor lists everywhere in the module, and the Surrounding function that
// derives a cell's 5 or 6 neighbors directly from its coordinate.
//
// A tiling with subdivisions n has 10(n+1)^2 + 2 cells: one Top pole, one
// Bottom pole, and five chunks of 2(n+1)^2 Inside cells each, addressed by
// (chunk, short, long). Surrounding is the neighbor function the traversal
// and search packages (traverse, pathfind) build on, while meshadj, dual and
// hexasphere use this package's Ring and Coordinate types. Surrounding
// is ported case-by-case from the reference implementation rather than
// re-derived, since the seam and pole arithmetic is easy to get subtly wrong.
//
// Why a dedicated package:
//
//   - Coordinate must be a plain comparable value (usable as a map key and
//     freely copied) — no behavior belongs on it beyond Compare/String.
//   - Ring[T] is reused for both mesh-vertex-id rings (meshadj) and
//     Coordinate rings (Surrounding), so it is generic over T comparable.
package coord
