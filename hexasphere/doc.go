// Package hexasphere assembles coord.Tiling, meshadj, and dual into the
// runtime data structure a caller actually stores per-cell data in:
// Hexasphere[T], a fixed store of one T per Top, Bottom, and Inside
// coordinate, plus the builders that populate one from raw mesh data.
//
// BuildFromSurrounding walks a mesh's per-vertex adjacency rings
// (meshadj.Build's output) into coordinate order using the same rotate_by
// trick the reference implementation's make_from_surrounding relies on:
// starting each chunk from that chunk's entry in the Top pole's ring, each subsequent short/long
// step is found by rotating around the previous ring rather than by
// computing its position analytically. BuildAndDual and BuildChunkedDual
// layer dual.Build underneath that walk so the T stored per coordinate can
// carry polygon geometry rather than a bare mesh index.
package hexasphere
