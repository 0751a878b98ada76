// Package traverse implements the tiling-wide walks built on top of
// coord.Tiling.Surrounding: continuing a line of sight across the mesh,
// flood-filling connected regions ("blobs") and their borders, and putting
// an unordered set of cells into a walkable ring order.
//
// Each of ContinueLine, FindBlobs, BlobBorders, and RingOrder is a direct
// port of the correspondingly named method on the reference
// implementation's Chunked: the line-continuation iterator, the
// to_explore/visited flood fill, the border-recursion trick for computing a
// blob's neighboring blobs, and the visited-set walk with a chirality fixup
// at the end.
//
// Bridge adapts a different source: a minimum-conversion-cost 0-1 BFS for
// connecting two regions, generalized from a grid of land/water cells to
// any two sets of cells on the tiling.
package traverse
