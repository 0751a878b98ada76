package traverse

import "github.com/hextile/hexasphere/coord"

// Blob is one connected component of a coordinate set: every cell reachable
// from every other cell in the set by stepping only through other members
// of the set, plus the subset of its cells that border a cell outside the
// set (or outside the tiling entirely, for a set that doesn't cover the
// whole sphere).
type Blob struct {
	Contents map[coord.Coordinate]struct{}
	Borders  []coord.Coordinate
}

// FindBlobs partitions coords into connected components under Surrounding,
// ported from the reference implementation's find_blobs: a depth-first
// flood fill from an arbitrary unvisited member of the set, repeated until
// every member has been assigned to some blob.
func FindBlobs(t coord.Tiling, coords []coord.Coordinate) []Blob {
	all := make(map[coord.Coordinate]struct{}, len(coords))
	for _, c := range coords {
		all[c] = struct{}{}
	}

	var yielded []Blob

	for len(all) > 0 {
		var first coord.Coordinate
		for c := range all {
			first = c
			break
		}

		toExplore := []coord.Coordinate{first}
		currentContents := map[coord.Coordinate]struct{}{first: {}}
		var bordered []coord.Coordinate

		for len(toExplore) > 0 {
			next := toExplore[len(toExplore)-1]
			toExplore = toExplore[:len(toExplore)-1]

			borderedByNothing := false
			ring := t.Surrounding(next)
			for i := 0; i < ring.Len(); i++ {
				around := ring.At(i)
				_, exists := all[around]
				if _, already := currentContents[around]; exists && !already {
					toExplore = append(toExplore, around)
					currentContents[around] = struct{}{}
				}
				if !exists {
					borderedByNothing = true
				}
			}

			if borderedByNothing {
				bordered = append(bordered, next)
			}
		}

		for c := range currentContents {
			delete(all, c)
		}

		yielded = append(yielded, Blob{Contents: currentContents, Borders: bordered})
	}

	return yielded
}

// BlobBorders splits a blob's own border cells into their connected
// components, ported from the reference implementation's blob_borders: the
// border of a blob can itself be disconnected (think an annulus), so this
// re-runs FindBlobs over just the border cells and discards each resulting
// sub-blob's contents, keeping only its border list.
func BlobBorders(t coord.Tiling, blob Blob) [][]coord.Coordinate {
	blobs := FindBlobs(t, blob.Borders)
	out := make([][]coord.Coordinate, len(blobs))
	for i, b := range blobs {
		out[i] = b.Borders
	}
	return out
}
