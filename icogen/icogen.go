package icogen

import "gonum.org/v1/gonum/spatial/r3"

// Generate returns the points and flat CCW-wound triangle-index list of a
// unit-sphere icosahedron subdivided `subdivisions` times. subdivisions=0
// is the bare 12-vertex, 20-face icosahedron.
func Generate(subdivisions int) ([]r3.Vec, []uint32) {
	vertices, triangles := icosahedron()
	for i := 0; i < subdivisions; i++ {
		vertices, triangles = subdivide(vertices, triangles)
	}

	indices := make([]uint32, 0, len(triangles)*3)
	for _, tri := range triangles {
		indices = append(indices, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
	}
	return vertices, indices
}

// edgeIdx identifies an edge of the mesh by its two endpoint indices, with
// the lower index always first so both winding directions of the same edge
// hash to the same key.
type edgeIdx [2]int

func subdivide(vertices []r3.Vec, triangles [][3]int) ([]r3.Vec, [][3]int) {
	lookup := make(map[edgeIdx]int)
	var result [][3]int
	for _, triangle := range triangles {
		var mid [3]int
		for edge := 0; edge < 3; edge++ {
			lookup, mid[edge], vertices = subdivideEdge(lookup, vertices, triangle[edge], triangle[(edge+1)%3])
		}
		newTriangles := [][3]int{
			{triangle[0], mid[0], mid[2]},
			{triangle[1], mid[1], mid[0]},
			{triangle[2], mid[2], mid[1]},
			{mid[0], mid[1], mid[2]},
		}
		result = append(result, newTriangles...)
	}
	return vertices, result
}

func subdivideEdge(lookup map[edgeIdx]int, vertices []r3.Vec, first, second int) (map[edgeIdx]int, int, []r3.Vec) {
	key := edgeIdx{first, second}
	if first > second {
		key[0], key[1] = key[1], key[0]
	}
	vertIdx, vertExists := lookup[key]
	if !vertExists {
		edge0 := vertices[first]
		edge1 := vertices[second]
		point := r3.Unit(r3.Add(edge0, edge1))
		vertices = append(vertices, point)
		vertIdx = len(vertices) - 1
		lookup[key] = vertIdx
	}
	return lookup, vertIdx, vertices
}

// icosahedron returns the 12 vertices and 20 faces of a unit-sphere
// icosahedron, relabeled from the textbook (x,z)-golden-ratio construction
// so that vertex 0 and vertex 11 are the geometric/combinatorial antipodes
// of each other — the pole-first convention BuildFromSurrounding and
// BuildAndDual assume when a caller passes topIndex=0, bottomIndex=11.
func icosahedron() (vertices []r3.Vec, triangles [][3]int) {
	const (
		x = 0.525731112119133606
		z = 0.850650808352039932
		n = 0.0
	)
	return []r3.Vec{
			{X: -x, Y: n, Z: z}, {X: x, Y: n, Z: z}, {X: -x, Y: n, Z: -z},
			{X: n, Y: z, Z: x}, {X: n, Y: z, Z: -x}, {X: n, Y: -z, Z: x}, {X: n, Y: -z, Z: -x},
			{X: z, Y: x, Z: n}, {X: -z, Y: x, Z: n}, {X: z, Y: -x, Z: n}, {X: -z, Y: -x, Z: n},
			{X: x, Y: n, Z: -z},
		}, [][3]int{
			{0, 1, 3}, {0, 3, 8}, {8, 3, 4}, {3, 7, 4},
			{3, 1, 7}, {7, 1, 9}, {7, 9, 11}, {4, 7, 11},
			{4, 11, 2}, {2, 11, 6}, {6, 11, 9}, {6, 9, 5},
			{6, 5, 10}, {10, 5, 0}, {0, 5, 1}, {5, 9, 1},
			{8, 10, 0}, {8, 2, 10}, {8, 4, 2}, {6, 10, 2},
		}
}
