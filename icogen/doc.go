// Package icogen generates the subdivided-icosahedron mesh (points and a
// flat triangle-index list) that meshadj, dual, and hexasphere all take as
// input. It is a direct port of gonum's r3 package icosphere-subdivision
// example: start from the 12-vertex, 20-face icosahedron, then repeatedly
// split every triangle into 4 by adding a normalized midpoint per edge,
// deduplicating shared edges with a lookup table so two triangles that
// share an edge get the same midpoint vertex.
//
// hexasphere.BuildFromSurrounding needs two antipodal, degree-5 vertices to
// use as the Top and Bottom poles; icosahedron is relabeled pole-first so
// vertex 0 and vertex 11 are exactly that antipodal pair (not merely two
// arbitrary original vertices), and Generate preserves every
// base-icosahedron vertex's index through every round of subdivision
// (subdivision only ever appends new vertices), so 0 and 11 remain valid
// pole choices at any subdivision depth.
package icogen
