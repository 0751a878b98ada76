// Package meshadj builds the per-vertex adjacency rings a triangle mesh
// needs before it can be read as a hexasphere: for every vertex index
// referenced by a triangle list, the ordered ring of its neighboring vertex
// indices, in winding order.
//
// This is the one piece of bookkeeping hexasphere.BuildFromSurrounding
// depends on but cannot derive on its own, since coord.Tiling only knows
// about Coordinates, not raw mesh indices. It is grounded directly on the
// reference implementation's make_coordinate_store: the incremental,
// triangle-at-a-time insertion rule that keeps each ring in walk order
// without ever needing to look at the mesh's full triangle list at once.
package meshadj
