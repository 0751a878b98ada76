// Package dual turns an icosphere mesh and its per-vertex adjacency rings
// (meshadj.Build) into the dual hexagon/pentagon mesh a hexasphere is
// rendered from, and carries the small vector-geometry helpers the rest of
// the module needs on top of gonum's r3 package.
//
// Build is a direct port of the reference implementation's geometry_util::
// dual: for every original vertex it emits one new "face center" point plus
// the corner points around it, one per original triangle touching that
// vertex (the normalized average of the triangle's three vertices),
// deduplicated by an unordered-triple key so the faces that share a
// triangle refer to the same corner vertex rather than each creating one.
//
// StepsBetween and RayUnitSphereIntersect are unrelated small geometry
// utilities from the same source file, kept here because they operate on
// the same r3.Vec points Build produces.
package dual
