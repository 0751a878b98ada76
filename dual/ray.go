package dual

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// RayUnitSphereIntersect finds the nearest intersection of the ray starting
// at start, pointing toward direction, with the unit sphere centered at the
// origin. It returns false if the line through start along direction misses
// the sphere or only touches it; the sign of t is not checked, so a sphere
// lying behind start still yields a hit behind start. Ported
// from the reference implementation's ray_unit_sphere_int (the standard
// ray/sphere quadratic, specialized to a unit sphere at the origin).
func RayUnitSphereIntersect(start, direction r3.Vec) (r3.Vec, bool) {
	direction = r3.Unit(direction)

	lp := r3.Dot(direction, start)
	pp := r3.Dot(start, start)

	disc := lp*lp - pp + 1.0
	if disc <= 0 {
		return r3.Vec{}, false
	}

	t := -lp - math.Sqrt(disc)
	return r3.Add(start, r3.Scale(t, direction)), true
}
