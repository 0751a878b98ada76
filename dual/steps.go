package dual

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// stepsBetweenBiasA and stepsBetweenBiasB are the linear regression
// coefficients used to correct the even-grid estimate in StepsBetween.
// They were fitted against the reference implementation's own hexasphere
// geometry rather than derived analytically; their domain of validity
// (range of subdivisions, range of arc length) is undocumented upstream,
// so they are named here rather than re-derived. The tests check the
// same-point case and growth with subdivisions; no table of expected
// values is checked.
const (
	stepsBetweenBiasA = 0.032834187
	stepsBetweenBiasB = 0.48303393
)

// StepsBetween estimates the number of hexasphere cells a straight path
// between p1 and p2 crosses, for a tiling built with the given subdivision
// count. It first converts the angle between the two points into a
// cell-count estimate assuming an even grid, then applies a linear
// regression correction derived against the actual hexasphere geometry —
// ported verbatim (constants included) from the reference implementation's
// steps_between, since these are empirically fitted, not derived.
func StepsBetween(p1, p2 r3.Vec, subdivisions int) int {
	p1u := r3.Unit(p1)
	p2u := r3.Unit(p2)

	q := math.Acos(r3.Dot(p1u, p2u)) * float64(subdivisions+1) * 2.0 / (math.Pi - 1.0)

	bias := math.Round(stepsBetweenBiasA*q - stepsBetweenBiasB)
	return int(math.Round(q - bias))
}
