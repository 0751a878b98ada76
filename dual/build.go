package dual

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hextile/hexasphere/coord"
)

// GeometryData is the output mesh of Build: one face-center point per
// processed face, one shared corner point per distinct original triangle
// (the normalized average of its three vertices), and a flat triangle index
// list fanning each face's corner points around its center in ring order.
type GeometryData struct {
	Points  []r3.Vec
	Normals []r3.Vec
	Indices []uint32
}

// FaceJob names one original-mesh vertex to process into a dual face, with
// an optional adjacency-ring override. A nil Around falls back to looking
// the face up in the surrounding map Build was given — the override exists
// for the two poles, whose ring in the final hexasphere walk order differs
// from their raw mesh adjacency.
type FaceJob struct {
	Face   uint32
	Around *coord.Ring[uint32]
}

// unorderedTrio is a dedup key for an original mesh triangle, whose corner
// point is shared by the three faces built from its vertices: however the
// three vertex indices of a (face, a, b) wedge are presented, the same
// triangle always hashes to the same key.
type unorderedTrio struct {
	a, b, c uint32
}

func trio(a, b, c uint32) unorderedTrio {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
		if a > b {
			a, b = b, a
		}
	}
	return unorderedTrio{a, b, c}
}

// Build runs the dual-mesh construction over jobs, looking up each job's
// adjacency ring from surrounding when the job itself carries none.
// onFace, if non-nil, is called once per job with the face's original
// index, its new center-point index, and the ring of new edge-midpoint
// indices around it, in the same order as the original ring — this is how
// callers (hexasphere.BuildAndDual) recover the old-index-to-new-geometry
// mapping make_from_surrounding needs.
func Build(
	icoPoints []r3.Vec,
	jobs []FaceJob,
	surrounding map[uint32]coord.Ring[uint32],
	onFace func(face, center uint32, edgePoints coord.Ring[uint32]),
) (GeometryData, error) {
	var points []r3.Vec
	var indices []uint32
	triangleSet := make(map[unorderedTrio]uint32)

	for _, job := range jobs {
		around := job.Around
		if around == nil {
			ring, ok := surrounding[job.Face]
			if !ok {
				return GeometryData{}, ErrMissingAdjacency
			}
			around = &ring
		}
		n := around.Len()

		mid := len(points)
		points = append(points, r3.Vec{})

		midVal := r3.Vec{}
		for i := 0; i < n; i++ {
			key := trio(job.Face, around.At(i), around.At(i+1))
			idx, ok := triangleSet[key]
			if !ok {
				avg := r3.Add(r3.Add(icoPoints[job.Face], icoPoints[around.At(i)]), icoPoints[around.At(i+1)])
				avg = r3.Unit(avg)
				idx = uint32(len(points))
				points = append(points, avg)
				triangleSet[key] = idx
				midVal = r3.Add(midVal, avg)
			} else {
				midVal = r3.Add(midVal, points[idx])
			}
		}
		midVal = r3.Scale(1/float64(n), midVal)
		points[mid] = midVal

		var edgePoints coord.Ring[uint32]
		for i := 0; i < n; i++ {
			a := uint32(mid)
			b := triangleSet[trio(job.Face, around.At(i), around.At(i+1))]
			c := triangleSet[trio(job.Face, around.At(i+1), around.At(i+2))]

			edgePoints.Push(b)
			indices = append(indices, a, b, c)
		}

		if onFace != nil {
			onFace(job.Face, uint32(mid), edgePoints)
		}
	}

	normals := make([]r3.Vec, len(points))
	for i, p := range points {
		normals[i] = r3.Unit(p)
	}

	return GeometryData{Points: points, Normals: normals, Indices: indices}, nil
}
