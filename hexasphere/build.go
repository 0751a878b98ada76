package hexasphere

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hextile/hexasphere/coord"
	"github.com/hextile/hexasphere/dual"
	"github.com/hextile/hexasphere/meshadj"
)

// rotateBy looks this up in surrounding, finds previous in its ring, and
// returns the entry `by` slots away. This is the one primitive the walk
// below depends on, ported from make_from_surrounding's local rotate_by
// closure.
func rotateBy(surrounding map[uint32]coord.Ring[uint32], previous, this uint32, by int) uint32 {
	ring := surrounding[this]
	return ring.RotateFrom(previous, by)
}

// BuildFromSurrounding walks a mesh's per-vertex adjacency rings into
// coordinate order and returns a populated Hexasphere. topIndex and
// bottomIndex are the old mesh indices of the two antipodal pole vertices;
// for a mesh built by this module's icogen package they are always 0 and
// 11, the base icosahedron's pole-first pair, which subdivision preserves
// unchanged (it only ever appends new vertices after them).
//
// make translates an old mesh vertex index, together with the coordinate
// the walk has assigned it, into the stored value for that coordinate.
//
// The walk itself starts each chunk from whichever neighbor of the pole
// lands in that chunk's slot of the pole's own ring, then advances short
// and long by rotating around each cell's own ring by a fixed offset
// (-2 to step from a short-root onto its first long neighbor, -3
// thereafter) rather than recomputing position analytically — this is
// exactly the rotate_by walk make_from_surrounding performs, and it only
// works because meshadj.Build preserves winding order in every ring.
func BuildFromSurrounding[T any](
	subdivisions int,
	topIndex, bottomIndex uint32,
	surrounding map[uint32]coord.Ring[uint32],
	make_ func(old uint32, c coord.Coordinate) T,
) *Hexasphere[T] {
	tiling := coord.New(subdivisions)

	hs := &Hexasphere[T]{
		tiling: tiling,
		top:    make_(topIndex, coord.Top),
		bottom: make_(bottomIndex, coord.Bottom),
	}

	topRing := surrounding[topIndex]

	for chunk := uint8(0); chunk < 5; chunk++ {
		data := make([]T, 0, hs.slotsPerChunk()*(subdivisions+1))

		shortPrev := topIndex
		shortRoot := topRing.At(int(chunk))

		for short := 0; short <= subdivisions; short++ {
			data = append(data, make_(shortRoot, coord.Inside(chunk, short, 0)))

			longRoot := rotateBy(surrounding, shortPrev, shortRoot, -2)
			longPrev := shortRoot

			for long := 1; long < 2*(subdivisions+1); long++ {
				data = append(data, make_(longRoot, coord.Inside(chunk, short, long)))

				newLongRoot := rotateBy(surrounding, longPrev, longRoot, -3)
				longPrev = longRoot
				longRoot = newLongRoot
			}

			newShortRoot := rotateBy(surrounding, shortPrev, shortRoot, -3)
			shortPrev = shortRoot
			shortRoot = newShortRoot
		}

		hs.chunks[chunk] = data
	}

	return hs
}

// dualFace records, for one original mesh vertex, where its dual-mesh face
// center and edge-midpoints ended up in a dual.GeometryData.
type dualFace struct {
	center uint32
	edges  coord.Ring[uint32]
}

// BuildAndDual builds the dual polygon mesh of an icosphere in one pass
// and walks it into coordinate order, so make receives full polygon
// geometry (its new center index, its ring of edge-midpoint indices, the
// geometry buffer they index into) rather than a bare old mesh index.
// makeTemporary runs once against the finished dual geometry before the
// per-coordinate walk, for callers that need to derive shared state (a
// bounding box, a color ramp) from the whole mesh first — mirroring
// make_and_dual's make_temporary/make split exactly.
func BuildAndDual[T, E any](
	subdivisions int,
	indices []uint32,
	icoPoints []r3.Vec,
	topIndex, bottomIndex uint32,
	makeTemporary func(*dual.GeometryData) E,
	make_ func(center uint32, edges coord.Ring[uint32], c coord.Coordinate, geo *dual.GeometryData, temp *E) T,
) (*Hexasphere[T], *dual.GeometryData, E, error) {
	var zero E

	surrounding, err := meshadj.Build(indices)
	if err != nil {
		return nil, nil, zero, err
	}

	jobs := make([]dual.FaceJob, 0, len(surrounding))
	for old := range surrounding {
		jobs = append(jobs, dual.FaceJob{Face: old})
	}
	// Map iteration order is nondeterministic; sort by original vertex index
	// so dual.Build always assigns the same new point/triangle indices for
	// the same mesh, keeping GeometryData reproducible run to run.
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Face < jobs[j].Face })

	convert := make(map[uint32]dualFace, len(surrounding))
	geo, err := dual.Build(icoPoints, jobs, surrounding, func(face, center uint32, edges coord.Ring[uint32]) {
		convert[face] = dualFace{center: center, edges: edges}
	})
	if err != nil {
		return nil, nil, zero, err
	}

	temp := makeTemporary(&geo)

	hs := BuildFromSurrounding(subdivisions, topIndex, bottomIndex, surrounding, func(old uint32, c coord.Coordinate) T {
		face := convert[old]
		return make_(face.center, face.edges, c, &geo, &temp)
	})

	return hs, &geo, temp, nil
}

// ChunkFace records where one original vertex's dual face ended up within
// one of several independently-dualed chunks of geometry.
type ChunkFace struct {
	ChunkIndex int
	Center     uint32
	Edges      coord.Ring[uint32]
}

// BuildChunkedDual is BuildAndDual for a mesh source that must be
// processed in several independently-triangulated batches (e.g. one batch
// per render chunk, to keep vertex buffers under a GPU's index-size limit).
// nextIndices is called repeatedly for the next batch of flat triangle
// indices and should return nil once there are no more; every batch's
// adjacency folds into one running meshadj.Builder before the dual and the
// coordinate walk run, so the final Hexasphere is the same as if the whole
// mesh had been passed to BuildAndDual at once, but each chunk gets its own
// dual.GeometryData (and a vertex may therefore appear as a face in more
// than one chunk's geometry, carried in the ChunkFace list make receives).
func BuildChunkedDual[T, E any](
	subdivisions int,
	topIndex, bottomIndex uint32,
	nextIndices func() []uint32,
	icoPoints []r3.Vec,
	makeTemporary func([]*dual.GeometryData) E,
	make_ func(faces []ChunkFace, c coord.Coordinate, chunks []*dual.GeometryData, temp *E) T,
) (*Hexasphere[T], []*dual.GeometryData, E, error) {
	var zero E

	builder := meshadj.NewBuilder()
	var batches [][]uint32

	for {
		batch := nextIndices()
		if len(batch) == 0 {
			break
		}
		if err := builder.Add(batch); err != nil {
			return nil, nil, zero, err
		}
		batches = append(batches, batch)
	}

	accSurrounding, err := builder.Rings()
	if err != nil {
		return nil, nil, zero, err
	}

	convert := make(map[uint32][]ChunkFace)
	var chunks []*dual.GeometryData

	for _, batch := range batches {
		seen := make(map[uint32]bool)
		jobs := make([]dual.FaceJob, 0, len(batch))
		for _, idx := range batch {
			if !seen[idx] {
				seen[idx] = true
				jobs = append(jobs, dual.FaceJob{Face: idx})
			}
		}

		chunkIdx := len(chunks)
		geo, err := dual.Build(icoPoints, jobs, accSurrounding, func(face, center uint32, edges coord.Ring[uint32]) {
			convert[face] = append(convert[face], ChunkFace{ChunkIndex: chunkIdx, Center: center, Edges: edges})
		})
		if err != nil {
			return nil, nil, zero, err
		}
		chunks = append(chunks, &geo)
	}

	temp := makeTemporary(chunks)

	hs := BuildFromSurrounding(subdivisions, topIndex, bottomIndex, accSurrounding, func(old uint32, c coord.Coordinate) T {
		return make_(convert[old], c, chunks, &temp)
	})

	return hs, chunks, temp, nil
}
