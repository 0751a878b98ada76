package meshadj

import "github.com/hextile/hexasphere/coord"

// Builder accumulates per-vertex adjacency rings incrementally, across one
// or more calls to Add. This is the shape hexasphere.BuildChunkedDual needs:
// a chunked mesh source hands over its triangle indices one batch at a
// time, and every batch must fold into the same running adjacency map
// rather than starting fresh — exactly how the reference implementation's
// make_coordinate_store is called repeatedly against one shared
// coordinate_store across chunks.
//
// The zero value is not ready to use; construct one with NewBuilder.
type Builder struct {
	partial map[uint32][]uint32
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{partial: make(map[uint32][]uint32)}
}

// Add folds one more flat triangle-index batch into the adjacency being
// built. It visits each triangle (a, b, c) and, for each of its three
// vertices, folds one more pair of neighbors into that vertex's
// in-progress ring: a fresh vertex gets its ring seeded with the other two;
// a vertex already in progress gets the new neighbor spliced in next to
// whichever of the other two it already borders, so the ring grows outward
// from wherever the mesh happens to be "sewn" first. This mirrors
// make_coordinate_store in the reference implementation exactly — a ring
// built this way, from enough triangles, converges to the hexagon or
// pentagon walk order without ever sorting or re-deriving it from angles.
func (b *Builder) Add(indices []uint32) error {
	if len(indices)%3 != 0 {
		return ErrIndicesNotTriples
	}

	storeEntry := func(i, j, k uint32) {
		list, ok := b.partial[i]
		if !ok {
			b.partial[i] = []uint32{j, k}
			return
		}
		if idxJ, ok := indexOf(list, j); ok {
			next := list[(idxJ+1)%len(list)]
			if next != k {
				list = insertAt(list, idxJ+1, k)
			}
		} else if idxK, ok := indexOf(list, k); ok {
			list = insertAt(list, idxK, j)
		} else {
			list = append(list, j, k)
		}
		b.partial[i] = list
	}

	for t := 0; t+2 < len(indices); t += 3 {
		a, c2, c3 := indices[t], indices[t+1], indices[t+2]
		storeEntry(a, c2, c3)
		storeEntry(c2, c3, a)
		storeEntry(c3, a, c2)
	}
	return nil
}

// Rings finalizes the accumulated adjacency into a map of bounded rings,
// one per vertex index seen by any Add call.
func (b *Builder) Rings() (map[uint32]coord.Ring[uint32], error) {
	out := make(map[uint32]coord.Ring[uint32], len(b.partial))
	for idx, list := range b.partial {
		ring, err := coord.RingOf(list...)
		if err != nil {
			return nil, err
		}
		out[idx] = ring
	}
	return out, nil
}

// Build is the single-batch convenience form of Builder: consume one flat
// triangle-index list and return its adjacency rings directly.
func Build(indices []uint32) (map[uint32]coord.Ring[uint32], error) {
	b := NewBuilder()
	if err := b.Add(indices); err != nil {
		return nil, err
	}
	return b.Rings()
}

func indexOf(list []uint32, v uint32) (int, bool) {
	for i, x := range list {
		if x == v {
			return i, true
		}
	}
	return 0, false
}

// insertAt inserts v into list at position i, shifting later elements right.
func insertAt(list []uint32, i int, v uint32) []uint32 {
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = v
	return list
}
