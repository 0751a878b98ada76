// File: hexasphere/integration_test.go
package hexasphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hextile/hexasphere/coord"
	"github.com/hextile/hexasphere/icogen"
	"github.com/hextile/hexasphere/meshadj"
)

// TestPipeline_IcogenToHexasphere runs the full icogen -> meshadj ->
// BuildFromSurrounding pipeline at a non-trivial subdivision depth and
// checks the resulting Hexasphere has exactly the expected cell count with
// every stored old-vertex-index value distinct and every coordinate
// reachable.
func TestPipeline_IcogenToHexasphere(t *testing.T) {
	// Two icogen rounds split every icosahedron edge into 4 segments, which
	// is the mesh of a tiling with 3 subdivisions (n+1 segments per edge).
	const rounds = 2
	const subdivisions = 3

	points, indices := icogen.Generate(rounds)
	surrounding, err := meshadj.Build(indices)
	require.NoError(t, err)

	hs := BuildFromSurrounding(subdivisions, 0, 11, surrounding, func(old uint32, c coord.Coordinate) uint32 {
		return old
	})

	tiling := hs.Tiling()
	wantCells := 10*(subdivisions+1)*(subdivisions+1) + 2
	assert.Equal(t, wantCells, tiling.CellCount())

	seenOldIndices := make(map[uint32]bool)
	cellCount := 0
	hs.All(func(old uint32) {
		cellCount++
		seenOldIndices[old] = true
	})
	assert.Equal(t, wantCells, cellCount)
	assert.Equal(t, len(points), len(seenOldIndices))

	top, _ := hs.Get(coord.Top)
	bottom, _ := hs.Get(coord.Bottom)
	assert.Equal(t, uint32(0), top)
	assert.Equal(t, uint32(11), bottom)
}
