package binning

import (
	"testing"

	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadMesh(faces [][4]geom.Vec) *meshview.MeshView {
	n := len(faces) * 4
	mv := meshview.New(1, 3, meshview.Quad, meshview.Host, n, len(faces))
	for fi, f := range faces {
		for v := 0; v < 4; v++ {
			mv.Coords[fi*4+v] = f[v]
		}
		mv.Connectivity[fi] = []int{fi * 4, fi*4 + 1, fi*4 + 2, fi*4 + 3}
	}
	return mv
}

func TestCartesianProductEnumeratesAllPairs(t *testing.T) {
	f1 := [4]geom.Vec{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	f2 := [4]geom.Vec{{0, 0, -1}, {1, 0, -1}, {1, 1, -1}, {0, 1, -1}}
	mv1 := quadMesh([][4]geom.Vec{f1})
	mv2 := quadMesh([][4]geom.Vec{f2})
	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())

	pairs := FindPairs(mv1, mv2, Config{Policy: CartesianProduct})
	assert.Len(t, pairs, 1)
	assert.Equal(t, Pair{Face1: 0, Face2: 0}, pairs[0])
}

func TestGridPairsFindsOverlappingFacesOnly(t *testing.T) {
	near := [4]geom.Vec{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	touching := [4]geom.Vec{{0, 0, -0.05}, {1, 0, -0.05}, {1, 1, -0.05}, {0, 1, -0.05}}
	far := [4]geom.Vec{{50, 50, -0.05}, {51, 50, -0.05}, {51, 51, -0.05}, {50, 51, -0.05}}

	mv1 := quadMesh([][4]geom.Vec{near})
	mv2 := quadMesh([][4]geom.Vec{touching, far})
	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())

	pairs := FindPairs(mv1, mv2, DefaultConfig())
	assert.Len(t, pairs, 1)
	assert.Equal(t, 0, pairs[0].Face1)
	assert.Equal(t, 0, pairs[0].Face2)
}

func TestGridPairsDeterministicOrdering(t *testing.T) {
	near := [4]geom.Vec{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	touching := [4]geom.Vec{{0, 0, -0.05}, {1, 0, -0.05}, {1, 1, -0.05}, {0, 1, -0.05}}
	mv1 := quadMesh([][4]geom.Vec{near})
	mv2 := quadMesh([][4]geom.Vec{touching})
	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())

	p1 := FindPairs(mv1, mv2, DefaultConfig())
	p2 := FindPairs(mv1, mv2, DefaultConfig())
	assert.Equal(t, p1, p2)
}

func TestSelfContactSkipsDuplicatePairs(t *testing.T) {
	f1 := [4]geom.Vec{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	f2 := [4]geom.Vec{{0, 0, 0.01}, {1, 0, 0.01}, {1, 1, 0.01}, {0, 1, 0.01}}
	mv := quadMesh([][4]geom.Vec{f1, f2})
	require.NoError(t, mv.Refresh())

	pairs := FindPairs(mv, mv, Config{Policy: CartesianProduct})
	for _, p := range pairs {
		assert.Less(t, p.Face1, p.Face2)
	}
}
