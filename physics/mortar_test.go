package physics

import (
	"testing"

	"github.com/notargets/gocontact/contactcfg"
	"github.com/notargets/gocontact/contactplane"
	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conformingPlane(t *testing.T) (*meshview.MeshView, *meshview.MeshView, *contactplane.Plane) {
	mv1 := buildQuadMesh(1, 0, false)
	mv2 := buildQuadMesh(2, 0, true)
	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())
	plane, gerr := contactplane.CheckInterfacePair(mv1, mv2, 0, 0, contactcfg.Frictionless, contactcfg.NoCase, contactcfg.DefaultTolerances())
	require.Nil(t, gerr)
	require.NotNil(t, plane)
	return mv1, mv2, plane
}

func TestComputeMortarWeightsPartitionOfUnity(t *testing.T) {
	mv1, mv2, plane := conformingPlane(t)
	el := ComputeMortarWeights(mv1, mv2, plane)

	var total float64
	for i := 0; i < el.V1; i++ {
		for j := 0; j < el.V1; j++ {
			total += el.WeightsAA[i][j]
		}
	}
	assert.InDelta(t, plane.OverlapArea, total, 1e-10)
}

func TestComputeMortarWeightsNonmortarMortarSumsMatchArea(t *testing.T) {
	mv1, mv2, plane := conformingPlane(t)
	el := ComputeMortarWeights(mv1, mv2, plane)

	var total float64
	for i := 0; i < el.V1; i++ {
		for j := 0; j < el.V2; j++ {
			total += el.WeightsAB[i][j]
		}
	}
	assert.InDelta(t, plane.OverlapArea, total, 1e-10)
}

func TestComputeAlignedMortarWeightsLumpsArea(t *testing.T) {
	mv1, mv2, plane := conformingPlane(t)
	el, err := ComputeAlignedMortarWeights(mv1, mv2, plane)
	require.NoError(t, err)

	var total float64
	for i := 0; i < el.V1; i++ {
		total += el.WeightsAA[i][i]
	}
	assert.InDelta(t, plane.OverlapArea, total, 1e-12)
}

func TestComputeAlignedMortarWeightsRejectsMismatchedVertexCounts(t *testing.T) {
	mv1 := meshview.New(1, 3, meshview.Triangle, meshview.Host, 3, 1)
	copy(mv1.Coords, []geom.Vec{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	mv1.Connectivity[0] = []int{0, 1, 2}
	mv2 := buildQuadMesh(2, 0, true)
	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())

	plane, gerr := contactplane.CheckInterfacePair(mv1, mv2, 0, 0, contactcfg.Frictionless, contactcfg.NoCase, contactcfg.DefaultTolerances())
	require.Nil(t, gerr)
	require.NotNil(t, plane)

	_, err := ComputeAlignedMortarWeights(mv1, mv2, plane)
	assert.Error(t, err)
}
