package meshview

import (
	"testing"

	"github.com/notargets/gocontact/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquareMesh() *MeshView {
	mv := New(1, 3, Quad, Host, 4, 1)
	mv.Coords[0] = geom.Vec{0, 0, 0}
	mv.Coords[1] = geom.Vec{1, 0, 0}
	mv.Coords[2] = geom.Vec{1, 1, 0}
	mv.Coords[3] = geom.Vec{0, 1, 0}
	mv.Connectivity[0] = []int{0, 1, 2, 3}
	return mv
}

func TestRefreshComputesAreaCentroidNormal(t *testing.T) {
	mv := unitSquareMesh()
	require.NoError(t, mv.Refresh())
	assert.InDelta(t, 1.0, mv.FaceArea(0), 1e-12)
	c := mv.FaceCentroid(0)
	assert.InDelta(t, 0.5, c[0], 1e-12)
	assert.InDelta(t, 0.5, c[1], 1e-12)
	n := mv.FaceNormal(0)
	assert.InDelta(t, 1.0, geom.Norm(n), 1e-12)
}

func TestValidateRejectsWrongVertexCount(t *testing.T) {
	mv := New(1, 3, Quad, Host, 3, 1)
	mv.Connectivity[0] = []int{0, 1, 2}
	err := mv.Validate()
	assert.Error(t, err)
}

func TestAddResponseAccumulates(t *testing.T) {
	mv := unitSquareMesh()
	mv.AddResponse(0, 2, 1.5)
	mv.AddResponse(0, 2, 2.5)
	assert.InDelta(t, 4.0, mv.Response(0, 2), 1e-12)
	mv.ClearResponse()
	assert.Equal(t, 0.0, mv.Response(0, 2))
}

func TestElementThicknessUnregisteredReturnsFalse(t *testing.T) {
	mv := unitSquareMesh()
	_, ok := mv.ElementThickness(0)
	assert.False(t, ok)
	mv.RegisterElementThickness([]float64{1.0})
	v, ok := mv.ElementThickness(0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestMedianFaceRadius(t *testing.T) {
	mv := unitSquareMesh()
	require.NoError(t, mv.Refresh())
	assert.Greater(t, mv.MedianFaceRadius(), 0.0)
}
