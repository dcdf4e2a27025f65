package contactplane

import (
	"testing"

	"github.com/notargets/gocontact/contactcfg"
	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildQuadMesh makes a single-face quad mesh at the given z with the
// given vertex winding (CCW as seen from +z gives an outward normal of
// +z; the reverse winding gives -z).
func buildQuadMesh(id int, z float64, reverse bool) *meshview.MeshView {
	mv := meshview.New(id, 3, meshview.Quad, meshview.Host, 4, 1)
	pts := []geom.Vec{{0, 0, z}, {1, 0, z}, {1, 1, z}, {0, 1, z}}
	if reverse {
		pts = []geom.Vec{{0, 0, z}, {0, 1, z}, {1, 1, z}, {1, 0, z}}
	}
	copy(mv.Coords, pts)
	mv.Connectivity[0] = []int{0, 1, 2, 3}
	return mv
}

func TestCheckInterfacePairConformingZeroGap(t *testing.T) {
	// S1: conforming quads, zero gap.
	mv1 := buildQuadMesh(1, 0, false)
	mv2 := buildQuadMesh(2, 0, true)
	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())

	plane, err := CheckInterfacePair(mv1, mv2, 0, 0, contactcfg.Frictionless, contactcfg.NoCase, contactcfg.DefaultTolerances())
	require.Nil(t, err)
	require.NotNil(t, plane)
	assert.InDelta(t, 1.0, plane.OverlapArea, 1e-12)
	assert.InDelta(t, 0.0, plane.Gap, 1e-12)
}

func TestCheckInterfacePairInterpenetration(t *testing.T) {
	// S2: 0.05 interpenetration. Body 1 spans z<=0 (normal +z); body 2
	// spans z>=-0.05 (normal -z); the 0.05-wide zone between is where
	// the two bodies physically overlap.
	mv1 := buildQuadMesh(1, 0, false)
	mv2 := buildQuadMesh(2, -0.05, true)
	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())

	plane, err := CheckInterfacePair(mv1, mv2, 0, 0, contactcfg.Frictionless, contactcfg.NoCase, contactcfg.DefaultTolerances())
	require.Nil(t, err)
	require.NotNil(t, plane)
	assert.InDelta(t, 1.0, plane.OverlapArea, 1e-12)
	assert.InDelta(t, -0.05, plane.Gap, 1e-8)
}

func TestCheckInterfacePairPartialOverlap(t *testing.T) {
	// S3: misaligned quads, partial overlap.
	mv1 := meshview.New(1, 3, meshview.Quad, meshview.Host, 4, 1)
	copy(mv1.Coords, []geom.Vec{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}})
	mv1.Connectivity[0] = []int{0, 1, 2, 3}

	mv2 := meshview.New(2, 3, meshview.Quad, meshview.Host, 4, 1)
	copy(mv2.Coords, []geom.Vec{
		{0.25, 0.25, -0.01}, {0.25, 1.25, -0.01}, {1.25, 1.25, -0.01}, {1.25, 0.25, -0.01},
	})
	mv2.Connectivity[0] = []int{0, 1, 2, 3}

	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())

	plane, err := CheckInterfacePair(mv1, mv2, 0, 0, contactcfg.Frictionless, contactcfg.NoCase, contactcfg.DefaultTolerances())
	require.Nil(t, err)
	require.NotNil(t, plane)
	assert.InDelta(t, 0.5625, plane.OverlapArea, 1e-10)
	assert.Len(t, plane.OverlapGlobal, 4)
}

func TestCheckInterfacePairRejectsSameDirectionNormals(t *testing.T) {
	mv1 := buildQuadMesh(1, 0, false)
	mv2 := buildQuadMesh(2, -0.05, false) // same winding as mv1: normals both +z
	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())

	plane, err := CheckInterfacePair(mv1, mv2, 0, 0, contactcfg.Frictionless, contactcfg.NoCase, contactcfg.DefaultTolerances())
	assert.Nil(t, err)
	assert.Nil(t, plane)
}

func TestCheckInterfacePairTiedSeparation(t *testing.T) {
	// S5: tied contact, 0.02 separation.
	mv1 := buildQuadMesh(1, 0, false)
	mv2 := buildQuadMesh(2, 0.02, true)
	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())

	tol := contactcfg.DefaultTolerances()
	tol.GapTiedTol = 0.1
	plane, err := CheckInterfacePair(mv1, mv2, 0, 0, contactcfg.Tied, contactcfg.NoCase, tol)
	require.Nil(t, err)
	require.NotNil(t, plane)
	assert.Greater(t, plane.Gap, 0.0)
	assert.True(t, plane.InContact)
}

func TestCheckInterfacePairAutoRejectsPassThrough(t *testing.T) {
	mv1 := buildQuadMesh(1, 0, false)
	mv2 := buildQuadMesh(2, -5.0, true) // deep "pass-through" interpenetration
	require.NoError(t, mv1.Refresh())
	require.NoError(t, mv2.Refresh())
	mv1.RegisterElementThickness([]float64{1.0})
	mv2.RegisterElementThickness([]float64{1.0})

	plane, err := CheckInterfacePair(mv1, mv2, 0, 0, contactcfg.Frictionless, contactcfg.Auto, contactcfg.DefaultTolerances())
	assert.Nil(t, err)
	assert.Nil(t, plane)
}
