package host

import (
	"testing"

	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextMeshHandlesAreStableAndDistinct(t *testing.T) {
	ctx := NewContext()
	pts := []geom.Vec{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	h1, err := ctx.RegisterMesh(3, meshview.Quad, meshview.Host, pts, [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	h2, err := ctx.RegisterMesh(3, meshview.Quad, meshview.Host, pts, [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	mv1, err := ctx.mesh(h1)
	require.NoError(t, err)
	mv2, err := ctx.mesh(h2)
	require.NoError(t, err)
	assert.NotSame(t, mv1, mv2)
}

func TestContextUnknownMeshHandleErrors(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.mesh(MeshHandle(42))
	assert.Error(t, err)
}
