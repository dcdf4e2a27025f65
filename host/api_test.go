package host

import (
	"testing"

	"github.com/notargets/gocontact/contactcfg"
	"github.com/notargets/gocontact/coupling"
	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerQuad(t *testing.T, ctx *Context, z float64, reverse bool) MeshHandle {
	pts := []geom.Vec{{0, 0, z}, {1, 0, z}, {1, 1, z}, {0, 1, z}}
	if reverse {
		pts = []geom.Vec{{0, 0, z}, {0, 1, z}, {1, 1, z}, {1, 0, z}}
	}
	h, err := ctx.RegisterMesh(3, meshview.Quad, meshview.Host, pts, [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	return h
}

func TestContextRegisterMeshRejectsBadConnectivity(t *testing.T) {
	ctx := NewContext()
	pts := []geom.Vec{{0, 0, 0}, {1, 0, 0}}
	_, err := ctx.RegisterMesh(3, meshview.Quad, meshview.Host, pts, [][]int{{0, 1, 2, 3}})
	assert.Error(t, err)
}

func TestContextUpdateAppliesCommonPlanePenalty(t *testing.T) {
	ctx := NewContext()
	m1 := registerQuad(t, ctx, 0, false)
	m2 := registerQuad(t, ctx, -0.01, true)

	cfg := coupling.DefaultConfig()
	sh, err := ctx.CreateCouplingScheme(m1, m2, cfg)
	require.NoError(t, err)

	dt := 1e-3
	status := ctx.Update(sh, 0, 0, &dt)
	assert.Equal(t, StatusOK, status)

	gaps, err := ctx.GapArray(sh)
	require.NoError(t, err)
	require.Len(t, gaps, 1)
	assert.InDelta(t, -0.01, gaps[0], 1e-8)
}

func TestContextUpdateUnknownHandleFails(t *testing.T) {
	ctx := NewContext()
	dt := 1e-3
	status := ctx.Update(SchemeHandle(99), 0, 0, &dt)
	assert.Equal(t, StatusFailed, status)
}

func TestContextJacobianCSRForSingleMortar(t *testing.T) {
	ctx := NewContext()
	m1 := registerQuad(t, ctx, 0, false)
	m2 := registerQuad(t, ctx, 0, true)

	cfg := coupling.DefaultConfig()
	cfg.Method = contactcfg.SingleMortar
	cfg.Enforcement = contactcfg.LagrangeMultiplier
	sh, err := ctx.CreateCouplingScheme(m1, m2, cfg)
	require.NoError(t, err)

	dt := 1e-3
	ctx.Update(sh, 0, 0, &dt)

	_, _, _, ok := ctx.JacobianCSR(sh)
	assert.True(t, ok)

	dofs, err := ctx.PressureDofs(sh)
	require.NoError(t, err)
	assert.Len(t, dofs, 4)
}

func TestContextFinalizeClearsSchemes(t *testing.T) {
	ctx := NewContext()
	m1 := registerQuad(t, ctx, 0, false)
	m2 := registerQuad(t, ctx, -0.01, true)
	sh, err := ctx.CreateCouplingScheme(m1, m2, coupling.DefaultConfig())
	require.NoError(t, err)

	ctx.Finalize()
	dt := 1e-3
	status := ctx.Update(sh, 0, 0, &dt)
	assert.Equal(t, StatusFailed, status)
}
