package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func unitSquare() []Vec {
	return []Vec{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestPolygonAreaUnitSquare(t *testing.T) {
	area, err := PolygonArea(unitSquare())
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, area, 1e-12)
}

func TestPolygonAreaVertexOrderIndependent(t *testing.T) {
	cw := []Vec{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	area, err := PolygonArea(cw)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, area, 1e-12)
}

func TestVertexAverageCentroidFailsOnEmpty(t *testing.T) {
	_, err := VertexAverageCentroid(nil)
	assert.Error(t, err)
}

func TestIsCCWConvexUnitSquare(t *testing.T) {
	assert.True(t, IsCCWConvex(unitSquare()))
}

func TestIsCCWConvexRejectsClockwise(t *testing.T) {
	cw := []Vec{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	assert.False(t, IsCCWConvex(cw))
}

func TestIsCCWConvexRejectsNonConvex(t *testing.T) {
	dart := []Vec{{0, 0}, {2, 0}, {1, 1}, {2, 2}, {0, 2}}
	assert.False(t, IsCCWConvex(dart))
}

func TestReorderCCWIdempotentOnAlreadyCCW(t *testing.T) {
	sq := unitSquare()
	reordered := ReorderCCW(sq)
	assert.True(t, IsCCWConvex(reordered))
	ar1, _ := PolygonArea(sq)
	ar2, _ := PolygonArea(reordered)
	assert.InDelta(t, ar1, ar2, 1e-12)
}

func TestReorderCCWFromShuffled(t *testing.T) {
	shuffled := []Vec{{1, 1}, {0, 0}, {0, 1}, {1, 0}}
	reordered := ReorderCCW(shuffled)
	assert.True(t, IsCCWConvex(reordered))
	ar, _ := PolygonArea(reordered)
	assert.InDelta(t, 1.0, ar, 1e-12)
}

func TestPointInPolygon2D(t *testing.T) {
	sq := unitSquare()
	assert.True(t, PointInPolygon2D(Vec{0.5, 0.5}, sq, 1e-12))
	assert.False(t, PointInPolygon2D(Vec{1.5, 0.5}, sq, 1e-12))
	assert.True(t, PointInPolygon2D(Vec{0, 0.5}, sq, 1e-9))
}

func TestPolygonCentroid2DRectangle(t *testing.T) {
	rect := []Vec{{0.25, 0.25}, {1, 0.25}, {1, 1}, {0.25, 1}}
	c, err := PolygonCentroid2D(rect)
	assert.NoError(t, err)
	assert.InDelta(t, 0.625, c[0], 1e-12)
	assert.InDelta(t, 0.625, c[1], 1e-12)
}

func TestAreaWeightedCentroid3DPlanarSquare(t *testing.T) {
	sq := []Vec{{0, 0, 2}, {1, 0, 2}, {1, 1, 2}, {0, 1, 2}}
	c, err := AreaWeightedCentroid3D(sq)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, c[0], 1e-12)
	assert.InDelta(t, 0.5, c[1], 1e-12)
	assert.InDelta(t, 2.0, c[2], 1e-12)
}
