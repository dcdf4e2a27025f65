package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonIntersectionConformingSquares(t *testing.T) {
	a := unitSquare()
	b := unitSquare()
	overlap, area, err := PolygonIntersection(a, b, 1e-9, 1e-9)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, area, 1e-12)
	assert.GreaterOrEqual(t, len(overlap), 3)
}

func TestPolygonIntersectionPartialOverlap(t *testing.T) {
	// Mirrors scenario S3: a unit square overlapped by a unit square
	// shifted by (0.25, 0.25); expected overlap is the 0.75x0.75 square.
	a := unitSquare()
	b := []Vec{{0.25, 0.25}, {1.25, 0.25}, {1.25, 1.25}, {0.25, 1.25}}
	overlap, area, err := PolygonIntersection(a, b, 1e-9, 1e-9)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5625, area, 1e-10)
	assert.Len(t, overlap, 4)
}

func TestPolygonIntersectionSymmetry(t *testing.T) {
	a := unitSquare()
	b := []Vec{{0.25, 0.25}, {1.25, 0.25}, {1.25, 1.25}, {0.25, 1.25}}
	_, areaAB, errAB := PolygonIntersection(a, b, 1e-9, 1e-9)
	_, areaBA, errBA := PolygonIntersection(b, a, 1e-9, 1e-9)
	assert.NoError(t, errAB)
	assert.NoError(t, errBA)
	assert.InDelta(t, areaAB, areaBA, 1e-12)
}

func TestPolygonIntersectionDisjointIsZeroAreaNoError(t *testing.T) {
	a := unitSquare()
	b := []Vec{{5, 5}, {6, 5}, {6, 6}, {5, 6}}
	overlap, area, err := PolygonIntersection(a, b, 1e-9, 1e-9)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, area)
	assert.Nil(t, overlap)
}

func TestPolygonIntersectionFullContainment(t *testing.T) {
	a := unitSquare()
	b := []Vec{{0.25, 0.25}, {0.75, 0.25}, {0.75, 0.75}, {0.25, 0.75}}
	overlap, area, err := PolygonIntersection(a, b, 1e-9, 1e-9)
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, area, 1e-12)
	assert.Len(t, overlap, 4)
}

func TestPolygonIntersectionRejectsNonConvex(t *testing.T) {
	a := unitSquare()
	dart := []Vec{{0, 0}, {2, 0}, {1, 1}, {2, 2}, {0, 2}}
	_, _, err := PolygonIntersection(a, dart, 1e-9, 1e-9)
	assert.Error(t, err)
	gerr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, FaceOrientation, gerr.Code)
}

func TestSegmentOverlap1D(t *testing.T) {
	lo, hi, ok := SegmentOverlap1D(0, 1, 0.5, 1.5, 1e-9)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, lo, 1e-12)
	assert.InDelta(t, 1.0, hi, 1e-12)

	_, _, ok2 := SegmentOverlap1D(0, 1, 2, 3, 1e-9)
	assert.False(t, ok2)
}
