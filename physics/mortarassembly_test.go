package physics

import (
	"testing"

	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
	"github.com/stretchr/testify/assert"
)

func TestMortarAssemblyAddElementAccumulates(t *testing.T) {
	el := &MortarElement{
		Face1: 0, Face2: 0,
		V1: 2, V2: 2,
		WeightsAA: [][]float64{{1, 0}, {0, 1}},
		WeightsAB: [][]float64{{1, 0}, {0, 1}},
	}

	mv1 := meshview.New(1, 2, meshview.Segment, meshview.Host, 2, 1)
	copy(mv1.Coords, []geom.Vec{{0, 0}, {1, 0}})
	mv1.Connectivity[0] = []int{0, 1}

	mv2 := meshview.New(2, 2, meshview.Segment, meshview.Host, 2, 1)
	copy(mv2.Coords, []geom.Vec{{0, 0.01}, {1, 0.01}})
	mv2.Connectivity[0] = []int{0, 1}

	asm := NewMortarAssembly(2, 2, mv1.NumNodes*2, mv2.NumNodes*2)
	normal := []float64{0, 1}
	asm.AddElement(el, normal, mv1, mv2, []int{0, 1})

	b1, b2 := asm.ToCSR()

	// node 0, d=1 (y) on mesh 1, pressure dof 0: -n_y*WeightsAA[0][0] = -1.
	assert.InDelta(t, -1.0, b1.At(0, 1), 1e-12)
	assert.InDelta(t, -1.0, b1.At(1, 3), 1e-12)
	assert.InDelta(t, 1.0, b2.At(0, 1), 1e-12)
	assert.InDelta(t, 1.0, b2.At(1, 3), 1e-12)
}
