package physics

import (
	"github.com/notargets/gocontact/contactplane"
	"github.com/notargets/gocontact/meshview"
)

// MortarElement is the per-active-plane mortar record (§3's
// SurfaceContactElem): face 1 is the nonmortar (slave, pressure-carrying)
// side "a", face 2 is the mortar (master) side "b". WeightsAA and
// WeightsAB are the nonmortar-nonmortar and nonmortar-mortar blocks of the
// packed 2*V*V mortar weight array.
type MortarElement struct {
	Face1, Face2 int
	V1, V2       int
	WeightsAA    [][]float64
	WeightsAB    [][]float64
}

// ComputeMortarWeights implements §4.5.2's single-mortar quadrature: the
// overlap region is integrated with OverlapQuadrature, and both faces'
// shape functions are evaluated at each quadrature point pulled back to
// its own parent face via FaceParametricWeights. Also serves the
// MORTAR_WEIGHTS evaluation mode directly — that mode differs only in
// that the coupling scheme stops here and emits no forces.
func ComputeMortarWeights(mv1, mv2 *meshview.MeshView, plane *contactplane.Plane) *MortarElement {
	f1 := mv1.FaceCoords(plane.Face1)
	f2 := mv2.FaceCoords(plane.Face2)
	v1, v2 := len(f1), len(f2)

	el := &MortarElement{
		Face1:     plane.Face1,
		Face2:     plane.Face2,
		V1:        v1,
		V2:        v2,
		WeightsAA: newWeightMatrix(v1, v1),
		WeightsAB: newWeightMatrix(v1, v2),
	}

	for _, qp := range OverlapQuadrature(plane) {
		phiA := FaceParametricWeights(f1, qp.Global)
		phiB := FaceParametricWeights(f2, qp.Global)
		for i := 0; i < v1; i++ {
			for j := 0; j < v1; j++ {
				el.WeightsAA[i][j] += qp.Weight * phiA[i] * phiA[j]
			}
			for j := 0; j < v2; j++ {
				el.WeightsAB[i][j] += qp.Weight * phiA[i] * phiB[j]
			}
		}
	}
	return el
}

// AlignedMortarVertexMismatchError reports that the ALIGNED_MORTAR method
// was asked to process a pair whose two faces have different vertex
// counts, which violates the node-aligned assumption.
type AlignedMortarVertexMismatchError struct {
	V1, V2 int
}

func (e *AlignedMortarVertexMismatchError) Error() string {
	return "aligned mortar requires matching vertex counts on both faces"
}

// ComputeAlignedMortarWeights implements the aligned-mortar shortcut of
// §4.5.2: node-aligned faces substitute identity mortar weights, lumping
// the overlap area evenly across the shared node correspondence rather
// than running quadrature.
func ComputeAlignedMortarWeights(mv1, mv2 *meshview.MeshView, plane *contactplane.Plane) (*MortarElement, error) {
	f1 := mv1.FaceCoords(plane.Face1)
	f2 := mv2.FaceCoords(plane.Face2)
	v1, v2 := len(f1), len(f2)
	if v1 != v2 {
		return nil, &AlignedMortarVertexMismatchError{V1: v1, V2: v2}
	}

	lumped := plane.OverlapArea / float64(v1)
	el := &MortarElement{
		Face1:     plane.Face1,
		Face2:     plane.Face2,
		V1:        v1,
		V2:        v2,
		WeightsAA: newWeightMatrix(v1, v1),
		WeightsAB: newWeightMatrix(v1, v2),
	}
	for i := 0; i < v1; i++ {
		el.WeightsAA[i][i] = lumped
		el.WeightsAB[i][i] = lumped
	}
	return el, nil
}

func newWeightMatrix(r, c int) [][]float64 {
	m := make([][]float64, r)
	for i := range m {
		m[i] = make([]float64, c)
	}
	return m
}
