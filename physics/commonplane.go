// Package physics implements the per-face-pair force and Jacobian
// contributions (§4.5): common-plane penalty forces, and single/aligned
// mortar weights with their Lagrange-multiplier Jacobian blocks.
package physics

import (
	"github.com/notargets/gocontact/contactcfg"
	"github.com/notargets/gocontact/contactplane"
	"github.com/notargets/gocontact/meshview"
)

// StiffnessPolicy selects how the common-plane penalty stiffness is
// computed.
type StiffnessPolicy int

const (
	ConstantStiffness StiffnessPolicy = iota
	ElementWiseStiffness
)

// PenaltyConfig configures the common-plane penalty kernel.
type PenaltyConfig struct {
	Policy StiffnessPolicy
	// K is the user-supplied constant stiffness (ConstantStiffness
	// policy only).
	K float64
}

// ApplyCommonPlanePenalty implements §4.5.1: for an active plane, it
// computes the effective stiffness, the normal force, and distributes
// that force to both faces' vertices via their linear shape functions
// evaluated at the overlap-centroid-projected parametric coordinates.
// Forces on face 1 and face 2 act in opposite directions. Non-TIED models
// apply force for any negative gap, per the kernel description. TIED
// additionally produces a cohesive force for positive gap, but only while
// plane.InContact holds (gap below the model's GapTiedTol-scaled bound,
// §4.4 step 6) — otherwise a pair that has drifted apart keeps accruing an
// unbounded cohesive force.
func ApplyCommonPlanePenalty(mv1, mv2 *meshview.MeshView, plane *contactplane.Plane, model contactcfg.Model, cfg PenaltyConfig) error {
	if model == contactcfg.Tied {
		if !plane.InContact {
			return nil
		}
	} else if plane.Gap >= 0 {
		return nil
	}
	g := plane.Gap

	k, err := effectiveStiffness(mv1, mv2, plane, cfg)
	if err != nil {
		return err
	}

	// Fvec1 = k*gap*normal gives the correct sign in both regimes: for
	// g<0 (interpenetration) it pushes the faces apart; for TIED's g>0
	// (separation) it pulls them together. Fvec2 is the Newton's-third-
	// law reaction.
	fvec1 := scaleVec(k*g, plane.Normal)
	fvec2 := negateVec(fvec1)

	f1Verts := mv1.FaceCoords(plane.Face1)
	w1 := FaceParametricWeights(f1Verts, plane.CentroidOnFace1)
	for i, nodeID := range mv1.Connectivity[plane.Face1] {
		for d := 0; d < mv1.Dim; d++ {
			mv1.AddResponse(nodeID, d, w1[i]*fvec1[d])
		}
	}

	f2Verts := mv2.FaceCoords(plane.Face2)
	w2 := FaceParametricWeights(f2Verts, plane.CentroidOnFace2)
	for i, nodeID := range mv2.Connectivity[plane.Face2] {
		for d := 0; d < mv2.Dim; d++ {
			mv2.AddResponse(nodeID, d, w2[i]*fvec2[d])
		}
	}
	return nil
}

func effectiveStiffness(mv1, mv2 *meshview.MeshView, plane *contactplane.Plane, cfg PenaltyConfig) (float64, error) {
	if cfg.Policy == ConstantStiffness {
		return cfg.K, nil
	}
	t1, ok1 := mv1.ElementThickness(plane.Face1)
	t2, ok2 := mv2.ElementThickness(plane.Face2)
	if !ok1 || !ok2 || t1+t2 == 0 {
		return 0, elementWiseInputError("element thickness required for element-wise penalty stiffness")
	}
	tEff := (t1 * t2) / (t1 + t2)

	k1, ok1 := mv1.ElementBulkModulus(plane.Face1)
	k2, ok2 := mv2.ElementBulkModulus(plane.Face2)
	if !ok1 || !ok2 {
		return 0, elementWiseInputError("element bulk modulus required for element-wise penalty stiffness")
	}
	// The two sides may carry different host-supplied bulk moduli; the
	// harmonic mean keeps the same "series spring" reasoning the source
	// applies to thickness.
	var kHost float64
	if k1+k2 > 0 {
		kHost = 2 * k1 * k2 / (k1 + k2)
	}
	return (kHost * plane.OverlapArea) / tEff, nil
}

func scaleVec(s float64, v []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = s * v[i]
	}
	return out
}

func negateVec(v []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = -v[i]
	}
	return out
}

type penaltyInputError string

func (e penaltyInputError) Error() string { return string(e) }

func elementWiseInputError(msg string) error { return penaltyInputError(msg) }
