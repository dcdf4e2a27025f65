package coupling

import (
	"math"

	"github.com/notargets/gocontact/contactplane"
	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
	"github.com/notargets/gocontact/physics"
)

// VelocityEpsilon is the near-zero-velocity tolerance: a projected closing
// rate whose magnitude is below it is treated as zero. The source adds ±1e-12 at two call sites with subtly
// different scaling; kept here as a flat absolute constant per the open
// question in §9 — nothing in the retrievable behavior resolves whether
// it should scale with mesh size, so it is not guessed at.
const VelocityEpsilon = 1e-12

// TimestepVoteConfig controls how aggressively ComputeTimestepVote
// reduces the proposed step.
type TimestepVoteConfig struct {
	// MaxInterpenetrationFraction bounds the allowed gap as a fraction of
	// the pair's effective thickness t1*t2/(t1+t2); 0.5 means the projected
	// gap may not fall below -0.5*t1*t2/(t1+t2) within one step.
	MaxInterpenetrationFraction float64
}

// DefaultTimestepVoteConfig returns the library's default vote tolerance.
func DefaultTimestepVoteConfig() TimestepVoteConfig {
	return TimestepVoteConfig{MaxInterpenetrationFraction: 0.5}
}

// ComputeTimestepVote implements §4.6's compute_timestep / §5's velocity
// projection: for each active plane with element thickness registered, it
// projects the relative closing velocity along the common-plane normal
// and, if the proposed step would close the gap past the thickness-scaled
// bound, proposes a smaller dt. Returns the minimum proposed dt across
// all planes, or dt unchanged if no plane votes for a reduction.
func ComputeTimestepVote(mv1, mv2 *meshview.MeshView, planes []*contactplane.Plane, cfg TimestepVoteConfig, dt float64) float64 {
	proposed := dt
	for _, plane := range planes {
		rate := closingRate(mv1, mv2, plane)
		if rate >= 0 {
			continue
		}
		tEff, ok := pairEffectiveThickness(mv1, mv2, plane)
		if !ok {
			continue
		}
		bound := -cfg.MaxInterpenetrationFraction * tEff
		projectedGap := plane.Gap + rate*dt
		if projectedGap >= bound {
			continue
		}
		tCandidate := (bound - plane.Gap) / rate
		if tCandidate > 0 && tCandidate < proposed {
			proposed = tCandidate
		}
	}
	return proposed
}

// closingRate projects the relative velocity of the two faces (sampled at
// the overlap-centroid parametric coordinates, the same pullback
// FaceParametricWeights gives the penalty kernel) along the common-plane
// normal. A negative rate means the gap is decreasing (bodies closing).
func closingRate(mv1, mv2 *meshview.MeshView, plane *contactplane.Plane) float64 {
	vel1, ok1 := mv1.FaceVelocities(plane.Face1)
	vel2, ok2 := mv2.FaceVelocities(plane.Face2)
	if !ok1 || !ok2 {
		return 0
	}
	w1 := physics.FaceParametricWeights(mv1.FaceCoords(plane.Face1), plane.CentroidOnFace1)
	w2 := physics.FaceParametricWeights(mv2.FaceCoords(plane.Face2), plane.CentroidOnFace2)
	v1 := interpolateVelocity(vel1, w1)
	v2 := interpolateVelocity(vel2, w2)
	rate := geom.Dot(geom.Sub(v2, v1), plane.Normal)
	if math.Abs(rate) < VelocityEpsilon {
		return 0
	}
	return rate
}

func interpolateVelocity(vel []geom.Vec, w []float64) geom.Vec {
	out := make(geom.Vec, len(vel[0]))
	for i, v := range vel {
		for k := range out {
			out[k] += w[i] * v[k]
		}
	}
	return out
}

func pairEffectiveThickness(mv1, mv2 *meshview.MeshView, plane *contactplane.Plane) (float64, bool) {
	t1, ok1 := mv1.ElementThickness(plane.Face1)
	t2, ok2 := mv2.ElementThickness(plane.Face2)
	if !ok1 || !ok2 || t1+t2 == 0 {
		return 0, false
	}
	return (t1 * t2) / (t1 + t2), true
}
