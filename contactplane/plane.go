// Package contactplane implements the contact-plane builder (§4.4): for a
// candidate face pair, it decides whether the pair is geometrically
// admissible, defines a common plane, projects both faces onto it,
// computes the convex overlap polygon, and derives the gap and overlap
// centroid.
package contactplane

import "github.com/notargets/gocontact/geom"

// Plane is a committed contact plane for one active face pair (§3).
type Plane struct {
	Face1, Face2 int

	Origin geom.Vec
	Normal geom.Vec
	E1, E2 geom.Vec

	// OverlapLocal is the overlap polygon in the plane's local (e1,e2)
	// coordinates; OverlapGlobal is the same polygon lifted back to the
	// ambient D-dimensional space. 2D (segment) faces populate both with
	// at most 2 points.
	OverlapLocal  []geom.Vec
	OverlapGlobal []geom.Vec
	OverlapArea   float64
	OverlapCentroid geom.Vec

	// CentroidOnFace1/2 are the overlap centroid projected back onto
	// each face's own plane (§4.4 step 5).
	CentroidOnFace1 geom.Vec
	CentroidOnFace2 geom.Vec

	// Gap is the signed distance between CentroidOnFace1 and
	// CentroidOnFace2 along Normal; negative means interpenetration.
	Gap float64

	// InContact reflects the per-model gap-tolerance comparison (§4.4
	// step 6): gap < Tolerances.GapTolerance(model, r1, r2). A committed
	// plane can still be out of contact (e.g. a TIED pair that has
	// drifted apart beyond GapTiedTol). The TIED physics kernel (§4.5.1)
	// checks this field before applying any cohesive force; other models
	// gate on the sign of Gap directly, per the kernel's own description.
	InContact bool
}

// orientationMargin is the minimum required negativity of dot(n1,n2) for
// two faces to be considered opposing (§4.4 step 1).
const orientationMargin = 1e-6
