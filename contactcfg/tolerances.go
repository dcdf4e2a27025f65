package contactcfg

// Tolerances bundles the length/position tolerances the geometry and
// contact-plane layers are driven by. PosTol and LenTol are absolute
// lengths: they are passed to the geometry routines as given and are not
// scaled by face radius or any other mesh size.
type Tolerances struct {
	PosTol float64
	LenTol float64

	// GapTiedTol scales the TIED model's positive gap tolerance:
	// gap_tol = GapTiedTol * max(r1, r2).
	GapTiedTol float64

	// GapTolRatio scales the non-TIED gap tolerance:
	// gap_tol = -GapTolRatio * max(r1, r2).
	GapTolRatio float64

	// AutoThicknessRatio bounds interpenetration, as a fraction of the
	// pair's effective thickness t1*t2/(t1+t2), that the AUTO contact case will
	// still accept before rejecting the pair as pass-through geometry
	// (§9 Open Questions: the two denominators in the source are
	// reconciled here into this single explicit parameter).
	AutoThicknessRatio float64
}

// DefaultTolerances returns the values used throughout the test suite's
// end-to-end scenarios.
func DefaultTolerances() Tolerances {
	return Tolerances{
		PosTol:             1e-9,
		LenTol:             1e-9,
		GapTiedTol:         0.1,
		GapTolRatio:        0.25,
		AutoThicknessRatio: 1.0,
	}
}

// GapTolerance returns the signed gap tolerance below/above which a
// candidate pair is committed as in contact, given the two face radii
// and the active model (§4.4 step 6).
func (t Tolerances) GapTolerance(model Model, r1, r2 float64) float64 {
	maxR := r1
	if r2 > maxR {
		maxR = r2
	}
	if model == Tied {
		return t.GapTiedTol * maxR
	}
	return -t.GapTolRatio * maxR
}
