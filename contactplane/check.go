package contactplane

import (
	"github.com/notargets/gocontact/contactcfg"
	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
)

// CheckInterfacePair runs the contact-plane builder over one candidate
// face pair (§4.4). A nil *Plane with a nil error means the pair was
// rejected for an ordinary geometric reason (opposing-normal filter
// failed, no overlap, or AUTO pass-through rejection) — not a failure.
// A non-nil error is a tagged geometry error to be tallied by the caller
// and the pair dropped.
func CheckInterfacePair(
	mv1, mv2 *meshview.MeshView,
	f1, f2 int,
	model contactcfg.Model,
	ccase contactcfg.ContactCase,
	tol contactcfg.Tolerances,
) (*Plane, *geom.Error) {
	if mv1.Dim != mv2.Dim {
		return nil, geom.NewError(geom.InvalidFaceInput, "mesh dimension mismatch")
	}
	if mv1.Dim == 2 {
		return checkInterfacePair2D(mv1, mv2, f1, f2, model, ccase, tol)
	}
	return checkInterfacePair3D(mv1, mv2, f1, f2, model, ccase, tol)
}

func checkInterfacePair3D(
	mv1, mv2 *meshview.MeshView,
	f1, f2 int,
	model contactcfg.Model,
	ccase contactcfg.ContactCase,
	tol contactcfg.Tolerances,
) (*Plane, *geom.Error) {
	n1 := mv1.FaceNormal(f1)
	n2 := mv2.FaceNormal(f2)
	if geom.Dot(n1, n2) > -orientationMargin {
		return nil, nil
	}

	c1 := mv1.FaceCentroid(f1)
	c2 := mv2.FaceCentroid(f2)

	normal := geom.Normalize(geom.Sub(n1, n2))
	if geom.Norm(normal) < 1e-12 {
		return nil, geom.NewError(geom.FaceOrientation, "degenerate common-plane normal")
	}
	origin := geom.Scale(0.5, geom.Add(c1, c2))
	e1, e2 := geom.OrthonormalBasis(normal)

	poly1Local, err := projectFaceLocal(mv1, f1, origin, normal, e1, e2)
	if err != nil {
		return nil, err
	}
	poly2Local, err := projectFaceLocal(mv2, f2, origin, normal, e1, e2)
	if err != nil {
		return nil, err
	}

	overlapLocal, area, oerr := geom.PolygonIntersection(poly1Local, poly2Local, tol.PosTol, tol.LenTol)
	if oerr != nil {
		return nil, oerr.(*geom.Error)
	}
	if area <= 0 || len(overlapLocal) < 3 {
		return nil, nil
	}

	overlapCentroidLocal, cerr := geom.PolygonCentroid2D(overlapLocal)
	if cerr != nil {
		return nil, geom.NewError(geom.DegenerateOverlap, cerr.Error())
	}
	overlapCentroidGlobal := geom.To3D(overlapCentroidLocal, origin, e1, e2)

	cOnFace1 := geom.ProjectPointOntoPlane(overlapCentroidGlobal, c1, n1)
	cOnFace2 := geom.ProjectPointOntoPlane(overlapCentroidGlobal, c2, n2)
	gap := geom.Dot(geom.Sub(cOnFace2, cOnFace1), normal)

	if ccase == contactcfg.Auto {
		t1, ok1 := mv1.ElementThickness(f1)
		t2, ok2 := mv2.ElementThickness(f2)
		if !ok1 || !ok2 {
			return nil, geom.NewError(geom.NoFaceGeomError, "AUTO case requires element thickness on both faces")
		}
		if t1+t2 > 0 {
			tEff := (t1 * t2) / (t1 + t2)
			if -gap > tol.AutoThicknessRatio*tEff {
				return nil, nil
			}
		}
	}

	overlapGlobal := make([]geom.Vec, len(overlapLocal))
	for i, p := range overlapLocal {
		overlapGlobal[i] = geom.To3D(p, origin, e1, e2)
	}

	gapTol := tol.GapTolerance(model, mv1.FaceRadius(f1), mv2.FaceRadius(f2))

	return &Plane{
		Face1:           f1,
		Face2:           f2,
		Origin:          origin,
		Normal:          normal,
		E1:              e1,
		E2:              e2,
		OverlapLocal:    overlapLocal,
		OverlapGlobal:   overlapGlobal,
		OverlapArea:     area,
		OverlapCentroid: overlapCentroidGlobal,
		CentroidOnFace1: cOnFace1,
		CentroidOnFace2: cOnFace2,
		Gap:             gap,
		InContact:       gap < gapTol,
	}, nil
}

// projectFaceLocal projects a face's vertices onto the common plane and
// expresses them in local (e1,e2) coordinates, reordering to CCW (§4.4
// step 3).
func projectFaceLocal(mv *meshview.MeshView, faceID int, origin, normal, e1, e2 geom.Vec) ([]geom.Vec, *geom.Error) {
	coords := mv.FaceCoords(faceID)
	if len(coords) < 3 {
		return nil, geom.NewError(geom.InvalidFaceInput, "face has fewer than 3 vertices")
	}
	local := make([]geom.Vec, len(coords))
	for i, c := range coords {
		p := geom.ProjectPointOntoPlane(c, origin, normal)
		local[i] = geom.To2D(p, origin, e1, e2)
	}
	if !geom.IsCCWConvex(local) {
		local = geom.ReorderCCW(local)
		if !geom.IsCCWConvex(local) {
			return nil, geom.NewError(geom.FaceOrientation, "projected face is not convex")
		}
	}
	return local, nil
}

// checkInterfacePair2D handles the D=2 simulation case: faces are
// 2-vertex segments, the "common plane" is a common line, and the
// overlap is a sub-segment of up to 2 points.
func checkInterfacePair2D(
	mv1, mv2 *meshview.MeshView,
	f1, f2 int,
	model contactcfg.Model,
	ccase contactcfg.ContactCase,
	tol contactcfg.Tolerances,
) (*Plane, *geom.Error) {
	n1 := mv1.FaceNormal(f1)
	n2 := mv2.FaceNormal(f2)
	if geom.Dot(n1, n2) > -orientationMargin {
		return nil, nil
	}

	c1 := mv1.FaceCentroid(f1)
	c2 := mv2.FaceCentroid(f2)

	normal := geom.Normalize(geom.Sub(n1, n2))
	if geom.Norm(normal) < 1e-12 {
		return nil, geom.NewError(geom.FaceOrientation, "degenerate common-line normal")
	}
	origin := geom.Scale(0.5, geom.Add(c1, c2))
	// In-plane "basis" is the single tangent direction perpendicular to
	// the common-line normal.
	e1 := geom.Normalize(geom.Vec{-normal[1], normal[0]})

	f1v := mv1.FaceCoords(f1)
	f2v := mv2.FaceCoords(f2)

	a0 := geom.Dot(geom.Sub(geom.ProjectPointOntoPlane(f1v[0], origin, normal), origin), e1)
	a1 := geom.Dot(geom.Sub(geom.ProjectPointOntoPlane(f1v[1], origin, normal), origin), e1)
	b0 := geom.Dot(geom.Sub(geom.ProjectPointOntoPlane(f2v[0], origin, normal), origin), e1)
	b1 := geom.Dot(geom.Sub(geom.ProjectPointOntoPlane(f2v[1], origin, normal), origin), e1)

	lo, hi, ok := geom.SegmentOverlap1D(a0, a1, b0, b1, tol.LenTol)
	if !ok {
		return nil, nil
	}
	area := hi - lo
	overlapCentroidLocal := geom.Vec{0.5 * (lo + hi)}
	overlapCentroidGlobal := geom.Add(origin, geom.Scale(overlapCentroidLocal[0], e1))

	cOnFace1 := geom.ProjectPointOntoPlane(overlapCentroidGlobal, c1, n1)
	cOnFace2 := geom.ProjectPointOntoPlane(overlapCentroidGlobal, c2, n2)
	gap := geom.Dot(geom.Sub(cOnFace2, cOnFace1), normal)

	if ccase == contactcfg.Auto {
		t1, ok1 := mv1.ElementThickness(f1)
		t2, ok2 := mv2.ElementThickness(f2)
		if !ok1 || !ok2 {
			return nil, geom.NewError(geom.NoFaceGeomError, "AUTO case requires element thickness on both faces")
		}
		if t1+t2 > 0 {
			tEff := (t1 * t2) / (t1 + t2)
			if -gap > tol.AutoThicknessRatio*tEff {
				return nil, nil
			}
		}
	}

	overlapLocal := []geom.Vec{{lo}, {hi}}
	overlapGlobal := []geom.Vec{
		geom.Add(origin, geom.Scale(lo, e1)),
		geom.Add(origin, geom.Scale(hi, e1)),
	}

	gapTol := tol.GapTolerance(model, mv1.FaceRadius(f1), mv2.FaceRadius(f2))

	return &Plane{
		Face1:           f1,
		Face2:           f2,
		Origin:          origin,
		Normal:          normal,
		E1:              e1,
		OverlapLocal:    overlapLocal,
		OverlapGlobal:   overlapGlobal,
		OverlapArea:     area,
		OverlapCentroid: overlapCentroidGlobal,
		CentroidOnFace1: cOnFace1,
		CentroidOnFace2: cOnFace2,
		Gap:             gap,
		InContact:       gap < gapTol,
	}, nil
}
