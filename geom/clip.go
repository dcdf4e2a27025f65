package geom

import "math"

// MaxOverlapVertices3D bounds the overlap polygon vertex count for the 3D
// (V in {3,4}) case: two convex quads can intersect in at most 8 vertices.
const MaxOverlapVertices3D = 8

// PolygonIntersection computes the convex intersection of two convex,
// CCW-wound 2D polygons A and B, following the clip algorithm described in
// the contact-plane builder: classify vertices, collect candidates,
// dedupe coincident interior vertices, special-case full containment,
// reorder to CCW, and collapse short edges.
//
// Returns the overlap polygon, its area, and a tagged error. A
// zero-vertex, zero-area result with a nil error is a valid "no overlap"
// outcome, not a failure.
func PolygonIntersection(a, b []Vec, posTol, lenTol float64) (overlap []Vec, area float64, err error) {
	if len(a) < 3 || len(b) < 3 {
		return nil, 0, NewError(InvalidFaceInput, "polygon intersection needs >= 3 vertices per polygon")
	}
	if !IsCCWConvex(a) || !IsCCWConvex(b) {
		return nil, 0, NewError(FaceOrientation, "polygon intersection requires convex CCW input")
	}

	aInside := make([]bool, len(a))
	bInside := make([]bool, len(b))
	allAInB, allBInA := true, true
	for i, v := range a {
		aInside[i] = PointInPolygon2D(v, b, posTol)
		if !aInside[i] {
			allAInB = false
		}
	}
	for i, v := range b {
		bInside[i] = PointInPolygon2D(v, a, posTol)
		if !bInside[i] {
			allBInA = false
		}
	}

	if allAInB {
		ar, e := PolygonArea(a)
		if e != nil {
			return nil, 0, e
		}
		return a, ar, nil
	}
	if allBInA {
		ar, e := PolygonArea(b)
		if e != nil {
			return nil, 0, e
		}
		return b, ar, nil
	}

	var collected []Vec
	for i, v := range a {
		if aInside[i] {
			collected = append(collected, v)
		}
	}
	var bCandidates []Vec
	for i, v := range b {
		if bInside[i] {
			bCandidates = append(bCandidates, v)
		}
	}
	// Dedupe: any interior vertex of B coincident with an already
	// collected interior vertex of A (within 1e-15) is dropped from B's
	// list, per spec step 3.
	const dedupTol = 1e-15
	for _, v := range bCandidates {
		dup := false
		for _, u := range collected {
			if math.Hypot(v[0]-u[0], v[1]-u[1]) <= dedupTol {
				dup = true
				break
			}
		}
		if !dup {
			collected = append(collected, v)
		}
	}

	na, nb := len(a), len(b)
	for i := 0; i < na; i++ {
		p1, p2 := a[i], a[(i+1)%na]
		for j := 0; j < nb; j++ {
			p3, p4 := b[j], b[(j+1)%nb]
			pt, hit, dup := SegmentSegmentIntersection2D(p1, p2, p3, p4, aInside[i], bInside[j], posTol)
			if !hit || dup {
				continue
			}
			if !containsPoint(collected, pt, posTol) {
				collected = append(collected, pt)
			}
		}
	}

	if len(collected) > MaxOverlapVertices3D {
		return nil, 0, NewError(FaceVertexIndexExceedsOverlapVertices, "overlap candidate count exceeds budget")
	}

	if len(collected) < 3 {
		return nil, 0, nil
	}

	ordered := ReorderCCW(collected)
	ordered = CollapseShortEdges(ordered, lenTol)

	if len(ordered) < 3 {
		return nil, 0, nil
	}

	ar, aerr := PolygonArea(ordered)
	if aerr != nil {
		return nil, 0, NewError(DegenerateOverlap, aerr.Error())
	}
	return ordered, ar, nil
}

func containsPoint(pts []Vec, p Vec, tol float64) bool {
	for _, q := range pts {
		if math.Hypot(p[0]-q[0], p[1]-q[1]) <= tol {
			return true
		}
	}
	return false
}

// CollapseShortEdges removes vertices that create an edge shorter than
// lenTol, walking the polygon once. If fewer than 3 vertices survive, the
// overlap is degenerate and is reported (by the caller) as zero-area
// without error.
func CollapseShortEdges(poly []Vec, lenTol float64) []Vec {
	if len(poly) < 2 {
		return poly
	}
	out := make([]Vec, 0, len(poly))
	out = append(out, poly[0])
	for i := 1; i < len(poly); i++ {
		last := out[len(out)-1]
		if math.Hypot(poly[i][0]-last[0], poly[i][1]-last[1]) < lenTol {
			continue
		}
		out = append(out, poly[i])
	}
	// Close the loop: drop the last vertex if it collapses onto the first.
	if len(out) >= 2 {
		first := out[0]
		last := out[len(out)-1]
		if math.Hypot(last[0]-first[0], last[1]-first[1]) < lenTol {
			out = out[:len(out)-1]
		}
	}
	return out
}

// SegmentOverlap1D computes the overlap of two collinear segments given as
// scalar parametric coordinates along their shared line (the 2D-simulation
// analogue of PolygonIntersection: faces are 2-vertex segments and the
// "overlap polygon" degenerates to an overlap sub-segment of up to 2
// points).
func SegmentOverlap1D(a0, a1, b0, b1, lenTol float64) (lo, hi float64, ok bool) {
	if a0 > a1 {
		a0, a1 = a1, a0
	}
	if b0 > b1 {
		b0, b1 = b1, b0
	}
	lo = math.Max(a0, b0)
	hi = math.Min(a1, b1)
	if hi-lo < lenTol {
		return 0, 0, false
	}
	return lo, hi, true
}
