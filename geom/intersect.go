package geom

import "math"

// SegmentSegmentIntersection2D computes the intersection point of segment
// p1-p2 with segment p3-p4, following the determinant form of the
// line-line intersection formula. aInterior/bInterior report whether p1/p3
// (the segment's owning-polygon vertex already classified as interior to
// the other polygon) is interior; duplicate is true when the computed
// intersection collapses onto a vertex already marked interior, per the
// clip algorithm's dedup rule.
func SegmentSegmentIntersection2D(p1, p2, p3, p4 Vec, aInterior, bInterior bool, posTol float64) (pt Vec, intersects bool, duplicate bool) {
	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	x3, y3 := p3[0], p3[1]
	x4, y4 := p4[0], p4[1]

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < 1e-15 {
		return nil, false, false
	}

	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	uNum := (x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)
	t := tNum / denom
	u := uNum / denom

	const segTol = 1e-12
	if t < -segTol || t > 1+segTol || u < -segTol || u > 1+segTol {
		return nil, false, false
	}

	pt = Vec{x1 + t*(x2-x1), y1 + t*(y2-y1)}

	if aInterior && closeTo(pt, p1, posTol) {
		duplicate = true
	}
	if bInterior && closeTo(pt, p3, posTol) {
		duplicate = true
	}
	return pt, true, duplicate
}

func closeTo(a, b Vec, tol float64) bool {
	return math.Hypot(a[0]-b[0], a[1]-b[1]) <= tol
}

// LinePlaneIntersection intersects the line through a and b with the plane
// through planePoint with unit normal planeNormal; pt is not limited to
// the segment [a,b] and may lie beyond either end. inPlane is true when
// the line lies entirely in the plane (no unique intersection);
// intersects is false when the line and plane are parallel and disjoint.
func LinePlaneIntersection(a, b, planePoint, planeNormal Vec) (pt Vec, inPlane bool, intersects bool) {
	dir := Sub(b, a)
	denom := Dot(dir, planeNormal)
	numer := Dot(Sub(planePoint, a), planeNormal)
	if math.Abs(denom) < 1e-14 {
		if math.Abs(numer) < 1e-14 {
			return nil, true, false
		}
		return nil, false, false
	}
	t := numer / denom
	pt = Add(a, Scale(t, dir))
	return pt, false, true
}
