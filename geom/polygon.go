package geom

import "math"

// VertexAverageCentroid returns the unweighted average of the polygon's
// vertices. Fails if the polygon has no vertices.
func VertexAverageCentroid(poly []Vec) (Vec, error) {
	if len(poly) == 0 {
		return nil, NewError(InvalidFaceInput, "vertex-average centroid of empty polygon")
	}
	d := len(poly[0])
	c := make(Vec, d)
	for _, p := range poly {
		for i := 0; i < d; i++ {
			c[i] += p[i]
		}
	}
	n := float64(len(poly))
	for i := 0; i < d; i++ {
		c[i] /= n
	}
	return c, nil
}

// AreaWeightedCentroid3D computes the centroid of a planar 3D polygon by
// triangulating about the vertex-average centroid and area-weighting each
// triangle's own centroid. Fails if fewer than 3 vertices are supplied.
func AreaWeightedCentroid3D(poly []Vec) (Vec, error) {
	if len(poly) < 3 {
		return nil, NewError(InvalidFaceInput, "area-weighted centroid needs >= 3 vertices")
	}
	hub, err := VertexAverageCentroid(poly)
	if err != nil {
		return nil, err
	}
	d := len(poly[0])
	total := make(Vec, d)
	var totalArea float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		area := triangleArea3D(hub, a, b)
		if area == 0 {
			continue
		}
		tc := make(Vec, d)
		for k := 0; k < d; k++ {
			tc[k] = (hub[k] + a[k] + b[k]) / 3
		}
		for k := 0; k < d; k++ {
			total[k] += area * tc[k]
		}
		totalArea += area
	}
	if totalArea == 0 {
		return nil, NewError(DegenerateOverlap, "area-weighted centroid of zero-area polygon")
	}
	for k := 0; k < d; k++ {
		total[k] /= totalArea
	}
	return total, nil
}

func triangleArea3D(a, b, c Vec) float64 {
	ab := Sub(b, a)
	ac := Sub(c, a)
	return 0.5 * Norm(Cross3(ab, ac))
}

// PolygonArea computes the area of a (possibly non-convex, any vertex
// order) polygon by triangulating about its vertex-average centroid and
// summing absolute triangle areas. Works for 2D (|cross| scalar) and 3D
// (|cross3| magnitude) polygons transparently.
func PolygonArea(poly []Vec) (float64, error) {
	if len(poly) < 3 {
		return 0, NewError(InvalidFaceInput, "polygon area needs >= 3 vertices")
	}
	hub, err := VertexAverageCentroid(poly)
	if err != nil {
		return 0, err
	}
	n := len(poly)
	var area float64
	d := len(poly[0])
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if d == 2 {
			area += math.Abs(signedTriArea2D(hub, a, b))
		} else {
			area += triangleArea3D(hub, a, b)
		}
	}
	return area, nil
}

// PolygonCentroid2D computes the area-weighted centroid of a 2D polygon
// via the shoelace formula (Wikipedia: Centroid of a polygon), the same
// algorithm the teacher's Polygon.Centroid uses.
func PolygonCentroid2D(poly []Vec) (Vec, error) {
	n := len(poly)
	if n < 3 {
		return nil, NewError(InvalidFaceInput, "polygon centroid needs >= 3 vertices")
	}
	var cx, cy, signedArea float64
	for i := 0; i < n; i++ {
		p0 := poly[i]
		p1 := poly[(i+1)%n]
		cross := p0[0]*p1[1] - p1[0]*p0[1]
		cx += (p0[0] + p1[0]) * cross
		cy += (p0[1] + p1[1]) * cross
		signedArea += cross
	}
	signedArea *= 0.5
	if math.Abs(signedArea) < 1e-300 {
		return nil, NewError(DegenerateOverlap, "polygon centroid of zero-area polygon")
	}
	return Vec{cx / (6 * signedArea), cy / (6 * signedArea)}, nil
}

func signedTriArea2D(a, b, c Vec) float64 {
	return 0.5 * ((b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1]))
}

// IsCCWConvex reports whether a 2D polygon is both convex and
// counter-clockwise wound. A false result means the caller should reject
// the polygon rather than attempt to use it.
func IsCCWConvex(poly []Vec) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	var sawPositive, sawNegative bool
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		c := poly[(i+2)%n]
		cross := (b[0]-a[0])*(c[1]-b[1]) - (b[1]-a[1])*(c[0]-b[0])
		if cross > 1e-14 {
			sawPositive = true
		} else if cross < -1e-14 {
			sawNegative = true
		}
		if sawPositive && sawNegative {
			return false
		}
	}
	// A CCW-wound convex polygon turns left (positive cross) at every
	// vertex; a consistently negative turn is clockwise, hence rejected.
	return sawPositive
}

// ReorderCCW reorders an already-convex-hull set of 2D vertices into a
// convex, counter-clockwise polygon. It chooses a starting edge such that
// every other vertex lies on one side of it, then greedily picks the next
// vertex minimizing the turning angle, per spec. Reordering an
// already-CCW convex polygon is a no-op up to rotation of the starting
// index.
func ReorderCCW(poly []Vec) []Vec {
	n := len(poly)
	if n < 3 {
		return poly
	}
	remaining := make([]Vec, n)
	copy(remaining, poly)

	start, next := findHullEdgeStart(remaining)
	ordered := make([]Vec, 0, n)
	ordered = append(ordered, remaining[start], remaining[next])
	used := make([]bool, n)
	used[start] = true
	used[next] = true
	cur := remaining[next]
	// Seed the running direction with the starting hull edge, which has
	// every other vertex on its left, so each greedy step turns left.
	prevDir := Normalize(Sub(remaining[next], remaining[start]))

	for len(ordered) < n {
		bestIdx := -1
		bestAngle := math.Inf(1)
		for i, v := range remaining {
			if used[i] {
				continue
			}
			dir := Normalize(Sub(v, cur))
			ang := turningAngle(prevDir, dir)
			if ang < bestAngle {
				bestAngle = ang
				bestIdx = i
			}
		}
		used[bestIdx] = true
		prevDir = Normalize(Sub(remaining[bestIdx], cur))
		cur = remaining[bestIdx]
		ordered = append(ordered, cur)
	}
	return ordered
}

// findHullEdgeStart returns the indices (i, j) of an edge i->j such that
// all other vertices lie on its left (or on its line); falls back to
// (0, 1) when no such edge is found.
func findHullEdgeStart(pts []Vec) (int, int) {
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			b := pts[j]
			ok := true
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				cross := (b[0]-a[0])*(pts[k][1]-a[1]) - (b[1]-a[1])*(pts[k][0]-a[0])
				s := 0
				if cross > 1e-14 {
					s = 1
				} else if cross < -1e-14 {
					s = -1
				}
				if s < 0 {
					ok = false
					break
				}
			}
			if ok {
				return i, j
			}
		}
	}
	return 0, 1
}

func turningAngle(prevDir, dir Vec) float64 {
	// Counter-clockwise angle from prevDir to dir, in (0, 2*pi]; minimizing
	// it walks the hull counter-clockwise.
	a := math.Atan2(prevDir[1], prevDir[0])
	b := math.Atan2(dir[1], dir[0])
	delta := b - a
	for delta <= 0 {
		delta += 2 * math.Pi
	}
	for delta > 2*math.Pi {
		delta -= 2 * math.Pi
	}
	return delta
}

// PointInPolygon2D reports whether point lies inside (or on the boundary
// of, within posTol) the 2D polygon poly, using the winding-number test.
func PointInPolygon2D(point Vec, poly []Vec, posTol float64) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	isLeft := func(p0, p1, p2 Vec) float64 {
		return (p1[0]-p0[0])*(p2[1]-p0[1]) - (p2[0]-p0[0])*(p1[1]-p0[1])
	}
	for _, v := range poly {
		if math.Hypot(v[0]-point[0], v[1]-point[1]) <= posTol {
			return true
		}
	}
	wn := 0
	for i := 0; i < n; i++ {
		p0 := poly[i]
		p1 := poly[(i+1)%n]
		if p0[1] <= point[1] {
			if p1[1] > point[1] && isLeft(p0, p1, point) > 0 {
				wn++
			}
		} else {
			if p1[1] <= point[1] && isLeft(p0, p1, point) < 0 {
				wn--
			}
		}
	}
	return wn != 0
}
