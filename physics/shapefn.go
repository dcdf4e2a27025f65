package physics

import "github.com/notargets/gocontact/geom"

// FaceParametricWeights returns the V linear/bilinear shape-function
// values at point (assumed to lie in the plane of faceVerts) such that
// point = sum_i weights[i]*faceVerts[i]. Used by the common-plane
// penalty kernel to distribute a resultant force to face vertices (§4.5.1)
// and by the mortar kernel to evaluate phi at quadrature points pulled
// back to each parent face (§4.5.2).
func FaceParametricWeights(faceVerts []geom.Vec, point geom.Vec) []float64 {
	switch len(faceVerts) {
	case 2:
		return segmentWeights(faceVerts, point)
	case 3:
		return triWeights(faceVerts, point)
	case 4:
		return quadWeights(faceVerts, point)
	default:
		return nil
	}
}

func segmentWeights(v []geom.Vec, p geom.Vec) []float64 {
	d := geom.Sub(v[1], v[0])
	len2 := geom.Dot(d, d)
	var t float64
	if len2 > 1e-300 {
		t = geom.Dot(geom.Sub(p, v[0]), d) / len2
	}
	return []float64{1 - t, t}
}

// triWeights solves for the barycentric coordinates of p within the
// triangle v0,v1,v2 using a local 2D parametrization of the triangle's
// own plane, so the solve is a plain 2x2 linear system regardless of
// ambient dimension.
func triWeights(v []geom.Vec, p geom.Vec) []float64 {
	e1 := geom.Sub(v[1], v[0])
	e2 := geom.Sub(v[2], v[0])
	rel := geom.Sub(p, v[0])

	a11, a12 := geom.Dot(e1, e1), geom.Dot(e1, e2)
	a21, a22 := a12, geom.Dot(e2, e2)
	b1, b2 := geom.Dot(rel, e1), geom.Dot(rel, e2)

	det := a11*a22 - a12*a21
	if det == 0 {
		return []float64{1, 0, 0}
	}
	l1 := (b1*a22 - a12*b2) / det
	l2 := (a11*b2 - b1*a21) / det
	return []float64{1 - l1 - l2, l1, l2}
}

// quadWeights inverts the bilinear map of a (possibly non-planar) quad
// v0..v3 over the reference square [-1,1]^2 via Newton iteration, then
// returns the four bilinear shape-function values at the converged
// (xi,eta).
func quadWeights(v []geom.Vec, p geom.Vec) []float64 {
	xi, eta := 0.0, 0.0
	for iter := 0; iter < 25; iter++ {
		n := BilinearShape(xi, eta)
		approx := make(geom.Vec, len(p))
		for i, vi := range v {
			for k := range approx {
				approx[k] += n[i] * vi[k]
			}
		}
		res := geom.Sub(p, approx)

		dNdXi, dNdEta := BilinearShapeDeriv(xi, eta)
		var jx, jy geom.Vec
		jx = make(geom.Vec, len(p))
		jy = make(geom.Vec, len(p))
		for i, vi := range v {
			for k := range jx {
				jx[k] += dNdXi[i] * vi[k]
				jy[k] += dNdEta[i] * vi[k]
			}
		}
		// Least-squares 2x2 normal-equation solve (handles ambient D=3
		// with a planar or near-planar quad).
		a11, a12 := geom.Dot(jx, jx), geom.Dot(jx, jy)
		a21, a22 := a12, geom.Dot(jy, jy)
		b1, b2 := geom.Dot(jx, res), geom.Dot(jy, res)
		det := a11*a22 - a12*a21
		if det == 0 {
			break
		}
		dXi := (b1*a22 - a12*b2) / det
		dEta := (a11*b2 - b1*a21) / det
		xi += dXi
		eta += dEta
		if dXi*dXi+dEta*dEta < 1e-24 {
			break
		}
	}
	n := BilinearShape(xi, eta)
	return n[:]
}

// BilinearShape evaluates the four standard bilinear shape functions at
// reference coordinates (xi,eta) in [-1,1]^2.
func BilinearShape(xi, eta float64) [4]float64 {
	return [4]float64{
		0.25 * (1 - xi) * (1 - eta),
		0.25 * (1 + xi) * (1 - eta),
		0.25 * (1 + xi) * (1 + eta),
		0.25 * (1 - xi) * (1 + eta),
	}
}

// BilinearShapeDeriv returns dN/dXi and dN/dEta for the four bilinear
// shape functions.
func BilinearShapeDeriv(xi, eta float64) (dXi, dEta [4]float64) {
	dXi = [4]float64{
		-0.25 * (1 - eta), 0.25 * (1 - eta), 0.25 * (1 + eta), -0.25 * (1 + eta),
	}
	dEta = [4]float64{
		-0.25 * (1 - xi), -0.25 * (1 + xi), 0.25 * (1 + xi), 0.25 * (1 - xi),
	}
	return
}
