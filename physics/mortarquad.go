package physics

import (
	"github.com/notargets/gocontact/contactplane"
	"github.com/notargets/gocontact/geom"
)

// QuadPoint is one quadrature point over an active plane's overlap region,
// already carrying the |J| surface-area scale factor baked into Weight: a
// mortar integral over the overlap is sum(Weight_i * f(Global_i)).
type QuadPoint struct {
	Global geom.Vec
	Weight float64
}

// OverlapQuadrature dispatches to the D=2 (segment) or D=3 (polygon) rule
// per §4.5.2. A segment overlap uses the 2-point 1D rule directly. A
// quadrilateral overlap (the common case for conforming or near-conforming
// quad faces) uses the default isoparametric 2x2 Gauss rule directly over
// the quad. Any other overlap shape is triangulated about its area
// centroid and each triangle integrated with the 3-point rule.
func OverlapQuadrature(plane *contactplane.Plane) []QuadPoint {
	if len(plane.OverlapGlobal) == 2 {
		return overlapQuadrature2D(plane)
	}
	return overlapQuadrature3D(plane)
}

func overlapQuadrature2D(plane *contactplane.Plane) []QuadPoint {
	lo := plane.OverlapGlobal[0]
	hi := plane.OverlapGlobal[1]
	half := 0.5 * geom.Norm(geom.Sub(hi, lo))
	pts := geom.GaussLegendre2()
	out := make([]QuadPoint, 0, len(pts))
	for _, gp := range pts {
		t := 0.5 * (gp.Xi + 1) // t in [0,1]
		physical := geom.Add(lo, geom.Scale(t, geom.Sub(hi, lo)))
		out = append(out, QuadPoint{Global: physical, Weight: gp.Weight * half})
	}
	return out
}

func overlapQuadrature3D(plane *contactplane.Plane) []QuadPoint {
	poly := plane.OverlapGlobal
	if len(poly) == 4 {
		return isoparametricQuadQuadrature([4]geom.Vec{poly[0], poly[1], poly[2], poly[3]})
	}
	n := len(poly)
	hub := plane.OverlapCentroid
	triPts, triWeights := geom.GaussTri3()

	out := make([]QuadPoint, 0, n*len(triPts))
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		area := triVecArea(hub, a, b)
		if area == 0 {
			continue
		}
		for k, rp := range triPts {
			l1, l2 := rp[0], rp[1]
			l0 := 1 - l1 - l2
			pt := combine3(l0, hub, l1, a, l2, b)
			out = append(out, QuadPoint{Global: pt, Weight: area * triWeights[k]})
		}
	}
	return out
}

// isoparametricQuadQuadrature integrates over a bilinear-mapped quad via
// the default 2x2 Gauss rule (§4.5.2, testable property 5): each quadrature
// point's physical location and weight come from the bilinear shape
// functions and the surface Jacobian determinant of their derivatives,
// which correctly scales the weight even for a non-planar or non-affine
// quad.
func isoparametricQuadQuadrature(verts [4]geom.Vec) []QuadPoint {
	dim := len(verts[0])
	out := make([]QuadPoint, 0, 4)
	for _, gp := range geom.Gauss2x2() {
		shape := geom.BilinearShape(gp.Xi, gp.Eta)
		dXi, dEta := geom.BilinearShapeDeriv(gp.Xi, gp.Eta)
		pt := make(geom.Vec, dim)
		tXi := make(geom.Vec, dim)
		tEta := make(geom.Vec, dim)
		for i, v := range verts {
			for d := 0; d < dim; d++ {
				pt[d] += shape[i] * v[d]
				tXi[d] += dXi[i] * v[d]
				tEta[d] += dEta[i] * v[d]
			}
		}
		out = append(out, QuadPoint{Global: pt, Weight: gp.Weight * surfaceJacobianDet(tXi, tEta)})
	}
	return out
}

func surfaceJacobianDet(tXi, tEta geom.Vec) float64 {
	if len(tXi) == 2 {
		cross := tXi[0]*tEta[1] - tXi[1]*tEta[0]
		if cross < 0 {
			cross = -cross
		}
		return cross
	}
	return geom.Norm(geom.Cross3(tXi, tEta))
}

func triVecArea(a, b, c geom.Vec) float64 {
	ab := geom.Sub(b, a)
	ac := geom.Sub(c, a)
	if len(a) == 2 {
		cross := ab[0]*ac[1] - ab[1]*ac[0]
		if cross < 0 {
			cross = -cross
		}
		return 0.5 * cross
	}
	return 0.5 * geom.Norm(geom.Cross3(ab, ac))
}

func combine3(w0 float64, p0 geom.Vec, w1 float64, p1 geom.Vec, w2 float64, p2 geom.Vec) geom.Vec {
	out := make(geom.Vec, len(p0))
	for i := range out {
		out[i] = w0*p0[i] + w1*p1[i] + w2*p2[i]
	}
	return out
}
