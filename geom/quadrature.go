package geom

// GaussPoint1D is a single 1D Gauss-Legendre abscissa/weight pair on
// [-1, 1].
type GaussPoint1D struct {
	Xi     float64
	Weight float64
}

// gauss2Points1D is the 2-point Gauss-Legendre rule, exact for cubics.
var gauss2Points1D = []GaussPoint1D{
	{Xi: -0.5773502691896257, Weight: 1},
	{Xi: 0.5773502691896257, Weight: 1},
}

// GaussPoint2D is a tensor-product 2D Gauss point over the reference
// square [-1,1]^2, used to integrate mortar shape-function products over
// an isoparametric quad parent element.
type GaussPoint2D struct {
	Xi, Eta float64
	Weight  float64
}

// GaussLegendre2 returns the 2-point 1D Gauss-Legendre rule on [-1,1],
// used directly by the D=2 mortar quadrature over a segment overlap.
func GaussLegendre2() []GaussPoint1D {
	return gauss2Points1D
}

// Gauss2x2 returns the default 2x2 tensor-product Gauss rule (four points,
// exact for bicubics), the physics kernel's default mortar quadrature
// rule.
func Gauss2x2() []GaussPoint2D {
	pts := make([]GaussPoint2D, 0, 4)
	for _, a := range gauss2Points1D {
		for _, b := range gauss2Points1D {
			pts = append(pts, GaussPoint2D{Xi: a.Xi, Eta: b.Xi, Weight: a.Weight * b.Weight})
		}
	}
	return pts
}

// BilinearShape evaluates the four bilinear shape functions at (xi, eta) in
// the reference square [-1,1]^2. Index i corresponds to the reference
// corner at (xi,eta) = (-1,-1), (1,-1), (1,1), (-1,1) respectively, the
// same CCW corner ordering the overlap polygon builder produces.
func BilinearShape(xi, eta float64) [4]float64 {
	return [4]float64{
		0.25 * (1 - xi) * (1 - eta),
		0.25 * (1 + xi) * (1 - eta),
		0.25 * (1 + xi) * (1 + eta),
		0.25 * (1 - xi) * (1 + eta),
	}
}

// BilinearShapeDeriv evaluates the bilinear shape functions' derivatives
// with respect to xi and eta at (xi, eta), the building blocks of the
// isoparametric map's Jacobian.
func BilinearShapeDeriv(xi, eta float64) (dXi, dEta [4]float64) {
	dXi = [4]float64{-0.25 * (1 - eta), 0.25 * (1 - eta), 0.25 * (1 + eta), -0.25 * (1 + eta)}
	dEta = [4]float64{-0.25 * (1 - xi), -0.25 * (1 + xi), 0.25 * (1 + xi), 0.25 * (1 - xi)}
	return
}

// GaussTri3 returns a 3-point degree-2 rule over the unit reference
// triangle (area-coordinate quadrature), used when the overlap polygon is
// triangulated about its centroid.
func GaussTri3() (pts [][2]float64, weights []float64) {
	const a = 1.0 / 6.0
	const b = 2.0 / 3.0
	pts = [][2]float64{{a, a}, {b, a}, {a, b}}
	weights = []float64{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0}
	return
}
