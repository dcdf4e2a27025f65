package meshview

import (
	"github.com/notargets/gocontact/geom"
)

// Refresh recomputes the per-face cached data (normal, centroid, radius,
// area) from the current Connectivity and Coords. The coupling scheme
// calls it on both mesh views from Init only; it does not refresh them
// again on later cycles, and never during Apply (§5).
func (m *MeshView) Refresh() error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.Cache.Normal = make([]geom.Vec, m.NumFaces)
	m.Cache.Centroid = make([]geom.Vec, m.NumFaces)
	m.Cache.Radius = make([]float64, m.NumFaces)
	m.Cache.Area = make([]float64, m.NumFaces)

	for f := 0; f < m.NumFaces; f++ {
		coords := m.FaceCoords(f)

		var centroid geom.Vec
		var err error
		if m.Dim == 2 {
			centroid, err = geom.VertexAverageCentroid(coords)
		} else {
			centroid, err = geom.AreaWeightedCentroid3D(coords)
		}
		if err != nil {
			return err
		}
		m.Cache.Centroid[f] = centroid

		var area float64
		var normal geom.Vec
		if m.Dim == 2 {
			// A "face" is a segment; area is its length and the normal is
			// its in-plane perpendicular (rotate the segment direction by
			// +90 degrees).
			dir := geom.Sub(coords[1], coords[0])
			area = geom.Norm(dir)
			normal = geom.Normalize(geom.Vec{-dir[1], dir[0]})
		} else {
			area, normal = polygonAreaAndNormal(coords)
		}
		m.Cache.Area[f] = area
		m.Cache.Normal[f] = normal

		var radius float64
		for _, c := range coords {
			d := geom.Norm(geom.Sub(c, centroid))
			if d > radius {
				radius = d
			}
		}
		m.Cache.Radius[f] = radius
	}
	return nil
}

// polygonAreaAndNormal computes a planar polygon's area and unit normal
// by triangulating about the vertex-average centroid and summing the
// triangle cross products (Newell's method specialized to planar faces).
func polygonAreaAndNormal(poly []geom.Vec) (area float64, normal geom.Vec) {
	hub, _ := geom.VertexAverageCentroid(poly)
	n := len(poly)
	sum := geom.Vec{0, 0, 0}
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		cr := geom.Cross3(geom.Sub(a, hub), geom.Sub(b, hub))
		for k := 0; k < 3; k++ {
			sum[k] += cr[k]
		}
	}
	mag := geom.Norm(sum)
	area = 0.5 * mag
	if mag < 1e-300 {
		return 0, geom.Vec{0, 0, 0}
	}
	normal = geom.Scale(1/mag, sum)
	return area, normal
}

// MedianFaceRadius returns the median of the mesh's cached per-face
// radii, used by the spatial-grid pair finder to size grid cells (§4.3:
// "a performance tuning knob, not a correctness one").
func (m *MeshView) MedianFaceRadius() float64 {
	if len(m.Cache.Radius) == 0 {
		return 0
	}
	sorted := append([]float64{}, m.Cache.Radius...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}

// BoundingBox returns the axis-aligned bounding box of faceID's vertices,
// grown by the face's cached radius; used by the grid pair finder to
// decide which cells a face touches.
func (m *MeshView) BoundingBox(faceID int) (lo, hi geom.Vec) {
	coords := m.FaceCoords(faceID)
	lo = append(geom.Vec{}, coords[0]...)
	hi = append(geom.Vec{}, coords[0]...)
	for _, c := range coords[1:] {
		for i := range c {
			if c[i] < lo[i] {
				lo[i] = c[i]
			}
			if c[i] > hi[i] {
				hi[i] = c[i]
			}
		}
	}
	if faceID < len(m.Cache.Radius) {
		r := m.Cache.Radius[faceID]
		for i := range lo {
			lo[i] -= r
			hi[i] += r
		}
	}
	return lo, hi
}
