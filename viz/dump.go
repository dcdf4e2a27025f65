// Package viz writes optional per-cycle visualization dumps of the active
// contact-plane overlap polygons (§6: "Optional visualization dumps are
// written to a user-supplied directory, one polygonal-mesh file per
// cycle, containing the active overlap polygons"). It follows the
// teacher's direct binary.Write-to-file AVS mesh format
// (DG2D/graphics_support.go's WriteAVSGraphMesh) rather than adopting a
// new serialization scheme.
package viz

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/notargets/avs/geometry"

	"github.com/notargets/gocontact/contactplane"
	"github.com/notargets/gocontact/geom"
)

// BuildOverlapTriMesh triangulates every active plane's overlap polygon
// as a fan about its cached centroid (physics.OverlapQuadrature uses the
// same fan for non-quadrilateral 3D overlaps; quadrilateral overlaps are
// integrated there with the 2x2 isoparametric rule instead) and packs the result into a single avs/geometry.TriMesh, one triangle fan
// per plane.
func BuildOverlapTriMesh(planes []*contactplane.Plane) geometry.TriMesh {
	var xy []float32
	var tris [][3]int64

	for _, plane := range planes {
		pts := plane.OverlapGlobal
		if len(pts) < 2 {
			continue
		}
		base := int64(len(xy) / 3)
		centroidIdx := base
		appendVert(&xy, plane.OverlapCentroid)

		if len(pts) == 2 {
			appendVert(&xy, pts[0])
			appendVert(&xy, pts[1])
			tris = append(tris, [3]int64{centroidIdx, centroidIdx + 1, centroidIdx + 2})
			continue
		}

		for _, p := range pts {
			appendVert(&xy, p)
		}
		n := int64(len(pts))
		for i := int64(0); i < n; i++ {
			j := (i + 1) % n
			tris = append(tris, [3]int64{centroidIdx, centroidIdx + 1 + i, centroidIdx + 1 + j})
		}
	}

	return geometry.TriMesh{XY: xy, TriVerts: tris}
}

// appendVert lifts a 2-or-3-component geom.Vec into the flat XYZ buffer,
// padding a missing Z with zero so 2D (segment) overlaps still produce a
// valid 3-wide vertex record.
func appendVert(xy *[]float32, v geom.Vec) {
	z := 0.0
	if len(v) > 2 {
		z = v[2]
	}
	*xy = append(*xy, float32(v[0]), float32(v[1]), float32(z))
}

// DumpCycle writes the active overlap polygons for one cycle to
// <dir>/overlap_<cycle>.avs, creating dir if necessary. It mirrors
// WriteAVSGraphMesh's little-endian count-then-payload layout.
func DumpCycle(dir string, cycle int, planes []*contactplane.Plane) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("viz: creating dump dir: %w", err)
	}
	gm := BuildOverlapTriMesh(planes)
	path := filepath.Join(dir, fmt.Sprintf("overlap_%06d.avs", cycle))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viz: creating dump file: %w", err)
	}
	defer file.Close()

	nDimensions := int64(3)
	if err := binary.Write(file, binary.LittleEndian, nDimensions); err != nil {
		return err
	}
	if err := binary.Write(file, binary.LittleEndian, int64(len(gm.TriVerts))); err != nil {
		return err
	}
	if err := binary.Write(file, binary.LittleEndian, gm.TriVerts); err != nil {
		return err
	}
	if err := binary.Write(file, binary.LittleEndian, int64(len(gm.XY))); err != nil {
		return err
	}
	if err := binary.Write(file, binary.LittleEndian, gm.XY); err != nil {
		return err
	}
	return nil
}
