// Package meshview describes the read-only, device-copyable view of one
// surface mesh that the contact kernel consumes each cycle: connectivity,
// nodal coordinates, optional velocities, a writable nodal response sink,
// and per-face cached geometry (normal, centroid, radius, area, optional
// element thickness).
//
// The mesh-view descriptor mirrors the plain-data, non-owning-handle shape
// the teacher repo uses for its Mesh type (github.com/notargets/gocfd
// DG3D/mesh.Mesh): slices indexed by face/node id rather than an object
// graph, so the same struct can be populated from host or device memory.
package meshview

import (
	"fmt"
	"sync"

	"github.com/notargets/gocontact/geom"
)

// MemSpace tags where a mesh view's backing arrays live. The coupling
// scheme's init() reads this to pick an execution mode (§4.6).
type MemSpace int

const (
	// Host means the arrays are addressable host memory.
	Host MemSpace = iota
	// Device means the arrays live in device (GPU) memory; library calls
	// against a Device view dispatch through the device execution path.
	Device
)

// ElementType names the supported face shapes. V is the vertex count
// (spec §3: V in {2,3,4}).
type ElementType int

const (
	Segment ElementType = iota // V=2, D=2 simulations
	Triangle                   // V=3, D=3
	Quad                       // V=4, D=3
)

// VertsPerFace returns the vertex count for an element type.
func (e ElementType) VertsPerFace() int {
	switch e {
	case Segment:
		return 2
	case Triangle:
		return 3
	case Quad:
		return 4
	default:
		return 0
	}
}

// FaceCache holds the per-face data computed by Refresh. Mutated only by
// Refresh, per §5's "shared resources" rule — never during Apply().
type FaceCache struct {
	Normal    []geom.Vec
	Centroid  []geom.Vec
	Radius    []float64
	Area      []float64
	Thickness []float64 // optional; nil unless RegisterElementThickness was called
	BulkMod   []float64 // optional; nil unless RegisterElementBulkModulus was called
}

// MeshView is the read-only descriptor the contact kernel operates on. It
// is not safe to mutate Connectivity/Coords concurrently with any library
// call; Response is append-only via AddResponse during Apply.
type MeshView struct {
	ID          int
	Dim         int // D in {2,3}
	ElemType    ElementType
	MemSpace    MemSpace
	NumNodes    int
	NumFaces    int
	Connectivity [][]int     // F x V indices into Coords
	Coords       []geom.Vec  // N x D
	Velocities   []geom.Vec  // N x D, nil if unregistered

	Cache FaceCache

	response   []float64 // flattened N x D
	responseMu sync.Mutex
}

// New constructs an empty mesh view. The host populates Connectivity and
// Coords (and, optionally, Velocities) before calling Refresh.
func New(id, dim int, elemType ElementType, memSpace MemSpace, numNodes, numFaces int) *MeshView {
	return &MeshView{
		ID:           id,
		Dim:          dim,
		ElemType:     elemType,
		MemSpace:     memSpace,
		NumNodes:     numNodes,
		NumFaces:     numFaces,
		Connectivity: make([][]int, numFaces),
		Coords:       make([]geom.Vec, numNodes),
		response:     make([]float64, numNodes*dim),
	}
}

// Validate checks the structural invariants of §3: every face has the
// element type's vertex count, and connectivity indices are in range.
func (m *MeshView) Validate() error {
	v := m.ElemType.VertsPerFace()
	if v == 0 {
		return fmt.Errorf("meshview %d: unknown element type", m.ID)
	}
	if len(m.Connectivity) != m.NumFaces {
		return fmt.Errorf("meshview %d: connectivity length %d != NumFaces %d", m.ID, len(m.Connectivity), m.NumFaces)
	}
	for f, conn := range m.Connectivity {
		if len(conn) != v {
			return fmt.Errorf("meshview %d: face %d has %d vertices, want %d", m.ID, f, len(conn), v)
		}
		for _, n := range conn {
			if n < 0 || n >= m.NumNodes {
				return fmt.Errorf("meshview %d: face %d references out-of-range node %d", m.ID, f, n)
			}
		}
	}
	if len(m.Coords) != m.NumNodes {
		return fmt.Errorf("meshview %d: coords length %d != NumNodes %d", m.ID, len(m.Coords), m.NumNodes)
	}
	return nil
}

// RegisterVelocities attaches a nodal velocity field (N x D). Required by
// the timestep vote (§5) but optional otherwise.
func (m *MeshView) RegisterVelocities(vel []geom.Vec) {
	m.Velocities = vel
}

// RegisterElementThickness attaches a per-face thickness array. Required
// before the AUTO contact case or element-wise penalty stiffness.
func (m *MeshView) RegisterElementThickness(t []float64) {
	m.Cache.Thickness = t
}

// RegisterElementBulkModulus attaches the per-face host bulk modulus used
// by the element-wise penalty stiffness formula.
func (m *MeshView) RegisterElementBulkModulus(k []float64) {
	m.Cache.BulkMod = k
}

// FaceCoords returns the V face-local vertex coordinates for faceID.
func (m *MeshView) FaceCoords(faceID int) []geom.Vec {
	conn := m.Connectivity[faceID]
	out := make([]geom.Vec, len(conn))
	for i, n := range conn {
		out[i] = m.Coords[n]
	}
	return out
}

// FaceVelocities returns the V face-local vertex velocities, or ok=false
// if velocities were never registered.
func (m *MeshView) FaceVelocities(faceID int) (vel []geom.Vec, ok bool) {
	if m.Velocities == nil {
		return nil, false
	}
	conn := m.Connectivity[faceID]
	out := make([]geom.Vec, len(conn))
	for i, n := range conn {
		out[i] = m.Velocities[n]
	}
	return out, true
}

// FaceNormal returns the cached outward unit normal for faceID.
func (m *MeshView) FaceNormal(faceID int) geom.Vec { return m.Cache.Normal[faceID] }

// FaceCentroid returns the cached centroid for faceID.
func (m *MeshView) FaceCentroid(faceID int) geom.Vec { return m.Cache.Centroid[faceID] }

// FaceRadius returns the cached bounding-sphere radius for faceID.
func (m *MeshView) FaceRadius(faceID int) float64 { return m.Cache.Radius[faceID] }

// FaceArea returns the cached area for faceID.
func (m *MeshView) FaceArea(faceID int) float64 { return m.Cache.Area[faceID] }

// ElementThickness returns the element thickness for faceID, or ok=false
// if it was never registered.
func (m *MeshView) ElementThickness(faceID int) (t float64, ok bool) {
	if m.Cache.Thickness == nil {
		return 0, false
	}
	return m.Cache.Thickness[faceID], true
}

// ElementBulkModulus returns the host bulk modulus for faceID, or
// ok=false if it was never registered.
func (m *MeshView) ElementBulkModulus(faceID int) (k float64, ok bool) {
	if m.Cache.BulkMod == nil {
		return 0, false
	}
	return m.Cache.BulkMod[faceID], true
}

// AddResponse atomically accumulates value into the response sink for
// (nodeID, d). Safe for concurrent callers across faces sharing a node.
func (m *MeshView) AddResponse(nodeID, d int, value float64) {
	m.responseMu.Lock()
	m.response[nodeID*m.Dim+d] += value
	m.responseMu.Unlock()
}

// Response returns the accumulated response for (nodeID, d).
func (m *MeshView) Response(nodeID, d int) float64 {
	return m.response[nodeID*m.Dim+d]
}

// ResponseSnapshot returns a copy of the flattened N x D response sink,
// for a host API accessor that must not hand out the live backing array.
func (m *MeshView) ResponseSnapshot() []float64 {
	m.responseMu.Lock()
	defer m.responseMu.Unlock()
	out := make([]float64, len(m.response))
	copy(out, m.response)
	return out
}

// ClearResponse zeroes the response sink. The host calls this between
// cycles; the library never clears it implicitly.
func (m *MeshView) ClearResponse() {
	for i := range m.response {
		m.response[i] = 0
	}
}
