package host

import (
	"fmt"

	"github.com/notargets/gocontact/coupling"
	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
)

// Status is the non-zero-on-failure return code update() hands back to
// the host, mirroring the source's "positive return code means the cycle
// did not complete correctly" contract.
type Status int

const (
	StatusOK Status = 0
	// StatusGeometryErrors is returned when one or more candidate pairs
	// were dropped to a tallied geometry error; the cycle still ran.
	StatusGeometryErrors Status = 1
	// StatusFailed is returned when the cycle could not run at all
	// (scheme misuse, unregistered handle).
	StatusFailed Status = 2
)

// RegisterMesh allocates a new mesh view and returns its handle. Replaces
// the source's register_mesh(id, num_nodes, num_faces, connectivity*,
// element_type, coords_x*, coords_y*, coords_z*) — id is assigned by the
// Context rather than supplied by the caller, since Go handles need not
// match a caller-chosen integer space.
func (c *Context) RegisterMesh(dim int, elemType meshview.ElementType, memSpace meshview.MemSpace, coords []geom.Vec, connectivity [][]int) (MeshHandle, error) {
	mv := meshview.New(0, dim, elemType, memSpace, len(coords), len(connectivity))
	copy(mv.Coords, coords)
	copy(mv.Connectivity, connectivity)
	if err := mv.Validate(); err != nil {
		return 0, fmt.Errorf("host: register_mesh: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextMesh++
	h := c.nextMesh
	mv.ID = int(h)
	c.meshes[h] = mv
	return h, nil
}

// RegisterNodalVelocities attaches a velocity field to an already
// registered mesh (register_nodal_velocities).
func (c *Context) RegisterNodalVelocities(h MeshHandle, vel []geom.Vec) error {
	mv, err := c.mesh(h)
	if err != nil {
		return err
	}
	mv.RegisterVelocities(vel)
	return nil
}

// RegisterElementThickness attaches per-face element thickness, required
// before the AUTO contact case or element-wise penalty stiffness.
func (c *Context) RegisterElementThickness(h MeshHandle, thickness []float64) error {
	mv, err := c.mesh(h)
	if err != nil {
		return err
	}
	mv.RegisterElementThickness(thickness)
	return nil
}

// RegisterElementBulkModulus attaches the per-face host bulk modulus used
// by the element-wise penalty stiffness formula.
func (c *Context) RegisterElementBulkModulus(h MeshHandle, k []float64) error {
	mv, err := c.mesh(h)
	if err != nil {
		return err
	}
	mv.RegisterElementBulkModulus(k)
	return nil
}

// NodalResponse reads back the accumulated per-node response
// (register_nodal_response is a caller-supplied sink in the source; here
// the Context owns the buffer and exposes it by copy).
func (c *Context) NodalResponse(h MeshHandle) ([]float64, error) {
	mv, err := c.mesh(h)
	if err != nil {
		return nil, err
	}
	return mv.ResponseSnapshot(), nil
}

// CreateCouplingScheme constructs and initializes a coupling scheme over
// two registered meshes (create_coupling_scheme + the implicit init()
// call — the source separates construction from validation, but nothing
// meaningful can happen with an unvalidated scheme, so Go callers get
// both in one step and a single error return).
func (c *Context) CreateCouplingScheme(mesh1, mesh2 MeshHandle, cfg coupling.Config) (SchemeHandle, error) {
	mv1, err := c.mesh(mesh1)
	if err != nil {
		return 0, err
	}
	mv2, err := c.mesh(mesh2)
	if err != nil {
		return 0, err
	}

	s := coupling.New(cfg, mv1, mv2)
	if err := s.Init(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextScheme++
	h := c.nextScheme
	c.schemes[h] = s
	return h, nil
}

// Update drives one cycle: bin, apply, vote. dtInOut is read as the
// proposed step and overwritten with the (possibly reduced) voted step,
// mirroring update(cycle, time, dt_inout) → status.
func (c *Context) Update(h SchemeHandle, cycle int, time float64, dtInOut *float64) Status {
	s, err := c.scheme(h)
	if err != nil {
		return StatusFailed
	}

	s.PerformBinning()
	newDt, err := s.Apply(cycle, time, *dtInOut)
	if err != nil {
		return StatusFailed
	}
	*dtInOut = newDt

	if s.Stats.Total() > 0 {
		return StatusGeometryErrors
	}
	return StatusOK
}

// JacobianCSR (get_jacobian_CSR) returns the nonzero entries of the
// nonmortar-side block as row, column and value triplets in row-major
// order, or ok=false if the scheme's method is not
// Lagrange-multiplier-enforced mortar. The mortar-side block is not
// returned, and the result is not in CSR row-pointer form.
func (c *Context) JacobianCSR(h SchemeHandle) (rows, cols []int, values []float64, ok bool) {
	s, err := c.scheme(h)
	if err != nil || s.Assembly == nil {
		return nil, nil, nil, false
	}
	b1, _ := s.Assembly.ToCSR()
	r, cn := b1.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cn; j++ {
			if v := b1.At(i, j); v != 0 {
				rows = append(rows, i)
				cols = append(cols, j)
				values = append(values, v)
			}
		}
	}
	return rows, cols, values, true
}

// GapArray returns the signed gap for every active contact plane this
// cycle, in plane order (get_gap_array).
func (c *Context) GapArray(h SchemeHandle) ([]float64, error) {
	s, err := c.scheme(h)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(s.Planes))
	for i, p := range s.Planes {
		out[i] = p.Gap
	}
	return out, nil
}

// PressureDofs returns the dual-space row indices (pressure dofs) the
// host's own linear solve should read back a solved pressure from
// (get_pressure_array). Solving for the pressure value itself is out of
// scope: "solving linear systems... owning the global stiffness matrix"
// is an explicit non-goal, so this library exposes the dof layout, not a
// solved array.
func (c *Context) PressureDofs(h SchemeHandle) ([]int, error) {
	s, err := c.scheme(h)
	if err != nil {
		return nil, err
	}
	if s.Assembly == nil {
		return nil, nil
	}
	b1, _ := s.Assembly.ToCSR()
	r, _ := b1.Dims()
	out := make([]int, r)
	for i := range out {
		out[i] = i
	}
	return out, nil
}

// Finalize tears down every coupling scheme owned by the Context,
// leaving its registered meshes intact (finalize()).
func (c *Context) Finalize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.schemes {
		s.Finalize()
	}
	c.schemes = make(map[SchemeHandle]*coupling.Scheme)
}
