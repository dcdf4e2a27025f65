// Package host implements the C-compatible host API (§6): a thin,
// handle-based surface a non-Go caller (or a cgo shim) drives one cycle
// at a time. The source's mesh/coupling-scheme registries are global
// singletons; §9's Design Notes reframe that as a single owning context
// handle threaded through every call, the same non-singleton-resource
// ownership the teacher's utils.KernelProgram uses (a struct owning its
// own kernel/memory maps rather than a package-level registry).
package host

import (
	"fmt"
	"sync"

	"github.com/notargets/gocontact/coupling"
	"github.com/notargets/gocontact/meshview"
)

// MeshHandle and SchemeHandle are opaque integer handles returned to the
// caller, stable across the Context's lifetime.
type MeshHandle int
type SchemeHandle int

// Context owns every mesh and coupling scheme created through it. A
// caller obtains one Context per simulation (or per communicator, in the
// source's MPI-aware framing) and threads it through every API call
// instead of reaching into a global registry.
type Context struct {
	mu sync.Mutex

	nextMesh   MeshHandle
	nextScheme SchemeHandle

	meshes  map[MeshHandle]*meshview.MeshView
	schemes map[SchemeHandle]*coupling.Scheme
}

// NewContext constructs an empty, ready-to-use Context.
func NewContext() *Context {
	return &Context{
		meshes:  make(map[MeshHandle]*meshview.MeshView),
		schemes: make(map[SchemeHandle]*coupling.Scheme),
	}
}

func (c *Context) mesh(h MeshHandle) (*meshview.MeshView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mv, ok := c.meshes[h]
	if !ok {
		return nil, fmt.Errorf("host: unknown mesh handle %d", h)
	}
	return mv, nil
}

func (c *Context) scheme(h SchemeHandle) (*coupling.Scheme, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.schemes[h]
	if !ok {
		return nil, fmt.Errorf("host: unknown coupling-scheme handle %d", h)
	}
	return s, nil
}
