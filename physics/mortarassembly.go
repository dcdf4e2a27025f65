package physics

import (
	"github.com/james-bowman/sparse"
	"github.com/notargets/gocontact/meshview"
)

// MortarAssembly accumulates element Jacobian contributions into the
// global block operator the finite-element collaborator consumes (§6):
// two sparse primal-dual coupling matrices, B1 and B2, each row-indexed
// by nonmortar-mesh pressure dof and column-indexed by dim*node_id+d on
// mesh 1 and mesh 2 respectively. Assembly uses github.com/james-bowman/
// sparse's DOK accumulator (the same library the teacher wraps in
// utils/sparse.go) and finalizes to CSR, the wire format §6 specifies.
type MortarAssembly struct {
	dim int
	b1  *sparse.DOK
	b2  *sparse.DOK
}

// NewMortarAssembly allocates an empty assembly sized for numPressureDofs
// nonmortar pressure unknowns against numEqDofs1/numEqDofs2 equilibrium
// dofs (dim*NumNodes) on mesh 1 and mesh 2.
func NewMortarAssembly(dim, numPressureDofs, numEqDofs1, numEqDofs2 int) *MortarAssembly {
	return &MortarAssembly{
		dim: dim,
		b1:  sparse.NewDOK(numPressureDofs, numEqDofs1),
		b2:  sparse.NewDOK(numPressureDofs, numEqDofs2),
	}
}

// AddElement scatters one mortar element's constraint-coupling
// contribution into the global assembly. pressureDof maps the element's
// local nonmortar vertex index to its global pressure dof id.
func (a *MortarAssembly) AddElement(el *MortarElement, normal []float64, mv1, mv2 *meshview.MeshView, pressureDof []int) {
	conn1 := mv1.Connectivity[el.Face1]
	conn2 := mv2.Connectivity[el.Face2]
	for i := 0; i < el.V1; i++ {
		p := pressureDof[i]
		for j := 0; j < el.V1; j++ {
			node := conn1[j]
			for d := 0; d < a.dim; d++ {
				col := a.dim*node + d
				a.b1.Set(p, col, a.b1.At(p, col)-normal[d]*el.WeightsAA[i][j])
			}
		}
		for j := 0; j < el.V2; j++ {
			node := conn2[j]
			for d := 0; d < a.dim; d++ {
				col := a.dim*node + d
				a.b2.Set(p, col, a.b2.At(p, col)+normal[d]*el.WeightsAB[i][j])
			}
		}
	}
}

// ToCSR finalizes the assembly into the CSR pair §6's contract specifies.
func (a *MortarAssembly) ToCSR() (b1, b2 *sparse.CSR) {
	return a.b1.ToCSR(), a.b2.ToCSR()
}
