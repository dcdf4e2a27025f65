package physics

import "gonum.org/v1/gonum/mat"

// BlockJacobian is the per-element 3x3 block Jacobian of §3's
// SurfaceContactElem. Row/column 0 is the nonmortar (slave) primal
// displacement dofs, 1 is the mortar (master) primal displacement dofs,
// and 2 is the nonmortar pressure (Lagrange-multiplier) dofs.
//
// Primal-primal and dual-dual blocks are always zero under pure
// Lagrange-multiplier enforcement — the contact element contributes no
// elastic stiffness of its own, only the constraint coupling. Only the
// primal-dual/dual-primal off-diagonal blocks are populated, derived
// directly from the mortar weights.
type BlockJacobian struct {
	Blocks [3][3]*mat.Dense
}

// ComputeMortarJacobian builds the element Jacobian from a mortar
// element's weight blocks, given the common-plane normal in the same
// ambient dimension as both meshes. The gap constraint for nonmortar
// pressure dof i is
//
//	gap_i = sum_j WeightsAB[i][j]*(u2_j . n) - sum_j WeightsAA[i][j]*(u1_j . n)
//
// so d(gap_i)/d(u1_{j,d}) = -n_d*WeightsAA[i][j] and
// d(gap_i)/d(u2_{j,d}) = +n_d*WeightsAB[i][j].
func ComputeMortarJacobian(el *MortarElement, dim int, normal []float64) *BlockJacobian {
	v1, v2 := el.V1, el.V2

	dualPrimal1 := mat.NewDense(v1, v1*dim, nil)
	dualPrimal2 := mat.NewDense(v1, v2*dim, nil)
	for i := 0; i < v1; i++ {
		for j := 0; j < v1; j++ {
			for d := 0; d < dim; d++ {
				dualPrimal1.Set(i, j*dim+d, -normal[d]*el.WeightsAA[i][j])
			}
		}
		for j := 0; j < v2; j++ {
			for d := 0; d < dim; d++ {
				dualPrimal2.Set(i, j*dim+d, normal[d]*el.WeightsAB[i][j])
			}
		}
	}

	primalDual1 := mat.DenseCopyOf(dualPrimal1.T())
	primalDual2 := mat.DenseCopyOf(dualPrimal2.T())

	bj := &BlockJacobian{}
	bj.Blocks[0][0] = mat.NewDense(v1*dim, v1*dim, nil)
	bj.Blocks[1][1] = mat.NewDense(v2*dim, v2*dim, nil)
	bj.Blocks[2][2] = mat.NewDense(v1, v1, nil)
	bj.Blocks[0][2] = primalDual1
	bj.Blocks[2][0] = dualPrimal1
	bj.Blocks[1][2] = primalDual2
	bj.Blocks[2][1] = dualPrimal2
	return bj
}
