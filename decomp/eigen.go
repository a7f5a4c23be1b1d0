// SPDX-License-Identifier: MIT

package decomp

import (
	"github.com/katalvlaran/linmorph/eigen"
	"github.com/katalvlaran/linmorph/mat2"
)

// EigenDecomposition returns V, L and V⁻¹ such that A ≈ V·L·V⁻¹.
// Implementation:
//   - Stage 1: p = eigen.Eigen(a).
//   - Stage 2: V = [v0 | v1], L = diag(λ0, λ1), V⁻¹ via mat2.Inverse.
//
// Behavior highlights:
//   - Defective matrices (parallel eigenvectors) give a singular V and an
//     Inf/NaN V⁻¹; complex spectra give NaN throughout.
//
// Complexity:
//   - Time O(1), Space O(1).
func EigenDecomposition(a mat2.Matrix2) (v, l, vinv mat2.Matrix2) {
	p := eigen.Eigen(a)
	v = p.V()

	return v, p.L(), mat2.Inverse(v)
}

// EigenAxisDecomposition splits a into A1 = V·diag(λ0,1)·V⁻¹ and
// A2 = V·diag(1,λ1)·V⁻¹. Each factor scales along one eigenvector and leaves
// the other fixed, and A1·A2 ≈ A because the diagonal factors commute.
func EigenAxisDecomposition(a mat2.Matrix2) (a1, a2 mat2.Matrix2) {
	p := eigen.Eigen(a)
	v := p.V()
	vinv := mat2.Inverse(v)

	a1 = mat2.Reduce(v, mat2.Diag(p.Values[0], 1), vinv)
	a2 = mat2.Reduce(v, mat2.Diag(1, p.Values[1]), vinv)

	return a1, a2
}
