// SPDX-License-Identifier: MIT

package decomp

import (
	"math"

	"github.com/katalvlaran/linmorph/eigen"
	"github.com/katalvlaran/linmorph/mat2"
)

// Schur returns Q, T and Qᵀ with A = Q·T·Qᵀ, Q orthonormal, and T
// upper-triangular whenever A has real eigenvalues (T00 = λ0, T11 = λ1).
// Implementation:
//   - Stage 1: e0 = first eigenvector of A.
//   - Stage 2: q1 = Gram-Schmidt residual of (0,1) against e0, normalized.
//     When e0 is parallel to (0,1) the residual vanishes and (1,0) is used.
//   - Stage 3: Q = [e0 | q1], T = Qᵀ·A·Q.
//
// Complex spectra give a NaN e0 and therefore NaN Q and T.
func Schur(a mat2.Matrix2) (q, t, qt mat2.Matrix2) {
	e0 := eigen.Eigen(a).Vectors[0]
	q = mat2.FromColumns(e0, orthogonalTo(e0))
	qt = mat2.Transpose(q)

	return q, mat2.Reduce(qt, a, q), qt
}

// orthogonalTo returns the normalized Gram-Schmidt residual of (0,1) against
// the unit vector e, falling back to (1,0) when e is parallel to (0,1).
// For unit e the residual of (0,1) is e.x·(-e.y, e.x) and that of (1,0) is
// e.y·(e.y, -e.x); both are written in that form so 1 - e.y² is never formed.
func orthogonalTo(e mat2.Vector2) mat2.Vector2 {
	if e[0] != 0 {
		s := math.Copysign(1, e[0])
		return mat2.Normalize(mat2.Vector2{-e[1] * s, e[0] * s})
	}
	s := math.Copysign(1, e[1])

	return mat2.Normalize(mat2.Vector2{e[1] * s, -e[0] * s})
}
