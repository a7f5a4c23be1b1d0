// SPDX-License-Identifier: MIT

package decomp

import (
	"math"

	"github.com/katalvlaran/linmorph/eigen"
	"github.com/katalvlaran/linmorph/mat2"
)

// repeatedTol is the relative gap below which two singular values are
// treated as equal and the right singular vectors are derived from U.
const repeatedTol = 1e-7

// SVD computes A ≈ U·S·Vt where U and Vt are orthonormal and
// S = diag(σ0, σ1) with σ0 ≥ σ1 ≥ 0.
// Implementation:
//   - Stage 1: eigendecompose A·Aᵀ → U (columns) and σᵢ = √max(λᵢ, 0).
//   - Stage 2: eigendecompose Aᵀ·A → vᵢ.
//   - Stage 3: orient vᵢ so that Aᵀ·uᵢ = σᵢ·vᵢ:
//     distinct σ: flip vᵢ when it points away from Aᵀ·uᵢ;
//     repeated σ > 0: the eigenbasis is arbitrary, so complete U with the
//     perpendicular of u0 and set vᵢ = Aᵀ·uᵢ/σᵢ.
//   - Stage 4: Vt has v0 and v1 as rows.
//
// Behavior highlights:
//   - The third result is Vᵀ, never V.
//   - Zero singular values keep the Aᵀ·A eigenvector as is.
//   - Negative eigenvalues of the PSD products (rounding) clamp to σ = 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func SVD(a mat2.Matrix2) (u, s, vt mat2.Matrix2) {
	at := mat2.Transpose(a)
	left := eigen.Eigen(mat2.Mul(a, at))
	right := eigen.Eigen(mat2.Mul(at, a))

	sigma := [2]float64{singular(left.Values[0]), singular(left.Values[1])}
	us := left.Vectors
	vs := right.Vectors

	if sigma[0] > 0 && sigma[0]-sigma[1] <= repeatedTol*sigma[0] {
		us[1] = mat2.Vector2{-us[0][1], us[0][0]}
		for i := 0; i < 2; i++ {
			vs[i] = mat2.ScaleVec(mat2.Transform(at, us[i]), 1/sigma[i])
		}
	} else {
		for i := 0; i < 2; i++ {
			if mat2.Dot(vs[i], mat2.Transform(at, us[i])) < 0 {
				vs[i] = mat2.ScaleVec(vs[i], -1)
			}
		}
	}

	return mat2.FromColumns(us[0], us[1]), mat2.Diag(sigma[0], sigma[1]), mat2.FromRows(vs[0], vs[1])
}

func singular(lambda float64) float64 {
	if lambda < 0 {
		return 0
	}

	return math.Sqrt(lambda)
}
