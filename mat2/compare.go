// SPDX-License-Identifier: MIT

package mat2

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the tolerance used by callers that compare reconstructed
// matrices against their inputs.
const DefaultEpsilon = 1e-9

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsFinite reports whether every entry of m is neither NaN nor ±Inf.
// This is the single check callers need for every degenerate result the
// library produces.
func IsFinite(m Matrix2) bool {
	return isFinite(m[0][0]) && isFinite(m[0][1]) &&
		isFinite(m[1][0]) && isFinite(m[1][1])
}

// IsZero reports whether every entry is exactly zero (either sign).
func IsZero(m Matrix2) bool {
	return m[0][0] == 0 && m[0][1] == 0 && m[1][0] == 0 && m[1][1] == 0
}

// EqualApprox reports whether a and b agree entry-wise within tol, using an
// absolute-or-relative test so large entries are not held to an absolute bound.
// Any NaN entry makes the matrices unequal.
func EqualApprox(a, b Matrix2, tol float64) bool {
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			if !scalar.EqualWithinAbsOrRel(a[i][j], b[i][j], tol, tol) {
				return false
			}
		}
	}

	return true
}

// EqualApproxVec is EqualApprox for vectors.
func EqualApproxVec(a, b Vector2, tol float64) bool {
	return floats.EqualApprox(a[:], b[:], tol)
}
