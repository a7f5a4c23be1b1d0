// SPDX-License-Identifier: MIT
// Package eigen: null-space extraction for singular 2×2 matrices.
//
// Both functions solve M·v = 0 by assuming one coordinate of v equals 1 and
// solving the row that determines the other. The candidate formulas are the
// same; only the order in which the entries of M are tried differs:
//
//	candidate          used when   result
//	(a) row 1, x = 1   M11 ≠ 0     ( 1, -M10/M11)
//	(b) row 0, x = 1   M01 ≠ 0     ( 1, -M00/M01)
//	(c) row 0, y = 1   M00 ≠ 0     (-M01/M00,  1)
//	(d) row 1, y = 1   M10 ≠ 0     (-M11/M10,  1)
//
//	NullSpaceFirst  tries a → b → c → d
//	NullSpaceSecond tries c → d → a → b
//
// The orders are fixed; changing them flips eigenvector signs downstream.

package eigen

import "github.com/katalvlaran/linmorph/mat2"

// NullSpaceFirst returns a (non-normalized) vector v with M·v ≈ 0, preferring
// x = 1. ok is false only when M is the zero matrix.
// NaN entries compare unequal to zero and therefore select a branch; the
// result then carries NaN.
func NullSpaceFirst(m mat2.Matrix2) (v mat2.Vector2, ok bool) {
	switch {
	case m[1][1] != 0:
		return mat2.Vector2{1, -m[1][0] / m[1][1]}, true
	case m[0][1] != 0:
		return mat2.Vector2{1, -m[0][0] / m[0][1]}, true
	case m[0][0] != 0:
		return mat2.Vector2{-m[0][1] / m[0][0], 1}, true
	case m[1][0] != 0:
		return mat2.Vector2{-m[1][1] / m[1][0], 1}, true
	}

	return mat2.Vector2{}, false
}

// NullSpaceSecond is NullSpaceFirst with the priority order reversed so that
// y = 1 is preferred.
func NullSpaceSecond(m mat2.Matrix2) (v mat2.Vector2, ok bool) {
	switch {
	case m[0][0] != 0:
		return mat2.Vector2{-m[0][1] / m[0][0], 1}, true
	case m[1][0] != 0:
		return mat2.Vector2{-m[1][1] / m[1][0], 1}, true
	case m[1][1] != 0:
		return mat2.Vector2{1, -m[1][0] / m[1][1]}, true
	case m[0][1] != 0:
		return mat2.Vector2{1, -m[0][0] / m[0][1]}, true
	}

	return mat2.Vector2{}, false
}
