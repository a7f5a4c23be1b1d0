// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/linmorph/mat2"
)

// Discriminant returns (a00 - a11)² + 4·a01·a10, which equals tr² - 4·det
// but does not cancel catastrophically for symmetric input (it is then a sum
// of squares and never negative).
func Discriminant(a mat2.Matrix2) float64 {
	d := a[0][0] - a[1][1]

	return d*d + 4*a[0][1]*a[1][0]
}

// Values returns the eigenvalues (tr + √disc)/2 and (tr - √disc)/2, in that
// order. A negative discriminant yields NaN for both.
func Values(a mat2.Matrix2) [2]float64 {
	tr := mat2.Trace(a)
	r := math.Sqrt(Discriminant(a))

	return [2]float64{(tr + r) / 2, (tr - r) / 2}
}

// Eigen computes the eigenpair of a.
// Implementation:
//   - Stage 1: Values(a) → λ0 (+ root), λ1 (- root).
//   - Stage 2: v0 = NullSpaceFirst(a - λ0·I), v1 = NullSpaceSecond(a - λ1·I).
//   - Stage 3: a zero null-space matrix (a = λI) resolves to the branch axis,
//     (1,0) for v0 and (0,1) for v1.
//   - Stage 4: normalize both vectors to unit length.
//
// Behavior highlights:
//   - Repeated eigenvalues are not special-cased; a defective matrix gets two
//     parallel vectors.
//   - Complex eigenvalues produce an all-NaN pair.
//
// Inputs:
//   - a: any 2×2 matrix.
//
// Returns:
//   - Eigenpair: values ordered (+, -) and their unit eigenvectors.
//
// Determinism:
//   - Fixed branch priorities; identical input gives bit-identical output.
//
// Complexity:
//   - Time O(1), Space O(1).
func Eigen(a mat2.Matrix2) Eigenpair {
	vals := Values(a)

	return Eigenpair{
		Values: vals,
		Vectors: [2]mat2.Vector2{
			vectorFor(a, vals[0], NullSpaceFirst, mat2.Vector2{1, 0}),
			vectorFor(a, vals[1], NullSpaceSecond, mat2.Vector2{0, 1}),
		},
	}
}

// vectorFor extracts and normalizes the eigenvector of a for lambda.
func vectorFor(a mat2.Matrix2, lambda float64, null func(mat2.Matrix2) (mat2.Vector2, bool), axis mat2.Vector2) mat2.Vector2 {
	v, ok := null(mat2.Sub(a, mat2.Diag(lambda, lambda)))
	if !ok {
		v = axis
	}

	return mat2.Normalize(v)
}

// Classify names the eigenstructure of a without computing vectors.
func Classify(a mat2.Matrix2) Kind {
	if !mat2.IsFinite(a) {
		return NonFinite
	}
	disc := Discriminant(a)
	switch {
	case disc < 0:
		return Complex
	case disc > 0:
		return Distinct
	case a[0][1] == 0 && a[1][0] == 0:
		return Scalar // disc == 0 with zero off-diagonal forces a00 == a11
	default:
		return Repeated
	}
}

// Solve returns Eigen(a) and an error when the pair is not usable.
//
// Errors:
//   - ErrNonFinite if a contains NaN/±Inf or the computed pair overflowed.
//   - ErrComplex if the eigenvalues are complex.
//
// The returned pair is always Eigen(a), NaN-bearing in the error cases.
func Solve(a mat2.Matrix2) (Eigenpair, error) {
	p := Eigen(a)
	switch Classify(a) {
	case NonFinite:
		return p, eigenErrorf(opSolve, ErrNonFinite)
	case Complex:
		return p, eigenErrorf(opSolve, ErrComplex)
	}
	if !p.IsFinite() {
		return p, eigenErrorf(opSolve, ErrNonFinite)
	}

	return p, nil
}
