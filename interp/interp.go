// SPDX-License-Identifier: MIT

package interp

import (
	"math"

	"github.com/katalvlaran/linmorph/eigen"
	"github.com/katalvlaran/linmorph/mat2"
)

// Func is the common signature of every interpolation strategy.
type Func func(a mat2.Matrix2, t float64) mat2.Matrix2

// Angle interpolates each column of a in polar form.
// Implementation:
//   - Stage 1: column 0 angle θ0 = atan2(a10, a00), measured from (1,0).
//   - Stage 2: column 1 angle θ1 = atan2(a11, a01) - π/2, measured from (0,1).
//   - Stage 3: angles scale by t, lengths move linearly from 1.
//   - Stage 4: back to Cartesian, restoring the π/2 offset on column 1.
//
// Behavior highlights:
//   - atan2 returns angles in (-π, π], so each column takes the short way
//     round, except column 1 whose offset range is (-3π/2, π/2].
//   - A zero column has angle 0 and collapses to length 0 at t = 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func Angle(a mat2.Matrix2, t float64) mat2.Matrix2 {
	t0 := t * math.Atan2(a[1][0], a[0][0])
	t1 := t*(math.Atan2(a[1][1], a[0][1])-math.Pi/2) + math.Pi/2
	s0 := t*(math.Hypot(a[0][0], a[1][0])-1) + 1
	s1 := t*(math.Hypot(a[0][1], a[1][1])-1) + 1

	return mat2.Matrix2{
		{math.Cos(t0) * s0, math.Cos(t1) * s1},
		{math.Sin(t0) * s0, math.Sin(t1) * s1},
	}
}

// Eigen interpolates the eigenvalues of a from 1 to their targets and
// rebuilds V·diag(t(λ0-1)+1, t(λ1-1)+1)·V⁻¹. It degrades to NaN wherever
// eigen.Eigen does.
func Eigen(a mat2.Matrix2, t float64) mat2.Matrix2 {
	p := eigen.Eigen(a)
	v := p.V()
	l := mat2.Diag(
		t*(p.Values[0]-1)+1,
		t*(p.Values[1]-1)+1,
	)

	return mat2.Reduce(v, l, mat2.Inverse(v))
}

// Linear returns (1-t)·I + t·a.
func Linear(a mat2.Matrix2, t float64) mat2.Matrix2 {
	return mat2.Matrix2{
		{1 + t*(a[0][0]-1), t * a[0][1]},
		{t * a[1][0], 1 + t*(a[1][1]-1)},
	}
}
