// SPDX-License-Identifier: MIT
// Package eigen_test contains test helpers.

package eigen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linmorph/mat2"
	"github.com/stretchr/testify/require"
)

// RandomSPD RETURNS n symmetric positive-definite matrices R(θ)·diag(d0,d1)·R(θ)ᵀ
// with eigenvalues in [0.5, 6] separated by at least 0.5.
func RandomSPD(n int, seed int64) []mat2.Matrix2 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]mat2.Matrix2, n)
	for i := range out {
		theta := rng.Float64() * 2 * math.Pi
		d1 := 0.5 + rng.Float64()*2.5
		d0 := d1 + 0.5 + rng.Float64()*2.5
		c, s := math.Cos(theta), math.Sin(theta)
		r := mat2.Matrix2{{c, -s}, {s, c}}
		out[i] = mat2.Reduce(r, mat2.Diag(d0, d1), mat2.Transpose(r))
	}

	return out
}

// RandomRealEigen RETURNS n general (non-symmetric) matrices whose
// discriminant is at least 1, so both eigenvalues are real and distinct.
func RandomRealEigen(n int, seed int64) []mat2.Matrix2 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]mat2.Matrix2, 0, n)
	for len(out) < n {
		m := mat2.Matrix2{
			{rng.Float64()*6 - 3, rng.Float64()*6 - 3},
			{rng.Float64()*6 - 3, rng.Float64()*6 - 3},
		}
		d := m[0][0] - m[1][1]
		if d*d+4*m[0][1]*m[1][0] < 1 || math.Abs(m[1][0]) < 0.1 || math.Abs(m[0][1]) < 0.1 {
			continue
		}
		out = append(out, m)
	}

	return out
}

// RequireVecNear FAILS unless got ≈ want component-wise within delta.
func RequireVecNear(t *testing.T, want, got mat2.Vector2, delta float64) {
	t.Helper()
	require.InDeltaf(t, want[0], got[0], delta, "x: want %v got %v", want, got)
	require.InDeltaf(t, want[1], got[1], delta, "y: want %v got %v", want, got)
}

// RequireNaNVec FAILS unless both components are NaN.
func RequireNaNVec(t *testing.T, v mat2.Vector2) {
	t.Helper()
	require.Truef(t, math.IsNaN(v[0]) && math.IsNaN(v[1]), "want NaN vector, got %v", v)
}
