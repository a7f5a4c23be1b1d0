// SPDX-License-Identifier: MIT
// Package decomp_test contains test helpers.

package decomp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linmorph/mat2"
	"github.com/stretchr/testify/require"
)

// RequireMatrixNear FAILS the test unless got and want agree entry-wise within delta.
func RequireMatrixNear(t *testing.T, want, got mat2.Matrix2, delta float64) {
	t.Helper()
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			require.InDeltaf(t, want[i][j], got[i][j], delta, "entry [%d,%d]: want\n%v\ngot\n%v", i, j, want, got)
		}
	}
}

// RequireOrthonormal FAILS unless qᵀ·q ≈ I.
func RequireOrthonormal(t *testing.T, q mat2.Matrix2, delta float64) {
	t.Helper()
	RequireMatrixNear(t, mat2.Identity(), mat2.Mul(mat2.Transpose(q), q), delta)
}

// rotation returns R(θ).
func rotation(theta float64) mat2.Matrix2 {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat2.Matrix2{{c, -s}, {s, c}}
}

// RandomSPD RETURNS n SPD matrices R(θ)·diag(d0,d1)·R(θ)ᵀ with a spectral gap ≥ 0.5.
func RandomSPD(n int, seed int64) []mat2.Matrix2 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]mat2.Matrix2, n)
	for i := range out {
		r := rotation(rng.Float64() * 2 * math.Pi)
		d1 := 0.5 + rng.Float64()*2.5
		d0 := d1 + 0.5 + rng.Float64()*2.5
		out[i] = mat2.Reduce(r, mat2.Diag(d0, d1), mat2.Transpose(r))
	}

	return out
}

// RandomDiagonalizable RETURNS n matrices P·diag(λ0,λ1)·P⁻¹ with non-zero,
// well separated real eigenvalues and a well conditioned P.
func RandomDiagonalizable(n int, seed int64) []mat2.Matrix2 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]mat2.Matrix2, 0, n)
	for len(out) < n {
		t0 := rng.Float64() * math.Pi
		t1 := t0 + math.Pi/6 + rng.Float64()*2*math.Pi/3 // angle between columns in [30°, 150°]
		p := mat2.FromColumns(
			mat2.Vector2{math.Cos(t0), math.Sin(t0)},
			mat2.Vector2{math.Cos(t1), math.Sin(t1)},
		)
		l0 := rng.Float64()*6 - 3
		l1 := rng.Float64()*6 - 3
		if math.Abs(l0-l1) < 0.5 || math.Abs(l0) < 0.2 || math.Abs(l1) < 0.2 {
			continue
		}
		out = append(out, mat2.Reduce(p, mat2.Diag(l0, l1), mat2.Inverse(p)))
	}

	return out
}

// RandomInvertible RETURNS n uniform matrices with |det| ≥ 0.1.
func RandomInvertible(n int, seed int64) []mat2.Matrix2 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]mat2.Matrix2, 0, n)
	for len(out) < n {
		m := mat2.Matrix2{
			{rng.Float64()*8 - 4, rng.Float64()*8 - 4},
			{rng.Float64()*8 - 4, rng.Float64()*8 - 4},
		}
		if math.Abs(mat2.Det(m)) < 0.1 {
			continue
		}
		out = append(out, m)
	}

	return out
}
