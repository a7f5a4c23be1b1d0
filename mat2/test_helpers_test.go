// SPDX-License-Identifier: MIT
// Package mat2_test contains test helpers.
//
// Purpose:
//   • Provide deterministic 2×2 fixtures and tolerance-based assertions.

package mat2_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linmorph/mat2"
	"github.com/stretchr/testify/require"
)

// tol is the element-wise tolerance used for reconstructed values.
const tol = 1e-9

// RequireMatrixNear FAILS the test unless got and want agree entry-wise
// within delta.
// Implementation:
//   - Stage 1: walk entries in fixed i→j order.
//   - Stage 2: require.InDelta per entry with the [i,j] position in the message.
func RequireMatrixNear(t *testing.T, want, got mat2.Matrix2, delta float64) {
	t.Helper()
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			require.InDeltaf(t, want[i][j], got[i][j], delta, "entry [%d,%d]: want\n%v\ngot\n%v", i, j, want, got)
		}
	}
}

// RequireAllNaN FAILS the test unless every entry of m is NaN.
func RequireAllNaN(t *testing.T, m mat2.Matrix2) {
	t.Helper()
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			require.Truef(t, math.IsNaN(m[i][j]), "entry [%d,%d] = %v, want NaN", i, j, m[i][j])
		}
	}
}

// RandomInvertible RETURNS n pseudo-random matrices with |det| ≥ 0.1.
// The seed makes the fixture deterministic across runs.
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
