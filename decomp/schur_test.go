package decomp_test

import (
	"testing"

	"github.com/katalvlaran/linmorph/decomp"
	"github.com/katalvlaran/linmorph/eigen"
	"github.com/katalvlaran/linmorph/mat2"
	"github.com/stretchr/testify/require"
)

// TestSchur_UpperTriangular checks the Schur invariants on diagonalizable input.
func TestSchur_UpperTriangular(t *testing.T) {
	for _, a := range RandomDiagonalizable(300, 31) {
		q, tt, qt := decomp.Schur(a)
		p := eigen.Eigen(a)

		RequireOrthonormal(t, q, 1e-12)
		require.Equal(t, mat2.Transpose(q), qt)
		require.InDelta(t, 0, tt[1][0], 1e-9)
		require.InDelta(t, p.Values[0], tt[0][0], 1e-9)
		require.InDelta(t, p.Values[1], tt[1][1], 1e-9)
		RequireMatrixNear(t, a, mat2.Reduce(q, tt, qt), 1e-9)
	}
}

// TestSchur_FirstEigenvectorAlongY covers the (1,0) fallback.
func TestSchur_FirstEigenvectorAlongY(t *testing.T) {
	q, tt, _ := decomp.Schur(mat2.Diag(2, 3))

	RequireMatrixNear(t, mat2.Matrix2{{0, 1}, {1, 0}}, q, 0)
	RequireMatrixNear(t, mat2.Diag(3, 2), tt, 0)
}

// TestSchur_Defective covers a Jordan block, which is already triangular.
func TestSchur_Defective(t *testing.T) {
	a := mat2.Matrix2{{2, 1}, {0, 2}}
	q, tt, qt := decomp.Schur(a)

	RequireOrthonormal(t, q, 0)
	RequireMatrixNear(t, a, tt, 0)
	RequireMatrixNear(t, a, mat2.Reduce(q, tt, qt), 0)
}

func TestSchur_RotationIsNaN(t *testing.T) {
	q, tt, qt := decomp.Schur(mat2.Matrix2{{0, -1}, {1, 0}})
	require.False(t, mat2.IsFinite(q))
	require.False(t, mat2.IsFinite(tt))
	require.False(t, mat2.IsFinite(qt))
}
