// SPDX-License-Identifier: MIT
// Package mat2: conversions to and from foreign representations.
//
// Purpose:
//   - gonum interop for callers that already hold *mat.Dense values, and for
//     human-readable formatting via mat.Formatted.
//   - Affine export for raster renderers (golang.org/x/image/draw takes an
//     f64.Aff3 source-to-destination transform).

package mat2

import (
	"fmt"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies m into a freshly allocated 2×2 *mat.Dense.
func ToDense(m Matrix2) *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		m[0][0], m[0][1],
		m[1][0], m[1][1],
	})
}

// FromDense copies a 2×2 gonum matrix into a Matrix2.
//
// Errors:
//   - ErrBadShape when a is not exactly 2×2.
func FromDense(a mat.Matrix) (Matrix2, error) {
	r, c := a.Dims()
	if r != 2 || c != 2 {
		return Matrix2{}, mat2Errorf(opFromDense, fmt.Errorf("%dx%d: %w", r, c, ErrBadShape))
	}

	return Matrix2{
		{a.At(0, 0), a.At(0, 1)},
		{a.At(1, 0), a.At(1, 1)},
	}, nil
}

// String renders m with gonum's bracketed matrix formatter.
func (m Matrix2) String() string {
	return fmt.Sprintf("%v", mat.Formatted(ToDense(m)))
}

// Aff3 returns the affine transform [m | (tx, ty)] in the row-major layout
// used by golang.org/x/image:
//
//	x' = m00·x + m01·y + tx
//	y' = m10·x + m11·y + ty
func Aff3(m Matrix2, tx, ty float64) f64.Aff3 {
	return f64.Aff3{
		m[0][0], m[0][1], tx,
		m[1][0], m[1][1], ty,
	}
}
