// SPDX-License-Identifier: MIT

// Package mat2: value types.
// Matrix2 and Vector2 are plain arrays so they copy by value, compare with ==
// and never need a constructor. Every operation returns a fresh value.
package mat2

import "math"

// Matrix2 is a 2×2 matrix of float64 in row-major order, indexed [row][col].
// No symmetry or invertibility is enforced.
type Matrix2 [2][2]float64

// Vector2 is an ordered pair (x, y).
type Vector2 [2]float64

// Identity returns the 2×2 identity matrix.
func Identity() Matrix2 {
	return Matrix2{{1, 0}, {0, 1}}
}

// Diag returns the diagonal matrix diag(a, b).
func Diag(a, b float64) Matrix2 {
	return Matrix2{{a, 0}, {0, b}}
}

// FromColumns builds the matrix whose columns are c0 and c1.
func FromColumns(c0, c1 Vector2) Matrix2 {
	return Matrix2{
		{c0[0], c1[0]},
		{c0[1], c1[1]},
	}
}

// FromRows builds the matrix whose rows are r0 and r1.
func FromRows(r0, r1 Vector2) Matrix2 {
	return Matrix2{r0, r1}
}

// NaN returns the all-NaN matrix used as the degenerate sentinel.
func NaN() Matrix2 {
	n := math.NaN()
	return Matrix2{{n, n}, {n, n}}
}

// NaNVector returns the all-NaN vector.
func NaNVector() Vector2 {
	n := math.NaN()
	return Vector2{n, n}
}

// Col returns column j (0 or 1).
func (m Matrix2) Col(j int) Vector2 {
	return Vector2{m[0][j], m[1][j]}
}

// Row returns row i (0 or 1).
func (m Matrix2) Row(i int) Vector2 {
	return Vector2(m[i])
}

// X returns the first component.
func (v Vector2) X() float64 { return v[0] }

// Y returns the second component.
func (v Vector2) Y() float64 { return v[1] }
