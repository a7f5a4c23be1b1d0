// SPDX-License-Identifier: MIT
// Package mat2 provides the closed-form 2×2 kernels: product chains,
// transpose, scaling, matrix-vector product and inverse.
//
// Notes:
//   - Kernels take and return values; inputs are never mutated.
//   - No kernel validates finiteness. Degenerate results (±Inf/NaN) are the
//     documented output for singular inputs.

package mat2

// Mul returns the matrix product a·b.
func Mul(a, b Matrix2) Matrix2 {
	return Matrix2{
		{
			a[0][0]*b[0][0] + a[0][1]*b[1][0],
			a[0][0]*b[0][1] + a[0][1]*b[1][1],
		},
		{
			a[1][0]*b[0][0] + a[1][1]*b[1][0],
			a[1][0]*b[0][1] + a[1][1]*b[1][1],
		},
	}
}

// Reduce multiplies seq left to right, starting from the identity.
// Implementation:
//   - Stage 1: acc = I.
//   - Stage 2: for each m in seq order, acc = acc·m.
//
// Behavior highlights:
//   - Order matters: Reduce(A, B) == A·B, not B·A.
//   - Reduce() with no arguments returns the identity.
//
// Inputs:
//   - seq: matrices in multiplication order.
//
// Returns:
//   - Matrix2: the product seq[0]·seq[1]·…·seq[n-1].
//
// Complexity:
//   - Time O(len(seq)), Space O(1).
func Reduce(seq ...Matrix2) Matrix2 {
	acc := Identity()
	for _, m := range seq {
		acc = Mul(acc, m)
	}

	return acc
}

// Sub returns the element-wise difference a - b.
func Sub(a, b Matrix2) Matrix2 {
	return Matrix2{
		{a[0][0] - b[0][0], a[0][1] - b[0][1]},
		{a[1][0] - b[1][0], a[1][1] - b[1][1]},
	}
}

// Scale returns s·m.
func Scale(m Matrix2, s float64) Matrix2 {
	return Matrix2{
		{m[0][0] * s, m[0][1] * s},
		{m[1][0] * s, m[1][1] * s},
	}
}

// Transform applies m to v (matrix-vector product m·v).
func Transform(m Matrix2, v Vector2) Vector2 {
	return Vector2{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// Transpose swaps the off-diagonal entries.
func Transpose(m Matrix2) Matrix2 {
	return Matrix2{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// Det returns the determinant m00·m11 - m01·m10.
func Det(m Matrix2) float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Trace returns m00 + m11.
func Trace(m Matrix2) float64 {
	return m[0][0] + m[1][1]
}

// Inverse computes adj(m)/det(m) in closed form.
// Implementation:
//   - Stage 1: s = 1/det(m).
//   - Stage 2: scale the adjugate [[m11, -m01], [-m10, m00]] by s.
//
// Behavior highlights:
//   - det(m) == 0 is not an error: s becomes ±Inf and the entries become
//     ±Inf or NaN (0·Inf). Use InverseChecked to get ErrSingular instead.
//
// Complexity:
//   - Time O(1), Space O(1).
func Inverse(m Matrix2) Matrix2 {
	s := 1 / Det(m)

	return Matrix2{
		{m[1][1] * s, -m[0][1] * s},
		{-m[1][0] * s, m[0][0] * s},
	}
}

// InverseChecked returns Inverse(m) together with an error describing why the
// result is unusable.
//
// Errors:
//   - ErrSingular  when det(m) == 0 (the returned matrix is still Inverse(m)).
//   - ErrNonFinite when m or its inverse contains NaN/±Inf.
func InverseChecked(m Matrix2) (Matrix2, error) {
	if !IsFinite(m) {
		return Inverse(m), mat2Errorf(opInverse, ErrNonFinite)
	}
	if Det(m) == 0 {
		return Inverse(m), mat2Errorf(opInverse, ErrSingular)
	}
	inv := Inverse(m)
	if !IsFinite(inv) { // det underflowed to a subnormal; 1/det overflowed
		return inv, mat2Errorf(opInverse, ErrNonFinite)
	}

	return inv, nil
}
