// SPDX-License-Identifier: MIT

package mat2

import "math"

// Dot returns a·b.
func Dot(a, b Vector2) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Norm returns the Euclidean length of v.
func Norm(v Vector2) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1])
}

// ScaleVec returns s·v.
func ScaleVec(v Vector2, s float64) Vector2 {
	return Vector2{v[0] * s, v[1] * s}
}

// SubVec returns a - b.
func SubVec(a, b Vector2) Vector2 {
	return Vector2{a[0] - b[0], a[1] - b[1]}
}

// Normalize divides v by its Euclidean norm.
// The zero vector yields NaN components (0/0); this is the documented
// sentinel, not a failure.
func Normalize(v Vector2) Vector2 {
	n := Norm(v)

	return Vector2{v[0] / n, v[1] / n}
}

// Dist returns the Euclidean distance between p0 and p1.
func Dist(p0, p1 Vector2) float64 {
	return Norm(SubVec(p0, p1))
}

// IsFinite reports whether both components are neither NaN nor ±Inf.
func (v Vector2) IsFinite() bool {
	return isFinite(v[0]) && isFinite(v[1])
}
