// SPDX-License-Identifier: MIT

package mat2

import "math"

// Clamp limits v to the closed interval [0, 1].
func Clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// Ease is the cosine ease-in-out curve (1 - cos(πt))/2.
// Ease(0) = 0, Ease(0.5) = 0.5, Ease(1) = 1; inputs outside [0,1] are not clamped.
func Ease(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

// Round truncates x to two decimals (floor(100·x)/100) for display.
func Round(x float64) float64 {
	return math.Floor(x*100) / 100
}
