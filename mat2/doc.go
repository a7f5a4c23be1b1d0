// Package mat2 provides the 2×2 value types and arithmetic primitives that the
// rest of linmorph is built on.
//
// The mat2 package provides:
//
//   - Matrix2 and Vector2: fixed-size, row-major value types (no allocation,
//     no shape checks, no aliasing).
//   - Closed-form primitives: Reduce, Mul, Transform, Transpose, Inverse,
//     Det, Trace, Normalize, Dist.
//   - Scalar helpers for animation time: Clamp, Ease, Round.
//   - Interop with gonum (ToDense, FromDense, String) and with raster
//     renderers (Aff3).
//
// Numeric policy:
//
//	Degenerate inputs never panic. A singular Inverse yields ±Inf/NaN
//	entries and Normalize of the zero vector yields NaN components; callers
//	detect them with IsFinite. InverseChecked and FromDense are the only
//	functions that return errors.
//
// All functions are pure and safe for concurrent use.
package mat2
