// Package interp morphs the identity into a target 2×2 matrix as a time
// parameter t goes from 0 to 1.
//
// Strategies:
//
//	Angle  — each column of A is read as (angle, length) relative to the
//	         matching identity column; angle and length are interpolated
//	         linearly, so the basis vectors rotate and scale instead of
//	         sliding through the origin.
//	Eigen  — eigenvalues move linearly from 1 to their targets while the
//	         eigenbasis stays fixed: V·diag(λ(t))·V⁻¹. Follows the matrix's
//	         own stretch axes; NaN for complex spectra.
//	Linear — naive entry-wise (1-t)·I + t·A, kept as a reference.
//
// All functions satisfy f(A, 0) ≈ I and f(A, 1) ≈ A. t is not clamped, so
// values outside [0,1] extrapolate.
package interp
