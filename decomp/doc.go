// Package decomp factors a 2×2 matrix into the pieces an animation needs:
// eigenbasis (V·L·V⁻¹), per-axis eigen factors, singular values (U·S·Vᵀ)
// and an orthogonal Schur form (Q·T·Qᵀ).
//
// Conventions:
//
//	EigenDecomposition     A ≈ V · L · Vinv        columns of V are eigenvectors
//	EigenAxisDecomposition A ≈ A1 · A2             A1 stretches along v0 only, A2 along v1 only
//	SVD                    A ≈ U · S · Vt          third result is Vᵀ, rows are right singular vectors
//	Schur                  A = Q · T · Qt          Q orthonormal, T upper-triangular for real spectra
//
// Every function is built on eigen.Eigen and inherits its NaN behaviour:
// complex eigenvalues or a singular eigenbasis yield NaN/Inf factors rather
// than errors. Check results with mat2.IsFinite.
package decomp
