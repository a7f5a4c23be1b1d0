// Package linmorph is a small toolkit for animating 2×2 linear
// transformations: closed-form matrix primitives, a real eigensolver,
// decompositions and interpolation from the identity to a target matrix.
//
// 🚀 What is linmorph?
//
//	A pure-Go, allocation-free set of value types and functions:
//		• Primitives: Matrix2 / Vector2, product chains, inverse, det, trace
//		• Eigen: closed-form eigenvalues, null-space eigenvectors, spectrum kind
//		• Decompositions: V·Λ·V⁻¹, SVD (U·S·Vᵀ), real Schur (Q·T·Qᵀ)
//		• Interpolation: per-column angle, eigenvalue, plain linear
//		• Animation: eased frame sequences and raster rendering
//
// ✨ Conventions
//
//   - Matrices are row-major: m[row][col].
//   - Degenerate input never panics. Undefined results are all-NaN values,
//     and the *Checked/Solve variants report the same cases as errors.
//   - Approximate comparison goes through mat2.EqualApprox (absolute or
//     relative tolerance, default mat2.DefaultEpsilon).
//
// Under the hood, everything is organized under five subpackages:
//
//	mat2/    — Matrix2, Vector2, arithmetic, easing, gonum and x/image interop
//	eigen/   — Discriminant, Values, Eigen, Classify, Solve, null-space helpers
//	decomp/  — EigenDecomposition, EigenAxisDecomposition, SVD, Schur
//	interp/  — Angle, Eigen, Linear and the Strategy selector
//	animate/ — Frames, Trajectory, Render
//
// Quick example:
//
//	a := mat2.Matrix2{{1, 2}, {-1, 4}}
//	frames, _ := animate.Frames(a, animate.WithStrategy(interp.StrategyEigen))
//	for _, f := range frames {
//		_ = animate.Render(canvas, sprite, f.M)
//	}
//
// See examples/ for a program that writes the morph as PNG frames.
//
//	go get github.com/katalvlaran/linmorph
package linmorph
