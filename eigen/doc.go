// Package eigen computes eigenvalues and unit eigenvectors of a 2×2 real
// matrix in closed form.
//
// 🚀 How it works
//
//	λ± = (tr ± √disc) / 2,   disc = (a00 - a11)² + 4·a01·a10  (= tr² - 4·det)
//
//	The two forms are equal algebraically but not in floating point: for a
//	nearly repeated spectrum tr² - 4·det can round to a small negative
//	number where the form above stays ≥ 0 (always, for symmetric A), so
//	Classify may report Repeated or Distinct where a tr²-based test would
//	report Complex.
//
//	For each λ the eigenvector is read off the null space of M = A - λI.
//	The + root uses NullSpaceFirst (prefers x = 1), the - root uses
//	NullSpaceSecond (prefers y = 1). The two priority orders are mirror
//	images of each other, so the first vector tends to point along +x and
//	the second along +y. Decompositions built on top rely on this
//	orientation being stable.
//
// ⚠️ Degenerate input
//
//   - disc < 0 (rotation-like matrices): values and vectors are NaN.
//   - A = λI: every vector is an eigenvector; the branches return (1,0)
//     and (0,1).
//   - NaN/Inf input: NaN propagates.
//
// Eigen never panics or returns an error. Solve returns the same pair plus
// an errors.Is-matchable sentinel, and Classify names the case without
// computing vectors.
package eigen
