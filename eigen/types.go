// SPDX-License-Identifier: MIT

package eigen

import "github.com/katalvlaran/linmorph/mat2"

// Eigenpair holds the two eigenvalues of a 2×2 matrix and their unit
// eigenvectors. Values[0] is the + root, Values[1] the - root; Vectors[i]
// belongs to Values[i].
type Eigenpair struct {
	Values  [2]float64
	Vectors [2]mat2.Vector2
}

// V returns the matrix whose columns are the eigenvectors.
func (p Eigenpair) V() mat2.Matrix2 {
	return mat2.FromColumns(p.Vectors[0], p.Vectors[1])
}

// L returns diag(Values[0], Values[1]).
func (p Eigenpair) L() mat2.Matrix2 {
	return mat2.Diag(p.Values[0], p.Values[1])
}

// IsFinite reports whether all values and vector components are finite.
func (p Eigenpair) IsFinite() bool {
	return mat2.Vector2(p.Values).IsFinite() &&
		p.Vectors[0].IsFinite() && p.Vectors[1].IsFinite()
}

// Kind names the eigenstructure of a 2×2 matrix.
type Kind int

const (
	// Distinct: two different real eigenvalues.
	Distinct Kind = iota
	// Repeated: one real eigenvalue of multiplicity two, A not a multiple of I.
	Repeated
	// Scalar: A = λI.
	Scalar
	// Complex: negative discriminant; Eigen yields NaN.
	Complex
	// NonFinite: A contains NaN or ±Inf.
	NonFinite
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Distinct:
		return "distinct"
	case Repeated:
		return "repeated"
	case Scalar:
		return "scalar"
	case Complex:
		return "complex"
	case NonFinite:
		return "non-finite"
	default:
		return "unknown"
	}
}
