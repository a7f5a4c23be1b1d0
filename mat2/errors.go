// SPDX-License-Identifier: MIT
// Package mat2: sentinel error set.
// Numeric kernels in this package never return errors; these sentinels are
// used only by the checked variants (InverseChecked, FromDense) and by the
// packages layered on top of mat2. Match them with errors.Is.

package mat2

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when det(A) == 0 and an inverse was requested.
	ErrSingular = errors.New("mat2: singular matrix")

	// ErrNonFinite signals a NaN or ±Inf entry where finite values are required.
	ErrNonFinite = errors.New("mat2: NaN or Inf encountered")

	// ErrBadShape is returned when a foreign matrix is not exactly 2×2.
	ErrBadShape = errors.New("mat2: matrix is not 2x2")
)

// Operation tags for error wrapping.
const (
	opInverse   = "Inverse"
	opFromDense = "FromDense"
)

// mat2Errorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func mat2Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
