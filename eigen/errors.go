// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linmorph/mat2"
)

var (
	// ErrComplex is returned by Solve when the discriminant is negative and
	// the eigenvalues are a complex-conjugate pair.
	ErrComplex = errors.New("eigen: complex eigenvalues")

	// ErrNonFinite aliases mat2.ErrNonFinite so callers can match either.
	ErrNonFinite = mat2.ErrNonFinite
)

const opSolve = "Solve"

func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
