// SPDX-License-Identifier: MIT

package animate

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewFrames is returned when fewer than two frames are requested.
	ErrTooFewFrames = errors.New("animate: at least two frames are required")

	// ErrNilInterpolator is returned when WithInterpolator received nil.
	ErrNilInterpolator = errors.New("animate: nil interpolator")

	// ErrNilImage is returned by Render when dst or src is nil.
	ErrNilImage = errors.New("animate: nil image")
)

const (
	opFrames = "Frames"
	opRender = "Render"
)

func animateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
