// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("interp: unknown strategy")

// Strategy selects an interpolation function.
type Strategy int

const (
	// StrategyAngle selects Angle.
	StrategyAngle Strategy = iota
	// StrategyEigen selects Eigen.
	StrategyEigen
	// StrategyLinear selects Linear.
	StrategyLinear
)

// Func returns the interpolation function for s, or nil for an unknown value.
func (s Strategy) Func() Func {
	switch s {
	case StrategyAngle:
		return Angle
	case StrategyEigen:
		return Eigen
	case StrategyLinear:
		return Linear
	default:
		return nil
	}
}

// String returns the lower-case name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAngle:
		return "angle"
	case StrategyEigen:
		return "eigen"
	case StrategyLinear:
		return "linear"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "angle", "eigen" or "linear" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "angle":
		return StrategyAngle, nil
	case "eigen":
		return StrategyEigen, nil
	case "linear":
		return StrategyLinear, nil
	}

	return 0, fmt.Errorf("ParseStrategy %q: %w", name, ErrUnknownStrategy)
}
