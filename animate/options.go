// SPDX-License-Identifier: MIT

// Package animate: functional configuration for frame sampling.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no randomness.
//   - Invalid counts or nil functions are reported as errors by Frames;
//     only an out-of-range Strategy enum panics (programmer error).
package animate

import (
	"fmt"

	"github.com/katalvlaran/linmorph/interp"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFrames is the number of frames sampled from t=0 to t=1 inclusive.
	DefaultFrames = 60

	// DefaultStrategy is the interpolation used when none is configured.
	DefaultStrategy = interp.StrategyAngle

	// DefaultEasing applies mat2.Ease to the sampled time.
	DefaultEasing = true

	// DefaultClamp clamps the (possibly eased) time into [0,1].
	DefaultClamp = true
)

const panicStrategyInvalid = "animate: WithStrategy: unknown strategy"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Options apply in order; later ones win.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	frames int
	fn     interp.Func
	easing bool
	clamp  bool
}

// ---------- Constructors (WithX) ----------

// WithFrames sets the number of frames. Frames returns ErrTooFewFrames for n < 2.
func WithFrames(n int) Option {
	return func(o *Options) { o.frames = n }
}

// WithStrategy selects one of the built-in interpolation strategies.
// Panics with a stable message on an unknown Strategy value.
func WithStrategy(s interp.Strategy) Option {
	fn := s.Func()
	if fn == nil {
		panic(fmt.Sprintf("%s: %v", panicStrategyInvalid, s))
	}

	return func(o *Options) { o.fn = fn }
}

// WithInterpolator installs a custom interpolation function. A nil f makes
// Frames return ErrNilInterpolator. If f panics for some t, that frame's
// matrix is all NaN.
func WithInterpolator(f interp.Func) Option {
	return func(o *Options) { o.fn = f }
}

// WithEasing toggles the cosine ease-in-out of the sampled time.
func WithEasing(on bool) Option {
	return func(o *Options) { o.easing = on }
}

// WithClamp toggles clamping of the sampled time into [0,1].
func WithClamp(on bool) Option {
	return func(o *Options) { o.clamp = on }
}

// ---------- Resolution ----------

func defaultOptions() Options {
	return Options{
		frames: DefaultFrames,
		fn:     DefaultStrategy.Func(),
		easing: DefaultEasing,
		clamp:  DefaultClamp,
	}
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.frames < 2 {
		return o, fmt.Errorf("%d frames: %w", o.frames, ErrTooFewFrames)
	}
	if o.fn == nil {
		return o, ErrNilInterpolator
	}

	return o, nil
}
