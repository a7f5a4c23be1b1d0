// SPDX-License-Identifier: MIT

package animate

import (
	"github.com/katalvlaran/linmorph/interp"
	"github.com/katalvlaran/linmorph/mat2"
)

// Frame is one sample of a morph.
type Frame struct {
	Index int          // position in the sequence, 0-based
	T     float64      // time actually passed to the interpolator
	M     mat2.Matrix2 // interpolated matrix
}

// Frames samples the morph from the identity to a.
// Implementation:
//   - Stage 1: resolve options (defaults: 60 frames, Angle, eased, clamped).
//   - Stage 2: for i = 0..n-1, raw = i/(n-1); t = Clamp(Ease(raw)) as configured.
//   - Stage 3: M = fn(a, t); a panic inside fn yields mat2.NaN() for that frame.
//
// Errors:
//   - ErrTooFewFrames    when n < 2.
//   - ErrNilInterpolator when WithInterpolator(nil) was applied.
//
// Determinism:
//   - Frames are computed sequentially in index order.
//
// Complexity:
//   - Time O(n), Space O(n).
func Frames(a mat2.Matrix2, opts ...Option) ([]Frame, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, animateErrorf(opFrames, err)
	}

	out := make([]Frame, o.frames)
	last := float64(o.frames - 1)
	for i := range out {
		t := float64(i) / last
		if o.easing {
			t = mat2.Ease(t)
		}
		if o.clamp {
			t = mat2.Clamp(t)
		}
		out[i] = Frame{Index: i, T: t, M: apply(o.fn, a, t)}
	}

	return out, nil
}

// apply calls fn and converts a panic into the NaN sentinel.
func apply(fn interp.Func, a mat2.Matrix2, t float64) (m mat2.Matrix2) {
	defer func() {
		if r := recover(); r != nil {
			m = mat2.NaN()
		}
	}()

	return fn(a, t)
}

// Trajectory returns the image of p under every frame, in frame order.
// Frames with non-finite matrices map p to NaN.
func Trajectory(frames []Frame, p mat2.Vector2) []mat2.Vector2 {
	out := make([]mat2.Vector2, len(frames))
	for i, f := range frames {
		out[i] = mat2.Transform(f.M, p)
	}

	return out
}
