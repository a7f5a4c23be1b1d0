// Package animate turns a target matrix into a sequence of frames that morph
// the identity into it, and draws a frame onto a raster image.
//
// ⚙️ Usage:
//
//	frames, err := animate.Frames(a,
//		animate.WithFrames(120),
//		animate.WithStrategy(interp.StrategyEigen),
//	)
//	for _, f := range frames {
//		if !mat2.IsFinite(f.M) {
//			continue // complex spectrum under the eigen strategy
//		}
//		_ = animate.Render(canvas, sprite, f.M)
//	}
//
// Frame i of n samples t = i/(n-1), passed through mat2.Ease and mat2.Clamp
// unless disabled. An interpolator that panics produces a NaN frame instead
// of aborting the sequence.
package animate
