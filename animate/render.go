// SPDX-License-Identifier: MIT

package animate

import (
	"image"
	"reflect"

	"github.com/katalvlaran/linmorph/mat2"
	"golang.org/x/image/draw"
)

// RenderOption configures Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	kernel draw.Interpolator
	op     draw.Op
	yUp    bool
}

// WithKernel overrides the resampling kernel (default draw.BiLinear).
func WithKernel(k draw.Interpolator) RenderOption {
	return func(o *renderOptions) { o.kernel = k }
}

// WithOp overrides the compositing operator (default draw.Over).
func WithOp(op draw.Op) RenderOption {
	return func(o *renderOptions) { o.op = op }
}

// WithScreenCoordinates interprets m in image coordinates (y grows
// downwards) instead of the default mathematical y-up convention.
func WithScreenCoordinates() RenderOption {
	return func(o *renderOptions) { o.yUp = false }
}

// Render draws src onto dst transformed by m, mapping the centre of src's
// bounds to the centre of dst's bounds.
// Implementation:
//   - Stage 1: reject nil images, non-finite m and singular m (the resampler
//     needs the inverse).
//   - Stage 2: under y-up, conjugate m by diag(1,-1) so a counter-clockwise
//     rotation looks counter-clockwise on screen.
//   - Stage 3: translation = dstCentre - m·srcCentre; delegate to the kernel.
//
// Errors:
//   - ErrNilImage for a nil dst or src, including a typed nil pointer such
//     as (*image.RGBA)(nil) held in the interface.
//   - mat2.ErrNonFinite, mat2.ErrSingular.
func Render(dst draw.Image, src image.Image, m mat2.Matrix2, opts ...RenderOption) error {
	if isNil(dst) || isNil(src) {
		return animateErrorf(opRender, ErrNilImage)
	}
	if !mat2.IsFinite(m) {
		return animateErrorf(opRender, mat2.ErrNonFinite)
	}
	if mat2.Det(m) == 0 {
		return animateErrorf(opRender, mat2.ErrSingular)
	}

	o := renderOptions{kernel: draw.BiLinear, op: draw.Over, yUp: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.yUp {
		flip := mat2.Diag(1, -1)
		m = mat2.Reduce(flip, m, flip)
	}

	sc := centre(src.Bounds())
	dc := centre(dst.Bounds())
	tr := mat2.SubVec(dc, mat2.Transform(m, sc))
	o.kernel.Transform(dst, mat2.Aff3(m, tr[0], tr[1]), src, src.Bounds(), o.op, nil)

	return nil
}

// isNil reports whether v is nil or a nil pointer inside a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func centre(r image.Rectangle) mat2.Vector2 {
	return mat2.Vector2{
		float64(r.Min.X+r.Max.X) / 2,
		float64(r.Min.Y+r.Max.Y) / 2,
	}
}
