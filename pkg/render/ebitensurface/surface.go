// Package ebitensurface draws simulation frames onto an ebiten image.
package ebitensurface

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GradientSteps is the number of rings approximating a radial gradient.
const GradientSteps = 16

// Surface adapts an *ebiten.Image to simulation.Surface.
type Surface struct {
	dst *ebiten.Image
}

// New creates a surface drawing onto dst
func New(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

// Reset points the surface at a new target, typically each Draw call's screen.
func (s *Surface) Reset(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), clr, true)
}

// FillRadialGradient stacks GradientSteps translucent discs, largest first.
// A point at distance d from the center is covered by the rings larger than
// d, so opacity and color ramp from outer at the rim to inner at the center.
func (s *Surface) FillRadialGradient(cx, cy, r float64, inner, outer color.Color) {
	for i, c := range GradientRings(inner, outer, GradientSteps) {
		rr := r * float64(GradientSteps-i) / GradientSteps
		vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(rr), c, true)
	}
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// GradientRings returns the ring colors for FillRadialGradient, outermost
// first. Ring alphas are chosen so the stack at the center composes to the
// alpha of inner.
func GradientRings(inner, outer color.Color, steps int) []color.NRGBA {
	if steps <= 0 {
		return nil
	}
	in := color.NRGBAModel.Convert(inner).(color.NRGBA)
	out := color.NRGBAModel.Convert(outer).(color.NRGBA)

	// 1-(1-a)^steps == in.A
	target := float64(in.A) / 255
	ringAlpha := 1 - math.Pow(1-target, 1/float64(steps))

	rings := make([]color.NRGBA, steps)
	for i := range rings {
		t := float64(i+1) / float64(steps) // 0 at the rim, 1 at the center
		rings[i] = color.NRGBA{
			R: lerp8(out.R, in.R, t),
			G: lerp8(out.G, in.G, t),
			B: lerp8(out.B, in.B, t),
			A: uint8(math.Round(ringAlpha * 255)),
		}
	}
	return rings
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
