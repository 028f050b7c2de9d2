package simulation

import "image/color"

// Surface is the drawing target of a frame. Coordinates are canvas units,
// the same space as particle positions.
type Surface interface {
	FillRect(x, y, w, h float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	// FillRadialGradient fills a disc fading from inner at the center to
	// outer at radius r.
	FillRadialGradient(cx, cy, r float64, inner, outer color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}
