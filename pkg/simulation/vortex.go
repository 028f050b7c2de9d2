package simulation

import (
	"image/color"
	"math"
	"time"
)

// Vortex look
const (
	VortexGlowRadius = 80.0
	VortexRays       = 6
	VortexRayLength  = 30.0
	vortexRayWidth   = 1.0
)

var (
	vortexCore = color.NRGBA{0, 0, 0, 230}
	vortexEdge = color.NRGBA{0, 0, 0, 0}
	vortexRay  = color.NRGBA{255, 0, 150, 204}
)

// vortexAngle is the base rotation of the rays: wall clock millis mod 360, in radians.
func vortexAngle(now time.Time) float64 {
	return float64(now.UnixMilli()%360) * math.Pi / 180
}

// DrawVortex paints the decorative black hole centered at (cx, cy).
// It has no effect on the physics.
func DrawVortex(dst Surface, cx, cy float64, now time.Time) {
	dst.FillRadialGradient(cx, cy, VortexGlowRadius, vortexCore, vortexEdge)

	base := vortexAngle(now)
	step := 2 * math.Pi / VortexRays
	for i := 1; i <= VortexRays; i++ {
		a := base + float64(i)*step
		dst.StrokeLine(cx, cy, cx+math.Cos(a)*VortexRayLength, cy+math.Sin(a)*VortexRayLength, vortexRayWidth, vortexRay)
	}
}
