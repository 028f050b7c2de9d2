package simulation

import (
	"math"
	"time"

	"github.com/aquilax/go-perlin"
)

// Gust noise parameters
const (
	gustAlpha = 2.0
	gustBeta  = 2.0
	gustN     = 3
	gustRate  = 0.35 // Noise units per second
	gustGain  = 1.6  // Raw noise rarely leaves [-0.7, 0.7]
)

// GustDriver turns smooth 1D Perlin noise over time into a wind direction.
type GustDriver struct {
	noise *perlin.Perlin
	start time.Time
}

// NewGustDriver creates a gust driver with its own noise seed
func NewGustDriver(seed int64, start time.Time) *GustDriver {
	return &GustDriver{
		noise: perlin.NewPerlin(gustAlpha, gustBeta, gustN, seed),
		start: start,
	}
}

// Direction returns the wind direction at now, always in [-1, 1].
func (g *GustDriver) Direction(now time.Time) float64 {
	t := now.Sub(g.start).Seconds() * gustRate
	d := g.noise.Noise1D(t) * gustGain
	if math.IsNaN(d) {
		return 0
	}
	return math.Max(-1, math.Min(1, d))
}
