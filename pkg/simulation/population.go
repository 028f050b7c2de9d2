package simulation

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/physics"
)

// Range is a closed interval sampled uniformly. A range with Max <= Min is
// degenerate and always yields Min.
type Range struct {
	Min, Max float64
}

func (r Range) sample(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	v := r.Min + rng.Float64()*(r.Max-r.Min)
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Origin selects where spawned particles appear.
type Origin int

const (
	// OriginScatter spreads particles uniformly over the canvas.
	OriginScatter Origin = iota
	// OriginPipe emits every particle from the bottom-center emission point.
	OriginPipe
)

func (o Origin) String() string {
	if o == OriginPipe {
		return "pipe"
	}
	return "scatter"
}

// Population defaults
const (
	DefaultPopulation = 150
	PipeOffset        = 10.0 // Emission point height above the floor
	BurstSize         = 50
	SideBurstSize     = 50
	BigRadius         = 12.0
	BigSpeed          = 6.0
)

// Randomized ranges, in canvas units per tick
var (
	RadiusRange     = Range{3, 8}
	ScatterVelocity = Range{-2, 2}
	PipeVelocityX   = Range{-1, 1}
	PipeVelocityY   = Range{-3, -1}
	LaunchVelocityX = Range{-1.5, 1.5}
	LaunchVelocityY = Range{-14, -8}
	SideVelocityX   = Range{-1, 1}
	SideVelocityY   = Range{-12, -7}
	BurstSpeed      = Range{1, 5}
	ReleaseVelocity = Range{-3, 3}
)

var white = color.RGBA{255, 255, 255, 255}

// EmissionPoint returns the fixed pipe emission point at the bottom center.
func (s *State) EmissionPoint() physics.Vec2 {
	return physics.Vec2{X: s.Width / 2, Y: math.Max(0, s.Height-PipeOffset)}
}

// randomHue returns a fully saturated color of random hue.
func (s *State) randomHue() color.RGBA {
	r, g, b := colorful.Hsl(s.rng.Float64()*360, 1, 0.5).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// spawnColor is white unless RGB mode is on.
func (s *State) spawnColor() color.RGBA {
	if s.Flags.RGB {
		return s.randomHue()
	}
	return white
}

func (s *State) newParticle(origin Origin) *physics.Particle {
	p := &physics.Particle{
		Radius: RadiusRange.sample(s.rng),
		Color:  s.spawnColor(),
	}
	switch origin {
	case OriginPipe:
		e := s.EmissionPoint()
		p.X, p.Y = e.X, e.Y
		p.VX = PipeVelocityX.sample(s.rng)
		p.VY = PipeVelocityY.sample(s.rng)
	default:
		p.X = s.rng.Float64() * s.Width
		p.Y = s.rng.Float64() * s.Height
		p.VX = ScatterVelocity.sample(s.rng)
		p.VY = ScatterVelocity.sample(s.rng)
	}
	return p
}

// replace swaps in a new collection. Callers always pass a freshly built
// slice so earlier snapshots stay intact.
func (s *State) replace(next []*physics.Particle) {
	s.particles = next
}

// appendParticles swaps in a new collection holding the current particles
// followed by extra.
func (s *State) appendParticles(extra ...*physics.Particle) {
	next := make([]*physics.Particle, 0, len(s.particles)+len(extra))
	next = append(next, s.particles...)
	next = append(next, extra...)
	s.replace(next)
}

// Spawn appends n particles at origin. Non-positive n is a no-op.
func (s *State) Spawn(n int, origin Origin) {
	if n <= 0 {
		return
	}
	extra := make([]*physics.Particle, n)
	for i := range extra {
		extra[i] = s.newParticle(origin)
	}
	s.appendParticles(extra...)
	s.log.Debugw("spawn", "count", n, "origin", origin, "total", len(s.particles))
}

// RemoveOne drops the most recently added particle. Empty is a no-op.
func (s *State) RemoveOne() {
	n := len(s.particles)
	if n == 0 {
		return
	}
	s.particles[n-1].Remove()
	next := make([]*physics.Particle, n-1)
	copy(next, s.particles[:n-1])
	s.replace(next)
}

// Clear removes every particle and cancels pending population work, so a
// scheduled launch or finale cannot refill the canvas.
func (s *State) Clear() {
	s.cancelSequence()
	for _, p := range s.particles {
		p.Remove()
	}
	s.replace(nil)
	s.log.Debugw("clear")
}

// Reset replaces the population with Population scattered particles.
func (s *State) Reset() {
	s.Clear()
	s.Spawn(s.Population, OriginScatter)
}

// recolor paints every particle with a random hue.
func (s *State) recolor() {
	for _, p := range s.particles {
		p.Color = s.randomHue()
	}
}
