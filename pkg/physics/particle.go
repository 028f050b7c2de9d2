package physics

import "image/color"

// Particle is a single simulated point with a drawable radius.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	Radius float64
	Color  color.RGBA

	removed bool
}

// Pos returns the particle position as a vector.
func (p *Particle) Pos() Vec2 {
	return Vec2{p.X, p.Y}
}

// Alive reports whether the particle is still part of a population.
// Deferred callbacks holding a particle must check it before mutating.
func (p *Particle) Alive() bool {
	return !p.removed
}

// Remove marks the particle as no longer owned by any population.
func (p *Particle) Remove() {
	p.removed = true
}
