package physics

import (
	"math"
	"math/rand"
)

// Force constants, in canvas units per tick
const (
	GroupingStrength   = 0.001
	AttractionStrength = 0.05
	AttractionDeadZone = 20.0 // No pull closer than this to the center
	RepulsionStrength  = 0.1
	RepulsionRadius    = 150.0
	WindStrength       = 0.02
	TwirlStrength      = 0.05
	BlackHoleRadius    = 50.0
	AbsorbSpeed        = 2.0 // Respawned particles get velocity in [-AbsorbSpeed, AbsorbSpeed]
	Gravity            = 0.1
	CursorRadius       = 100.0
	CursorStrength     = 0.01
	CollisionStrength  = 0.05
)

// Toggles holds the on/off switch of every optional force rule.
type Toggles struct {
	Grouping   bool
	Attraction bool
	Repulsion  bool
	Wind       bool
	Twirl      bool
	BlackHole  bool
	Gravity    bool
	Collision  bool
}

// Env is the per-tick input shared by every force rule.
type Env struct {
	Toggles
	Center        Vec2    // Canvas center
	GroupCenter   Vec2    // Target of the grouping rule
	WindDirection float64 // In [-1, 1]
	Pointer       Vec2
	HasPointer    bool
	Rand          *rand.Rand
}

// ApplyForces runs rules 1 to 7 on p in their fixed order.
// Later rules see the velocity changes of earlier ones.
// It reports whether the twirl rule already advanced the position,
// in which case the integrator must not advance it again this tick.
func ApplyForces(p *Particle, env *Env) (moved bool) {
	if env.Grouping {
		p.VX += (env.GroupCenter.X - p.X) * GroupingStrength
		p.VY += (env.GroupCenter.Y - p.Y) * GroupingStrength
	}

	if env.Attraction {
		d := env.Center.Sub(p.Pos())
		if dist := d.Len(); dist > AttractionDeadZone {
			pull := d.Mul(AttractionStrength / dist)
			p.VX += pull.X
			p.VY += pull.Y
		}
	}

	if env.Repulsion {
		d := env.Center.Sub(p.Pos())
		// Zero distance has no direction: no push.
		if dist := d.Len(); dist > 0 && dist < RepulsionRadius {
			push := d.Mul(RepulsionStrength / dist)
			p.VX -= push.X
			p.VY -= push.Y
		}
	}

	if env.Wind {
		p.VX += env.WindDirection * WindStrength
	}

	if env.Twirl {
		moved = twirl(p, env)
	}

	if env.Gravity {
		p.VY += Gravity
	}

	if env.HasPointer {
		d := env.Pointer.Sub(p.Pos())
		if d.Len() < CursorRadius {
			p.VX += d.X * CursorStrength
			p.VY += d.Y * CursorStrength
		}
	}

	return moved
}

// twirl spins p around the center and integrates its position itself.
// Inside the black hole the particle is absorbed instead: it respawns at the
// center with a fresh random velocity and stays there for the rest of the tick.
func twirl(p *Particle, env *Env) bool {
	dx := env.Center.X - p.X
	dy := env.Center.Y - p.Y
	dist := math.Hypot(dx, dy)

	if env.BlackHole && dist < BlackHoleRadius {
		p.X = env.Center.X
		p.Y = env.Center.Y
		p.VX = sampleSym(env.Rand, AbsorbSpeed)
		p.VY = sampleSym(env.Rand, AbsorbSpeed)
		return true
	}

	angle := math.Atan2(dy, dx)
	p.VX += math.Cos(angle) * TwirlStrength
	p.VY += math.Sin(angle) * TwirlStrength
	p.X += p.VX
	p.Y += p.VY
	return true
}

// sampleSym returns a uniform value in [-span, span].
func sampleSym(rng *rand.Rand, span float64) float64 {
	if span <= 0 {
		return 0
	}
	v := rng.Float64()*2*span - span
	return math.Max(-span, math.Min(span, v))
}
