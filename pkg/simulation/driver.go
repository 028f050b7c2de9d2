package simulation

import (
	"image/color"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/physics"
)

// trailFade is the translucent black painted over the previous frame.
var trailFade = color.NRGBA{0, 0, 0, 26}

// Driver advances and renders the simulation one frame at a time.
// The host loop (ebiten or the terminal ticker) calls it once per frame.
type Driver struct {
	State     *State
	Paused    bool
	TickCount uint64

	moved []bool
	grid  *physics.Grid
}

// NewDriver creates a driver for s
func NewDriver(s *State) *Driver {
	return &Driver{State: s, grid: physics.NewGrid()}
}

// Step runs one physics tick.
//
// Every particle first goes through the force rules in their fixed order,
// then the collision pass sees the whole population, then the integrator
// moves and bounds each particle. Deferred tasks run last, so population
// changes they make become visible from the next tick on.
func (d *Driver) Step() {
	if d.Paused {
		return
	}
	s := d.State
	now := s.clock.Now()

	if s.Flags.Gust {
		s.SetWindDirection(s.gust.Direction(now))
	}

	ps := s.particles
	if cap(d.moved) < len(ps) {
		d.moved = make([]bool, len(ps))
	}
	moved := d.moved[:len(ps)]

	env := s.env()
	for i, p := range ps {
		moved[i] = physics.ApplyForces(p, &env)
	}
	if s.Flags.Collision {
		if len(ps) > physics.GridThreshold {
			d.grid.Resolve(ps, physics.CollisionStrength)
		} else {
			physics.ResolveCollisions(ps, physics.CollisionStrength)
		}
	}
	for i, p := range ps {
		physics.Integrate(p, moved[i], s.Width, s.Height, s.Flags.Gravity)
	}

	s.sched.Run(now)
	d.TickCount++
}

// Render paints one frame: the fading overlay, the vortex when the black hole
// is active, then every particle as a filled circle.
func (d *Driver) Render(dst Surface) {
	s := d.State
	dst.FillRect(0, 0, s.Width, s.Height, trailFade)

	if s.Flags.BlackHole {
		c := s.Center()
		DrawVortex(dst, c.X, c.Y, s.clock.Now())
	}

	for _, p := range s.particles {
		dst.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}
}

// Tick steps and renders, for hosts that do both in one callback.
func (d *Driver) Tick(dst Surface) {
	d.Step()
	d.Render(dst)
}
