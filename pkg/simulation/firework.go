package simulation

import (
	"math"
	"time"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/physics"
)

// Firework timings
const (
	LaunchStagger     = 100 * time.Millisecond
	BigPollInterval   = 30 * time.Millisecond
	FireworkFinale    = 500 * time.Millisecond // Pause between the last launch and the rocket
	sideLeftFraction  = 0.3
	sideRightFraction = 0.7
)

// CollectAtBottom parks every particle on the emission point with no velocity.
func (s *State) CollectAtBottom() {
	e := s.EmissionPoint()
	for _, p := range s.particles {
		p.X, p.Y = e.X, e.Y
		p.VX, p.VY = 0, 0
	}
}

func (s *State) launch(p *physics.Particle) {
	p.VX = LaunchVelocityX.sample(s.rng)
	p.VY = LaunchVelocityY.sample(s.rng)
	p.Color = s.randomHue()
}

// LaunchUpward throws every particle upward with a random color.
//
// With allAtOnce false, particle i is launched i*LaunchStagger from now by a
// scheduled task. A particle removed before its task fires is skipped.
func (s *State) LaunchUpward(allAtOnce bool) []*Task {
	ps := s.particles
	if len(ps) == 0 {
		return nil
	}
	if allAtOnce {
		for _, p := range ps {
			s.launch(p)
		}
		s.observer.Launched(len(ps))
		return nil
	}

	tasks := make([]*Task, len(ps))
	for i, p := range ps {
		tasks[i] = s.track(s.sched.After("launch", time.Duration(i)*LaunchStagger, s.launchLater(p)))
	}
	return tasks
}

// launchLater binds p to a deferred launch. A particle removed meanwhile is
// skipped.
func (s *State) launchLater(p *physics.Particle) func() {
	return func() {
		if !p.Alive() {
			return
		}
		s.launch(p)
		s.observer.Launched(1)
	}
}

// SpawnRisingBigParticle sends an oversized rocket up from the emission point.
//
// A poll every BigPollInterval watches it; once it reaches the vertical
// midpoint, or stops rising before getting there, it is replaced by a burst
// of BurstSize particles and the poll ends. If the rocket is removed first
// the poll ends without exploding.
func (s *State) SpawnRisingBigParticle() (*physics.Particle, *Task) {
	e := s.EmissionPoint()
	big := &physics.Particle{
		X:      e.X,
		Y:      e.Y,
		VY:     -BigSpeed,
		Radius: BigRadius,
		Color:  s.randomHue(),
	}
	s.appendParticles(big)
	s.observer.Launched(1)

	task := s.track(s.sched.Every("big-particle", BigPollInterval, func() bool {
		if !big.Alive() {
			return true
		}
		if big.Y <= s.Height/2 || big.VY >= 0 {
			s.explode(big)
			return true
		}
		return false
	}))
	return big, task
}

// explode replaces p by a burst at its position in a single collection swap.
func (s *State) explode(p *physics.Particle) {
	burst := make([]*physics.Particle, BurstSize)
	for i := range burst {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := BurstSpeed.sample(s.rng)
		burst[i] = &physics.Particle{
			X:      p.X,
			Y:      p.Y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Radius: RadiusRange.sample(s.rng),
			Color:  s.randomHue(),
		}
	}

	next := make([]*physics.Particle, 0, len(s.particles)+len(burst))
	for _, q := range s.particles {
		if q != p {
			next = append(next, q)
		}
	}
	next = append(next, burst...)
	p.Remove()
	s.replace(next)

	s.log.Debugw("explode", "x", p.X, "y", p.Y, "count", len(burst))
	s.observer.Exploded(p.X, p.Y, len(burst))
}

// LaunchSideBursts fires SideBurstSize particles upward from two emission
// points at 30% and 70% of the width, alternating between them.
func (s *State) LaunchSideBursts() {
	y := math.Max(0, s.Height-PipeOffset)
	left := s.Width * sideLeftFraction
	right := s.Width * sideRightFraction

	burst := make([]*physics.Particle, SideBurstSize)
	for i := range burst {
		x := left
		if i%2 == 1 {
			x = right
		}
		burst[i] = &physics.Particle{
			X:      x,
			Y:      y,
			VX:     SideVelocityX.sample(s.rng),
			VY:     SideVelocityY.sample(s.rng),
			Radius: RadiusRange.sample(s.rng),
			Color:  s.randomHue(),
		}
	}
	s.appendParticles(burst...)
	s.observer.Launched(len(burst))
}

// Firework runs the full sequence: collect, staggered launch, then a rocket
// once the last particle is on its way. Clear cancels whatever part of the
// sequence is still pending.
func (s *State) Firework() *Task {
	s.CollectAtBottom()
	s.LaunchUpward(false)
	delay := time.Duration(len(s.particles))*LaunchStagger + FireworkFinale
	return s.track(s.sched.After("finale", delay, func() {
		s.SpawnRisingBigParticle()
	}))
}
