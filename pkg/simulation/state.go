package simulation

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/physics"
)

// Flag names one boolean mode of the simulation.
type Flag int

const (
	FlagTwirl Flag = iota
	FlagBlackHole
	FlagCollision
	FlagGravity
	FlagAttraction
	FlagRepulsion
	FlagWind
	FlagGrouping
	FlagRGB
	FlagGust
)

var flagNames = [...]string{
	FlagTwirl:      "twirl",
	FlagBlackHole:  "black-hole",
	FlagCollision:  "collision",
	FlagGravity:    "gravity",
	FlagAttraction: "attraction",
	FlagRepulsion:  "repulsion",
	FlagWind:       "wind",
	FlagGrouping:   "grouping",
	FlagRGB:        "rgb",
	FlagGust:       "gust",
}

func (f Flag) String() string {
	if f < 0 || int(f) >= len(flagNames) {
		return "unknown"
	}
	return flagNames[f]
}

// Flags is the full set of mode switches.
type Flags struct {
	physics.Toggles
	RGB  bool // Random hues for new and existing particles
	Gust bool // Wind direction follows noise
}

// Observer is notified of visible population events, e.g. to play sounds.
type Observer interface {
	Launched(count int)
	Exploded(x, y float64, count int)
	BlackHole(active bool)
}

type nopObserver struct{}

func (nopObserver) Launched(int)                   {}
func (nopObserver) Exploded(float64, float64, int) {}
func (nopObserver) BlackHole(bool)                 {}

// BlackHoleDelay is how long twirl must be held before the black hole engages.
const BlackHoleDelay = 3 * time.Second

// State is the single mutable snapshot of the simulation.
//
// State is not safe for concurrent use. It is owned by the goroutine running
// the Driver; UI handlers call its methods from that same goroutine between
// ticks. Structural changes to the particle collection are copy-on-write, so a
// slice returned by Particles is never modified by later additions, removals
// or explosions.
type State struct {
	Width, Height float64
	Flags         Flags
	WindDirection float64
	GroupCenter   physics.Vec2
	Population    int // Size of the population built by Reset

	pointer    physics.Vec2
	hasPointer bool

	particles []*physics.Particle
	rng       *rand.Rand
	clock     Clock
	sched     *Scheduler
	gust      *GustDriver
	log       *zap.SugaredLogger
	observer  Observer

	blackHoleTimer *Task
	sequence       []*Task // Population work Clear discards
}

// Option configures a State
type Option func(*State)

// WithClock sets the time source, RealClock by default.
func WithClock(c Clock) Option {
	return func(s *State) { s.clock = c }
}

// WithSeed makes the random source reproducible. Seed 0 keeps the time based seed.
func WithSeed(seed int64) Option {
	return func(s *State) {
		if seed != 0 {
			s.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithPopulation sets the size of the default population.
func WithPopulation(n int) Option {
	return func(s *State) {
		if n >= 0 {
			s.Population = n
		}
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *State) { s.log = log }
}

func WithObserver(o Observer) Option {
	return func(s *State) { s.observer = o }
}

// NewState creates an empty simulation over a width x height canvas.
// Non-positive sizes are raised to 1 so bounds stay positive.
func NewState(width, height float64, opts ...Option) *State {
	s := &State{
		clock:      RealClock{},
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		log:        zap.NewNop().Sugar(),
		observer:   nopObserver{},
		Population: DefaultPopulation,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sched = NewScheduler(s.clock, s.log)
	s.gust = NewGustDriver(s.rng.Int63(), s.clock.Now())
	s.setBounds(width, height)
	return s
}

func (s *State) setBounds(width, height float64) {
	s.Width = math.Max(1, width)
	s.Height = math.Max(1, height)
	s.GroupCenter = s.Center()
}

// Resize updates the canvas bounds and rebuilds the default population.
func (s *State) Resize(width, height float64) {
	s.setBounds(width, height)
	s.log.Infow("resize", "width", s.Width, "height", s.Height)
	s.Reset()
}

// Center returns the canvas center.
func (s *State) Center() physics.Vec2 {
	return physics.Vec2{X: s.Width / 2, Y: s.Height / 2}
}

// Particles returns the current collection. The slice must not be modified.
func (s *State) Particles() []*physics.Particle {
	return s.particles
}

// Len returns the number of particles.
func (s *State) Len() int {
	return len(s.particles)
}

// Scheduler returns the scheduler that runs deferred population work.
func (s *State) Scheduler() *Scheduler {
	return s.sched
}

// SetPointer records the live cursor position used by the cursor impulse.
func (s *State) SetPointer(x, y float64) {
	s.pointer = physics.Vec2{X: x, Y: y}
	s.hasPointer = true
}

// ClearPointer forgets the cursor, e.g. when it leaves the canvas.
func (s *State) ClearPointer() {
	s.hasPointer = false
}

// Pointer returns the cursor position and whether one is known.
func (s *State) Pointer() (physics.Vec2, bool) {
	return s.pointer, s.hasPointer
}

// SetWindDirection sets the wind direction, clamped to [-1, 1].
func (s *State) SetWindDirection(d float64) {
	if math.IsNaN(d) {
		d = 0
	}
	s.WindDirection = math.Max(-1, math.Min(1, d))
}

// SetGroupCenter moves the grouping target, clamped to the canvas.
func (s *State) SetGroupCenter(x, y float64) {
	s.GroupCenter = physics.Vec2{
		X: math.Max(0, math.Min(s.Width, x)),
		Y: math.Max(0, math.Min(s.Height, y)),
	}
}

// Enabled reports whether f is on.
func (s *State) Enabled(f Flag) bool {
	switch f {
	case FlagTwirl:
		return s.Flags.Twirl
	case FlagBlackHole:
		return s.Flags.BlackHole
	case FlagCollision:
		return s.Flags.Collision
	case FlagGravity:
		return s.Flags.Gravity
	case FlagAttraction:
		return s.Flags.Attraction
	case FlagRepulsion:
		return s.Flags.Repulsion
	case FlagWind:
		return s.Flags.Wind
	case FlagGrouping:
		return s.Flags.Grouping
	case FlagRGB:
		return s.Flags.RGB
	case FlagGust:
		return s.Flags.Gust
	}
	return false
}

// SetFlag switches f on or off. The black hole can only be on while twirl
// is, so enabling it without twirl is refused and disabling twirl also
// disables the black hole.
func (s *State) SetFlag(f Flag, on bool) {
	switch f {
	case FlagTwirl:
		s.Flags.Twirl = on
		if !on {
			s.setBlackHole(false)
		}
	case FlagBlackHole:
		if on && !s.Flags.Twirl {
			s.log.Debugw("black hole refused without twirl")
			return
		}
		s.setBlackHole(on)
	case FlagCollision:
		s.Flags.Collision = on
	case FlagGravity:
		s.Flags.Gravity = on
	case FlagAttraction:
		s.Flags.Attraction = on
	case FlagRepulsion:
		s.Flags.Repulsion = on
	case FlagWind:
		s.Flags.Wind = on
	case FlagGrouping:
		s.Flags.Grouping = on
	case FlagRGB:
		s.Flags.RGB = on
		if on {
			s.recolor()
		}
	case FlagGust:
		s.Flags.Gust = on
	default:
		return
	}
	s.log.Debugw("flag", "flag", f, "on", s.Enabled(f))
}

// Toggle flips f and returns its new value.
func (s *State) Toggle(f Flag) bool {
	s.SetFlag(f, !s.Enabled(f))
	return s.Enabled(f)
}

func (s *State) setBlackHole(on bool) {
	if s.Flags.BlackHole == on {
		return
	}
	s.Flags.BlackHole = on
	s.log.Infow("black hole", "active", on)
	s.observer.BlackHole(on)
}

// track remembers t as population work, so Clear can cancel it. Finished
// tasks are dropped whenever the list is about to grow.
func (s *State) track(t *Task) *Task {
	if len(s.sequence) == cap(s.sequence) {
		live := s.sequence[:0]
		for _, old := range s.sequence {
			if old.Pending() {
				live = append(live, old)
			}
		}
		s.sequence = live
	}
	s.sequence = append(s.sequence, t)
	return t
}

// cancelSequence drops every pending launch, rocket poll and finale.
func (s *State) cancelSequence() {
	for _, t := range s.sequence {
		t.Cancel()
	}
	s.sequence = nil
}

// PressTwirl starts twirl mode and arms the black hole timer.
// The black hole engages only if twirl is still held when the timer fires.
func (s *State) PressTwirl() {
	s.SetFlag(FlagTwirl, true)
	s.blackHoleTimer.Cancel()
	s.blackHoleTimer = s.sched.After("black-hole", BlackHoleDelay, func() {
		if s.Flags.Twirl {
			s.SetFlag(FlagBlackHole, true)
		}
	})
}

// ReleaseTwirl ends twirl mode, cancels a pending black hole and flings every
// particle off with a random velocity.
func (s *State) ReleaseTwirl() {
	s.blackHoleTimer.Cancel()
	s.blackHoleTimer = nil
	s.SetFlag(FlagTwirl, false)
	for _, p := range s.particles {
		p.VX = ReleaseVelocity.sample(s.rng)
		p.VY = ReleaseVelocity.sample(s.rng)
	}
}

// env builds the force input for one tick.
func (s *State) env() physics.Env {
	return physics.Env{
		Toggles:       s.Flags.Toggles,
		Center:        s.Center(),
		GroupCenter:   s.GroupCenter,
		WindDirection: s.WindDirection,
		Pointer:       s.pointer,
		HasPointer:    s.hasPointer,
		Rand:          s.rng,
	}
}
