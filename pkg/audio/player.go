// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Cue tuning
const (
	LaunchFreq     = 660.0
	LaunchDuration = 60 * time.Millisecond
	BurstDuration  = 350 * time.Millisecond
	HumFreq        = 55.0
	maxBurstVolume = 0.0
	minBurstVolume = -2.0
)

// Player mixes event cues into a single speaker stream. A Player that failed
// to open the speaker stays silent; every method is then a no-op.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	hum     *beep.Ctrl
	enabled bool
	seed    int64
	log     *zap.SugaredLogger
}

// New opens the speaker. Failure is logged and yields a silent player, the
// simulation runs fine without sound.
func New(log *zap.SugaredLogger) *Player {
	p := newPlayer(log)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warnw("audio disabled", "err", err)
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	log.Debugw("audio ready", "rate", int(sampleRate))
	return p
}

func newPlayer(log *zap.SugaredLogger) *Player {
	return &Player{
		mixer: &beep.Mixer{},
		seed:  time.Now().UnixNano(),
		log:   log,
	}
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Launched plays a short chirp.
func (p *Player) Launched(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || count <= 0 {
		return
	}
	s, err := newTone(LaunchFreq, LaunchDuration)
	if err != nil {
		p.log.Warnw("launch cue", "err", err)
		return
	}
	p.add(&effects.Volume{Streamer: s, Base: 2, Volume: -3})
}

// Exploded plays a noise burst, louder for bigger bursts.
func (p *Player) Exploded(_, _ float64, count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || count <= 0 {
		return
	}
	p.seed++
	s := beep.Take(sampleRate.N(BurstDuration), NewBurstGenerator(sampleRate, p.seed, count))
	p.add(&effects.Volume{Streamer: s, Base: 2, Volume: burstVolume(count)})
}

// burstVolume maps a burst size to a volume between the min and max levels.
func burstVolume(count int) float64 {
	v := minBurstVolume + math.Log10(float64(max(count, 1)))
	return math.Max(minBurstVolume, math.Min(maxBurstVolume, v))
}

// BlackHole starts or pauses the low hum.
func (p *Player) BlackHole(active bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	if p.hum == nil {
		if !active {
			return
		}
		s, err := generators.SineTone(sampleRate, HumFreq)
		if err != nil {
			p.log.Warnw("hum cue", "err", err)
			return
		}
		p.hum = &beep.Ctrl{Streamer: &effects.Volume{Streamer: s, Base: 2, Volume: -4}}
		p.add(p.hum)
		return
	}
	speaker.Lock()
	p.hum.Paused = !active
	speaker.Unlock()
}

// Close silences every cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.hum = nil
	p.enabled = false
}

// newTone returns a sine tone of exactly d.
func newTone(freq float64, d time.Duration) (beep.Streamer, error) {
	s, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %v Hz: %w", freq, err)
	}
	return beep.Take(sampleRate.N(d), s), nil
}

// BurstGenerator produces a noisy crack over a low thump. Bigger bursts
// ring longer and thump deeper.
type BurstGenerator struct {
	sr    beep.SampleRate
	pos   int
	decay float64 // Envelope rate, per second
	thump float64 // Thump frequency, Hz
	noise *rand.Rand
}

// NewBurstGenerator creates the cue for a burst of count particles. Equal
// seeds give equal output.
func NewBurstGenerator(sr beep.SampleRate, seed int64, count int) *BurstGenerator {
	size := math.Log10(float64(max(count, 1)))
	return &BurstGenerator{
		sr:    sr,
		decay: 18 / (1 + size),
		thump: 90 - 15*size,
		noise: rand.New(rand.NewSource(seed)),
	}
}

func (g *BurstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		crack := 0.35 * (g.noise.Float64()*2 - 1) * math.Exp(-t*g.decay*2)
		thump := 0.4 * math.Sin(2*math.Pi*g.thump*t) * math.Exp(-t*g.decay)

		samples[i][0] = crack + thump
		samples[i][1] = crack + thump
		g.pos++
	}
	return len(samples), true
}

func (g *BurstGenerator) Err() error {
	return nil
}
