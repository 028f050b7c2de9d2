package simulation

import (
	"image/color"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

const frame = 16 * time.Millisecond

// newTestState returns an empty, seeded 800x600 state on a mock clock.
func newTestState(t *testing.T, opts ...Option) (*State, *MockClock) {
	t.Helper()
	clock := NewMockClock(epoch)
	opts = append([]Option{WithClock(clock), WithSeed(42)}, opts...)
	return NewState(800, 600, opts...), clock
}

// step advances the clock by one frame and ticks the driver.
func step(d *Driver, clock *MockClock) {
	clock.Advance(frame)
	d.Step()
}

type drawCall struct {
	op   string
	args []float64
	clr  color.Color
}

type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{"rect", []float64{x, y, w, h}, clr})
}

func (r *recordingSurface) FillCircle(cx, cy, rad float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{"circle", []float64{cx, cy, rad}, clr})
}

func (r *recordingSurface) FillRadialGradient(cx, cy, rad float64, inner, outer color.Color) {
	r.calls = append(r.calls, drawCall{"gradient", []float64{cx, cy, rad}, inner})
}

func (r *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{"line", []float64{x0, y0, x1, y1, width}, clr})
}

func (r *recordingSurface) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

type recordingObserver struct {
	launched   int
	explosions int
	blackHole  []bool
}

func (o *recordingObserver) Launched(n int) { o.launched += n }

func (o *recordingObserver) Exploded(x, y float64, n int) { o.explosions++ }

func (o *recordingObserver) BlackHole(active bool) { o.blackHole = append(o.blackHole, active) }
