package simulation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveOneOnEmpty(t *testing.T) {
	s, _ := newTestState(t)
	assert.NotPanics(t, s.RemoveOne)
	assert.Zero(t, s.Len())
}

func TestRemoveOneDropsLast(t *testing.T) {
	s, _ := newTestState(t)
	s.Spawn(3, OriginScatter)
	last := s.Particles()[2]

	s.RemoveOne()

	assert.Equal(t, 2, s.Len())
	assert.False(t, last.Alive())
	assert.NotContains(t, s.Particles(), last)
}

func TestClearThenSpawnRoundTrip(t *testing.T) {
	tests := []struct {
		origin Origin
		vx, vy Range
	}{
		{OriginScatter, ScatterVelocity, ScatterVelocity},
		{OriginPipe, PipeVelocityX, PipeVelocityY},
	}
	for _, tt := range tests {
		t.Run(tt.origin.String(), func(t *testing.T) {
			s, _ := newTestState(t)
			s.Spawn(40, OriginScatter)
			s.Clear()
			require.Zero(t, s.Len())

			s.Spawn(250, tt.origin)

			require.Equal(t, 250, s.Len())
			for _, p := range s.Particles() {
				assert.True(t, tt.vx.Contains(p.VX), "vx=%v", p.VX)
				assert.True(t, tt.vy.Contains(p.VY), "vy=%v", p.VY)
				assert.True(t, RadiusRange.Contains(p.Radius), "radius=%v", p.Radius)
				assert.Greater(t, p.Radius, 0.0)
				assert.True(t, p.X >= 0 && p.X <= s.Width)
				assert.True(t, p.Y >= 0 && p.Y <= s.Height)
			}
		})
	}
}

func TestSpawnNonPositiveIsNoop(t *testing.T) {
	s, _ := newTestState(t)
	s.Spawn(0, OriginScatter)
	s.Spawn(-3, OriginPipe)
	assert.Zero(t, s.Len())
}

func TestSpawnKeepsSnapshots(t *testing.T) {
	s, _ := newTestState(t)
	s.Spawn(5, OriginScatter)
	snapshot := s.Particles()
	first := snapshot[0]

	s.Spawn(5, OriginPipe)
	s.RemoveOne()
	s.Clear()

	assert.Len(t, snapshot, 5)
	assert.Same(t, first, snapshot[0])
}

func TestCollectAtBottom(t *testing.T) {
	s, _ := newTestState(t)
	s.Spawn(150, OriginPipe)
	s.Spawn(20, OriginScatter)

	s.CollectAtBottom()

	e := s.EmissionPoint()
	for _, p := range s.Particles() {
		assert.Equal(t, 0.0, p.VX)
		assert.Equal(t, 0.0, p.VY)
		assert.Equal(t, e.X, p.X)
		assert.Equal(t, e.Y, p.Y)
	}
}

func TestEmissionPointOnTinyCanvas(t *testing.T) {
	s := NewState(4, 4)
	e := s.EmissionPoint()
	assert.Equal(t, 2.0, e.X)
	assert.Equal(t, 0.0, e.Y)
}

func TestRangeSample(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	degenerate := Range{2, 2}
	inverted := Range{3, 1}
	for i := 0; i < 100; i++ {
		assert.Equal(t, 2.0, degenerate.sample(rng))
		assert.Equal(t, 3.0, inverted.sample(rng))
		assert.True(t, BurstSpeed.Contains(BurstSpeed.sample(rng)))
	}
}
