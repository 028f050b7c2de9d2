package physics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crowd(seed int64, n int, w, h float64) []*Particle {
	rng := rand.New(rand.NewSource(seed))
	ps := make([]*Particle, n)
	for i := range ps {
		ps[i] = &Particle{
			X:      rng.Float64() * w,
			Y:      rng.Float64() * h,
			VX:     rng.Float64()*4 - 2,
			VY:     rng.Float64()*4 - 2,
			Radius: 3 + rng.Float64()*5,
		}
	}
	return ps
}

func clone(ps []*Particle) []*Particle {
	out := make([]*Particle, len(ps))
	for i, p := range ps {
		c := *p
		out[i] = &c
	}
	return out
}

func TestGridMatchesPairwiseScan(t *testing.T) {
	brute := crowd(3, 800, 400, 300)
	binned := clone(brute)
	g := NewGrid()

	want := ResolveCollisions(brute, CollisionStrength)
	got := g.Resolve(binned, CollisionStrength)

	require.Positive(t, want)
	assert.Equal(t, want, got)
	for i := range brute {
		assert.InDelta(t, brute[i].VX, binned[i].VX, 1e-9, "particle %d", i)
		assert.InDelta(t, brute[i].VY, binned[i].VY, 1e-9, "particle %d", i)
	}
}

func TestGridReuse(t *testing.T) {
	g := NewGrid()
	first := crowd(5, 300, 200, 200)
	g.Resolve(clone(first), CollisionStrength)

	// A second, disjoint layout must not see stale entries from the first.
	second := crowd(6, 300, 200, 200)
	want := ResolveCollisions(clone(second), CollisionStrength)
	assert.Equal(t, want, g.Resolve(second, CollisionStrength))
}

func TestGridNegativeCoordinates(t *testing.T) {
	a := &Particle{X: -1, Y: -1, Radius: 3}
	b := &Particle{X: 1, Y: 1, Radius: 3}
	assert.Equal(t, 1, NewGrid().Resolve([]*Particle{a, b}, CollisionStrength))
}

func TestGridDegenerate(t *testing.T) {
	g := NewGrid()
	assert.Zero(t, g.Resolve(nil, CollisionStrength))

	// Zero radius particles never overlap.
	ps := []*Particle{{X: 1, Y: 1}, {X: 1.5, Y: 1}}
	assert.Zero(t, g.Resolve(ps, CollisionStrength))
}
