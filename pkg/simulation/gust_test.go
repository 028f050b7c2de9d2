package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGustDirectionInRange(t *testing.T) {
	g := NewGustDriver(9, epoch)
	for i := 0; i < 2000; i++ {
		d := g.Direction(epoch.Add(time.Duration(i) * 37 * time.Millisecond))
		assert.True(t, d >= -1 && d <= 1, "direction %v", d)
	}
}

func TestGustDirectionDeterministic(t *testing.T) {
	a := NewGustDriver(11, epoch)
	b := NewGustDriver(11, epoch)
	at := epoch.Add(2500 * time.Millisecond)
	assert.Equal(t, a.Direction(at), b.Direction(at))
}

func TestGustDirectionVaries(t *testing.T) {
	g := NewGustDriver(13, epoch)
	seen := map[float64]bool{}
	for i := 1; i <= 50; i++ {
		seen[g.Direction(epoch.Add(time.Duration(i)*300*time.Millisecond))] = true
	}
	assert.Greater(t, len(seen), 1)
}
