package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/simulation"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestState() *simulation.State {
	return simulation.NewState(800, 600, simulation.WithSeed(1), simulation.WithClock(simulation.NewMockClock(epoch)))
}

func TestKeyCommandsAreUnique(t *testing.T) {
	seen := map[simulation.Command]rune{}
	for r, c := range keyCommands {
		prev, dup := seen[c]
		require.False(t, dup, "%v bound to %q and %q", c, prev, r)
		seen[c] = r
	}
	for _, r := range []rune{keyTwirl, keyPause, keyWindLeft, keyWindRight} {
		_, bound := keyCommands[r]
		assert.False(t, bound, "%q is reserved", r)
	}
}

func TestHandleRune(t *testing.T) {
	s := newTestState()

	assert.True(t, handleRune(s, '2'))
	assert.Equal(t, 10, s.Len())

	assert.True(t, handleRune(s, 'g'))
	assert.True(t, s.Flags.Gravity)

	assert.False(t, handleRune(s, 'z'))
}

func TestWindKeysClamp(t *testing.T) {
	s := newTestState()
	for i := 0; i < 30; i++ {
		handleRune(s, keyWindRight)
	}
	assert.Equal(t, 1.0, s.WindDirection)

	for i := 0; i < 30; i++ {
		handleRune(s, keyWindLeft)
	}
	assert.Equal(t, -1.0, s.WindDirection)
}

func TestStatusLine(t *testing.T) {
	s := newTestState()
	assert.Equal(t, "particles 0  wind +0.0  [-]", statusLine(s, false))

	s.Spawn(3, simulation.OriginScatter)
	s.SetFlag(simulation.FlagGravity, true)
	s.SetFlag(simulation.FlagWind, true)
	assert.Equal(t, "particles 3  wind +0.0  [gravity,wind]  PAUSED", statusLine(s, true))
}

func TestPointerTracker(t *testing.T) {
	var pt pointerTracker
	assert.True(t, pt.moved(10, 10), "first sighting is motion")
	assert.False(t, pt.moved(10, 10))
	assert.True(t, pt.moved(11, 10))
	assert.False(t, pt.moved(11, 10))

	pt.forget()
	assert.True(t, pt.moved(11, 10))
}
