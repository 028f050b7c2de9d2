package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if v := max(smp[0], -smp[0]); v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return
		}
	}
}

func enabledPlayer() *Player {
	p := newPlayer(zap.NewNop().Sugar())
	p.enabled = true
	return p
}

func TestToneLength(t *testing.T) {
	s, err := newTone(LaunchFreq, LaunchDuration)
	require.NoError(t, err)

	total, peak := drain(s)
	assert.Equal(t, sampleRate.N(LaunchDuration), total)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Positive(t, peak)
}

func TestToneRejectsNyquist(t *testing.T) {
	_, err := newTone(float64(sampleRate), time.Millisecond)
	assert.Error(t, err)
}

func TestBurstGeneratorDeterministic(t *testing.T) {
	a := beep.Take(1000, NewBurstGenerator(sampleRate, 7, 50))
	b := beep.Take(1000, NewBurstGenerator(sampleRate, 7, 50))

	bufA := make([][2]float64, 1000)
	bufB := make([][2]float64, 1000)
	n, _ := a.Stream(bufA)
	m, _ := b.Stream(bufB)
	require.Equal(t, 1000, n)
	require.Equal(t, n, m)
	assert.Equal(t, bufA, bufB)

	for _, smp := range bufA {
		assert.LessOrEqual(t, smp[0], 1.0)
		assert.GreaterOrEqual(t, smp[0], -1.0)
	}
}

func TestBurstGeneratorScalesWithSize(t *testing.T) {
	small := NewBurstGenerator(sampleRate, 1, 1)
	big := NewBurstGenerator(sampleRate, 1, 1000)

	assert.Greater(t, small.decay, big.decay, "bigger bursts ring longer")
	assert.Greater(t, small.thump, big.thump, "bigger bursts thump deeper")
	assert.Positive(t, big.thump)

	// Late in the cue the big burst is still louder.
	tail := func(g *BurstGenerator) (peak float64) {
		_, peak = drain(beep.Take(sampleRate.N(BurstDuration), g))
		return peak
	}
	skip := make([][2]float64, sampleRate.N(BurstDuration/2))
	small.Stream(skip)
	big.Stream(skip)
	assert.Greater(t, tail(big), tail(small))
}

func TestBurstVolume(t *testing.T) {
	assert.Equal(t, minBurstVolume, burstVolume(0))
	assert.Equal(t, minBurstVolume, burstVolume(1))
	assert.Equal(t, maxBurstVolume, burstVolume(1000))
	assert.Less(t, burstVolume(5), burstVolume(50))
}

func TestSilentPlayerIgnoresEvents(t *testing.T) {
	p := newPlayer(zap.NewNop().Sugar())
	assert.False(t, p.Enabled())

	p.Launched(3)
	p.Exploded(1, 2, 50)
	p.BlackHole(true)
	assert.Equal(t, 0, p.mixer.Len())
	assert.Nil(t, p.hum)
	p.Close()
}

func TestCuesReachMixer(t *testing.T) {
	p := enabledPlayer()

	p.Launched(0)
	assert.Equal(t, 0, p.mixer.Len())

	p.Launched(1)
	p.Exploded(10, 10, 50)
	assert.Equal(t, 2, p.mixer.Len())
}

func TestBlackHoleHum(t *testing.T) {
	p := enabledPlayer()

	p.BlackHole(false)
	assert.Nil(t, p.hum)

	p.BlackHole(true)
	require.NotNil(t, p.hum)
	assert.False(t, p.hum.Paused)
	assert.Equal(t, 1, p.mixer.Len())

	p.BlackHole(false)
	assert.True(t, p.hum.Paused)

	p.BlackHole(true)
	assert.False(t, p.hum.Paused)
	assert.Equal(t, 1, p.mixer.Len())

	p.Close()
	assert.False(t, p.Enabled())
	assert.Equal(t, 0, p.mixer.Len())
}
