package carousel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestIndex(t *testing.T) {
	const S = 10.0
	tests := []struct {
		name   string
		offset float64
		count  int
		want   int
	}{
		{"zero offset", 0, 5, 0},
		{"rounds down", 2.4 * S, 5, 2},
		{"rounds up", 2.6 * S, 5, 3},
		{"half rounds away from zero", 1.5 * S, 5, 2},
		{"negative clamps to first", -3 * S, 5, 0},
		{"beyond end clamps to last", 42 * S, 5, 4},
		{"single card", 7 * S, 1, 0},
		{"huge offset clamps to last", 1e19, 5, 4},
		{"max float clamps to last", math.MaxFloat64, 5, 4},
		{"positive infinity clamps to last", math.Inf(1), 5, 4},
		{"negative infinity clamps to first", math.Inf(-1), 5, 0},
		{"NaN yields first", math.NaN(), 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearestIndex(tt.offset, S, tt.count))
		})
	}
}

func TestNearestIndex_AlwaysInBounds(t *testing.T) {
	for count := 1; count <= 6; count++ {
		for off := -50.0; off <= 120; off += 0.7 {
			got := NearestIndex(off, 9, count)
			require.GreaterOrEqual(t, got, 0)
			require.LessOrEqual(t, got, count-1)
		}
	}
}

func TestInterpolate(t *testing.T) {
	in := []float64{0, 10, 20}
	out := []float64{0.9, 1, 0.9}

	assert.InDelta(t, 0.9, Interpolate(-5, in, out), 1e-9)
	assert.InDelta(t, 0.9, Interpolate(0, in, out), 1e-9)
	assert.InDelta(t, 0.95, Interpolate(5, in, out), 1e-9)
	assert.InDelta(t, 1.0, Interpolate(10, in, out), 1e-9)
	assert.InDelta(t, 0.95, Interpolate(15, in, out), 1e-9)
	assert.InDelta(t, 0.9, Interpolate(30, in, out), 1e-9)
	assert.Equal(t, 0.0, Interpolate(1, nil, nil))
}

func TestCardTransform(t *testing.T) {
	const S = 10.0

	centred := CardTransform(2*S, S, 2)
	assert.InDelta(t, 1.0, centred.Scale, 1e-9)
	assert.InDelta(t, 1.0, centred.Opacity, 1e-9)

	neighbour := CardTransform(2*S, S, 3)
	assert.InDelta(t, 0.9, neighbour.Scale, 1e-9)
	assert.InDelta(t, 0.6, neighbour.Opacity, 1e-9)

	far := CardTransform(0, S, 4)
	assert.InDelta(t, 0.9, far.Scale, 1e-9)
	assert.InDelta(t, 0.6, far.Opacity, 1e-9)

	half := CardTransform(1.5*S, S, 1)
	assert.InDelta(t, 0.95, half.Scale, 1e-9)
	assert.InDelta(t, 0.8, half.Opacity, 1e-9)
}

func TestTrack_ScrollClamps(t *testing.T) {
	tr := NewTrack(10, 5)
	tr.ScrollBy(-4)
	assert.Equal(t, 0.0, tr.Offset())

	tr.ScrollBy(1000)
	assert.Equal(t, 40.0, tr.Offset())
	assert.Equal(t, 4, tr.Index())
}

func TestTrack_SnapSettlesOnce(t *testing.T) {
	tr := NewTrack(10, 5)
	gen := tr.SnapTo(2)
	assert.False(t, tr.Settled(gen))

	frames := 0
	for !tr.Step() {
		frames++
		require.Less(t, frames, 100, "track never arrived")
		assert.False(t, tr.Settled(gen), "settled during motion")
	}
	assert.True(t, tr.Settled(gen))
	assert.Equal(t, 20.0, tr.Offset())
	assert.True(t, tr.Aligned())
}

func TestTrack_NewMotionSupersedesOld(t *testing.T) {
	tr := NewTrack(10, 5)
	first := tr.SnapTo(3)
	tr.Step()
	second := tr.ScrollBy(1)

	assert.NotEqual(t, first, second)
	assert.False(t, tr.Settled(first))
	assert.True(t, tr.Settled(second))
	assert.False(t, tr.Aligned())
}

func TestTrack_SnapToClampsIndex(t *testing.T) {
	tr := NewTrack(10, 3)
	tr.SnapTo(9)
	assert.Equal(t, 20.0, tr.Target())

	tr.SnapTo(-2)
	assert.Equal(t, 0.0, tr.Target())
}

func TestTrack_Reset(t *testing.T) {
	tr := NewTrack(10, 5)
	tr.ScrollBy(33)
	gen := tr.Reset(2)

	assert.Equal(t, 0.0, tr.Offset())
	assert.Equal(t, 2, tr.Count())
	assert.True(t, tr.Settled(gen))
	assert.False(t, math.IsNaN(tr.Offset()))
}
