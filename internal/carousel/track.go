package carousel

import "math"

// DefaultEasing is the fraction of the remaining distance covered per frame
const DefaultEasing = 0.35

// arrival threshold, in offset units
const epsilon = 0.05

// Track holds the scroll state of one carousel.
//
// Every motion (a free scroll or a snap) bumps the generation. Timers and
// animation frames carry the generation they were started for, so a frame
// from a superseded motion can be recognised and dropped. A generation is
// settled once the offset has reached its target; that happens at most once
// per generation.
type Track struct {
	Stride float64
	Easing float64

	count  int
	offset float64
	target float64
	gen    int
}

// NewTrack returns a track for count cards spaced stride apart
func NewTrack(stride float64, count int) Track {
	return Track{Stride: stride, Easing: DefaultEasing, count: count}
}

// Offset returns the current scroll offset
func (t *Track) Offset() float64 { return t.offset }

// Target returns the offset the track is moving toward
func (t *Track) Target() float64 { return t.target }

// Gen returns the generation of the latest motion
func (t *Track) Gen() int { return t.gen }

// Count returns the number of cards on the track
func (t *Track) Count() int { return t.count }

// Index returns the card nearest to the current offset
func (t *Track) Index() int {
	return NearestIndex(t.offset, t.Stride, t.count)
}

// Reset moves the track back to the first card for a new list of count cards
func (t *Track) Reset(count int) int {
	t.count = count
	t.offset = 0
	t.target = 0
	t.gen++
	return t.gen
}

// ScrollBy moves the offset directly, as a wheel or drag does
func (t *Track) ScrollBy(delta float64) int {
	t.offset = t.clamp(t.offset + delta)
	t.target = t.offset
	t.gen++
	return t.gen
}

// SnapTo starts a motion toward the card at index
func (t *Track) SnapTo(index int) int {
	if t.count > 0 {
		index = max(0, min(index, t.count-1))
	} else {
		index = 0
	}
	t.target = float64(index) * t.Stride
	t.gen++
	return t.gen
}

// Aligned reports whether the offset rests exactly on a card
func (t *Track) Aligned() bool {
	return t.offset == float64(t.Index())*t.Stride
}

// Step advances one animation frame and reports whether the target is reached
func (t *Track) Step() bool {
	if t.offset == t.target {
		return true
	}
	easing := t.Easing
	if easing <= 0 || easing > 1 {
		easing = DefaultEasing
	}
	t.offset += (t.target - t.offset) * easing
	if math.Abs(t.target-t.offset) < epsilon {
		t.offset = t.target
	}
	return t.offset == t.target
}

// Settled reports whether gen is the latest motion and it has come to rest
func (t *Track) Settled(gen int) bool {
	return gen == t.gen && t.offset == t.target
}

func (t *Track) clamp(v float64) float64 {
	hi := 0.0
	if t.count > 1 {
		hi = float64(t.count-1) * t.Stride
	}
	return math.Max(0, math.Min(v, hi))
}
