// Package carousel maps a continuous scroll offset onto a stack of
// equally spaced cards: which card is centred, and how each card is scaled
// and faded relative to the offset.
package carousel

import "math"

// Card transform breakpoints, relative to a card's own position
var (
	ScaleRange   = [3]float64{0.9, 1, 0.9}
	OpacityRange = [3]float64{0.6, 1, 0.6}
)

// NearestIndex returns round(offset/stride) clamped to [0, count-1].
// Callers must not use it for an empty list; it returns 0 in that case.
func NearestIndex(offset, stride float64, count int) int {
	if count <= 0 || stride <= 0 {
		return 0
	}
	// clamp before converting: huge or infinite ratios overflow int
	r := math.Round(offset / stride)
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	if r >= float64(count-1) {
		return count - 1
	}
	return int(r)
}

// Interpolate maps x through the piecewise-linear function defined by the
// ascending breakpoints in and the values out, clamping outside the range.
func Interpolate(x float64, in, out []float64) float64 {
	n := min(len(in), len(out))
	if n == 0 {
		return 0
	}
	if x <= in[0] {
		return out[0]
	}
	for i := 1; i < n; i++ {
		if x <= in[i] {
			span := in[i] - in[i-1]
			if span == 0 {
				return out[i]
			}
			t := (x - in[i-1]) / span
			return out[i-1] + t*(out[i]-out[i-1])
		}
	}
	return out[n-1]
}

// Transform is the visual state of one card for the current offset
type Transform struct {
	Scale   float64
	Opacity float64
}

// CardTransform computes the scale and opacity of the card at index.
func CardTransform(offset, stride float64, index int) Transform {
	pos := float64(index) * stride
	in := []float64{pos - stride, pos, pos + stride}
	return Transform{
		Scale:   Interpolate(offset, in, ScaleRange[:]),
		Opacity: Interpolate(offset, in, OpacityRange[:]),
	}
}
