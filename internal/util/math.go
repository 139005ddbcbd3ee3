package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Clamp[T constraints.Ordered](v, low, high T) T {
	return max(low, min(v, high))
}

// Wrap maps v into [0, period). Negative remainders are shifted up by one period.
func Wrap[T constraints.Float](v, period T) T {
	r := T(math.Mod(float64(v), float64(period)))
	if r < 0 {
		r += period
	}
	if r >= period {
		r = 0
	}
	return r
}
