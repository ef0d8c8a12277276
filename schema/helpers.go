package schema

import "math"

// Round1 rounds to one decimal place, half away from zero on the
// pre-multiplied value. Used for every displayed average.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Mean returns the arithmetic mean, or 0 for an empty slice so callers never
// divide by a zero denominator.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
