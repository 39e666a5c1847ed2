// Package indicators provides stateless series math over ordered float
// sequences. Every function treats its input as immutable, never looks
// outside the supplied window, and degrades to a documented fallback value
// instead of returning an error when the window is too short.
package indicators

import "math"

// SMA computes the simple average of the last `period` elements.
// Returns 0 when the series is shorter than the period.
func SMA(series []float64, period int) float64 {
	if period <= 0 || len(series) < period {
		return 0
	}
	total := 0.0
	for i := len(series) - period; i < len(series); i++ {
		total += series[i]
	}
	return total / float64(period)
}

// EMA computes the exponential moving average of the series: the seed is
// the simple average of the first `period` elements, then the standard
// 2/(period+1) multiplier is applied iterating forward.
//
// When the series is shorter than the period the last element is returned
// as a degenerate fallback. This is intentional backward-compatible
// behaviour relied on by the aggregator, not an error condition.
func EMA(series []float64, period int) float64 {
	if len(series) == 0 {
		return 0
	}
	if period <= 0 || len(series) < period {
		return series[len(series)-1]
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += series[i]
	}
	ema := seed / float64(period)

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(series); i++ {
		ema = (series[i]-ema)*multiplier + ema
	}
	return ema
}

// stdDev computes the population standard deviation of the last `period`
// elements around the supplied mean.
func stdDev(series []float64, period int, mean float64) float64 {
	if period <= 0 || len(series) < period {
		return 0
	}
	variance := 0.0
	for i := len(series) - period; i < len(series); i++ {
		d := series[i] - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(period))
}

// clamp bounds v to the [lo,hi] range.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
