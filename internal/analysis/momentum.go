package analysis

import (
	"math"

	"tradePulseBot/internal/domain"
)

// AnalyzeMomentum compares the average of the last five closes against the
// five before them and classifies direction, strength, and whether the
// move is accelerating across the two window halves.
func AnalyzeMomentum(closes []float64) domain.Momentum {
	out := domain.Momentum{
		Direction:    domain.MomentumNeutral,
		Strength:     10,
		Acceleration: domain.Stable,
	}
	if len(closes) < 10 {
		return out
	}

	last5 := average(closes[len(closes)-5:])
	prior5 := average(closes[len(closes)-10 : len(closes)-5])
	if prior5 == 0 {
		return out
	}

	priceChange := (last5 - prior5) / prior5 * 100
	out.ROC = priceChange

	switch {
	case priceChange > 0.5:
		out.Direction = domain.MomentumBullish
	case priceChange < -0.5:
		out.Direction = domain.MomentumBearish
	}

	out.Strength = math.Min(math.Max(math.Abs(priceChange)*10, 10), 90)
	out.Acceleration = classifyAcceleration(closes)
	return out
}

// classifyAcceleration compares the close slope of the second half of the
// window against the first half. A second-half slope 1.5x the first half
// means the move is accelerating; below 0.5x it is decelerating.
func classifyAcceleration(closes []float64) domain.Acceleration {
	mid := len(closes) / 2
	if mid < 2 || len(closes)-mid < 2 {
		return domain.Stable
	}

	firstSlope := slope(closes[:mid])
	secondSlope := slope(closes[mid:])

	if firstSlope == 0 {
		if secondSlope != 0 {
			return domain.Accelerating
		}
		return domain.Stable
	}

	ratio := math.Abs(secondSlope) / math.Abs(firstSlope)
	switch {
	case ratio > 1.5:
		return domain.Accelerating
	case ratio < 0.5:
		return domain.Decelerating
	default:
		return domain.Stable
	}
}

// slope is the average per-bar change across the segment.
func slope(segment []float64) float64 {
	if len(segment) < 2 {
		return 0
	}
	return (segment[len(segment)-1] - segment[0]) / float64(len(segment)-1)
}
