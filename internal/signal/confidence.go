// Package signal turns indicator snapshots into trade decisions: a
// rule-based confidence score, gating, ATR-adjusted targets and the
// advisory filters layered on top.
package signal

import "tradePulseBot/internal/domain"

// ComputeConfidence maps a snapshot to a 0-100 confidence score using a
// fixed additive rule table. The function is deterministic and
// side-effect-free; the exact weights are part of the engine's contract.
func ComputeConfidence(snap *domain.IndicatorSnapshot) int {
	score := 0

	// A directional trend either way beats chop.
	if snap.Trend.Direction == domain.TrendUp || snap.Trend.Direction == domain.TrendDown {
		score += 20
	}

	if snap.Trend.EMAStack == domain.StackBullish || snap.Trend.EMAStack == domain.StackBearish {
		score += 20
	}

	if snap.Momentum.Direction == domain.MomentumBullish || snap.Momentum.Direction == domain.MomentumBearish {
		score += 15
	}

	switch snap.VolumeAnalysis.Profile {
	case domain.VolumeHigh:
		score += 15
	case domain.VolumeAboveAverage:
		score += 8
	}

	// RSI sweet spots: trending but not yet exhausted.
	if (snap.RSI > 50 && snap.RSI < 70) || (snap.RSI > 30 && snap.RSI < 50) {
		score += 10
	}

	if snap.StochRSI > 20 && snap.StochRSI < 80 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
