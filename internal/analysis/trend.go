package analysis

import (
	"tradePulseBot/internal/domain"
	"tradePulseBot/internal/indicators"
)

// ClassifyTrend classifies the prevailing trend from the EMA20/EMA50 stack
// and the higher-high/higher-low pattern of the last three bars. The EMA
// stack field is classified independently from the 9/21/50 EMAs and stays
// "mixed" below 50 data points.
func ClassifyTrend(closes, highs, lows []float64, currentPrice float64) domain.TrendAnalysis {
	out := domain.TrendAnalysis{
		Direction: domain.TrendSideways,
		Strength:  domain.TrendWeak,
		EMAStack:  domain.StackMixed,
	}
	if len(closes) == 0 {
		return out
	}

	out.EMA20 = indicators.EMA(closes, 20)
	out.EMA50 = indicators.EMA(closes, 50)

	if len(closes) >= 50 {
		ema9 := indicators.EMA(closes, 9)
		ema21 := indicators.EMA(closes, 21)
		switch {
		case ema9 > ema21 && ema21 > out.EMA50:
			out.EMAStack = domain.StackBullish
		case ema9 < ema21 && ema21 < out.EMA50:
			out.EMAStack = domain.StackBearish
		}
	}

	if len(highs) >= 3 && len(lows) >= 3 {
		h := highs[len(highs)-3:]
		l := lows[len(lows)-3:]
		higherHighs := h[0] <= h[1] && h[1] <= h[2]
		higherLows := l[0] <= l[1] && l[1] <= l[2]
		lowerHighs := h[0] >= h[1] && h[1] >= h[2]
		lowerLows := l[0] >= l[1] && l[1] >= l[2]

		if higherHighs && higherLows && currentPrice > out.EMA20 && out.EMA20 > out.EMA50 {
			out.Direction = domain.TrendUp
			out.Strength = domain.TrendStrong
			return out
		}
		if lowerHighs && lowerLows && currentPrice < out.EMA20 && out.EMA20 < out.EMA50 {
			out.Direction = domain.TrendDown
			out.Strength = domain.TrendStrong
			return out
		}
	}

	switch {
	case currentPrice > out.EMA20:
		out.Direction = domain.TrendUp
		out.Strength = domain.TrendModerate
	case currentPrice < out.EMA20:
		out.Direction = domain.TrendDown
		out.Strength = domain.TrendModerate
	}
	return out
}
