// Package analysis derives structural classifications (trend, momentum,
// volume, support/resistance) from bar sequences and aggregates them
// together with the series math into one indicator snapshot per timeframe.
package analysis

import (
	"tradePulseBot/internal/domain"
	"tradePulseBot/internal/indicators"
)

const (
	rsiPeriod       = 14
	stochRSIPeriod  = 14
	atrPeriod       = 14
	mfiPeriod       = 14
	bollingerPeriod = 20
)

// ComputeIndicators derives a fully-populated snapshot from a bar window
// and the current quote. The computation is deterministic: the same inputs
// always produce the identical snapshot, with no hidden state.
//
// An empty bar window is not an error; it yields the neutral default
// snapshot (RSI 50, VWAP at the quote price, sideways trend, strength 50,
// empty level lists).
func ComputeIndicators(bars []*domain.Bar, quote *domain.Quote) *domain.IndicatorSnapshot {
	price := quote.LastPrice()

	if len(bars) == 0 {
		return neutralSnapshot(quote, price)
	}

	closes := domain.Closes(bars)
	highs := domain.Highs(bars)
	lows := domain.Lows(bars)
	volumes := domain.Volumes(bars)

	vwap := indicators.VWAP(highs, lows, closes, volumes)
	supports, resistances := DetectLevels(bars, price, vwap)

	snap := &domain.IndicatorSnapshot{
		Symbol:           quote.Symbol,
		Interval:         bars[0].Interval,
		Price:            price,
		VWAP:             vwap,
		RSI:              indicators.RSI(closes, rsiPeriod),
		MACD:             indicators.MACD(closes),
		StochRSI:         indicators.StochasticRSI(closes, stochRSIPeriod),
		ATR:              indicators.ATR(highs, lows, closes, atrPeriod),
		MFI:              indicators.MFI(highs, lows, closes, volumes, mfiPeriod),
		Bollinger:        indicators.Bollinger(closes, bollingerPeriod),
		VolumeAnalysis:   AnalyzeVolume(volumes),
		Momentum:         AnalyzeMomentum(closes),
		Trend:            ClassifyTrend(closes, highs, lows, price),
		SupportLevels:    supports,
		ResistanceLevels: resistances,
	}
	snap.Strength = compositeStrength(snap)
	return snap
}

// compositeStrength folds the RSI bias, MACD histogram sign, momentum
// direction and volume strength into one [10,90] score centred at 50.
func compositeStrength(snap *domain.IndicatorSnapshot) float64 {
	score := 50.0
	score += (snap.RSI - 50) * 0.4

	if snap.MACD.Histogram > 0 {
		score += 10
	} else if snap.MACD.Histogram < 0 {
		score -= 10
	}

	switch snap.Momentum.Direction {
	case domain.MomentumBullish:
		score += 15
	case domain.MomentumBearish:
		score -= 15
	}

	score += (snap.VolumeAnalysis.Strength - 50) * 0.3

	if score < 10 {
		score = 10
	}
	if score > 90 {
		score = 90
	}
	return score
}

func neutralSnapshot(quote *domain.Quote, price float64) *domain.IndicatorSnapshot {
	return &domain.IndicatorSnapshot{
		Symbol:   quote.Symbol,
		Price:    price,
		VWAP:     price,
		RSI:      50,
		StochRSI: 50,
		MFI:      50,
		Bollinger: domain.BollingerBands{
			Upper:    price,
			Middle:   price,
			Lower:    price,
			Position: domain.BandMiddle,
		},
		VolumeAnalysis: domain.VolumeAnalysis{
			Profile:  domain.VolumeAverage,
			Trend:    domain.VolumeNeutral,
			Strength: 45,
			Ratio:    1,
		},
		Momentum: domain.Momentum{
			Direction:    domain.MomentumNeutral,
			Strength:     10,
			Acceleration: domain.Stable,
		},
		Trend: domain.TrendAnalysis{
			Direction: domain.TrendSideways,
			Strength:  domain.TrendWeak,
			EMAStack:  domain.StackMixed,
		},
		Strength: 50,
	}
}
