package signal

import (
	"fmt"
	"math"

	"tradePulseBot/internal/domain"
)

// Cap the ATR widening at 2% of entry so a volatility spike cannot blow
// the targets out.
const maxATRMultiplier = 0.02

// ComputeTargets derives the style-based, ATR-adjusted target set for an
// entry price. Targets start at the style's fixed percentages and are then
// widened by the ATR-to-price ratio: TP1 by half the ratio, TP2 by the
// full ratio, and the stop tightened by 0.3x. Monetary outputs are rounded
// to 2 decimals, percentages formatted with 2 decimals.
//
// This path is independent of the fixed-percentage targets the trade
// monitor computes on /enter; the two coexist deliberately.
func ComputeTargets(entryPrice float64, style domain.StyleConfig, atr float64) domain.TargetSet {
	if entryPrice <= 0 {
		return domain.TargetSet{HoldTime: style.HoldTimeLabel, MinRR: style.MinRR}
	}

	tp1 := entryPrice * (1 + style.TP1Pct)
	tp2 := entryPrice * (1 + style.TP2Pct)
	sl := entryPrice * (1 - style.SLPct)

	if atr > 0 {
		atrMultiplier := math.Min(atr/entryPrice, maxATRMultiplier)
		tp1 += entryPrice * atrMultiplier * 0.5
		tp2 += entryPrice * atrMultiplier
		sl -= entryPrice * atrMultiplier * 0.3
	}

	tp1 = round2(tp1)
	tp2 = round2(tp2)
	sl = round2(sl)

	risk := round2(entryPrice - sl)
	reward1 := round2(tp1 - entryPrice)
	reward2 := round2(tp2 - entryPrice)

	var rr1, rr2 float64
	if risk > 0 {
		rr1 = round2(reward1 / risk)
		rr2 = round2(reward2 / risk)
	}

	return domain.TargetSet{
		Entry:         round2(entryPrice),
		TP1:           tp1,
		TP2:           tp2,
		SL:            sl,
		TP1Percent:    formatPercent(reward1 / entryPrice * 100),
		TP2Percent:    formatPercent(reward2 / entryPrice * 100),
		SLPercent:     formatPercent(risk / entryPrice * 100),
		RR1:           rr1,
		RR2:           rr2,
		RiskAmount:    risk,
		Reward1Amount: reward1,
		Reward2Amount: reward2,
		HoldTime:      style.HoldTimeLabel,
		MinRR:         style.MinRR,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
