package signal

import (
	"math"
	"time"

	"tradePulseBot/internal/domain"
)

// A scalp entry more than 0.6% away from VWAP is chasing.
const vwapExtensionThreshold = 0.006

// IsVWAPExtended reports whether price is stretched too far from VWAP to
// chase a scalp entry. Only the scalping style is subject to the filter.
func IsVWAPExtended(style domain.TradingStyle, price, vwap float64) bool {
	if style != domain.StyleScalping || vwap <= 0 {
		return false
	}
	return math.Abs(price-vwap)/vwap > vwapExtensionThreshold
}

// AlignmentScore grades how well the lower timeframe confirms the higher
// timeframe: +2 when HTF trend direction matches LTF momentum, -3 on an
// outright conflict, and +1 when the LTF stochastic RSI sits in an extreme.
// The score is advisory context, not a gate.
func AlignmentScore(htf, ltf *domain.IndicatorSnapshot) int {
	if htf == nil || ltf == nil {
		return 0
	}

	score := 0
	htfBullish := htf.Trend.Direction == domain.TrendUp
	htfBearish := htf.Trend.Direction == domain.TrendDown
	ltfBullish := ltf.Momentum.Direction == domain.MomentumBullish
	ltfBearish := ltf.Momentum.Direction == domain.MomentumBearish

	switch {
	case (htfBullish && ltfBullish) || (htfBearish && ltfBearish):
		score += 2
	case (htfBullish && ltfBearish) || (htfBearish && ltfBullish):
		score -= 3
	}

	if ltf.StochRSI < 20 || ltf.StochRSI > 80 {
		score++
	}
	return score
}

// SessionCheck flags intraday windows with historically poor liquidity.
type SessionCheck struct {
	Unfavorable bool
	Reason      string
}

// CheckSession flags the lunch chop (12:00-13:00) and the last ten minutes
// before the 16:00 close, evaluated in the exchange's local time. Both
// windows are unfavorable for scalp entries.
func CheckSession(now time.Time, loc *time.Location) SessionCheck {
	if loc != nil {
		now = now.In(loc)
	}

	minuteOfDay := now.Hour()*60 + now.Minute()
	switch {
	case minuteOfDay >= 12*60 && minuteOfDay < 13*60:
		return SessionCheck{Unfavorable: true, Reason: "lunch hour chop"}
	case minuteOfDay >= 15*60+50 && minuteOfDay < 16*60:
		return SessionCheck{Unfavorable: true, Reason: "final minutes before close"}
	default:
		return SessionCheck{}
	}
}
