package indicators

import "tradePulseBot/internal/domain"

const (
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9

	// The exact signal line needs 26 bars of EMA warm-up plus 9 MACD
	// values for the signal EMA.
	macdMinPoints = macdSlowPeriod + macdSignalPeriod
)

// MACD computes the MACD line (EMA12-EMA26 of closes), its EMA9 signal
// line, and their histogram. Below 35 points the result degrades to an
// exact zero value rather than an error.
//
// The historical MACD series is rebuilt with repeated EMA calls on growing
// windows. That is quadratic, but the windows involved never exceed a few
// hundred bars.
func MACD(series []float64) domain.MACDResult {
	if len(series) < macdMinPoints {
		return domain.MACDResult{}
	}

	macdSeries := make([]float64, 0, len(series)-macdSlowPeriod+1)
	for end := macdSlowPeriod; end <= len(series); end++ {
		window := series[:end]
		macdSeries = append(macdSeries, EMA(window, macdFastPeriod)-EMA(window, macdSlowPeriod))
	}

	value := macdSeries[len(macdSeries)-1]
	signal := EMA(macdSeries, macdSignalPeriod)

	return domain.MACDResult{
		Value:     value,
		Signal:    signal,
		Histogram: value - signal,
	}
}
