package indicators

import "math"

// ATR computes the Average True Range as the mean of the last `period`
// true ranges. True range is the greatest of high-low, |high-prevClose|
// and |low-prevClose|. Returns 0 when fewer than period+1 bars are
// available.
func ATR(highs, lows, closes []float64, period int) float64 {
	n := len(closes)
	if period <= 0 || n < period+1 || len(highs) < n || len(lows) < n {
		return 0
	}

	sum := 0.0
	for i := n - period; i < n; i++ {
		tr := highs[i] - lows[i]
		tr = math.Max(tr, math.Abs(highs[i]-closes[i-1]))
		tr = math.Max(tr, math.Abs(lows[i]-closes[i-1]))
		sum += tr
	}
	return sum / float64(period)
}
