package indicators

// MFI computes the Money Flow Index over the last `period` samples:
// typical price times volume, split into positive and negative money flow
// by the day-over-day typical price direction. Returns 50 when the window
// is too short and 100 when there is no negative flow.
func MFI(highs, lows, closes, volumes []float64, period int) float64 {
	n := len(closes)
	if period <= 0 || n < period+1 || len(highs) < n || len(lows) < n || len(volumes) < n {
		return 50
	}

	typical := func(i int) float64 {
		return (highs[i] + lows[i] + closes[i]) / 3
	}

	var positiveFlow, negativeFlow float64
	for i := n - period; i < n; i++ {
		flow := typical(i) * volumes[i]
		switch {
		case typical(i) > typical(i-1):
			positiveFlow += flow
		case typical(i) < typical(i-1):
			negativeFlow += flow
		}
	}

	if negativeFlow == 0 {
		return 100
	}

	ratio := positiveFlow / negativeFlow
	return clamp(100-(100/(1+ratio)), 0, 100)
}
