package indicators

// RSI computes the Relative Strength Index over the last `period` price
// deltas only (not the full history). Returns 50 when the series is too
// short and 100 when the trailing window contains no losses.
func RSI(series []float64, period int) float64 {
	if period <= 0 || len(series) < period+1 {
		return 50
	}

	var avgGain, avgLoss float64
	for i := len(series) - period; i < len(series); i++ {
		change := series[i] - series[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss
	return clamp(100-(100/(1+rs)), 0, 100)
}

// StochasticRSI normalizes the latest RSI value against the min/max of a
// rolling RSI series over the last `period` windows, scaled to [0,100].
// Returns 50 when fewer than 2*period bars are available or when the RSI
// range is flat.
func StochasticRSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < 2*period {
		return 50
	}

	// One RSI value per trailing window ending at each of the last
	// `period` positions.
	rsiSeries := make([]float64, 0, period)
	for end := len(closes) - period + 1; end <= len(closes); end++ {
		rsiSeries = append(rsiSeries, RSI(closes[:end], period))
	}

	lowest, highest := rsiSeries[0], rsiSeries[0]
	for _, v := range rsiSeries[1:] {
		if v < lowest {
			lowest = v
		}
		if v > highest {
			highest = v
		}
	}

	if highest == lowest {
		return 50
	}

	latest := rsiSeries[len(rsiSeries)-1]
	return clamp((latest-lowest)/(highest-lowest)*100, 0, 100)
}
