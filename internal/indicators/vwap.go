package indicators

// VWAP computes the volume-weighted average of the typical price
// (high+low+close)/3 over the full supplied window. Returns the last close
// when no volume was traded, and 0 for an empty window.
func VWAP(highs, lows, closes, volumes []float64) float64 {
	n := len(closes)
	if n == 0 || len(highs) < n || len(lows) < n || len(volumes) < n {
		return 0
	}

	var weighted, totalVolume float64
	for i := 0; i < n; i++ {
		typical := (highs[i] + lows[i] + closes[i]) / 3
		weighted += typical * volumes[i]
		totalVolume += volumes[i]
	}

	if totalVolume == 0 {
		return closes[n-1]
	}
	return weighted / totalVolume
}
