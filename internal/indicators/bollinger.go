package indicators

import "tradePulseBot/internal/domain"

// Bollinger computes the Bollinger Bands over the last `period` closes:
// SMA +/- 2 standard deviations, band width as a percentage of the middle
// band, and the position of the current close relative to the +/-1 sigma
// bands. When fewer than `period` closes are available the whole series is
// used as the window.
func Bollinger(closes []float64, period int) domain.BollingerBands {
	if len(closes) == 0 || period <= 0 {
		return domain.BollingerBands{Position: domain.BandMiddle}
	}

	window := period
	if len(closes) < window {
		window = len(closes)
	}

	middle := SMA(closes, window)
	sigma := stdDev(closes, window, middle)

	upper := middle + 2*sigma
	lower := middle - 2*sigma

	width := 0.0
	if middle != 0 {
		width = (upper - lower) / middle * 100
	}

	current := closes[len(closes)-1]
	position := domain.BandMiddle
	switch {
	case current > middle+sigma:
		position = domain.BandUpper
	case current < middle-sigma:
		position = domain.BandLower
	}

	return domain.BollingerBands{
		Upper:    upper,
		Middle:   middle,
		Lower:    lower,
		Width:    width,
		Position: position,
	}
}
