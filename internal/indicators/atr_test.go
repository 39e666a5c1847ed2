package indicators

import "testing"

func TestATR(t *testing.T) {
	makeBars := func(n int, spread float64) (highs, lows, closes []float64) {
		for i := 0; i < n; i++ {
			closes = append(closes, 100)
			highs = append(highs, 100+spread/2)
			lows = append(lows, 100-spread/2)
		}
		return
	}

	t.Run("constant spread", func(t *testing.T) {
		highs, lows, closes := makeBars(20, 2)
		got := ATR(highs, lows, closes, 14)
		if !almostEqual(got, 2) {
			t.Errorf("ATR() = %v, expected 2", got)
		}
	})

	t.Run("insufficient data returns zero", func(t *testing.T) {
		highs, lows, closes := makeBars(14, 2)
		got := ATR(highs, lows, closes, 14)
		if got != 0 {
			t.Errorf("ATR() = %v with 14 bars, expected 0", got)
		}
	})

	t.Run("gap dominates the true range", func(t *testing.T) {
		// A 10-point gap down: |high - prevClose| and |low - prevClose|
		// both exceed the intrabar range.
		highs := []float64{101, 91}
		lows := []float64{99, 89}
		closes := []float64{100, 90}
		got := ATR(highs, lows, closes, 1)
		if !almostEqual(got, 11) {
			t.Errorf("ATR() = %v, expected 11 (gap true range)", got)
		}
	})
}

func TestATR_NonNegative(t *testing.T) {
	highs := []float64{10, 12, 9, 14, 11, 13, 10, 15, 12, 16, 11, 14, 13, 17, 12, 18}
	lows := []float64{8, 9, 7, 10, 9, 10, 8, 11, 10, 12, 9, 11, 10, 13, 10, 14}
	closes := []float64{9, 11, 8, 12, 10, 12, 9, 13, 11, 14, 10, 13, 12, 15, 11, 16}

	for period := 1; period < len(closes); period++ {
		if got := ATR(highs, lows, closes, period); got < 0 {
			t.Errorf("ATR(period=%d) = %v, expected non-negative", period, got)
		}
	}
}
