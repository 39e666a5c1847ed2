package analysis

import (
	"testing"

	"tradePulseBot/internal/domain"
)

func risingSeries(n int, start, step float64) (closes, highs, lows []float64) {
	for i := 0; i < n; i++ {
		c := start + float64(i)*step
		closes = append(closes, c)
		highs = append(highs, c+1)
		lows = append(lows, c-1)
	}
	return
}

func TestClassifyTrend(t *testing.T) {
	t.Run("strong uptrend", func(t *testing.T) {
		closes, highs, lows := risingSeries(60, 100, 1)
		got := ClassifyTrend(closes, highs, lows, closes[len(closes)-1]+2)

		if got.Direction != domain.TrendUp {
			t.Errorf("direction = %v, expected uptrend", got.Direction)
		}
		if got.Strength != domain.TrendStrong {
			t.Errorf("strength = %v, expected strong", got.Strength)
		}
		if got.EMAStack != domain.StackBullish {
			t.Errorf("emaStack = %v, expected bullish", got.EMAStack)
		}
	})

	t.Run("strong downtrend", func(t *testing.T) {
		closes, highs, lows := risingSeries(60, 160, -1)
		got := ClassifyTrend(closes, highs, lows, closes[len(closes)-1]-2)

		if got.Direction != domain.TrendDown {
			t.Errorf("direction = %v, expected downtrend", got.Direction)
		}
		if got.Strength != domain.TrendStrong {
			t.Errorf("strength = %v, expected strong", got.Strength)
		}
		if got.EMAStack != domain.StackBearish {
			t.Errorf("emaStack = %v, expected bearish", got.EMAStack)
		}
	})

	t.Run("moderate uptrend from price vs EMA20", func(t *testing.T) {
		// Choppy closes around 100: no higher-high pattern, price above EMA20.
		closes := []float64{100, 101, 99, 100, 102, 98, 100, 101, 99, 100,
			100, 101, 99, 100, 102, 98, 100, 101, 99, 100, 100, 101, 99, 100, 100}
		highs := make([]float64, len(closes))
		lows := make([]float64, len(closes))
		for i, c := range closes {
			highs[i] = c + 1
			lows[i] = c - 1
		}
		// Break the monotone last-3 pattern explicitly.
		highs[len(highs)-2] = highs[len(highs)-1] + 3

		got := ClassifyTrend(closes, highs, lows, 103)
		if got.Direction != domain.TrendUp {
			t.Errorf("direction = %v, expected uptrend", got.Direction)
		}
		if got.Strength != domain.TrendModerate {
			t.Errorf("strength = %v, expected moderate", got.Strength)
		}
	})

	t.Run("short series keeps mixed stack", func(t *testing.T) {
		closes, highs, lows := risingSeries(30, 100, 1)
		got := ClassifyTrend(closes, highs, lows, 140)
		if got.EMAStack != domain.StackMixed {
			t.Errorf("emaStack = %v with 30 points, expected mixed", got.EMAStack)
		}
	})

	t.Run("empty series is sideways", func(t *testing.T) {
		got := ClassifyTrend(nil, nil, nil, 100)
		if got.Direction != domain.TrendSideways || got.Strength != domain.TrendWeak {
			t.Errorf("got %+v, expected weak sideways", got)
		}
	})
}
