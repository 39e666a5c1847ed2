package indicators

import (
	"math"
	"testing"
)

const floatTolerance = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

func constantSeries(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestSMA(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		period   int
		expected float64
	}{
		{
			name:     "simple average of last period",
			series:   []float64{1, 2, 3, 4, 5},
			period:   3,
			expected: 4,
		},
		{
			name:     "full window",
			series:   []float64{2, 4, 6},
			period:   3,
			expected: 4,
		},
		{
			name:     "insufficient data returns zero",
			series:   []float64{1, 2},
			period:   3,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SMA(tt.series, tt.period)
			if !almostEqual(got, tt.expected) {
				t.Errorf("SMA() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestEMA(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		period   int
		expected float64
	}{
		{
			name:     "constant series returns the constant",
			series:   constantSeries(42.5, 30),
			period:   10,
			expected: 42.5,
		},
		{
			name:     "constant series with period equal to length",
			series:   constantSeries(7, 5),
			period:   5,
			expected: 7,
		},
		{
			name:     "short series falls back to last element",
			series:   []float64{10, 11, 12},
			period:   5,
			expected: 12,
		},
		{
			name:     "empty series returns zero",
			series:   nil,
			period:   5,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EMA(tt.series, tt.period)
			if !almostEqual(got, tt.expected) {
				t.Errorf("EMA() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestEMA_TracksTrend(t *testing.T) {
	// On a rising series the EMA must sit between the seed average and the
	// latest value.
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got := EMA(series, 5)
	if got <= 3 || got >= 10 {
		t.Errorf("EMA() = %v, expected a value between the seed and the last element", got)
	}
}
