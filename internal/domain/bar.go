package domain

import "time"

// Bar represents a single OHLCV candlestick data point.
type Bar struct {
	Timestamp time.Time // Start time of the interval
	Symbol    string    // Trading symbol
	Interval  string    // Bar interval (e.g., "5min", "daily")
	Open      float64   // Opening price
	High      float64   // Highest price
	Low       float64   // Lowest price
	Close     float64   // Closing price
	Volume    float64   // Trading volume
}

// Closes extracts the closing prices of a bar sequence, preserving order.
func Closes(bars []*Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// Highs extracts the high prices of a bar sequence, preserving order.
func Highs(bars []*Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.High
	}
	return out
}

// Lows extracts the low prices of a bar sequence, preserving order.
func Lows(bars []*Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Low
	}
	return out
}

// Volumes extracts the traded volumes of a bar sequence, preserving order.
func Volumes(bars []*Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Volume
	}
	return out
}
