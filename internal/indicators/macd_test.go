package indicators

import "testing"

func TestMACD_InsufficientData(t *testing.T) {
	// Below 35 points the result must be an exact zero value.
	for _, length := range []int{0, 1, 26, 34} {
		series := make([]float64, length)
		for i := range series {
			series[i] = 100 + float64(i)
		}
		got := MACD(series)
		if got.Value != 0 || got.Signal != 0 || got.Histogram != 0 {
			t.Errorf("MACD(len=%d) = %+v, expected exact zero result", length, got)
		}
	}
}

func TestMACD_ConstantSeries(t *testing.T) {
	got := MACD(constantSeries(250, 60))
	if !almostEqual(got.Value, 0) || !almostEqual(got.Signal, 0) || !almostEqual(got.Histogram, 0) {
		t.Errorf("MACD(constant) = %+v, expected zeroes", got)
	}
}

func TestMACD_TrendingSeries(t *testing.T) {
	series := make([]float64, 60)
	for i := range series {
		series[i] = 100 + float64(i)*0.5
	}

	got := MACD(series)
	if got.Value <= 0 {
		t.Errorf("MACD value = %v on a rising series, expected positive", got.Value)
	}
	if !almostEqual(got.Histogram, got.Value-got.Signal) {
		t.Errorf("histogram = %v, expected value-signal = %v", got.Histogram, got.Value-got.Signal)
	}
}

func TestMACD_SignalLagsValue(t *testing.T) {
	// After a sharp late acceleration the signal EMA must lag the MACD line,
	// leaving a positive histogram.
	series := make([]float64, 60)
	for i := range series {
		series[i] = 100
		if i >= 50 {
			series[i] = 100 + float64(i-49)*2
		}
	}

	got := MACD(series)
	if got.Histogram <= 0 {
		t.Errorf("histogram = %v after late acceleration, expected positive", got.Histogram)
	}
}
