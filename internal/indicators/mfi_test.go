package indicators

import "testing"

func TestMFI(t *testing.T) {
	rising := func(n int) (highs, lows, closes, volumes []float64) {
		for i := 0; i < n; i++ {
			price := 100 + float64(i)
			highs = append(highs, price+1)
			lows = append(lows, price-1)
			closes = append(closes, price)
			volumes = append(volumes, 1000)
		}
		return
	}

	t.Run("no negative flow returns 100", func(t *testing.T) {
		highs, lows, closes, volumes := rising(20)
		got := MFI(highs, lows, closes, volumes, 14)
		if !almostEqual(got, 100) {
			t.Errorf("MFI() = %v, expected 100", got)
		}
	})

	t.Run("insufficient data returns neutral", func(t *testing.T) {
		highs, lows, closes, volumes := rising(10)
		got := MFI(highs, lows, closes, volumes, 14)
		if !almostEqual(got, 50) {
			t.Errorf("MFI() = %v, expected 50", got)
		}
	})

	t.Run("balanced flow stays in bounds", func(t *testing.T) {
		var highs, lows, closes, volumes []float64
		price := 100.0
		for i := 0; i < 20; i++ {
			if i%2 == 0 {
				price += 2
			} else {
				price -= 1
			}
			highs = append(highs, price+0.5)
			lows = append(lows, price-0.5)
			closes = append(closes, price)
			volumes = append(volumes, 500+float64(i)*10)
		}
		got := MFI(highs, lows, closes, volumes, 14)
		if got < 0 || got > 100 {
			t.Errorf("MFI() = %v, expected a value in [0,100]", got)
		}
	})
}
