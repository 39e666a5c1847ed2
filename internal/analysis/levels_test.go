package analysis

import (
	"math"
	"testing"

	"tradePulseBot/internal/domain"
)

func barsFromLows(lows []float64) []*domain.Bar {
	bars := make([]*domain.Bar, len(lows))
	for i, l := range lows {
		bars[i] = &domain.Bar{
			Interval: "5min",
			Open:     100,
			High:     200, // Flat highs: no swing highs
			Low:      l,
			Close:    100,
			Volume:   1000,
		}
	}
	return bars
}

func TestDetectLevels_SwingLows(t *testing.T) {
	// Swing lows at 94, 92, 90 and 86; the cap keeps three.
	lows := []float64{100, 96, 100, 101, 94, 101, 100, 92, 100, 101, 90, 101, 100, 88, 100, 101, 86, 101, 100}
	supports, resistances := DetectLevels(barsFromLows(lows), 100.5, 0)

	if len(supports) != 3 {
		t.Fatalf("got %d supports, expected 3 (capped)", len(supports))
	}
	if len(resistances) != 0 {
		t.Errorf("got %d resistances from flat highs, expected 0", len(resistances))
	}
	for _, s := range supports {
		if s.Price >= 100.5 {
			t.Errorf("support %v is not below the current price", s.Price)
		}
		if s.Type != domain.LevelSwingLow {
			t.Errorf("support type = %v, expected swing-low", s.Type)
		}
	}
}

func TestDetectLevels_Separation(t *testing.T) {
	// Two swing lows within 0.15% of each other must collapse into one.
	lows := []float64{100, 96, 100, 101, 94.00, 101, 100, 94.05, 100, 101, 90, 101, 100}
	supports, _ := DetectLevels(barsFromLows(lows), 100.5, 0)

	for i := range supports {
		for j := i + 1; j < len(supports); j++ {
			gap := math.Abs(supports[i].Price-supports[j].Price) / supports[j].Price
			if gap <= 0.0015 {
				t.Errorf("supports %v and %v are within 0.15%% of each other", supports[i].Price, supports[j].Price)
			}
		}
	}
}

func TestDetectLevels_VWAP(t *testing.T) {
	flat := barsFromLows([]float64{100, 100, 100, 100, 100, 100, 100})

	supports, resistances := DetectLevels(flat, 100.5, 99)
	if len(supports) != 1 || supports[0].Type != domain.LevelVWAP {
		t.Fatalf("expected a single vwap support, got %+v", supports)
	}
	if len(resistances) != 0 {
		t.Errorf("expected no resistances, got %+v", resistances)
	}

	supports, resistances = DetectLevels(flat, 100.5, 102)
	if len(supports) != 0 {
		t.Errorf("expected no supports, got %+v", supports)
	}
	if len(resistances) != 1 || resistances[0].Type != domain.LevelVWAP {
		t.Fatalf("expected a single vwap resistance, got %+v", resistances)
	}
}

func TestDetectLevels_ConfluenceStrength(t *testing.T) {
	// Three other lows within 0.2% of the 94 swing low grade it strong.
	lows := []float64{100, 94.1, 100, 101, 94.0, 101, 94.05, 100, 94.12, 101, 100}
	supports, _ := DetectLevels(barsFromLows(lows), 100.5, 0)

	if len(supports) == 0 {
		t.Fatal("expected at least one support")
	}
	if supports[0].Strength != domain.LevelStrong {
		t.Errorf("strength = %v, expected strong for a confluent level", supports[0].Strength)
	}
}
