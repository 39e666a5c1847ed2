package analysis

import (
	"testing"

	"tradePulseBot/internal/domain"
)

func TestAnalyzeVolume(t *testing.T) {
	withRecent := func(recent float64) []float64 {
		volumes := make([]float64, 20)
		for i := range volumes {
			volumes[i] = 100
		}
		for i := 15; i < 20; i++ {
			volumes[i] = recent
		}
		return volumes
	}

	tests := []struct {
		name     string
		volumes  []float64
		profile  domain.VolumeProfile
		strength float64
		trend    domain.VolumeTrend
	}{
		{
			name:     "volume spike grades high",
			volumes:  withRecent(200), // ratio 200/125 = 1.6
			profile:  domain.VolumeHigh,
			strength: 80,
			trend:    domain.VolumeIncreasing,
		},
		{
			name:     "mild pickup grades above average",
			volumes:  withRecent(135), // ratio 135/108.75 ~ 1.24
			profile:  domain.VolumeAboveAverage,
			strength: 65,
			trend:    domain.VolumeNeutral,
		},
		{
			name:     "flat volume grades average",
			volumes:  withRecent(100),
			profile:  domain.VolumeAverage,
			strength: 45,
			trend:    domain.VolumeNeutral,
		},
		{
			name:     "fade grades below average",
			volumes:  withRecent(70), // ratio 70/92.5 ~ 0.757
			profile:  domain.VolumeBelowAverage,
			strength: 30,
			trend:    domain.VolumeNeutral,
		},
		{
			name:     "collapse grades low",
			volumes:  withRecent(50), // ratio 50/87.5 ~ 0.571
			profile:  domain.VolumeLow,
			strength: 20,
			trend:    domain.VolumeDecreasing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeVolume(tt.volumes)
			if got.Profile != tt.profile {
				t.Errorf("profile = %v, expected %v", got.Profile, tt.profile)
			}
			if got.Strength != tt.strength {
				t.Errorf("strength = %v, expected %v", got.Strength, tt.strength)
			}
			if got.Trend != tt.trend {
				t.Errorf("trend = %v, expected %v", got.Trend, tt.trend)
			}
		})
	}
}

func TestAnalyzeVolume_Empty(t *testing.T) {
	got := AnalyzeVolume(nil)
	if got.Profile != domain.VolumeAverage || got.Trend != domain.VolumeNeutral || got.Ratio != 1 {
		t.Errorf("got %+v, expected neutral defaults", got)
	}
}
