package analysis

import "tradePulseBot/internal/domain"

// AnalyzeVolume grades the last five bars' volume against the whole window
// and classifies the drift between the two window halves.
func AnalyzeVolume(volumes []float64) domain.VolumeAnalysis {
	out := domain.VolumeAnalysis{
		Profile:  domain.VolumeAverage,
		Trend:    domain.VolumeNeutral,
		Strength: 45,
		Ratio:    1,
	}
	if len(volumes) == 0 {
		return out
	}

	total := 0.0
	for _, v := range volumes {
		total += v
	}
	avgAll := total / float64(len(volumes))

	recent := volumes
	if len(volumes) > 5 {
		recent = volumes[len(volumes)-5:]
	}
	recentSum := 0.0
	for _, v := range recent {
		recentSum += v
	}
	avgRecent := recentSum / float64(len(recent))

	if avgAll > 0 {
		out.Ratio = avgRecent / avgAll
	}

	switch {
	case out.Ratio >= 1.5:
		out.Profile = domain.VolumeHigh
		out.Strength = 80
	case out.Ratio >= 1.2:
		out.Profile = domain.VolumeAboveAverage
		out.Strength = 65
	case out.Ratio >= 0.85:
		out.Profile = domain.VolumeAverage
		out.Strength = 45
	case out.Ratio >= 0.7:
		out.Profile = domain.VolumeBelowAverage
		out.Strength = 30
	default:
		out.Profile = domain.VolumeLow
		out.Strength = 20
	}

	// Trend: does the second half of the window trade meaningfully more or
	// less than the first half.
	if len(volumes) >= 4 {
		mid := len(volumes) / 2
		firstAvg := average(volumes[:mid])
		secondAvg := average(volumes[mid:])
		if firstAvg > 0 {
			switch {
			case secondAvg > firstAvg*1.2:
				out.Trend = domain.VolumeIncreasing
			case secondAvg < firstAvg*0.8:
				out.Trend = domain.VolumeDecreasing
			}
		}
	}

	return out
}

func average(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range series {
		total += v
	}
	return total / float64(len(series))
}
