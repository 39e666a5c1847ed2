package analysis

import (
	"math"
	"sort"

	"tradePulseBot/internal/domain"
)

const (
	// Confluence: other extremes within 0.2% of a candidate price count
	// toward its strength.
	confluenceTolerance = 0.002
	// Candidates within 0.15% of each other are considered the same level.
	dedupTolerance = 0.0015
	// At most this many levels per side are reported.
	maxLevels = 3
)

// candidate is an undeduplicated swing level with its raw confluence count.
type candidate struct {
	price     float64
	strength  int
	levelType domain.LevelType
}

// DetectLevels finds support and resistance levels from swing lows/highs
// with confluence scoring, and places the VWAP on the matching side of the
// current price. Each returned list holds at most 3 entries, strongest
// first, with no two entries within 0.15% of each other.
func DetectLevels(bars []*domain.Bar, currentPrice, vwap float64) (supports, resistances []domain.PriceLevel) {
	highs := domain.Highs(bars)
	lows := domain.Lows(bars)

	var supportCands, resistanceCands []candidate

	// A swing low must be strictly below its two neighbours on each side
	// and below the current price; mirror rule for swing highs.
	for i := 2; i < len(bars)-2; i++ {
		low := lows[i]
		if low < lows[i-1] && low < lows[i-2] && low < lows[i+1] && low < lows[i+2] && low < currentPrice {
			supportCands = append(supportCands, candidate{
				price:     low,
				strength:  confluence(lows, i),
				levelType: domain.LevelSwingLow,
			})
		}

		high := highs[i]
		if high > highs[i-1] && high > highs[i-2] && high > highs[i+1] && high > highs[i+2] && high > currentPrice {
			resistanceCands = append(resistanceCands, candidate{
				price:     high,
				strength:  confluence(highs, i),
				levelType: domain.LevelSwingHigh,
			})
		}
	}

	// VWAP acts as a dynamic level on whichever side of price it sits.
	if vwap > 0 {
		vwapCand := candidate{price: vwap, strength: 2, levelType: domain.LevelVWAP}
		if vwap < currentPrice {
			supportCands = append(supportCands, vwapCand)
		} else if vwap > currentPrice {
			resistanceCands = append(resistanceCands, vwapCand)
		}
	}

	return finalizeLevels(supportCands, currentPrice), finalizeLevels(resistanceCands, currentPrice)
}

// confluence counts the other points within 0.2% of the extreme at index i.
func confluence(series []float64, i int) int {
	price := series[i]
	if price == 0 {
		return 0
	}
	count := 0
	for j, v := range series {
		if j == i {
			continue
		}
		if math.Abs(v-price)/price <= confluenceTolerance {
			count++
		}
	}
	return count
}

// finalizeLevels deduplicates nearby candidates keeping the strongest
// representative, orders by strength then proximity to price, caps the list
// and grades each survivor.
func finalizeLevels(cands []candidate, currentPrice float64) []domain.PriceLevel {
	// Strongest candidates claim their cluster first.
	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].strength != cands[b].strength {
			return cands[a].strength > cands[b].strength
		}
		return math.Abs(cands[a].price-currentPrice) < math.Abs(cands[b].price-currentPrice)
	})

	var kept []candidate
	for _, c := range cands {
		dup := false
		for _, k := range kept {
			if k.price != 0 && math.Abs(c.price-k.price)/k.price <= dedupTolerance {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, c)
		}
		if len(kept) == maxLevels {
			break
		}
	}

	levels := make([]domain.PriceLevel, 0, len(kept))
	for _, c := range kept {
		levels = append(levels, domain.PriceLevel{
			Price:    c.price,
			Strength: gradeLevel(c.strength),
			Type:     c.levelType,
		})
	}
	return levels
}

func gradeLevel(strength int) domain.LevelStrength {
	switch {
	case strength >= 3:
		return domain.LevelStrong
	case strength == 2:
		return domain.LevelModerate
	default:
		return domain.LevelWeak
	}
}
