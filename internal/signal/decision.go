package signal

import (
	"time"

	"tradePulseBot/internal/domain"
)

// Verdict is the gating outcome for a prospective trade suggestion.
type Verdict string

const (
	// VerdictBlocked: bias commentary only, no trade suggestion.
	VerdictBlocked Verdict = "blocked"
	// VerdictReduced: tradeable with a reduced position size signal.
	VerdictReduced Verdict = "reduced"
	// VerdictFull: full trade signal.
	VerdictFull Verdict = "full"
)

// Gates holds the confidence thresholds for the gating policy.
type Gates struct {
	BlockBelow int // Confidence below this blocks the suggestion
	FullAt     int // Confidence at or above this gives a full signal
}

// DefaultGates is the policy the system converged on: <65 block, 65-74
// reduced size, >=75 full signal.
var DefaultGates = Gates{BlockBelow: 65, FullAt: 75}

// Decision is the complete gating result for one analysis pass.
type Decision struct {
	Confidence     int
	Verdict        Verdict
	Tradeable      bool
	Reasons        []string
	AlignmentScore int
	VWAPExtended   bool
	Session        SessionCheck
}

// Evaluate applies the confidence gate and the advisory filters to an
// HTF/LTF snapshot pair. The LTF snapshot may be nil when lower-timeframe
// data was unavailable; scalping is then force-blocked regardless of
// confidence, since a scalp entry must never be suggested without LTF
// confirmation.
func Evaluate(htf, ltf *domain.IndicatorSnapshot, style domain.StyleConfig, gates Gates, now time.Time, loc *time.Location) Decision {
	d := Decision{
		Confidence:     ComputeConfidence(htf),
		AlignmentScore: AlignmentScore(htf, ltf),
	}

	if style.Style == domain.StyleScalping && ltf == nil {
		d.Verdict = VerdictBlocked
		d.Reasons = append(d.Reasons, "no lower-timeframe data for scalp confirmation")
		return d
	}

	switch {
	case d.Confidence < gates.BlockBelow:
		d.Verdict = VerdictBlocked
		d.Reasons = append(d.Reasons, "confidence below tradeable threshold")
	case d.Confidence < gates.FullAt:
		d.Verdict = VerdictReduced
		d.Tradeable = true
		d.Reasons = append(d.Reasons, "moderate confidence, reduced size")
	default:
		d.Verdict = VerdictFull
		d.Tradeable = true
	}

	// Advisory filters: they annotate the decision without changing the
	// verdict.
	ref := htf
	if ltf != nil {
		ref = ltf
	}
	if IsVWAPExtended(style.Style, ref.Price, ref.VWAP) {
		d.VWAPExtended = true
		d.Reasons = append(d.Reasons, "price extended from VWAP, avoid chasing")
	}

	if style.Style == domain.StyleScalping {
		d.Session = CheckSession(now, loc)
		if d.Session.Unfavorable {
			d.Reasons = append(d.Reasons, "unfavorable session window: "+d.Session.Reason)
		}
	}

	return d
}
