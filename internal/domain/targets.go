package domain

// TargetSet holds the style-based, ATR-adjusted profit targets and stop for
// a prospective entry. Monetary values are rounded to 2 decimals; the
// percent fields are pre-formatted for display.
type TargetSet struct {
	Entry         float64
	TP1           float64
	TP2           float64
	SL            float64
	TP1Percent    string // e.g. "0.30%"
	TP2Percent    string
	SLPercent     string
	RR1           float64 // (TP1-Entry)/(Entry-SL)
	RR2           float64 // (TP2-Entry)/(Entry-SL)
	RiskAmount    float64 // Entry - SL
	Reward1Amount float64 // TP1 - Entry
	Reward2Amount float64 // TP2 - Entry
	HoldTime      string  // From the style config
	MinRR         float64 // From the style config
}
