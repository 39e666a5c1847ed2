package domain

import "fmt"

// StyleConfig holds the static timeframe and target parameters for one
// trading style. Style configs are never mutated at runtime.
type StyleConfig struct {
	Style         TradingStyle
	HTFInterval   string  // Higher-timeframe bar interval for trend bias
	LTFInterval   string  // Lower-timeframe bar interval for entry timing
	LookbackDays  int     // History window fetched for the HTF series
	TP1Pct        float64 // First take-profit distance (e.g. 0.003 for 0.3%)
	TP2Pct        float64 // Second take-profit distance
	SLPct         float64 // Stop-loss distance
	MinRR         float64 // Minimum acceptable reward-to-risk ratio
	HoldTimeLabel string  // Human-readable expected hold time
}

// styleConfigs is the fixed style table. Values mirror the profiles the bot
// quotes to users; keep them in sync with the README when changed.
var styleConfigs = map[TradingStyle]StyleConfig{
	StyleScalping: {
		Style:         StyleScalping,
		HTFInterval:   "5min",
		LTFInterval:   "1min",
		LookbackDays:  5,
		TP1Pct:        0.003,
		TP2Pct:        0.006,
		SLPct:         0.005,
		MinRR:         1.5,
		HoldTimeLabel: "5-30 minutes",
	},
	StyleDayTrading: {
		Style:         StyleDayTrading,
		HTFInterval:   "15min",
		LTFInterval:   "5min",
		LookbackDays:  30,
		TP1Pct:        0.005,
		TP2Pct:        0.010,
		SLPct:         0.0075,
		MinRR:         1.5,
		HoldTimeLabel: "1-4 hours",
	},
	StyleSwing: {
		Style:         StyleSwing,
		HTFInterval:   "daily",
		LTFInterval:   "15min",
		LookbackDays:  180,
		TP1Pct:        0.020,
		TP2Pct:        0.040,
		SLPct:         0.015,
		MinRR:         2.0,
		HoldTimeLabel: "2-10 days",
	},
}

// ConfigForStyle returns the static configuration for a trading style.
func ConfigForStyle(style TradingStyle) (StyleConfig, error) {
	cfg, ok := styleConfigs[style]
	if !ok {
		return StyleConfig{}, fmt.Errorf("unknown trading style: %q", style)
	}
	return cfg, nil
}

// ParseStyle converts a user-supplied style name into a TradingStyle.
func ParseStyle(s string) (TradingStyle, error) {
	switch TradingStyle(s) {
	case StyleScalping, StyleDayTrading, StyleSwing:
		return TradingStyle(s), nil
	default:
		return "", fmt.Errorf("unknown trading style: %q", s)
	}
}
