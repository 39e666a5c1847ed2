package domain

// Direction represents the side of an options-style trade (CALL or PUT).
type Direction string

const (
	Call Direction = "CALL"
	Put  Direction = "PUT"
)

// IsValid reports whether the direction is one of the known values.
func (d Direction) IsValid() bool {
	return d == Call || d == Put
}

// AlertKind identifies the lifecycle transition an alert reports.
type AlertKind string

const (
	AlertTP1      AlertKind = "TP1"
	AlertTP2      AlertKind = "TP2"
	AlertSL       AlertKind = "SL"
	AlertTimeStop AlertKind = "TIME_STOP"
)

// TradingStyle selects the timeframe/target profile used for analysis.
type TradingStyle string

const (
	StyleScalping   TradingStyle = "scalping"
	StyleDayTrading TradingStyle = "daytrading"
	StyleSwing      TradingStyle = "swing"
)
