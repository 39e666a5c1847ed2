package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trade represents a user-declared open trade being monitored for target
// and stop transitions. The hit flags flip to true at most once each; they
// are the de-duplication mechanism for alerts.
type Trade struct {
	Symbol     string
	Direction  Direction
	EntryPrice float64
	EntryTime  time.Time
	TP1        float64
	TP2        float64
	SL         float64
	TP1Hit     bool
	TP2Hit     bool
	SLHit      bool
}

// Terminal reports whether the trade reached a state that stops monitoring.
func (t *Trade) Terminal() bool {
	return t.SLHit
}

// PnLPercent returns the signed percent gain of the trade at the given
// price. PUT trades profit when price falls.
func (t *Trade) PnLPercent(price float64) float64 {
	if t.EntryPrice == 0 {
		return 0
	}
	pnl := (price - t.EntryPrice) / t.EntryPrice * 100
	if t.Direction == Put {
		pnl = -pnl
	}
	return pnl
}

// Alert is a trade lifecycle event emitted toward the messaging frontend.
// Each transition produces exactly one alert.
type Alert struct {
	ID        string
	Kind      AlertKind
	Symbol    string
	Direction Direction
	Price     float64
	Timestamp time.Time
}

// NewAlert builds an alert for a lifecycle transition of the given trade.
func NewAlert(kind AlertKind, trade *Trade, price float64, at time.Time) Alert {
	return Alert{
		ID:        uuid.NewString(),
		Kind:      kind,
		Symbol:    trade.Symbol,
		Direction: trade.Direction,
		Price:     price,
		Timestamp: at,
	}
}
