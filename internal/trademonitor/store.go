// Package trademonitor owns the in-memory registry of user-declared trades
// and the per-symbol monitoring loops that turn price ticks into TP1/TP2/
// SL/time-stop alerts.
package trademonitor

import (
	"math"
	"sort"
	"sync"
	"time"

	"tradePulseBot/internal/domain"
)

// Fixed monitoring percentages applied on /enter. This path is deliberately
// independent of the style-based ATR targets used in analysis; both exist
// in the system.
const (
	monitorTP1Pct = 0.006
	monitorTP2Pct = 0.012
	monitorSLPct  = 0.0075
)

// MonitorTargets computes the fixed-percentage TP1/TP2/SL levels for an
// entry. CALL targets sit above the entry with the stop below; PUT levels
// are mirrored. All levels are rounded to 2 decimals.
func MonitorTargets(direction domain.Direction, entryPrice float64) (tp1, tp2, sl float64) {
	if direction == domain.Put {
		return round2(entryPrice * (1 - monitorTP1Pct)),
			round2(entryPrice * (1 - monitorTP2Pct)),
			round2(entryPrice * (1 + monitorSLPct))
	}
	return round2(entryPrice * (1 + monitorTP1Pct)),
		round2(entryPrice * (1 + monitorTP2Pct)),
		round2(entryPrice * (1 - monitorSLPct))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TradeStore is the registry of active trades, one per symbol. It is safe
// for concurrent use; all accessors work on copies so callers never share
// mutable state with the monitor loops.
type TradeStore struct {
	mu     sync.RWMutex
	trades map[string]*domain.Trade
}

// NewStore creates an empty trade registry.
func NewStore() *TradeStore {
	return &TradeStore{trades: make(map[string]*domain.Trade)}
}

// Enter registers a trade for the symbol, replacing any existing one, and
// returns a copy of the stored trade with its monitor targets set.
func (s *TradeStore) Enter(symbol string, direction domain.Direction, entryPrice float64, now time.Time) domain.Trade {
	tp1, tp2, sl := MonitorTargets(direction, entryPrice)
	trade := &domain.Trade{
		Symbol:     symbol,
		Direction:  direction,
		EntryPrice: entryPrice,
		EntryTime:  now,
		TP1:        tp1,
		TP2:        tp2,
		SL:         sl,
	}

	s.mu.Lock()
	s.trades[symbol] = trade
	s.mu.Unlock()

	return *trade
}

// Close removes the trade for the symbol unconditionally, in any state.
// It returns the removed trade and whether one existed.
func (s *TradeStore) Close(symbol string) (domain.Trade, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trade, ok := s.trades[symbol]
	if !ok {
		return domain.Trade{}, false
	}
	delete(s.trades, symbol)
	return *trade, true
}

// Get returns a copy of the trade for the symbol, if any.
func (s *TradeStore) Get(symbol string) (domain.Trade, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trade, ok := s.trades[symbol]
	if !ok {
		return domain.Trade{}, false
	}
	return *trade, true
}

// List returns copies of all active trades ordered by symbol.
func (s *TradeStore) List() []domain.Trade {
	s.mu.RLock()
	out := make([]domain.Trade, 0, len(s.trades))
	for _, t := range s.trades {
		out = append(out, *t)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// markHit flips the hit flag for the given transition. Returns the updated
// trade copy and whether the flag was newly set (false when the trade is
// gone or the flag was already set).
func (s *TradeStore) markHit(symbol string, kind domain.AlertKind) (domain.Trade, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trade, ok := s.trades[symbol]
	if !ok {
		return domain.Trade{}, false
	}

	switch kind {
	case domain.AlertTP1:
		if trade.TP1Hit {
			return *trade, false
		}
		trade.TP1Hit = true
	case domain.AlertTP2:
		if trade.TP2Hit {
			return *trade, false
		}
		trade.TP2Hit = true
	case domain.AlertSL:
		if trade.SLHit {
			return *trade, false
		}
		trade.SLHit = true
	default:
		return *trade, false
	}
	return *trade, true
}
