package trademonitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tradePulseBot/internal/domain"
	"tradePulseBot/internal/ports"
)

// Monitor schedules one polling loop per watched symbol. Each loop runs on
// its own ticker, so distinct symbols are evaluated concurrently and
// independently, while ticks for one symbol are strictly sequential.
type Monitor struct {
	store        *TradeStore
	provider     ports.MarketDataProvider
	publisher    ports.AlertPublisher
	logger       ports.Logger
	pollInterval time.Duration
	timeStop     time.Duration

	mu      sync.Mutex
	watches map[string]*watch
	wg      sync.WaitGroup
}

// watch is the cancellation handle for one symbol's loop. Kept behind a
// pointer so release can tell whether the symbol was re-watched meanwhile.
type watch struct {
	cancel context.CancelFunc
}

// Config holds the dependencies and tuning for a Monitor.
type Config struct {
	Store        *TradeStore
	Provider     ports.MarketDataProvider
	Publisher    ports.AlertPublisher
	Logger       ports.Logger
	PollInterval time.Duration // Tick cadence per symbol (default 15s)
	TimeStop     time.Duration // Maximum trade age before a time-stop (default 30m)
}

// New creates a Monitor after validating its dependencies.
func New(cfg Config) (*Monitor, error) {
	if cfg.Store == nil || cfg.Provider == nil || cfg.Publisher == nil || cfg.Logger == nil {
		return nil, fmt.Errorf("missing required dependencies for Monitor")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Second
	}
	if cfg.TimeStop <= 0 {
		cfg.TimeStop = 30 * time.Minute
	}
	return &Monitor{
		store:        cfg.Store,
		provider:     cfg.Provider,
		publisher:    cfg.Publisher,
		logger:       cfg.Logger,
		pollInterval: cfg.PollInterval,
		timeStop:     cfg.TimeStop,
		watches:      make(map[string]*watch),
	}, nil
}

// Watch starts (or restarts) the monitoring loop for a symbol. An existing
// loop for the same symbol is cancelled first, so a re-entered trade never
// has two evaluators.
func (m *Monitor) Watch(ctx context.Context, symbol string) {
	loopCtx, cancel := context.WithCancel(ctx)
	w := &watch{cancel: cancel}

	m.mu.Lock()
	if prev, ok := m.watches[symbol]; ok {
		prev.cancel()
	}
	m.watches[symbol] = w
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.release(symbol, w)
		m.run(loopCtx, symbol)
	}()
}

// Unwatch cancels the monitoring loop for a symbol, if any.
func (m *Monitor) Unwatch(symbol string) {
	m.mu.Lock()
	if w, ok := m.watches[symbol]; ok {
		w.cancel()
		delete(m.watches, symbol)
	}
	m.mu.Unlock()
}

// Stop cancels every loop and waits for them to exit.
func (m *Monitor) Stop() {
	m.mu.Lock()
	for _, w := range m.watches {
		w.cancel()
	}
	m.mu.Unlock()
	m.wg.Wait()
}

// release drops the cancellation handle after a loop exits, unless the
// symbol was re-watched with a new handle in the meantime.
func (m *Monitor) release(symbol string, w *watch) {
	w.cancel()
	m.mu.Lock()
	if m.watches[symbol] == w {
		delete(m.watches, symbol)
	}
	m.mu.Unlock()
}

// run is the per-symbol polling loop. The ticker guarantees sequential
// ticks; a slow evaluation simply delays the next one rather than running
// concurrently with it.
func (m *Monitor) run(ctx context.Context, symbol string) {
	m.logger.Info(ctx, "Trade monitor started", map[string]interface{}{
		"symbol":       symbol,
		"pollInterval": m.pollInterval.String(),
	})

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug(ctx, "Trade monitor cancelled", map[string]interface{}{"symbol": symbol})
			return
		case <-ticker.C:
			if done := m.evaluateTick(ctx, symbol, time.Now()); done {
				m.logger.Info(ctx, "Trade monitor finished", map[string]interface{}{"symbol": symbol})
				return
			}
		}
	}
}

// evaluateTick runs one evaluation for the symbol and reports whether the
// loop should terminate. A failed price fetch never flips a flag and never
// stops the loop; the next tick retries.
func (m *Monitor) evaluateTick(ctx context.Context, symbol string, now time.Time) bool {
	trade, ok := m.store.Get(symbol)
	if !ok {
		// Trade was closed out from under us.
		return true
	}
	if trade.Terminal() {
		return true
	}

	quote, err := m.provider.GetQuote(ctx, symbol)
	if err != nil {
		m.logger.Warn(ctx, "Price fetch failed, retrying next tick", map[string]interface{}{
			"symbol": symbol,
			"error":  err.Error(),
		})
		return false
	}
	price := quote.LastPrice()

	// Transition order is fixed: TP1, TP2, SL, time-stop. Take-profit hits
	// keep the loop alive; the stop and the time-stop terminate it.
	if !trade.TP1Hit && favorable(trade.Direction, price, trade.TP1) {
		if updated, fresh := m.store.markHit(symbol, domain.AlertTP1); fresh {
			trade = updated
			m.publisher.Publish(ctx, domain.NewAlert(domain.AlertTP1, &trade, price, now))
		}
	}

	if !trade.TP2Hit && favorable(trade.Direction, price, trade.TP2) {
		if updated, fresh := m.store.markHit(symbol, domain.AlertTP2); fresh {
			trade = updated
			m.publisher.Publish(ctx, domain.NewAlert(domain.AlertTP2, &trade, price, now))
		}
	}

	if !trade.SLHit && adverse(trade.Direction, price, trade.SL) {
		if updated, fresh := m.store.markHit(symbol, domain.AlertSL); fresh {
			trade = updated
			m.publisher.Publish(ctx, domain.NewAlert(domain.AlertSL, &trade, price, now))
		}
		return true
	}

	if now.Sub(trade.EntryTime) >= m.timeStop {
		m.publisher.Publish(ctx, domain.NewAlert(domain.AlertTimeStop, &trade, price, now))
		return true
	}

	return false
}

// favorable reports whether price crossed a take-profit level in the
// trade's direction.
func favorable(direction domain.Direction, price, target float64) bool {
	if direction == domain.Put {
		return price <= target
	}
	return price >= target
}

// adverse reports whether price crossed the stop level against the trade.
func adverse(direction domain.Direction, price, stop float64) bool {
	if direction == domain.Put {
		return price >= stop
	}
	return price <= stop
}
