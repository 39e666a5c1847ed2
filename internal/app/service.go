package app

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"tradePulseBot/config"
	"tradePulseBot/internal/analysis"
	"tradePulseBot/internal/domain"
	"tradePulseBot/internal/ports"
	"tradePulseBot/internal/signal"
	"tradePulseBot/internal/trademonitor"
)

// ltfLookbackDays sizes the lower-timeframe fetch window per style. The LTF
// series only needs enough bars for the indicator windows, not the full
// higher-timeframe lookback.
var ltfLookbackDays = map[domain.TradingStyle]int{
	domain.StyleScalping:   1,
	domain.StyleDayTrading: 5,
	domain.StyleSwing:      30,
}

// AnalysisService orchestrates market analysis and trade monitoring.
type AnalysisService struct {
	cfg      *config.Config
	logger   ports.Logger
	provider ports.MarketDataProvider
	store    *trademonitor.TradeStore
	monitor  *trademonitor.Monitor
}

// NewAnalysisService creates a new application service instance.
func NewAnalysisService(
	cfg *config.Config,
	logger ports.Logger,
	provider ports.MarketDataProvider,
	store *trademonitor.TradeStore,
	monitor *trademonitor.Monitor,
) (*AnalysisService, error) {
	if cfg == nil || logger == nil || provider == nil || store == nil || monitor == nil {
		return nil, fmt.Errorf("missing required dependencies for AnalysisService")
	}
	return &AnalysisService{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
		store:    store,
		monitor:  monitor,
	}, nil
}

// Analysis is the complete result of one analysis pass for a symbol.
type Analysis struct {
	Symbol    string
	Style     domain.StyleConfig
	Quote     *domain.Quote
	HTF       *domain.IndicatorSnapshot
	LTF       *domain.IndicatorSnapshot // nil when lower-timeframe data was unavailable
	Decision  signal.Decision
	Direction domain.Direction  // Suggested direction, empty when none
	Targets   *domain.TargetSet // nil when the decision blocks the trade
}

// Analyze runs a full analysis pass: quote, both timeframe snapshots, the
// gating decision, and targets when the decision is tradeable. A failed
// lower-timeframe fetch degrades to a nil LTF snapshot instead of failing
// the whole analysis.
func (s *AnalysisService) Analyze(ctx context.Context, symbol string, style domain.TradingStyle) (*Analysis, error) {
	op := "Analyze"

	styleCfg, err := domain.ConfigForStyle(style)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w: %w", op, ports.ErrInvalidRequest, err)
	}

	quote, err := s.provider.GetQuote(ctx, symbol)
	if err != nil {
		s.logger.Error(ctx, err, op+": failed to fetch quote", map[string]interface{}{"symbol": symbol})
		return nil, err
	}

	htfBars, err := s.provider.GetSeries(ctx, symbol, styleCfg.HTFInterval, styleCfg.LookbackDays)
	if err != nil {
		s.logger.Error(ctx, err, op+": failed to fetch higher-timeframe series", map[string]interface{}{
			"symbol":   symbol,
			"interval": styleCfg.HTFInterval,
		})
		return nil, err
	}

	var ltfSnap *domain.IndicatorSnapshot
	ltfBars, err := s.provider.GetSeries(ctx, symbol, styleCfg.LTFInterval, ltfLookbackDays[style])
	if err != nil {
		s.logger.Warn(ctx, op+": lower-timeframe fetch failed, continuing without LTF snapshot", map[string]interface{}{
			"symbol":   symbol,
			"interval": styleCfg.LTFInterval,
			"error":    err.Error(),
		})
	} else {
		ltfSnap = analysis.ComputeIndicators(ltfBars, quote)
	}

	htfSnap := analysis.ComputeIndicators(htfBars, quote)
	decision := signal.Evaluate(htfSnap, ltfSnap, styleCfg, s.cfg.Gates, time.Now(), s.cfg.SessionTimezone)

	result := &Analysis{
		Symbol:   symbol,
		Style:    styleCfg,
		Quote:    quote,
		HTF:      htfSnap,
		LTF:      ltfSnap,
		Decision: decision,
	}

	result.Direction = suggestDirection(htfSnap)
	if decision.Tradeable && result.Direction.IsValid() {
		targets := signal.ComputeTargets(quote.LastPrice(), styleCfg, htfSnap.ATR)
		result.Targets = &targets
	}

	s.logger.Info(ctx, op+" complete", map[string]interface{}{
		"symbol":     symbol,
		"style":      string(style),
		"confidence": decision.Confidence,
		"verdict":    string(decision.Verdict),
		"direction":  string(result.Direction),
	})
	return result, nil
}

// suggestDirection derives the suggested option direction from the trend,
// falling back to momentum when the trend is sideways.
func suggestDirection(snap *domain.IndicatorSnapshot) domain.Direction {
	switch snap.Trend.Direction {
	case domain.TrendUp:
		return domain.Call
	case domain.TrendDown:
		return domain.Put
	}
	switch snap.Momentum.Direction {
	case domain.MomentumBullish:
		return domain.Call
	case domain.MomentumBearish:
		return domain.Put
	}
	return ""
}

// Enter registers a user-declared open trade and starts monitoring it.
// When entryPrice is zero the current quote price is used.
func (s *AnalysisService) Enter(ctx context.Context, symbol string, direction domain.Direction, entryPrice float64) (domain.Trade, error) {
	op := "Enter"
	if !direction.IsValid() {
		return domain.Trade{}, fmt.Errorf("%s failed: %w: invalid direction %q", op, ports.ErrInvalidRequest, direction)
	}

	if entryPrice <= 0 {
		quote, err := s.provider.GetQuote(ctx, symbol)
		if err != nil {
			s.logger.Error(ctx, err, op+": failed to fetch entry quote", map[string]interface{}{"symbol": symbol})
			return domain.Trade{}, err
		}
		entryPrice = quote.LastPrice()
	}
	if entryPrice <= 0 {
		return domain.Trade{}, fmt.Errorf("%s failed: %w: no usable entry price for %s", op, ports.ErrNoData, symbol)
	}

	trade := s.store.Enter(symbol, direction, entryPrice, time.Now())
	// The monitor loop outlives the request; it is stopped by Close, its own
	// terminal transitions, or service shutdown.
	s.monitor.Watch(context.Background(), symbol)
	s.logger.Info(ctx, op+": trade registered", map[string]interface{}{
		"symbol":    symbol,
		"direction": string(direction),
		"entry":     entryPrice,
		"tp1":       trade.TP1,
		"tp2":       trade.TP2,
		"sl":        trade.SL,
	})
	return trade, nil
}

// Close removes a monitored trade and stops its monitor goroutine.
func (s *AnalysisService) Close(ctx context.Context, symbol string) (domain.Trade, error) {
	op := "Close"
	trade, ok := s.store.Close(symbol)
	if !ok {
		return domain.Trade{}, fmt.Errorf("%s failed: %w: %s", op, ports.ErrTradeNotFound, symbol)
	}
	s.monitor.Unwatch(symbol)
	s.logger.Info(ctx, op+": trade closed", map[string]interface{}{"symbol": symbol})
	return trade, nil
}

// ListActive returns all currently monitored trades sorted by symbol.
func (s *AnalysisService) ListActive() []domain.Trade {
	return s.store.List()
}

// TradeStatus pairs a monitored trade with its live price and PnL.
type TradeStatus struct {
	Trade      domain.Trade
	Price      float64
	PnLPercent float64
}

// CheckOne returns the live status of one monitored trade.
func (s *AnalysisService) CheckOne(ctx context.Context, symbol string) (TradeStatus, error) {
	op := "CheckOne"
	trade, ok := s.store.Get(symbol)
	if !ok {
		return TradeStatus{}, fmt.Errorf("%s failed: %w: %s", op, ports.ErrTradeNotFound, symbol)
	}

	quote, err := s.provider.GetQuote(ctx, symbol)
	if err != nil {
		s.logger.Error(ctx, err, op+": failed to fetch quote", map[string]interface{}{"symbol": symbol})
		return TradeStatus{}, err
	}

	price := quote.LastPrice()
	return TradeStatus{
		Trade:      trade,
		Price:      price,
		PnLPercent: trade.PnLPercent(price),
	}, nil
}

// Start begins the long-running service loop. It verifies provider
// connectivity, then blocks until the context is cancelled or a shutdown
// signal arrives. Monitor goroutines are drained before returning.
func (s *AnalysisService) Start(ctx context.Context) error {
	s.logger.Info(ctx, "Starting Analysis Service...")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	ossignal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		s.logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()
	}()

	// --- Initialization Steps ---
	// 1. Verify provider connectivity
	if err := s.provider.Ping(ctx); err != nil {
		s.logger.Error(ctx, err, "Provider connectivity check failed")
		return fmt.Errorf("provider ping failed: %w", err)
	}
	s.logger.Info(ctx, "Provider connectivity verified")

	// 2. Log clock skew against the provider
	serverTime, err := s.provider.GetServerTime(ctx)
	if err != nil {
		s.logger.Warn(ctx, "Failed to fetch provider server time, continuing", map[string]interface{}{"error": err.Error()})
	} else {
		s.logger.Info(ctx, "Provider server time fetched", map[string]interface{}{
			"serverTime": serverTime.UTC().Format(time.RFC3339),
			"clockSkew":  time.Since(serverTime).String(),
		})
	}

	// --- Main Loop ---
	// All the work happens in monitor goroutines started via Enter; the
	// service just waits for shutdown.
	<-ctx.Done()

	s.logger.Info(ctx, "Shutting down, stopping trade monitors...")
	s.monitor.Stop()
	s.logger.Info(ctx, "Analysis Service stopped.")
	return nil
}
