package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradePulseBot/config"
	"tradePulseBot/internal/domain"
	"tradePulseBot/internal/ports"
	"tradePulseBot/internal/signal"
	"tradePulseBot/internal/trademonitor"
)

// Mock implementations

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

type mockProvider struct {
	quote     *domain.Quote
	quoteErr  error
	series    map[string][]*domain.Bar // keyed by interval
	seriesErr map[string]error         // per-interval error injection
}

func (m *mockProvider) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	if m.quoteErr != nil {
		return nil, m.quoteErr
	}
	return m.quote, nil
}

func (m *mockProvider) GetSeries(ctx context.Context, symbol, interval string, lookbackDays int) ([]*domain.Bar, error) {
	if err, ok := m.seriesErr[interval]; ok {
		return nil, err
	}
	return m.series[interval], nil
}

func (m *mockProvider) Ping(ctx context.Context) error { return nil }

func (m *mockProvider) GetServerTime(ctx context.Context) (time.Time, error) {
	return time.Now(), nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, alert domain.Alert) {}

// trendingBars produces a gently rising series with varying volume, long
// enough for every indicator window.
func trendingBars(symbol, interval string, n int) []*domain.Bar {
	bars := make([]*domain.Bar, n)
	base := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		price := 100 + 0.2*float64(i) + 0.05*float64((i*7919)%13)
		bars[i] = &domain.Bar{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Symbol:    symbol,
			Interval:  interval,
			Open:      price - 0.1,
			High:      price + 0.3,
			Low:       price - 0.3,
			Close:     price,
			Volume:    1000 + float64((i*31)%200),
		}
	}
	return bars
}

func newTestService(t *testing.T, provider *mockProvider) *AnalysisService {
	t.Helper()
	loc := time.UTC
	cfg := &config.Config{
		Symbol:              "SPY",
		DefaultStyle:        domain.StyleDayTrading,
		Gates:               signal.DefaultGates,
		MonitorPollInterval: time.Hour, // Keep monitor goroutines dormant in tests
		TimeStop:            30 * time.Minute,
		SessionTimezone:     loc,
	}
	store := trademonitor.NewStore()
	monitor, err := trademonitor.New(trademonitor.Config{
		Store:        store,
		Provider:     provider,
		Publisher:    nopPublisher{},
		Logger:       &mockLogger{},
		PollInterval: cfg.MonitorPollInterval,
		TimeStop:     cfg.TimeStop,
	})
	require.NoError(t, err)

	svc, err := NewAnalysisService(cfg, &mockLogger{}, provider, store, monitor)
	require.NoError(t, err)
	t.Cleanup(monitor.Stop)
	return svc
}

func defaultProvider() *mockProvider {
	return &mockProvider{
		quote: &domain.Quote{Symbol: "SPY", Last: 112, PrevClose: 111, Bid: 111.9, Ask: 112.1},
		series: map[string][]*domain.Bar{
			"15min": trendingBars("SPY", "15min", 80),
			"5min":  trendingBars("SPY", "5min", 80),
			"1min":  trendingBars("SPY", "1min", 80),
			"daily": trendingBars("SPY", "daily", 80),
		},
		seriesErr: map[string]error{},
	}
}

func TestNewAnalysisService_MissingDependencies(t *testing.T) {
	_, err := NewAnalysisService(nil, nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestAnalyze_HappyPath(t *testing.T) {
	svc := newTestService(t, defaultProvider())

	result, err := svc.Analyze(context.Background(), "SPY", domain.StyleDayTrading)
	require.NoError(t, err)

	require.NotNil(t, result.HTF)
	require.NotNil(t, result.LTF)
	assert.Equal(t, "SPY", result.Symbol)
	assert.Equal(t, domain.StyleDayTrading, result.Style.Style)
	assert.GreaterOrEqual(t, result.Decision.Confidence, 0)
	assert.LessOrEqual(t, result.Decision.Confidence, 100)

	// A rising series must not suggest a put.
	assert.NotEqual(t, domain.Put, result.Direction)

	if result.Decision.Tradeable {
		require.NotNil(t, result.Targets)
		assert.Equal(t, 112.0, result.Targets.Entry)
		assert.Greater(t, result.Targets.TP1, result.Targets.Entry)
		assert.Less(t, result.Targets.SL, result.Targets.Entry)
	}
}

func TestAnalyze_UnknownStyle(t *testing.T) {
	svc := newTestService(t, defaultProvider())

	_, err := svc.Analyze(context.Background(), "SPY", domain.TradingStyle("yolo"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrInvalidRequest)
}

func TestAnalyze_QuoteErrorPropagates(t *testing.T) {
	provider := defaultProvider()
	provider.quoteErr = ports.ErrInvalidSymbol
	svc := newTestService(t, provider)

	_, err := svc.Analyze(context.Background(), "NOPE", domain.StyleDayTrading)
	assert.ErrorIs(t, err, ports.ErrInvalidSymbol)
}

func TestAnalyze_LTFFailureDegrades(t *testing.T) {
	provider := defaultProvider()
	provider.seriesErr["5min"] = ports.ErrProviderUnavailable
	svc := newTestService(t, provider)

	result, err := svc.Analyze(context.Background(), "SPY", domain.StyleDayTrading)
	require.NoError(t, err)
	assert.NotNil(t, result.HTF)
	assert.Nil(t, result.LTF)
}

func TestAnalyze_ScalpingWithoutLTFIsBlocked(t *testing.T) {
	provider := defaultProvider()
	provider.seriesErr["1min"] = ports.ErrProviderUnavailable
	svc := newTestService(t, provider)

	result, err := svc.Analyze(context.Background(), "SPY", domain.StyleScalping)
	require.NoError(t, err)
	assert.Nil(t, result.LTF)
	assert.Equal(t, signal.VerdictBlocked, result.Decision.Verdict)
	assert.False(t, result.Decision.Tradeable)
	assert.Nil(t, result.Targets)
}

func TestAnalyze_Report(t *testing.T) {
	svc := newTestService(t, defaultProvider())

	result, err := svc.Analyze(context.Background(), "SPY", domain.StyleSwing)
	require.NoError(t, err)

	report := result.Report()
	assert.Equal(t, "SPY", report["symbol"])
	require.Contains(t, report, "htf")
	require.Contains(t, report, "ltf")
	require.Contains(t, report, "quote")
	require.Contains(t, report, "decision")

	htf, ok := report["htf"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, htf, "rsi")
	assert.Contains(t, htf, "trend")
	assert.Contains(t, htf, "support")
}

func TestEnter_RegistersTrade(t *testing.T) {
	svc := newTestService(t, defaultProvider())

	trade, err := svc.Enter(context.Background(), "SPY", domain.Call, 585.50)
	require.NoError(t, err)
	assert.Equal(t, 585.50, trade.EntryPrice)
	assert.Equal(t, 589.01, trade.TP1)
	assert.Equal(t, 592.53, trade.TP2)
	assert.Equal(t, 581.11, trade.SL)

	active := svc.ListActive()
	require.Len(t, active, 1)
	assert.Equal(t, "SPY", active[0].Symbol)
}

func TestEnter_UsesQuoteWhenPriceOmitted(t *testing.T) {
	svc := newTestService(t, defaultProvider())

	trade, err := svc.Enter(context.Background(), "SPY", domain.Put, 0)
	require.NoError(t, err)
	assert.Equal(t, 112.0, trade.EntryPrice)
}

func TestEnter_InvalidDirection(t *testing.T) {
	svc := newTestService(t, defaultProvider())

	_, err := svc.Enter(context.Background(), "SPY", domain.Direction("SIDEWAYS"), 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrInvalidRequest)
}

func TestClose_UnknownTrade(t *testing.T) {
	svc := newTestService(t, defaultProvider())

	_, err := svc.Close(context.Background(), "SPY")
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrTradeNotFound)
}

func TestCheckOne(t *testing.T) {
	provider := defaultProvider()
	svc := newTestService(t, provider)

	_, err := svc.Enter(context.Background(), "SPY", domain.Call, 100)
	require.NoError(t, err)

	status, err := svc.CheckOne(context.Background(), "SPY")
	require.NoError(t, err)
	assert.Equal(t, 112.0, status.Price)
	assert.InDelta(t, 12.0, status.PnLPercent, 1e-9)

	_, err = svc.CheckOne(context.Background(), "MISSING")
	assert.ErrorIs(t, err, ports.ErrTradeNotFound)
}
