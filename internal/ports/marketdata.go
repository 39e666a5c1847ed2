package ports

import (
	"context"
	"time"

	"tradePulseBot/internal/domain"
)

// MarketDataProvider defines the read-only interface to the brokerage data
// API. This abstraction decouples the analysis core from the concrete
// provider implementation.
type MarketDataProvider interface {
	// GetSeries retrieves historical OHLCV bars for the symbol at the given
	// interval (e.g. "1min", "5min", "15min", "daily"), covering roughly
	// lookbackDays of history, ordered ascending by timestamp.
	GetSeries(ctx context.Context, symbol, interval string, lookbackDays int) ([]*domain.Bar, error)

	// GetQuote retrieves the latest quote snapshot for the symbol.
	// Returns ErrInvalidSymbol (wrapped) when the provider does not know it.
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)

	// Ping checks connectivity to the provider API.
	Ping(ctx context.Context) error

	// GetServerTime retrieves the provider's current server time.
	GetServerTime(ctx context.Context) (time.Time, error)
}
