package ports

import "errors"

// Standard application-level errors.
// Adapters should wrap underlying provider errors with these standard errors.
var (
	// General Errors
	ErrUnknown            = errors.New("unknown error occurred")
	ErrInvalidRequest     = errors.New("invalid request parameters or format")
	ErrNotFound           = errors.New("resource not found")
	ErrTimeout            = errors.New("operation timed out")
	ErrContextCanceled    = errors.New("operation canceled via context")
	ErrConfigurationError = errors.New("invalid or missing configuration")

	// Market Data Provider Errors
	ErrProviderUnavailable  = errors.New("market data provider is unavailable")
	ErrConnectionFailed     = errors.New("failed to connect to the market data provider")
	ErrRateLimited          = errors.New("API rate limit exceeded")
	ErrAuthenticationFailed = errors.New("provider authentication failed (check API keys)")
	ErrInvalidSymbol        = errors.New("symbol is unknown to the provider")
	ErrNoData               = errors.New("provider returned no data for the request")

	// Trade Registry Errors
	ErrTradeNotFound = errors.New("no active trade for symbol")
)
