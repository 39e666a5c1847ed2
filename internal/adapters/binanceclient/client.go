package binanceclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tradePulseBot/internal/domain"
	"tradePulseBot/internal/ports"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
)

const (
	// Base URLs
	baseURLProduction = "https://api.binance.com"
	baseURLTestnet    = "https://testnet.binance.vision"

	// Spot klines endpoint hard limit per request.
	maxKlineLimit = 1000
)

// intervalMap translates domain interval names into the exchange's notation.
var intervalMap = map[string]string{
	"1min":  "1m",
	"5min":  "5m",
	"15min": "15m",
	"daily": "1d",
}

// intervalMinutes is used to size the kline request for a lookback window.
var intervalMinutes = map[string]int{
	"1min":  1,
	"5min":  5,
	"15min": 15,
	"daily": 24 * 60,
}

// Client implements the ports.MarketDataProvider interface using the
// go-binance library. Only public (unauthenticated) endpoints are used.
type Client struct {
	spotClient *binance.Client
	logger     ports.Logger
}

// Config holds configuration specific to the Binance client adapter.
type Config struct {
	APIKey     string
	SecretKey  string
	UseTestnet bool
	Logger     ports.Logger
}

// New creates a new Binance market data adapter.
func New(cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for Binance client")
	}

	client := binance.NewClient(cfg.APIKey, cfg.SecretKey)

	// Set BaseURL directly instead of using the global binance.UseTestnet
	if cfg.UseTestnet {
		client.BaseURL = baseURLTestnet
		cfg.Logger.Info(context.Background(), "Binance client configured for Testnet", map[string]interface{}{"baseURL": client.BaseURL})
	} else {
		client.BaseURL = baseURLProduction
		cfg.Logger.Info(context.Background(), "Binance client configured for Production", map[string]interface{}{"baseURL": client.BaseURL})
	}

	return &Client{
		spotClient: client,
		logger:     cfg.Logger,
	}, nil
}

// handleError translates common Binance API errors into standardized ports errors.
func (c *Client) handleError(ctx context.Context, err error, operation string) error {
	if err == nil {
		return nil
	}

	fields := map[string]interface{}{"operation": operation, "originalError": err.Error()}

	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		fields["apiErrorCode"] = apiErr.Code
		fields["apiErrorMessage"] = apiErr.Message

		// Map specific Binance error codes to custom errors
		var mappedErr error
		switch apiErr.Code {
		case -1003: // Too many requests
			mappedErr = ports.ErrRateLimited
		case -1021: // Timestamp for this request is outside of the recvWindow
			mappedErr = ports.ErrTimeout
		case -1022: // Signature for this request is not valid
			mappedErr = ports.ErrAuthenticationFailed
		case -1121: // Invalid symbol
			mappedErr = ports.ErrInvalidSymbol
		case -1100, -1101, -1102, -1103, -1104, -1105, -1106, -1111, -1115, -1116, -1117, -1120, -1125, -1127, -1128, -1130: // Parameter/Request format errors
			mappedErr = ports.ErrInvalidRequest
		case -2014, -2015: // API-key format invalid / invalid key, IP, or permissions
			mappedErr = ports.ErrAuthenticationFailed
		default:
			// General classification for unmapped API errors
			mappedErr = ports.ErrUnknown
		}
		finalErr := fmt.Errorf("%s failed: %w: %w", operation, mappedErr, err)
		c.logger.Error(ctx, err, fmt.Sprintf("%s failed with API error", operation), fields)
		return finalErr
	}

	// Handle non-API errors (network, context cancellation, etc.)
	var finalErr error
	if errors.Is(err, context.DeadlineExceeded) {
		finalErr = fmt.Errorf("%s failed: %w: %w", operation, ports.ErrTimeout, err)
	} else if errors.Is(err, context.Canceled) {
		finalErr = fmt.Errorf("%s operation canceled: %w: %w", operation, ports.ErrContextCanceled, err)
	} else if strings.Contains(err.Error(), "use of closed network connection") ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "connection reset by peer") {
		finalErr = fmt.Errorf("%s failed: %w: %w", operation, ports.ErrConnectionFailed, err)
	} else {
		// Default for other errors (e.g., parsing errors within the adapter)
		finalErr = fmt.Errorf("%s failed: %w: %w", operation, ports.ErrUnknown, err)
	}

	c.logger.Error(ctx, err, fmt.Sprintf("%s failed", operation), fields)
	return finalErr
}

// GetSeries retrieves historical OHLCV bars covering roughly lookbackDays of
// history, ordered ascending by timestamp.
func (c *Client) GetSeries(ctx context.Context, symbol, interval string, lookbackDays int) ([]*domain.Bar, error) {
	op := "GetSeries"

	exchangeInterval, ok := intervalMap[interval]
	if !ok {
		err := fmt.Errorf("%s failed: %w: unsupported interval %q", op, ports.ErrInvalidRequest, interval)
		c.logger.Error(ctx, err, op+" failed", map[string]interface{}{"interval": interval})
		return nil, err
	}
	if lookbackDays <= 0 {
		lookbackDays = 1
	}

	limit := lookbackDays * (24 * 60) / intervalMinutes[interval]
	if limit > maxKlineLimit {
		limit = maxKlineLimit
	}
	if limit < 1 {
		limit = 1
	}

	klines, err := c.spotClient.NewKlinesService().
		Symbol(symbol).
		Interval(exchangeInterval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, c.handleError(ctx, err, op)
	}
	if len(klines) == 0 {
		return nil, fmt.Errorf("%s failed: %w: no bars returned for %s %s", op, ports.ErrNoData, symbol, interval)
	}

	bars := make([]*domain.Bar, 0, len(klines))
	for _, k := range klines {
		bar, err := translateKline(k, symbol, interval)
		if err != nil {
			return nil, c.handleError(ctx, fmt.Errorf("failed to translate kline: %w", err), op)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// GetQuote retrieves the latest 24hr ticker snapshot for the symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	op := "GetQuote"

	stats, err := c.spotClient.NewListPriceChangeStatsService().Symbol(symbol).Do(ctx)
	if err != nil {
		return nil, c.handleError(ctx, err, op)
	}
	if len(stats) == 0 {
		err := fmt.Errorf("%s failed: %w: no ticker data returned for symbol %s", op, ports.ErrInvalidSymbol, symbol)
		c.logger.Error(ctx, err, op+" failed", map[string]interface{}{"symbol": symbol})
		return nil, err
	}

	quote, err := translateStats(stats[0])
	if err != nil {
		return nil, c.handleError(ctx, fmt.Errorf("failed to translate ticker stats: %w", err), op)
	}
	return quote, nil
}

// Ping checks the connectivity to the exchange API.
func (c *Client) Ping(ctx context.Context) error {
	op := "Ping"
	if err := c.spotClient.NewPingService().Do(ctx); err != nil {
		return c.handleError(ctx, fmt.Errorf("ping failed: %w", err), op)
	}
	c.logger.Debug(ctx, op+" successful")
	return nil
}

// GetServerTime retrieves the current server time from the exchange.
func (c *Client) GetServerTime(ctx context.Context) (time.Time, error) {
	op := "GetServerTime"
	serverTimeMs, err := c.spotClient.NewServerTimeService().Do(ctx)
	if err != nil {
		return time.Time{}, c.handleError(ctx, err, op)
	}
	return time.UnixMilli(serverTimeMs), nil
}

// --- Translation Helpers ---

func translateKline(k *binance.Kline, symbol, interval string) (*domain.Bar, error) {
	if k == nil {
		return nil, errors.New("received nil kline")
	}
	open, err := strconv.ParseFloat(k.Open, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing open price '%s': %w", k.Open, err)
	}
	high, err := strconv.ParseFloat(k.High, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing high price '%s': %w", k.High, err)
	}
	low, err := strconv.ParseFloat(k.Low, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing low price '%s': %w", k.Low, err)
	}
	cls, err := strconv.ParseFloat(k.Close, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing close price '%s': %w", k.Close, err)
	}
	vol, err := strconv.ParseFloat(k.Volume, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing volume '%s': %w", k.Volume, err)
	}

	return &domain.Bar{
		Timestamp: time.UnixMilli(k.OpenTime),
		Symbol:    symbol,
		Interval:  interval,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     cls,
		Volume:    vol,
	}, nil
}

func translateStats(s *binance.PriceChangeStats) (*domain.Quote, error) {
	if s == nil {
		return nil, errors.New("received nil ticker stats")
	}
	last, err := strconv.ParseFloat(s.LastPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing last price '%s': %w", s.LastPrice, err)
	}
	prevClose, err := strconv.ParseFloat(s.PrevClosePrice, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing previous close '%s': %w", s.PrevClosePrice, err)
	}

	// The remaining fields are informational; a malformed value degrades to
	// zero rather than failing the whole quote.
	bid, _ := strconv.ParseFloat(s.BidPrice, 64)
	ask, _ := strconv.ParseFloat(s.AskPrice, 64)
	volume, _ := strconv.ParseFloat(s.Volume, 64)
	change, _ := strconv.ParseFloat(s.PriceChange, 64)
	changePct, _ := strconv.ParseFloat(s.PriceChangePercent, 64)
	high, _ := strconv.ParseFloat(s.HighPrice, 64)
	low, _ := strconv.ParseFloat(s.LowPrice, 64)
	open, _ := strconv.ParseFloat(s.OpenPrice, 64)

	return &domain.Quote{
		Symbol:        s.Symbol,
		Last:          last,
		Bid:           bid,
		Ask:           ask,
		Volume:        volume,
		Change:        change,
		ChangePercent: changePct,
		High:          high,
		Low:           low,
		Open:          open,
		PrevClose:     prevClose,
	}, nil
}
