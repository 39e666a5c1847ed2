package alertlog

import (
	"context"

	"tradePulseBot/internal/domain"
	"tradePulseBot/internal/ports"
)

// Publisher implements ports.AlertPublisher by writing each alert to the
// structured log. It stands in for the messaging frontend in headless runs.
type Publisher struct {
	logger ports.Logger
}

// New creates a logging alert publisher.
func New(logger ports.Logger) *Publisher {
	return &Publisher{logger: logger}
}

// Publish logs the alert at Info level.
func (p *Publisher) Publish(ctx context.Context, alert domain.Alert) {
	p.logger.Info(ctx, "Trade alert", map[string]interface{}{
		"id":        alert.ID,
		"kind":      string(alert.Kind),
		"symbol":    alert.Symbol,
		"direction": string(alert.Direction),
		"price":     alert.Price,
		"timestamp": alert.Timestamp.UTC(),
	})
}
