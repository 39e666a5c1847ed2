package ports

import (
	"context"

	"tradePulseBot/internal/domain"
)

// AlertPublisher receives trade lifecycle alerts for delivery to the user.
// The messaging frontend supplies the real implementation; the core only
// guarantees at-most-once publication per transition.
type AlertPublisher interface {
	Publish(ctx context.Context, alert domain.Alert)
}

// AlertPublisherFunc adapts a plain function to the AlertPublisher interface.
type AlertPublisherFunc func(ctx context.Context, alert domain.Alert)

// Publish calls the wrapped function.
func (f AlertPublisherFunc) Publish(ctx context.Context, alert domain.Alert) {
	f(ctx, alert)
}
