// Package notify implements the outbound notification port. Delivery
// channels (SMS, email) are handled by a separate messaging gateway; this
// adapter records the event with enough context for the gateway to pick up
// and for operators to audit what was sent.
package notify

import (
	"context"
	"log/slog"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
)

// SlogDispatcher logs lifecycle notifications through structured logging.
// Send never blocks the calling operation on channel availability.
type SlogDispatcher struct {
	logger *slog.Logger
}

// NewSlogDispatcher creates a dispatcher writing to the given logger.
func NewSlogDispatcher(logger *slog.Logger) *SlogDispatcher {
	return &SlogDispatcher{
		logger: logger.With(slog.String("component", "notifications")),
	}
}

// Send records the notification event for the parcel's recipient.
func (d *SlogDispatcher) Send(ctx context.Context, event ports.NotificationEvent, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	d.logger.InfoContext(ctx, "notification dispatched",
		slog.String("event", string(event)),
		slog.String("tracking_code", aggregate.TrackingCode().String()),
		slog.String("recipient", aggregate.RecipientContact()),
		slog.String("status", aggregate.MainStatus().String()),
	)
	return nil
}
