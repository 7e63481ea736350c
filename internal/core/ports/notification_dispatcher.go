package ports

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// NotificationEvent identifies a customer-facing notification trigger.
type NotificationEvent string

const (
	NotificationParcelReceived     NotificationEvent = "parcel_received"
	NotificationSupplementRequired NotificationEvent = "weight_supplement_required"
	NotificationRefundAvailable    NotificationEvent = "weight_refund_available"
	NotificationParcelDelivered    NotificationEvent = "parcel_delivered"
)

// NotificationDispatcher sends customer notifications about lifecycle events.
//
// Dispatch is best effort: callers invoke it after the state change is
// committed and must not roll back or fail the operation when delivery
// fails.
type NotificationDispatcher interface {
	// Send notifies the recipient contact about an event on the parcel.
	Send(ctx context.Context, event NotificationEvent, aggregate *parcel.Parcel) error
}
