package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery retrieves the public tracking view of one parcel by its
// tracking code. This is the only read exposed to customers, so it carries no
// operational detail: coarse status, destination, and the step timeline.
type TrackParcelQuery struct {
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking query. The raw code is normalized
// the same way label codes are at registration, so customer input with
// stray case or spacing still resolves.
func NewTrackParcelQuery(rawTrackingCode string) (TrackParcelQuery, error) {
	code, err := kernel.NewTrackingCode(rawTrackingCode)
	if err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		trackingCode: code,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingCode returns the normalized tracking code.
func (q TrackParcelQuery) TrackingCode() kernel.TrackingCode {
	return q.trackingCode
}

// TrackParcelQueryResponse is the customer-facing tracking view.
type TrackParcelQueryResponse struct {
	TrackingCode    string            `json:"tracking_code"`
	MainStatus      string            `json:"status"`
	DestinationCity string            `json:"destination"`
	LastUpdatedAt   time.Time         `json:"last_updated_at"`
	Steps           []TrackParcelStep `json:"steps"`
}

// TrackParcelStep is one timeline entry of the tracking view.
type TrackParcelStep struct {
	Step      string    `json:"step"`
	Timestamp time.Time `json:"timestamp"`
}
