package queries

import (
	"context"
	"encoding/json"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
)

// trackingCacheTTL bounds the staleness of public tracking pages. Tracking
// is by far the hottest read path and tolerates a short lag behind the
// warehouse.
const trackingCacheTTL = time.Minute

// TrackParcelQueryHandler serves public tracking lookups through a
// read-through cache. A cache failure is treated as a miss: tracking must
// keep working when Redis is down.
type TrackParcelQueryHandler struct {
	repo  ports.ParcelRepository
	cache ports.TrackingCache
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
func NewTrackParcelQueryHandler(repo ports.ParcelRepository, cache ports.TrackingCache) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{
		repo:  repo,
		cache: cache,
	}
}

// Handle resolves the tracking code to its public view. Unknown codes return
// errs.ErrObjectNotFound; negative lookups are not cached so a parcel
// registered moments later resolves immediately.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	key := "tracking:" + query.TrackingCode().String()

	// Any cache error, miss or outage, falls through to the repository.
	if payload, err := h.cache.Get(ctx, key); err == nil {
		var cached TrackParcelQueryResponse
		if json.Unmarshal(payload, &cached) == nil {
			return cached, nil
		}
	}

	aggregate, err := h.repo.GetByTrackingCode(ctx, query.TrackingCode())
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	response := buildTrackingView(aggregate)

	if payload, err := json.Marshal(response); err == nil {
		_ = h.cache.Set(ctx, key, payload, trackingCacheTTL)
	}

	return response, nil
}

func buildTrackingView(aggregate *parcel.Parcel) TrackParcelQueryResponse {
	steps := make([]TrackParcelStep, 0, aggregate.History().Len())
	for _, step := range aggregate.History().Steps() {
		steps = append(steps, TrackParcelStep{
			Step:      step.Step(),
			Timestamp: step.Timestamp(),
		})
	}

	return TrackParcelQueryResponse{
		TrackingCode:    aggregate.TrackingCode().String(),
		MainStatus:      aggregate.MainStatus().String(),
		DestinationCity: aggregate.Destination().City(),
		LastUpdatedAt:   aggregate.LastUpdatedAt(),
		Steps:           steps,
	}
}
