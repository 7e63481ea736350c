// Package ports defines the outbound interfaces of the parcel lifecycle core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Listings and projections go through the read-side query handlers, not the
// repository; the repository only loads and stores whole aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate, guarded by the
	// aggregate's version. Returns errs.ErrConcurrencyConflict when the stored
	// row has moved past the version the aggregate was loaded at.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns the complete parcel including its full logistic history.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by its normalized tracking code.
	GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*parcel.Parcel, error)
}
