package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetSortableParcelsQueryIsNotConstructed = errors.New(
	"GetSortableParcelsQuery must be created via NewGetSortableParcelsQuery constructor",
)

// GetSortableParcelsQuery retrieves parcels that completed weighing but still
// wait for a zone. The background sorting sweep feeds its batch from this
// listing.
type GetSortableParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSortableParcelsQuery creates a query for parcels awaiting sorting.
func NewGetSortableParcelsQuery() GetSortableParcelsQuery {
	return GetSortableParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSortableParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetSortableParcelsQueryIsNotConstructed)
}

// GetSortableParcelsQueryResponse identifies one parcel awaiting sorting.
type GetSortableParcelsQueryResponse struct {
	ID           kernel.UUID
	TrackingCode string
}
