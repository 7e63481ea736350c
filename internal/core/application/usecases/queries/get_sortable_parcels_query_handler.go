package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSortableParcelsQueryHandler lists parcels in a sortable status, oldest
// update first so long-waiting parcels are swept before fresh ones.
type GetSortableParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetSortableParcelsQueryHandler creates a handler for the sortable-parcel
// listing.
func NewGetSortableParcelsQueryHandler(db *gorm.DB) GetSortableParcelsQueryHandler {
	return GetSortableParcelsQueryHandler{db: db}
}

// Handle executes the query. Sortable means weighed, verified, or
// weight_issue: the same set the zone rules accept.
func (h GetSortableParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetSortableParcelsQuery,
) ([]GetSortableParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code
		FROM parcels
		WHERE logistic_status IN (?, ?, ?)
		ORDER BY last_updated_at
	`, int(parcel.StatusWeighed), int(parcel.StatusVerified), int(parcel.StatusWeightIssue)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]GetSortableParcelsQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetSortableParcelsQueryResponse
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &resp.TrackingCode); err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
