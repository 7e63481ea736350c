package queries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchParcelsQueryHandler executes admin-console searches against the
// parcel projection. It never touches the aggregate: listings only need the
// flat columns, not the history payload.
type SearchParcelsQueryHandler struct {
	db *gorm.DB
}

// NewSearchParcelsQueryHandler creates a handler for parcel searches.
// Requires a GORM database connection for query execution.
func NewSearchParcelsQueryHandler(db *gorm.DB) SearchParcelsQueryHandler {
	return SearchParcelsQueryHandler{db: db}
}

// Handle executes the search. Results are ordered by last update, newest
// first, so fresh warehouse activity tops the console.
func (h SearchParcelsQueryHandler) Handle(
	ctx context.Context,
	query SearchParcelsQuery,
) ([]SearchParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := buildSearchConditions(query.Filter())

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			tracking_code,
			destination_city,
			logistic_status,
			main_status,
			sorting_zone,
			weight_declared,
			weight_real,
			weight_outcome,
			last_updated_at
		FROM parcels
		WHERE %s
		ORDER BY last_updated_at DESC
		LIMIT ?
	`, where), append(args, query.Filter().Limit)...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]SearchParcelsQueryResponse, 0)
	for rows.Next() {
		var (
			resp          SearchParcelsQueryResponse
			id            uuid.UUID
			status, main  int
			zone          int
			realWeight    sql.NullFloat64
			weightOutcome sql.NullInt64
		)

		err = rows.Scan(
			&id,
			&resp.TrackingCode,
			&resp.DestinationCity,
			&status,
			&main,
			&zone,
			&resp.DeclaredWeight,
			&realWeight,
			&weightOutcome,
			&resp.LastUpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID
		resp.LogisticStatus = parcel.LogisticStatus(status)
		resp.MainStatus = parcel.MainStatus(main)
		resp.Zone = parcel.Zone(zone)
		if realWeight.Valid {
			w := realWeight.Float64
			resp.RealWeight = &w
		}
		resp.HasWeightIssue = weightOutcome.Valid &&
			parcel.VerificationOutcome(weightOutcome.Int64) != parcel.OutcomeOK

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

func buildSearchConditions(filter SearchParcelsFilter) (string, []any) {
	conditions := []string{"1 = 1"}
	args := make([]any, 0)

	if filter.TrackingCode != "" {
		conditions = append(conditions, "tracking_code = ?")
		args = append(args, strings.ToUpper(strings.TrimSpace(filter.TrackingCode)))
	}
	if filter.LogisticStatus != parcel.StatusUnknown {
		conditions = append(conditions, "logistic_status = ?")
		args = append(args, int(filter.LogisticStatus))
	}
	if filter.MainStatus != parcel.MainUnknown {
		conditions = append(conditions, "main_status = ?")
		args = append(args, int(filter.MainStatus))
	}
	if filter.Zone != parcel.ZoneUnknown {
		conditions = append(conditions, "sorting_zone = ?")
		args = append(args, int(filter.Zone))
	}
	if filter.DestinationCity != "" {
		conditions = append(conditions, "destination_city = ?")
		args = append(args, strings.ToLower(strings.TrimSpace(filter.DestinationCity)))
	}
	if filter.SpecialCase.IsSet() {
		conditions = append(conditions, "special_case = ?")
		args = append(args, filter.SpecialCase.String())
	}
	if filter.Agent != "" {
		conditions = append(conditions, "last_updated_by = ?")
		args = append(args, filter.Agent)
	}
	if filter.OnlyWithWeightIssues {
		conditions = append(conditions, "weight_outcome IS NOT NULL AND weight_outcome != ?")
		args = append(args, int(parcel.OutcomeOK))
	}

	return strings.Join(conditions, " AND "), args
}
