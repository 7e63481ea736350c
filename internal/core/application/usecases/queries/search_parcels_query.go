// Package queries contains read-only operations over the parcel store.
// Query handlers bypass the aggregate and read projections directly, which
// keeps admin-console listings cheap even with large histories.
package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var ErrSearchParcelsQueryIsNotConstructed = errors.New(
	"SearchParcelsQuery must be created via NewSearchParcelsQuery constructor",
)

// defaultSearchLimit caps unbounded admin searches.
const defaultSearchLimit = 100

// SearchParcelsQuery retrieves parcels for the admin console. All filters are
// optional and combine with AND; an empty query lists the most recently
// updated parcels.
//
// Example:
//
//	query, _ := NewSearchParcelsQuery(SearchParcelsFilter{
//	    LogisticStatus: parcel.StatusWeightIssue,
//	})
//	rows, err := handler.Handle(ctx, query)
type SearchParcelsQuery struct {
	filter SearchParcelsFilter

	guard guard.ConstructorGuard
}

// SearchParcelsFilter mirrors the console search form. Zero values mean "no
// constraint".
type SearchParcelsFilter struct {
	TrackingCode         string
	LogisticStatus       parcel.LogisticStatus
	MainStatus           parcel.MainStatus
	Zone                 parcel.Zone
	DestinationCity      string
	SpecialCase          parcel.SpecialCase
	Agent                string
	OnlyWithWeightIssues bool
	Limit                int
}

// NewSearchParcelsQuery creates a parcel search query. A negative limit is
// rejected; zero falls back to the default page size.
func NewSearchParcelsQuery(filter SearchParcelsFilter) (SearchParcelsQuery, error) {
	if filter.Limit < 0 {
		return SearchParcelsQuery{}, errors.New("limit must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = defaultSearchLimit
	}

	return SearchParcelsQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchParcelsQuery) Validate() error {
	return q.guard.Validate(ErrSearchParcelsQueryIsNotConstructed)
}

// Filter returns the search constraints.
func (q SearchParcelsQuery) Filter() SearchParcelsFilter {
	return q.filter
}

// SearchParcelsQueryResponse is one row of the admin listing.
type SearchParcelsQueryResponse struct {
	ID              kernel.UUID
	TrackingCode    string
	DestinationCity string
	LogisticStatus  parcel.LogisticStatus
	MainStatus      parcel.MainStatus
	Zone            parcel.Zone
	DeclaredWeight  float64
	RealWeight      *float64
	HasWeightIssue  bool
	LastUpdatedAt   time.Time
}
