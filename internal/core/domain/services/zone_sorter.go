package services

import (
	"errors"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/parcel"
)

// ErrNotReadyForSorting is returned when a parcel has not completed weighing
// and therefore cannot be assigned a sorting zone. The parcel is left
// unchanged.
var ErrNotReadyForSorting = errors.New("not ready for sorting")

// Destination city codes with a dedicated shippable zone. Any other
// destination falls through to the blocked zone.
const (
	destinationKinshasa   = "kinshasa"
	destinationLubumbashi = "lubumbashi"
)

// SortingDecision is the outcome of the zone-assignment rules: the target
// zone and the human-readable rule explanation recorded on the parcel.
type SortingDecision struct {
	Zone   parcel.Zone
	Reason string
}

// ZoneSorter is a domain service that assigns a deterministic physical
// sorting zone to a weighed parcel.
//
// The decision order is the core business rule and is evaluated first match
// wins:
//  1. payment-pending special case -> zone D (blocked)
//  2. any other special case      -> zone C (special handling)
//  3. destination kinshasa        -> zone A
//  4. destination lubumbashi      -> zone B
//  5. anything else               -> zone D (blocked, unknown destination)
//
// Rule 5 is the fail-safe default: an unmapped destination is never silently
// routed to a shippable zone.
type ZoneSorter struct{}

// NewZoneSorter creates a new ZoneSorter instance.
func NewZoneSorter() ZoneSorter {
	return ZoneSorter{}
}

// Decide evaluates the zone-assignment rules for a parcel without mutating
// it. Returns ErrNotReadyForSorting unless the parcel has completed weighing
// (weighed, verified, or weight_issue).
func (s ZoneSorter) Decide(p *parcel.Parcel) (SortingDecision, error) {
	if err := p.Validate(); err != nil {
		return SortingDecision{}, err
	}
	if !p.LogisticStatus().IsSortable() {
		return SortingDecision{}, fmt.Errorf("%w: parcel %s is %s",
			ErrNotReadyForSorting, p.TrackingCode(), p.LogisticStatus())
	}

	switch {
	case p.SpecialCase().IsPaymentPending():
		return SortingDecision{Zone: parcel.ZoneD, Reason: "payment pending"}, nil
	case p.SpecialCase().IsSet():
		return SortingDecision{
			Zone:   parcel.ZoneC,
			Reason: fmt.Sprintf("special handling: %s", p.SpecialCase()),
		}, nil
	case p.Destination().City() == destinationKinshasa:
		return SortingDecision{Zone: parcel.ZoneA, Reason: "destination kinshasa"}, nil
	case p.Destination().City() == destinationLubumbashi:
		return SortingDecision{Zone: parcel.ZoneB, Reason: "destination lubumbashi"}, nil
	default:
		return SortingDecision{
			Zone:   parcel.ZoneD,
			Reason: fmt.Sprintf("unknown destination: %s", p.Destination().City()),
		}, nil
	}
}

// Sort evaluates the rules and applies the resulting zone to the parcel,
// advancing it to sorted and appending one audit step. On any error the
// parcel is unchanged.
func (s ZoneSorter) Sort(p *parcel.Parcel, operator string, at time.Time) (SortingDecision, error) {
	decision, err := s.Decide(p)
	if err != nil {
		return SortingDecision{}, err
	}

	if err := p.ApplySorting(decision.Zone, decision.Reason, operator, at); err != nil {
		return SortingDecision{}, err
	}

	return decision, nil
}
