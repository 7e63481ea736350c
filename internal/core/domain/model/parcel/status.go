package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// LogisticStatus represents the fine-grained lifecycle state of a parcel
// inside the warehouse workflow. It is the single source of truth for the
// parcel's position in the lifecycle; the customer-facing MainStatus is always
// derived from it and never written independently.
//
// The transition graph:
//
//	pending_reception ──> received ──┬──> weighed ──────┬──> verified ──┐
//	                                 └──> weight_issue ─┘               │
//	                                           │    │                   │
//	                                           │    └───────────────────┤
//	                                           └──> weighed             │
//	                                                                    v
//	          ┌── payment_pending <── sorted <──────────────────────────┘
//	          │          │               │
//	          v          v               v
//	       blocked  ready_grouping ──> grouped ──> shipped_rdc ──> delivered_final
//
// Cancellation is reachable from every pre-grouping state. Blocked,
// DeliveredFinal, and Cancelled are terminal; there are no regression edges.
type LogisticStatus int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized LogisticStatus values.
	StatusUnknown LogisticStatus = iota

	// StatusPendingReception is the initial status after payment is confirmed,
	// before the parcel physically arrives at the warehouse.
	StatusPendingReception

	// StatusReceived means the parcel has been scanned in at the warehouse.
	StatusReceived

	// StatusWeighed means the parcel has been weighed and the measurement was
	// auto-approved (declared vs. real weight within tolerance).
	StatusWeighed

	// StatusWeightIssue means weighing revealed a discrepancy that needs a
	// human decision before the parcel can continue.
	StatusWeightIssue

	// StatusVerified means an agent manually approved the measured weight
	// after a discrepancy review.
	StatusVerified

	// StatusSorted means the parcel has been assigned a physical sorting zone.
	StatusSorted

	// StatusPaymentPending means the parcel is held until an outstanding
	// payment is settled.
	StatusPaymentPending

	// StatusReadyGrouping means the parcel is cleared for consolidation into
	// a shipment group.
	StatusReadyGrouping

	// StatusGrouped means the parcel has been consolidated into a shipment
	// group bound for the DRC.
	StatusGrouped

	// StatusShippedRDC means the shipment group left Europe for the DRC.
	StatusShippedRDC

	// StatusDeliveredFinal means the parcel reached its recipient.
	// This is a terminal state.
	StatusDeliveredFinal

	// StatusBlocked means an unresolvable special case stopped the parcel.
	// This is a terminal state pending a separately authorized correction.
	StatusBlocked

	// StatusCancelled means the shipment was cancelled. Terminal; the record
	// is retained for audit.
	StatusCancelled
)

// transitions is the adjacency table of the lifecycle graph. A requested
// status change is legal only if it appears here; everything else, including
// no-ops and regressions, is rejected.
func transitions() map[LogisticStatus][]LogisticStatus {
	return map[LogisticStatus][]LogisticStatus{
		StatusPendingReception: {StatusReceived, StatusCancelled},
		StatusReceived:         {StatusWeighed, StatusWeightIssue, StatusCancelled},
		StatusWeighed:          {StatusVerified, StatusSorted, StatusCancelled},
		StatusWeightIssue:      {StatusWeighed, StatusVerified, StatusSorted, StatusCancelled},
		StatusVerified:         {StatusSorted, StatusCancelled},
		StatusSorted:           {StatusPaymentPending, StatusReadyGrouping, StatusBlocked},
		StatusPaymentPending:   {StatusReadyGrouping, StatusBlocked, StatusCancelled},
		StatusReadyGrouping:    {StatusGrouped},
		StatusGrouped:          {StatusShippedRDC},
		StatusShippedRDC:       {StatusDeliveredFinal},
		StatusDeliveredFinal:   nil,
		StatusBlocked:          nil,
		StatusCancelled:        nil,
	}
}

func getStatusStrings() map[LogisticStatus]string {
	return map[LogisticStatus]string{
		StatusUnknown:          "unknown",
		StatusPendingReception: "pending_reception",
		StatusReceived:         "received",
		StatusWeighed:          "weighed",
		StatusWeightIssue:      "weight_issue",
		StatusVerified:         "verified",
		StatusSorted:           "sorted",
		StatusPaymentPending:   "payment_pending",
		StatusReadyGrouping:    "ready_grouping",
		StatusGrouped:          "grouped",
		StatusShippedRDC:       "shipped_rdc",
		StatusDeliveredFinal:   "delivered_final",
		StatusBlocked:          "blocked",
		StatusCancelled:        "cancelled",
	}
}

// ParseLogisticStatus converts a stored or user-supplied status string back
// into its enum value. Returns an error for unknown strings, including
// "unknown" itself.
func ParseLogisticStatus(s string) (LogisticStatus, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("logistic status",
		fmt.Errorf("%q is not a valid logistic status", s))
}

// Validate checks if the LogisticStatus value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s LogisticStatus) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("logistic status",
			fmt.Errorf("%d is not a valid logistic status", s))
	}
	return nil
}

// String returns the snake_case name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (s LogisticStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransition reports whether moving from s to requested is an edge of the
// lifecycle graph. It never returns an error; callers decide how to surface a
// rejected transition.
func (s LogisticStatus) CanTransition(requested LogisticStatus) bool {
	for _, next := range transitions()[s] {
		if next == requested {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s LogisticStatus) IsTerminal() bool {
	next, ok := transitions()[s]
	return ok && len(next) == 0
}

// IsSortable reports whether the parcel may be assigned a sorting zone from
// this status. Sorting requires a completed weighing: either an auto-approved
// measurement, a manual verification, or an unresolved discrepancy an agent
// chose to sort anyway.
func (s LogisticStatus) IsSortable() bool {
	switch s {
	case StatusWeighed, StatusVerified, StatusWeightIssue:
		return true
	default:
		return false
	}
}

// MainStatus is the coarse, customer-facing status shown in tracking views.
// It is always a pure function of LogisticStatus (see MainStatusFor) and is
// never set independently.
type MainStatus int

const (
	// MainUnknown represents an invalid or undefined main status.
	MainUnknown MainStatus = iota

	// MainAwaitingReception is shown while the warehouse waits for the parcel.
	MainAwaitingReception

	// MainAtWarehouse is shown while the parcel is processed in the warehouse.
	MainAtWarehouse

	// MainActionRequired is shown when the customer or an agent must act
	// before the parcel can continue (payment pending, blocked).
	MainActionRequired

	// MainInTransit is shown once the parcel is in the grouping/shipping
	// pipeline toward the DRC.
	MainInTransit

	// MainDelivered is shown once the parcel reached its recipient.
	MainDelivered

	// MainCancelled is shown for cancelled shipments.
	MainCancelled
)

func getMainStatusStrings() map[MainStatus]string {
	return map[MainStatus]string{
		MainUnknown:           "unknown",
		MainAwaitingReception: "awaiting_reception",
		MainAtWarehouse:       "at_warehouse",
		MainActionRequired:    "action_required",
		MainInTransit:         "in_transit",
		MainDelivered:         "delivered",
		MainCancelled:         "cancelled",
	}
}

// String returns the snake_case name of the main status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (m MainStatus) String() string {
	if str, ok := getMainStatusStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// MainStatusFor derives the customer-facing status from a logistic status.
// The mapping is total over all valid logistic statuses; an invalid input
// yields MainUnknown, which only ever surfaces from a programming error since
// aggregates never hold an invalid logistic status.
func MainStatusFor(s LogisticStatus) MainStatus {
	switch s {
	case StatusPendingReception:
		return MainAwaitingReception
	case StatusReceived, StatusWeighed, StatusWeightIssue, StatusVerified, StatusSorted:
		return MainAtWarehouse
	case StatusPaymentPending, StatusBlocked:
		return MainActionRequired
	case StatusReadyGrouping, StatusGrouped, StatusShippedRDC:
		return MainInTransit
	case StatusDeliveredFinal:
		return MainDelivered
	case StatusCancelled:
		return MainCancelled
	default:
		return MainUnknown
	}
}
