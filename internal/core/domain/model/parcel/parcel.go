package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrInvalidTransition is returned when a requested logistic-status change
	// is not an edge of the lifecycle graph. The parcel is left untouched;
	// callers surface the rejection as a no-op to the operator.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Parcel is the aggregate root of the logistics lifecycle. It owns the
// logistic status, the derived customer-facing main status, the weighing
// outcome, the sorting-zone assignment, and the append-only audit trail.
//
// Invariants maintained by the aggregate:
//   - mainStatus is always MainStatusFor(logisticStatus); it is recomputed on
//     every transition and never written independently
//   - logisticStatus only moves along the transition graph; rejected requests
//     mutate nothing
//   - every successful transition appends exactly one LogisticStep, so the
//     audit trail length strictly increases with each mutation
//   - a parcel holds at most one sorting-zone assignment per sort cycle
//
// All fields are private; state changes go exclusively through the mutating
// methods below.
type Parcel struct {
	id               kernel.UUID
	trackingCode     kernel.TrackingCode
	destination      kernel.Destination
	recipientContact string
	specialCase      SpecialCase

	weightDeclared     float64
	weightReal         *float64
	weightVerification *WeightVerification
	weightPhotos       []string

	sortingZone   Zone
	sortingReason string
	sortedAt      *time.Time
	sortedBy      string

	logisticStatus LogisticStatus
	mainStatus     MainStatus
	history        History

	receivedAt    *time.Time
	version       int64
	lastUpdatedBy string
	lastUpdatedAt time.Time

	isConstructed bool
}

// NewParcel creates a parcel at intake, after payment confirmation and before
// physical reception. The parcel starts in pending_reception with a single
// "intake" audit step.
//
// declaredWeight is the customer-declared weight in kilograms; zero is
// accepted (missing declaration) and will classify as a discrepancy at
// weighing, negative values are rejected.
func NewParcel(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	destination kernel.Destination,
	recipientContact string,
	declaredWeight float64,
	specialCase SpecialCase,
	createdBy string,
	at time.Time,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		trackingCode.Validate(),
		destination.Validate(),
	); err != nil {
		return nil, err
	}
	if recipientContact == "" {
		return nil, errs.NewValueIsRequiredError("recipient contact")
	}
	if declaredWeight < 0 {
		return nil, errs.NewValueIsOutOfRangeError("declared weight", declaredWeight, 0, "+inf")
	}
	if createdBy == "" {
		return nil, errs.NewValueIsRequiredError("created by")
	}

	step, err := NewLogisticStep("intake", at, createdBy, "", nil)
	if err != nil {
		return nil, err
	}

	return &Parcel{
		id:               id,
		trackingCode:     trackingCode,
		destination:      destination,
		recipientContact: recipientContact,
		specialCase:      specialCase,
		weightDeclared:   declaredWeight,
		logisticStatus:   StatusPendingReception,
		mainStatus:       MainStatusFor(StatusPendingReception),
		history:          History{}.Append(step),
		version:          1,
		lastUpdatedBy:    createdBy,
		lastUpdatedAt:    at,
		isConstructed:    true,
	}, nil
}

// RestoreParcel rebuilds a parcel aggregate from persistence. The main status
// is recomputed from the stored logistic status rather than trusted from the
// store, which keeps the derivation invariant intact even against hand-edited
// rows.
func RestoreParcel(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	destination kernel.Destination,
	recipientContact string,
	specialCase SpecialCase,
	declaredWeight float64,
	realWeight *float64,
	verification *WeightVerification,
	photos []string,
	zone Zone,
	sortingReason string,
	sortedAt *time.Time,
	sortedBy string,
	status LogisticStatus,
	history History,
	receivedAt *time.Time,
	version int64,
	lastUpdatedBy string,
	lastUpdatedAt time.Time,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		trackingCode.Validate(),
		destination.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("parcel version",
			fmt.Errorf("%d is not a positive version", version))
	}

	return &Parcel{
		id:                 id,
		trackingCode:       trackingCode,
		destination:        destination,
		recipientContact:   recipientContact,
		specialCase:        specialCase,
		weightDeclared:     declaredWeight,
		weightReal:         realWeight,
		weightVerification: verification,
		weightPhotos:       copyStrings(photos),
		sortingZone:        zone,
		sortingReason:      sortingReason,
		sortedAt:           sortedAt,
		sortedBy:           sortedBy,
		logisticStatus:     status,
		mainStatus:         MainStatusFor(status),
		history:            history,
		receivedAt:         receivedAt,
		version:            version,
		lastUpdatedBy:      lastUpdatedBy,
		lastUpdatedAt:      lastUpdatedAt,
		isConstructed:      true,
	}, nil
}

// Validate ensures the parcel was created through NewParcel or RestoreParcel.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the customer-facing label code.
func (p *Parcel) TrackingCode() kernel.TrackingCode {
	return p.trackingCode
}

// Destination returns the normalized delivery-city code.
func (p *Parcel) Destination() kernel.Destination {
	return p.destination
}

// RecipientContact returns the phone or email notified on lifecycle events.
func (p *Parcel) RecipientContact() string {
	return p.recipientContact
}

// SpecialCase returns the exception marker, if any.
func (p *Parcel) SpecialCase() SpecialCase {
	return p.specialCase
}

// WeightDeclared returns the intake-declared weight in kilograms.
func (p *Parcel) WeightDeclared() float64 {
	return p.weightDeclared
}

// WeightReal returns the measured weight in kilograms, or nil before weighing.
func (p *Parcel) WeightReal() *float64 {
	if p.weightReal == nil {
		return nil
	}
	w := *p.weightReal
	return &w
}

// WeightVerification returns the weighing outcome record, or nil before
// weighing.
func (p *Parcel) WeightVerification() *WeightVerification {
	if p.weightVerification == nil {
		return nil
	}
	v := *p.weightVerification
	return &v
}

// WeightPhotos returns the evidence photo references captured at weighing.
func (p *Parcel) WeightPhotos() []string {
	return copyStrings(p.weightPhotos)
}

// HasWeightDiscrepancy reports whether the recorded weighing needs customer
// or agent follow-up.
func (p *Parcel) HasWeightDiscrepancy() bool {
	return p.weightVerification != nil && !p.weightVerification.AutoApproved()
}

// SortingZone returns the assigned zone, or ZoneUnknown before sorting.
func (p *Parcel) SortingZone() Zone {
	return p.sortingZone
}

// SortingReason returns the rule explanation recorded at sorting.
func (p *Parcel) SortingReason() string {
	return p.sortingReason
}

// SortedAt returns when the parcel was sorted, or nil before sorting.
func (p *Parcel) SortedAt() *time.Time {
	if p.sortedAt == nil {
		return nil
	}
	t := *p.sortedAt
	return &t
}

// SortedBy returns the operator who sorted the parcel.
func (p *Parcel) SortedBy() string {
	return p.sortedBy
}

// LogisticStatus returns the current lifecycle state.
func (p *Parcel) LogisticStatus() LogisticStatus {
	return p.logisticStatus
}

// MainStatus returns the derived customer-facing status.
func (p *Parcel) MainStatus() MainStatus {
	return p.mainStatus
}

// History returns the append-only audit trail.
func (p *Parcel) History() History {
	return p.history
}

// ReceivedAt returns when the parcel was scanned in, or nil before reception.
func (p *Parcel) ReceivedAt() *time.Time {
	if p.receivedAt == nil {
		return nil
	}
	t := *p.receivedAt
	return &t
}

// Version returns the optimistic-concurrency version the aggregate was
// loaded with. The repository conditions every update on it.
func (p *Parcel) Version() int64 {
	return p.version
}

// LastUpdatedBy returns the agent of the most recent mutation.
func (p *Parcel) LastUpdatedBy() string {
	return p.lastUpdatedBy
}

// LastUpdatedAt returns the time of the most recent mutation.
func (p *Parcel) LastUpdatedAt() time.Time {
	return p.lastUpdatedAt
}

// MarkReceived records the physical arrival of the parcel at the warehouse.
// Legal only from pending_reception; a repeated scan is rejected with
// ErrInvalidTransition and appends nothing.
func (p *Parcel) MarkReceived(agent string, at time.Time) error {
	if err := p.applyTransition(StatusReceived, "received", agent, "", nil, at); err != nil {
		return err
	}
	received := at
	p.receivedAt = &received
	return nil
}

// RecordWeighing stores the measured weight, its verification outcome, and
// the photo evidence. An auto-approved outcome advances to weighed; anything
// else parks the parcel in weight_issue for manual review. The audit step is
// named after the status the parcel lands in.
func (p *Parcel) RecordWeighing(verification WeightVerification, photos []string, agent string, at time.Time) error {
	target := StatusWeighed
	if !verification.AutoApproved() {
		target = StatusWeightIssue
	}

	data := map[string]string{
		"outcome":            verification.Outcome().String(),
		"difference_percent": fmt.Sprintf("%.2f", verification.DifferencePercent()),
	}
	if err := p.applyTransition(target, target.String(), agent, "", data, at); err != nil {
		return err
	}

	actual := verification.ActualWeight()
	p.weightReal = &actual
	p.weightVerification = &verification
	p.weightPhotos = copyStrings(photos)
	return nil
}

// ResolveWeightIssue records the manual approval of a disputed measurement,
// moving the parcel to verified so it becomes eligible for sorting.
func (p *Parcel) ResolveWeightIssue(agent, notes string, at time.Time) error {
	return p.applyTransition(StatusVerified, "weight_verified", agent, notes, nil, at)
}

// ApplySorting stamps the zone assignment produced by the sorting rules and
// advances the parcel to sorted. Re-sorting an already sorted parcel is
// rejected by the transition graph; a new sort cycle requires the separately
// authorized correction path back to a pre-sort status.
func (p *Parcel) ApplySorting(zone Zone, reason string, operator string, at time.Time) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("sorting reason")
	}

	data := map[string]string{
		"zone":   zone.String(),
		"reason": reason,
	}
	if err := p.applyTransition(StatusSorted, "sorted", operator, "", data, at); err != nil {
		return err
	}

	sorted := at
	p.sortingZone = zone
	p.sortingReason = reason
	p.sortedAt = &sorted
	p.sortedBy = operator
	return nil
}

// Advance moves the parcel one step along the grouping/shipping tail of the
// lifecycle (payment_pending, ready_grouping, grouped, shipped_rdc,
// delivered_final, blocked, or cancelled). The transition graph decides
// legality; notes is optional operator context.
func (p *Parcel) Advance(target LogisticStatus, agent, notes string, at time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	return p.applyTransition(target, target.String(), agent, notes, nil, at)
}

// applyTransition is the single funnel for every status change: it checks the
// transition graph, updates the logistic status, re-derives the main status,
// appends exactly one audit step, and stamps provenance. On any error the
// parcel is left exactly as it was.
func (p *Parcel) applyTransition(
	target LogisticStatus,
	stepName, agent, notes string,
	data map[string]string,
	at time.Time,
) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if agent == "" {
		return errs.NewValueIsRequiredError("agent")
	}
	if !p.logisticStatus.CanTransition(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.logisticStatus, target)
	}

	step, err := NewLogisticStep(stepName, at, agent, notes, data)
	if err != nil {
		return err
	}

	p.logisticStatus = target
	p.mainStatus = MainStatusFor(target)
	p.history = p.history.Append(step)
	p.lastUpdatedBy = agent
	p.lastUpdatedAt = at
	return nil
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
