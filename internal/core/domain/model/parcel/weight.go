package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// VerificationOutcome classifies the relationship between the weight declared
// at intake and the weight measured at the warehouse scale.
type VerificationOutcome int

const (
	// OutcomeUnknown represents an invalid or undefined outcome.
	OutcomeUnknown VerificationOutcome = iota

	// OutcomeOK means the measured weight is within tolerance of the declared
	// weight. Auto-approved; no customer contact needed.
	OutcomeOK

	// OutcomeDiscrepancy means the measurement could not be classified
	// (missing or non-positive declared weight) and requires manual review.
	OutcomeDiscrepancy

	// OutcomeSupplementRequired means the parcel is heavier than declared
	// beyond tolerance; the customer owes the difference.
	OutcomeSupplementRequired

	// OutcomeRefundAvailable means the parcel is lighter than declared beyond
	// tolerance; the customer can claim a refund.
	OutcomeRefundAvailable
)

func getOutcomeStrings() map[VerificationOutcome]string {
	return map[VerificationOutcome]string{
		OutcomeUnknown:            "unknown",
		OutcomeOK:                 "ok",
		OutcomeDiscrepancy:        "discrepancy",
		OutcomeSupplementRequired: "supplement_required",
		OutcomeRefundAvailable:    "refund_available",
	}
}

// String returns the snake_case name of the outcome, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (o VerificationOutcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the VerificationOutcome value is valid.
func (o VerificationOutcome) Validate() error {
	switch o {
	case OutcomeOK, OutcomeDiscrepancy, OutcomeSupplementRequired, OutcomeRefundAvailable:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("verification outcome",
			fmt.Errorf("%d is not a valid verification outcome", o))
	}
}

// WeightVerification is the immutable outcome record of one weighing: the
// declared and measured weights in kilograms, their relative difference, and
// the classification.
type WeightVerification struct {
	declaredWeight    float64
	actualWeight      float64
	differencePercent float64
	outcome           VerificationOutcome
}

// NewWeightVerification creates a verification record. The caller (normally
// services.WeightVerifier) is responsible for the classification policy; this
// constructor only checks internal consistency.
func NewWeightVerification(declared, actual, differencePercent float64, outcome VerificationOutcome) (WeightVerification, error) {
	if err := outcome.Validate(); err != nil {
		return WeightVerification{}, err
	}
	if actual < 0 {
		return WeightVerification{}, errs.NewValueIsOutOfRangeError("actual weight", actual, 0, "+inf")
	}

	return WeightVerification{
		declaredWeight:    declared,
		actualWeight:      actual,
		differencePercent: differencePercent,
		outcome:           outcome,
	}, nil
}

// DeclaredWeight returns the weight declared at intake, in kilograms.
func (v WeightVerification) DeclaredWeight() float64 {
	return v.declaredWeight
}

// ActualWeight returns the weight measured at the warehouse, in kilograms.
func (v WeightVerification) ActualWeight() float64 {
	return v.actualWeight
}

// DifferencePercent returns |actual - declared| / declared * 100.
func (v WeightVerification) DifferencePercent() float64 {
	return v.differencePercent
}

// Outcome returns the classification of the weighing.
func (v WeightVerification) Outcome() VerificationOutcome {
	return v.outcome
}

// AutoApproved reports whether the weighing needs no further human or
// customer action before sorting.
func (v WeightVerification) AutoApproved() bool {
	return v.outcome == OutcomeOK
}
