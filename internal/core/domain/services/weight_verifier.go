package services

import (
	"math"

	"parcels/internal/core/domain/model/parcel"
)

// WeightTolerancePercent is the maximum declared-vs-measured difference, in
// percent, that is auto-approved without customer contact.
const WeightTolerancePercent = 5.0

// WeightVerifier is a domain service that classifies the relationship between
// the weight a customer declared at intake and the weight measured at the
// warehouse scale.
//
// Classification policy:
//   - difference within WeightTolerancePercent: ok (auto-approved)
//   - over tolerance, parcel heavier than declared: supplement_required
//   - over tolerance, parcel lighter than declared: refund_available
//   - missing or non-positive declared weight: discrepancy (manual review)
//
// Verify is a pure function with no side effects; the caller decides whether
// an auto-approved outcome advances the parcel or a manual hold applies.
type WeightVerifier struct{}

// NewWeightVerifier creates a new WeightVerifier instance.
func NewWeightVerifier() WeightVerifier {
	return WeightVerifier{}
}

// Verify classifies a measurement against the declared weight, both in
// kilograms. Malformed input never panics: an unclassifiable pair yields a
// discrepancy outcome for manual review.
func (WeightVerifier) Verify(declaredWeight, actualWeight float64) parcel.WeightVerification {
	if declaredWeight <= 0 || actualWeight < 0 || math.IsNaN(actualWeight) || math.IsInf(actualWeight, 0) {
		return mustVerification(declaredWeight, math.Max(actualWeight, 0), 0, parcel.OutcomeDiscrepancy)
	}

	differencePercent := math.Abs(actualWeight-declaredWeight) / declaredWeight * 100

	outcome := parcel.OutcomeOK
	switch {
	case differencePercent <= WeightTolerancePercent:
		outcome = parcel.OutcomeOK
	case actualWeight > declaredWeight:
		outcome = parcel.OutcomeSupplementRequired
	default:
		outcome = parcel.OutcomeRefundAvailable
	}

	return mustVerification(declaredWeight, actualWeight, differencePercent, outcome)
}

// mustVerification builds the outcome record. The inputs are sanitized above,
// so a constructor failure here is a programming error.
func mustVerification(declared, actual, diff float64, outcome parcel.VerificationOutcome) parcel.WeightVerification {
	v, err := parcel.NewWeightVerification(declared, actual, diff, outcome)
	if err != nil {
		panic(err)
	}
	return v
}
