package parcel

// SpecialCase marks an exception condition on a parcel that overrides the
// normal destination-based routing. The empty string means no special case.
type SpecialCase string

const (
	// SpecialCaseNone is the normal case: route by destination.
	SpecialCaseNone SpecialCase = ""

	// SpecialCasePaymentPending holds the parcel in the blocked zone until an
	// outstanding payment is settled.
	SpecialCasePaymentPending SpecialCase = "payment_pending"

	// SpecialCaseFragile routes the parcel through special handling.
	SpecialCaseFragile SpecialCase = "fragile"

	// SpecialCaseCustomsHold routes the parcel through special handling while
	// customs paperwork is resolved.
	SpecialCaseCustomsHold SpecialCase = "customs_hold"
)

// IsSet reports whether any special case applies.
func (c SpecialCase) IsSet() bool {
	return c != SpecialCaseNone
}

// IsPaymentPending reports whether the parcel is held for payment.
func (c SpecialCase) IsPaymentPending() bool {
	return c == SpecialCasePaymentPending
}

// String returns the raw case marker. Implements fmt.Stringer.
func (c SpecialCase) String() string {
	return string(c)
}
