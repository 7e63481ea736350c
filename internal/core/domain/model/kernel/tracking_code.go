package kernel

import (
	"fmt"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// TrackingCodeMinLength is the shortest accepted tracking code, e.g. "CG-001".
const TrackingCodeMinLength = 6

// ErrTrackingCodeIsNotConstructed is returned when a TrackingCode was not
// created through NewTrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking code must be created via NewTrackingCode constructor")

// TrackingCode is the human-readable, customer-facing identifier printed on a
// parcel label. Codes are stored uppercase and are unique across all parcels.
//
// The value object normalizes its input: surrounding whitespace is trimmed
// and letters are uppercased, so "cg-2024-0158 " and "CG-2024-0158" are the
// same code.
type TrackingCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingCode creates a TrackingCode from raw label input.
// The input is trimmed and uppercased, must be at least TrackingCodeMinLength
// characters long, and may only contain letters, digits, and dashes.
func NewTrackingCode(raw string) (TrackingCode, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("tracking code")
	}
	if len(value) < TrackingCodeMinLength {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("tracking code",
			fmt.Errorf("%q is shorter than %d characters", value, TrackingCodeMinLength))
	}
	for _, r := range value {
		if !isTrackingCodeRune(r) {
			return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("tracking code",
				fmt.Errorf("%q contains invalid character %q", value, r))
		}
	}

	return TrackingCode{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func isTrackingCodeRune(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}

// String returns the normalized uppercase code.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes by their normalized value.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate ensures the code was created through NewTrackingCode.
func (c TrackingCode) Validate() error {
	return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
}
