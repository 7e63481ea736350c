package kernel

import (
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when a Destination was not
// created through NewDestination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// Destination is the normalized delivery-city code of a parcel.
// City names are stored lowercase with surrounding whitespace removed, so the
// zone-assignment rules can compare codes directly ("Kinshasa " and
// "kinshasa" are the same destination).
//
// The value object does not restrict the city to a known list: unmapped
// destinations are legal input and are handled by the sorting rules, which
// route them to the blocked zone rather than rejecting them at intake.
type Destination struct { //nolint:recvcheck //using for validation
	city  string
	guard guard.ConstructorGuard
}

// NewDestination creates a Destination from a raw city name.
// The input is trimmed and lowercased and must not be empty.
func NewDestination(raw string) (Destination, error) {
	city := strings.ToLower(strings.TrimSpace(raw))
	if city == "" {
		return Destination{}, errs.NewValueIsRequiredError("destination city")
	}

	return Destination{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// City returns the normalized lowercase city code.
func (d Destination) City() string {
	return d.city
}

// IsEqual compares two destinations by their normalized city code.
func (d Destination) IsEqual(other Destination) bool {
	return d.city == other.city
}

// Validate ensures the destination was created through NewDestination.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}
