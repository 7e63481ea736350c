package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Zone is a physical sorting area of the warehouse floor. Weighed parcels are
// routed to exactly one zone by the sorting rules.
type Zone int

const (
	// ZoneUnknown represents an unsorted parcel.
	ZoneUnknown Zone = iota

	// ZoneA holds parcels bound for Kinshasa.
	ZoneA

	// ZoneB holds parcels bound for Lubumbashi.
	ZoneB

	// ZoneC holds parcels needing special handling.
	ZoneC

	// ZoneD holds blocked parcels: payment pending or unknown destination.
	// Nothing leaves zone D without a human decision.
	ZoneD
)

func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		ZoneUnknown: "",
		ZoneA:       "A",
		ZoneB:       "B",
		ZoneC:       "C",
		ZoneD:       "D",
	}
}

// ParseZone converts a stored zone letter back into its enum value.
// The empty string maps to ZoneUnknown (unsorted).
func ParseZone(s string) (Zone, error) {
	for zone, str := range getZoneStrings() {
		if str == s {
			return zone, nil
		}
	}
	return ZoneUnknown, errs.NewValueIsInvalidErrorWithCause("sorting zone",
		fmt.Errorf("%q is not a valid sorting zone", s))
}

// String returns the zone letter, or the empty string for an unsorted parcel.
// Implements fmt.Stringer.
func (z Zone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return ""
}

// Validate checks if the Zone is one of the assignable zones A-D.
// ZoneUnknown is invalid as a sorting result.
func (z Zone) Validate() error {
	switch z {
	case ZoneA, ZoneB, ZoneC, ZoneD:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("sorting zone",
			fmt.Errorf("%d is not a valid sorting zone", z))
	}
}

// IsShippable reports whether parcels in this zone continue toward grouping
// without human intervention. Zones C and D hold parcels back.
func (z Zone) IsShippable() bool {
	return z == ZoneA || z == ZoneB
}
