// Package kernel provides shared value objects used across the parcel domain.
//
// The package includes:
//   - UUID: validated unique identifier for entities and aggregates
//   - TrackingCode: uppercase human-readable parcel label code
//   - Destination: normalized lowercase delivery-city code
//
// All value objects are immutable, created through validating constructors,
// and reject their zero values via Validate(). This keeps invalid identifiers
// and unnormalized city codes out of the domain model entirely.
package kernel
