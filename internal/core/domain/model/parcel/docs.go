// Package parcel provides the aggregate root and value objects for the
// parcel logistics lifecycle: the journey of a physical parcel from "paid,
// awaiting reception" through weighing, discrepancy resolution, zone sorting,
// grouping, and final delivery.
//
// The package includes:
//   - Parcel: the aggregate root owning status, weights, zone, and history
//   - LogisticStatus / MainStatus: the internal state machine and the
//     customer-facing status derived from it
//   - LogisticStep / History: the append-only audit trail
//   - WeightVerification: the declared-vs-measured weighing outcome
//   - Zone: the physical sorting area (A-D)
//   - SpecialCase: exception markers that override destination routing
//
// Key business rules:
//   - status changes follow a fixed directed graph; rejected requests are
//     no-ops reported to the caller, never partial mutations
//   - the customer-facing status is recomputed from the logistic status on
//     every transition and is never set independently
//   - every successful mutation appends exactly one audit step; the history
//     is never edited, reordered, or truncated
//   - a parcel is sorted into a zone at most once per sort cycle
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package parcel
