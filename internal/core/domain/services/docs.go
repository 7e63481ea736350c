// Package services provides domain services for the parcel lifecycle:
// business rules that operate on a parcel aggregate but do not naturally
// belong to the aggregate itself.
//
// The package includes:
//   - WeightVerifier: pure classification of declared vs. measured weight
//   - ZoneSorter: the deterministic zone-assignment rule engine
//
// Both services are stateless; all persistence and orchestration concerns
// live in the application layer.
package services
