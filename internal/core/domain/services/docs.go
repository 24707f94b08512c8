// Package services provides domain services for route planning and costing that
// don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DistanceEstimator: road distance via the mapping provider with a haversine fallback
//   - FleetAverages, EstimateLegCost: pure estimated-cost functions over the eligible fleet
//   - StorageDays, RealLegCost: the realized cost of a finished leg
//   - RouteProposalGenerator: the direct, one-stop and two-stop candidate routes
package services
