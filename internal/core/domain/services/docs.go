// Package services provides domain services for the fulfillment decision
// engine: business logic that operates on several value objects at once and
// does not belong to a single model type.
//
// The package includes:
//   - RateSelector: selects the cheapest carrier service that satisfies a
//     delivery-day ceiling, with cost-based downgrade rules
//
// Domain services here are pure: they receive all inputs as values (including
// the sampled "now") and never call collaborators.
package services
