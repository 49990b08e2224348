// Package order contains the domain model for orders as exposed by the
// order-management collaborator.
//
// Unlike a locally-owned aggregate, an Order here is a read-mostly external
// record: it is fetched from the order store, possibly rewritten in memory by
// the pipeline (subscription expansion, replacement restructuring), and then
// written back through a single update request. The package therefore models
// orders with exported fields plus behavior methods for the classifications
// the decision engine needs (tags, payment anomalies, lateness, quantity
// counting, requested-shipping classification, subscription vocabulary).
//
// The tag vocabulary is the single source of truth for the externally-defined
// numeric tag ids; the engine never invents new ids.
package order
