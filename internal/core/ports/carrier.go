package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/shipping"
)

// TransitRequest describes the shipment whose transit times are estimated.
type TransitRequest struct {
	DestinationPostalCode string
	WeightLbs             float64
	ShipDate              time.Time
}

// CarrierAuthorizer obtains a short-lived access token for the carrier API.
// Tokens are not cached; each run authorizes anew.
type CarrierAuthorizer interface {
	Authorize(ctx context.Context) (string, error)
}

// TransitEstimator fetches business-transit-day estimates per service level.
type TransitEstimator interface {
	TransitTimes(ctx context.Context, token string, req TransitRequest) (shipping.TransitEstimate, error)
}

// CarrierClient is the full carrier capability surface.
type CarrierClient interface {
	CarrierAuthorizer
	TransitEstimator
}
