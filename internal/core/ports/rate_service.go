package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
)

// RateRequest describes the shipment to quote. The origin is part of the
// adapter's configuration, not the request.
type RateRequest struct {
	Destination order.Address
	Weight      order.Weight
	Dimensions  order.Dimensions
}

// RateService quotes carrier rates for one shipment.
type RateService interface {
	QuoteRates(ctx context.Context, req RateRequest) ([]shipping.RateQuote, error)
}
