package shipstation

import (
	"context"
	"net/http"

	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

type rateRequestDTO struct {
	CarrierCode    string        `json:"carrierCode"`
	ServiceCode    string        `json:"serviceCode"`
	PackageCode    string        `json:"packageCode"`
	FromPostalCode string        `json:"fromPostalCode"`
	ToState        string        `json:"toState"`
	ToCountry      string        `json:"toCountry"`
	ToPostalCode   string        `json:"toPostalCode"`
	ToCity         string        `json:"toCity"`
	Weight         weightDTO     `json:"weight"`
	Dimensions     dimensionsDTO `json:"dimensions"`
	Confirmation   string        `json:"confirmation"`
	Residential    bool          `json:"residential"`
}

type rateDTO struct {
	ServiceCode  string  `json:"serviceCode"`
	ServiceName  string  `json:"serviceName"`
	ShipmentCost float64 `json:"shipmentCost"`
	OtherCost    float64 `json:"otherCost"`
}

// QuoteRates quotes every service of the walleted UPS carrier for one
// shipment from the warehouse to the order's destination.
func (c *Client) QuoteRates(ctx context.Context, req ports.RateRequest) ([]shipping.RateQuote, error) {
	payload := rateRequestDTO{
		CarrierCode:    carrierCode,
		FromPostalCode: c.originZip,
		ToState:        req.Destination.State,
		ToCountry:      req.Destination.Country,
		ToPostalCode:   req.Destination.PostalCode,
		ToCity:         req.Destination.City,
		Weight:         weightDTO(req.Weight),
		Dimensions:     dimensionsDTO(req.Dimensions),
		Confirmation:   "delivery",
		Residential:    req.Destination.Residential,
	}

	var rates []rateDTO
	if err := c.do(ctx, http.MethodPost, "/shipments/getrates", nil, payload, &rates); err != nil {
		return nil, err
	}

	quotes := make([]shipping.RateQuote, 0, len(rates))
	for _, rate := range rates {
		quotes = append(quotes, shipping.RateQuote{
			Service: shipping.ServiceCode(rate.ServiceCode),
			Cost:    rate.ShipmentCost,
		})
	}
	return quotes, nil
}
