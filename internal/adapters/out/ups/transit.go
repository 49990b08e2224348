package ups

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// shipDateLayout is the bare-date format the transit API expects.
const shipDateLayout = "2006-01-02"

// Carrier service-level codes as reported by the transit API.
const (
	serviceLevel3DaySelect = "3DS"
	serviceLevelGround     = "GND"
)

type transitRequestDTO struct {
	OriginCountryCode      string `json:"originCountryCode"`
	OriginPostalCode       string `json:"originPostalCode"`
	DestinationCountryCode string `json:"destinationCountryCode"`
	DestinationPostalCode  string `json:"destinationPostalCode"`
	Weight                 string `json:"weight"`
	WeightUnitOfMeasure    string `json:"weightUnitOfMeasure"`
	ShipDate               string `json:"shipDate"`
}

type transitServiceDTO struct {
	ServiceLevel        string `json:"serviceLevel"`
	BusinessTransitDays string `json:"businessTransitDays"`
}

type transitResponseDTO struct {
	EMSResponse struct {
		Services []transitServiceDTO `json:"services"`
	} `json:"emsResponse"`
}

// TransitTimes fetches business-transit-day estimates for a shipment from
// the warehouse to the destination ZIP. Only the three-day-select and ground
// service levels are read; the ground-saver estimate is derived as ground
// plus one day and is absent whenever ground is.
func (c *Client) TransitTimes(ctx context.Context, token string, req ports.TransitRequest) (shipping.TransitEstimate, error) {
	payload := transitRequestDTO{
		OriginCountryCode:      "US",
		OriginPostalCode:       c.originZip,
		DestinationCountryCode: "US",
		DestinationPostalCode:  req.DestinationPostalCode,
		Weight:                 strconv.FormatFloat(req.WeightLbs, 'f', -1, 64),
		WeightUnitOfMeasure:    "LBS",
		ShipDate:               req.ShipDate.Format(shipDateLayout),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("transId", uuid.NewString())
	httpReq.Header.Set("transactionSrc", transactionSource)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.NewUnavailableErrorWithCause("ups transit", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, errs.NewUnavailableErrorWithCause("ups transit",
			fmt.Errorf("status %d: %s", resp.StatusCode, raw))
	}

	var dto transitResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, errs.NewUnavailableErrorWithCause("ups transit", err)
	}

	estimate := shipping.TransitEstimate{}
	for _, service := range dto.EMSResponse.Services {
		days, convErr := strconv.Atoi(service.BusinessTransitDays)
		if convErr != nil {
			c.logger.WarnContext(ctx, "Skipping transit estimate with unreadable day count",
				"serviceLevel", service.ServiceLevel, "businessTransitDays", service.BusinessTransitDays)
			continue
		}

		switch service.ServiceLevel {
		case serviceLevel3DaySelect:
			estimate[shipping.Service3DaySelect] = days
		case serviceLevelGround:
			estimate[shipping.ServiceGround] = days
		}
	}

	if days, ok := estimate.Days(shipping.ServiceGround); ok {
		estimate[shipping.ServiceGroundSaver] = days + 1
	}

	return estimate, nil
}
