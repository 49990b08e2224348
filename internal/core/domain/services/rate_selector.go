package services

import (
	"time"

	"fulfillment/internal/core/domain/model/shipping"
)

// Cost thresholds for downgrading a 3 Day Select pick to ground. The tier is
// not worth its price on small orders, so an expensive Select quote is
// replaced with the ground quote when the order total sits under the
// matching cap.
const (
	selectDowngradeCost  = 11.0
	selectDowngradeTotal = 35.0

	selectDowngradeHighCost  = 12.5
	selectDowngradeHighTotal = 50.0
)

// RateSelector is a domain service that picks the shipping service for one
// order from the carrier's rate quotes and transit estimates.
//
// Selection rules:
//   - The delivery-day ceiling shrinks by one (once at most) when a Sunday
//     falls inside the shipping window; the carrier does not move packages
//     on Sundays.
//   - Among quotes with a known transit estimate within the ceiling, the
//     cheapest wins. Ties keep the first quote encountered.
//   - A winning 3 Day Select quote is downgraded to ground when its cost is
//     out of proportion to the order total and a ground quote exists.
//   - When no quote fits the ceiling, the 3 Day Select quote (if present) is
//     used as fallback and the downgrade check is re-applied to it.
//   - When nothing resolves the result is ServiceNone; the caller names its
//     default.
//
// Missing quotes or transit data are signaled upstream and never reach this
// service; it only ever sees usable inputs.
type RateSelector struct{}

// NewRateSelector creates a new RateSelector instance.
func NewRateSelector() RateSelector {
	return RateSelector{}
}

// SelectService picks the service code for an order.
//
// Parameters:
//   - quotes: carrier rate quotes in the order the carrier returned them
//   - transit: business-transit-day estimates per service
//   - dayCeiling: maximum acceptable transit days (already tightened for
//     temperature extremes by the caller)
//   - orderTotal: the order's monetary total, used by the downgrade rules
//   - now: the per-order sampled time, used for the Sunday window check
//
// Returns the selected service code, or ServiceNone when no quote resolves.
func (s RateSelector) SelectService(
	quotes []shipping.RateQuote,
	transit shipping.TransitEstimate,
	dayCeiling int,
	orderTotal float64,
	now time.Time,
) shipping.ServiceCode {
	dayCeiling = adjustCeilingForSunday(dayCeiling, now)

	best := s.findCheapestEligible(quotes, transit, dayCeiling)
	if best == nil {
		// No service fits the window; fall back to 3 Day Select if quoted.
		best = findQuote(quotes, shipping.Service3DaySelect)
	}
	if best == nil {
		return shipping.ServiceNone
	}

	return s.applyDowngrade(*best, quotes, orderTotal).Service
}

// findCheapestEligible scans the quotes for the minimum-cost service whose
// transit estimate is known and within the ceiling. The scan is stable: a
// later quote replaces the current best only when strictly cheaper.
func (s RateSelector) findCheapestEligible(
	quotes []shipping.RateQuote,
	transit shipping.TransitEstimate,
	dayCeiling int,
) *shipping.RateQuote {
	var best *shipping.RateQuote

	for i := range quotes {
		days, ok := transit.Days(quotes[i].Service)
		if !ok || days > dayCeiling {
			continue
		}

		if best == nil || quotes[i].Cost < best.Cost {
			best = &quotes[i]
		}
	}

	return best
}

// applyDowngrade swaps a 3 Day Select pick for the ground quote when either
// cost rule triggers. Without a ground quote the pick stands.
func (s RateSelector) applyDowngrade(
	best shipping.RateQuote,
	quotes []shipping.RateQuote,
	orderTotal float64,
) shipping.RateQuote {
	if best.Service != shipping.Service3DaySelect {
		return best
	}

	tooExpensive := (best.Cost > selectDowngradeCost && orderTotal < selectDowngradeTotal) ||
		(best.Cost > selectDowngradeHighCost && orderTotal < selectDowngradeHighTotal)
	if !tooExpensive {
		return best
	}

	if ground := findQuote(quotes, shipping.ServiceGround); ground != nil {
		return *ground
	}

	return best
}

// adjustCeilingForSunday subtracts one day from the ceiling when any day of
// the shipping window 1..ceiling from now lands on a Sunday. The decrement is
// applied at most once.
func adjustCeilingForSunday(dayCeiling int, now time.Time) int {
	for day := 1; day <= dayCeiling; day++ {
		if now.AddDate(0, 0, day).Weekday() == time.Sunday {
			return dayCeiling - 1
		}
	}
	return dayCeiling
}

// findQuote returns the first quote for the given service, or nil.
func findQuote(quotes []shipping.RateQuote, service shipping.ServiceCode) *shipping.RateQuote {
	for i := range quotes {
		if quotes[i].Service == service {
			return &quotes[i]
		}
	}
	return nil
}
