package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// Ship-by offsets applied by the policy branches. Negative means sooner.
const (
	impatientOffset      = -4
	nonlivingLateWeek    = -4
	nonlivingEarlyWeek   = 1
	expediteOffset       = -10
	selectOffset         = -2
	lateWeekThresholdDay = 3 // Thursday, counting from Monday=0
)

// PolicyDecision is the per-invocation result of the policy engine. The
// nonliving and expedite classifications live here instead of on the engine
// so nothing leaks across orders.
type PolicyDecision struct {
	Plan shipping.Plan

	// Nonliving is true when every line item is categorized nonliving; the
	// lifecycle pipeline suppresses the free-stems delay note for such orders.
	Nonliving bool

	// Expedite is true when the customer paid for expedited shipping.
	Expedite bool
}

// ShippingPolicyEngine turns one order's attributes into a shipping plan.
//
// Branch precedence (first match wins):
//  1. The impatient tag pre-sets the ship-by offset; later branches may
//     override it.
//  2. All-nonliving orders return immediately with no service selection and
//     a day-of-week offset.
//  3. Requested EXPEDITE returns 2nd Day Air without consulting the rate
//     collaborators.
//  4. Requested Select returns 3 Day Select.
//  5. Rate-based selection via RateSelector; any collaborator failure
//     degrades to "no selection" with the preset offset.
//
// Temperature advice (pack note + tightened day ceiling) is computed once per
// order before branching; a failed forecast degrades to the neutral 70°F.
type ShippingPolicyEngine struct {
	catalog  ports.ProductCatalog
	rates    ports.RateService
	carrier  ports.CarrierClient
	tagger   ports.OrderTagger
	advisor  WeatherAdvisor
	selector services.RateSelector
	logger   *slog.Logger
}

// NewShippingPolicyEngine creates the policy engine with its collaborator ports.
func NewShippingPolicyEngine(
	catalog ports.ProductCatalog,
	rates ports.RateService,
	carrier ports.CarrierClient,
	tagger ports.OrderTagger,
	advisor WeatherAdvisor,
	logger *slog.Logger,
) ShippingPolicyEngine {
	return ShippingPolicyEngine{
		catalog:  catalog,
		rates:    rates,
		carrier:  carrier,
		tagger:   tagger,
		advisor:  advisor,
		selector: services.NewRateSelector(),
		logger:   logger.With("component", "shipping_policy"),
	}
}

// Decide computes the shipping plan for one order. It never fails: every
// collaborator error degrades to a documented default. The now parameter is
// the single per-order time sample.
func (e ShippingPolicyEngine) Decide(ctx context.Context, o *order.Order, now time.Time) PolicyDecision {
	var dec PolicyDecision

	high, err := e.advisor.ForecastHigh(ctx, o.ShipTo.PostalCode)
	if err != nil {
		e.logger.WarnContext(ctx, "Forecast unavailable, assuming neutral temperature",
			"order", o.Number, "postalCode", o.ShipTo.PostalCode, "error", err)
		high = shipping.NeutralTemperature
	}
	advice := shipping.AdviseForTemperature(high)

	plan := shipping.Plan{Temperature: high}
	if o.HasTag(order.TagImpatient) {
		plan.ShipByOffset = impatientOffset
	}

	if e.allItemsNonliving(ctx, o) {
		dec.Nonliving = true
		e.tagOrder(ctx, o, order.TagNonliving)

		// Nonliving stock keeps: ship it late in the week so it occupies the
		// queue while weekends block living shipments, delay it otherwise.
		if weekdayFromMonday(now) >= lateWeekThresholdDay {
			plan.ShipByOffset = nonlivingLateWeek
		} else {
			plan.ShipByOffset = nonlivingEarlyWeek
		}
		plan.Notes = shipping.NonlivingNote
		dec.Plan = plan
		return dec
	}

	switch order.ClassifyRequestedService(o.RequestedShipping) {
	case order.RequestedExpedite:
		dec.Expedite = true
		e.tagOrder(ctx, o, order.TagExpedite)
		plan.Service = shipping.Service2ndDayAir
		plan.Notes = shipping.ExpeditePrefix + advice.Note
		plan.ShipByOffset = expediteOffset
		dec.Plan = plan
		return dec
	case order.RequestedSelect:
		plan.Service = shipping.Service3DaySelect
		plan.Notes = advice.Note
		plan.ShipByOffset = selectOffset
		dec.Plan = plan
		return dec
	}

	plan.Notes = advice.Note
	plan.Service = e.selectByRate(ctx, o, advice.DayCeiling, now)
	dec.Plan = plan
	return dec
}

// selectByRate runs the rate-based selection. Any collaborator failure
// returns ServiceNone so the caller applies its default.
func (e ShippingPolicyEngine) selectByRate(
	ctx context.Context,
	o *order.Order,
	dayCeiling int,
	now time.Time,
) shipping.ServiceCode {
	quotes, err := e.rates.QuoteRates(ctx, ports.RateRequest{
		Destination: o.ShipTo,
		Weight:      o.Weight,
		Dimensions:  o.Dimensions,
	})
	if err != nil {
		e.logger.WarnContext(ctx, "Rate quotes unavailable", "order", o.Number, "error", err)
		return shipping.ServiceNone
	}

	token, err := e.carrier.Authorize(ctx)
	if err != nil {
		e.logger.WarnContext(ctx, "Carrier authorization failed", "order", o.Number, "error", err)
		return shipping.ServiceNone
	}

	transit, err := e.carrier.TransitTimes(ctx, token, ports.TransitRequest{
		DestinationPostalCode: o.ShipTo.PostalCode,
		WeightLbs:             o.Weight.Value,
		ShipDate:              now,
	})
	if err != nil {
		e.logger.WarnContext(ctx, "Transit estimates unavailable", "order", o.Number, "error", err)
		return shipping.ServiceNone
	}

	service := e.selector.SelectService(quotes, transit, dayCeiling, o.Total, now)
	if service.IsNone() {
		// Quotes existed but none resolved; 3 Day Select is named anyway.
		service = shipping.Service3DaySelect
	}
	return service
}

// allItemsNonliving reports whether every line item with a SKU is categorized
// nonliving. Items without a SKU are skipped. A catalog failure for any SKU
// aborts the check for this order (treated as not nonliving).
func (e ShippingPolicyEngine) allItemsNonliving(ctx context.Context, o *order.Order) bool {
	for _, item := range o.Items {
		if item.SKU == "" {
			continue
		}

		categories, err := e.catalog.ProductCategories(ctx, item.SKU)
		if err != nil {
			e.logger.WarnContext(ctx, "Catalog lookup failed, assuming not all nonliving",
				"order", o.Number, "sku", item.SKU, "error", err)
			return false
		}
		if !categories.IsNonliving() {
			return false
		}
	}
	return true
}

// tagOrder attaches the tag both remotely and on the in-memory order so the
// final update carries a consistent tag set. Tagging failures are
// observational only.
func (e ShippingPolicyEngine) tagOrder(ctx context.Context, o *order.Order, tag order.Tag) {
	if err := e.tagger.AddTag(ctx, o.ID, tag); err != nil {
		e.logger.WarnContext(ctx, "Tagging failed", "order", o.Number, "tag", tag.String(), "error", err)
	}
	o.AddTag(tag)
}

// weekdayFromMonday returns the weekday with Monday as 0 and Sunday as 6.
func weekdayFromMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
