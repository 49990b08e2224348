package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/decision"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

const (
	// replacementBackdateDays pushes a replacement to the front of the
	// shipping queue.
	replacementBackdateDays = 5

	replacementOffset = -5
	latenessPenalty   = -4

	singleMultiQuantityReminder = "Note: 1 item has a quantity of 2 or more!"
	multiQuantityReminderFormat = "Note: %d items have a quantity of 2 or more!"
)

// OrderLifecycleProcessor drives one order through the full decision
// pipeline: subscription expansion, policy decision, replacement
// classification, lateness handling, and the final order update. Orders are
// processed strictly one at a time; a single order's failure never aborts the
// rest of the run.
type OrderLifecycleProcessor struct {
	store     ports.OrderStore
	catalog   ports.ProductCatalog
	engine    ShippingPolicyEngine
	expander  SubscriptionExpander
	decisions ports.DecisionLog
	now       func() time.Time
	logger    *slog.Logger
}

// NewOrderLifecycleProcessor creates the processor. now is the clock used for
// weekday and lateness math; it is sampled once per order.
func NewOrderLifecycleProcessor(
	store ports.OrderStore,
	catalog ports.ProductCatalog,
	engine ShippingPolicyEngine,
	expander SubscriptionExpander,
	decisions ports.DecisionLog,
	now func() time.Time,
	logger *slog.Logger,
) OrderLifecycleProcessor {
	return OrderLifecycleProcessor{
		store:     store,
		catalog:   catalog,
		engine:    engine,
		expander:  expander,
		decisions: decisions,
		now:       now,
		logger:    logger.With("component", "order_processor"),
	}
}

// ProcessPending pulls every pending order and runs each through the
// pipeline. Per-order failures are recorded and skipped.
func (p OrderLifecycleProcessor) ProcessPending(ctx context.Context, runID uuid.UUID) error {
	orders, err := p.store.ListPendingOrders(ctx)
	if err != nil {
		return fmt.Errorf("list pending orders: %w", err)
	}

	p.logger.InfoContext(ctx, "Processing pending orders", "runId", runID, "count", len(orders))
	for _, o := range orders {
		p.Process(ctx, runID, o)
	}
	return nil
}

// Process runs one order through the pipeline and records the decision. All
// failures end up in the decision log; none propagate.
func (p OrderLifecycleProcessor) Process(ctx context.Context, runID uuid.UUID, o *order.Order) {
	now := p.now()

	rec := p.processOne(ctx, o, now)
	rec.RunID = runID
	rec.RecordedAt = now

	switch rec.Outcome {
	case decision.Failed:
		p.logger.ErrorContext(ctx, "Order processing failed", "order", rec.OrderNumber, "reason", rec.Reason)
	case decision.Skipped:
		p.logger.InfoContext(ctx, "Order skipped", "order", rec.OrderNumber, "reason", rec.Reason)
	default:
		p.logger.InfoContext(ctx, "Order processed",
			"order", rec.OrderNumber, "outcome", rec.Outcome.String(),
			"service", rec.Service, "offset", rec.ShipByOffset)
	}

	if err := p.decisions.Append(ctx, rec); err != nil {
		p.logger.ErrorContext(ctx, "Decision log append failed", "order", rec.OrderNumber, "error", err)
	}
}

func (p OrderLifecycleProcessor) processOne(ctx context.Context, o *order.Order, now time.Time) decision.Record {
	rec := decision.Record{OrderNumber: o.Number}

	expanded, err := p.expander.Expand(ctx, o, now)
	if err != nil {
		rec.Outcome = decision.Failed
		rec.Reason = err.Error()
		return rec
	}
	if expanded {
		rec.OrderNumber = o.Number
	}

	policy := p.engine.Decide(ctx, o, now)
	plan := policy.Plan
	if plan.Service.IsNone() {
		plan.Service = shipping.DefaultService
	}

	create := false
	if p.isReplacement(o) {
		o.AddTag(order.TagReplacement)
		o.Items = p.livingItems(ctx, o)
		if len(o.Items) == 0 {
			rec.Outcome = decision.Skipped
			rec.Reason = "replacement has no living items"
			return rec
		}

		if err := p.store.CancelOrder(ctx, o.ID); err != nil {
			rec.Outcome = decision.Failed
			rec.Reason = fmt.Sprintf("cancel original order: %s", err)
			return rec
		}

		o.ID = 0
		o.Key = ""
		o.Number += "-R"
		o.CreatedAt = o.CreatedAt.AddDate(0, 0, -replacementBackdateDays)
		plan.ShipByOffset = replacementOffset
		plan.Notes += shipping.ReplacementNote
		create = true
		rec.OrderNumber = o.Number
	}

	if o.IsLate(now) {
		o.AddTag(order.TagLate)
		plan.ShipByOffset += latenessPenalty
		if !policy.Nonliving {
			plan.Notes += shipping.DelayNote
		}
	}

	update := ports.UpdateRequest{
		ID:                o.ID,
		Key:               o.Key,
		Number:            o.Number,
		Date:              o.CreatedAt,
		Status:            o.Status,
		BillTo:            o.BillTo,
		ShipTo:            o.ShipTo,
		Items:             o.Items,
		Tags:              o.Tags,
		StoreID:           o.Advanced.StoreID,
		Source:            o.Advanced.Source,
		Weight:            o.Weight,
		CustomerEmail:     o.CustomerEmail,
		RequestedShipping: o.RequestedShipping,
		Service:           plan.Service,
		Notes:             plan.Notes,
		Temperature:       plan.Temperature,
		ShipByOffset:      plan.ShipByOffset,
		Reminder:          multiQuantityReminder(o.Items),
	}
	if _, err := p.store.CreateOrUpdateOrder(ctx, update); err != nil {
		rec.Outcome = decision.Failed
		rec.Reason = fmt.Sprintf("issue order update: %s", err)
		return rec
	}

	if create {
		rec.Outcome = decision.Created
	} else {
		rec.Outcome = decision.Updated
	}
	rec.Service = plan.Service.String()
	rec.Notes = plan.Notes
	rec.Temperature = plan.Temperature
	rec.ShipByOffset = plan.ShipByOffset
	return rec
}

// isReplacement classifies the order. The flagged-for-replacement tag always
// wins and is cleared so the order is reprocessed as a replacement exactly
// once. The replacement and monthly tags short-circuit to false, keeping
// already-converted orders idempotent even when their payment timestamps look
// anomalous.
func (p OrderLifecycleProcessor) isReplacement(o *order.Order) bool {
	if o.HasTag(order.TagFlaggedForReplacement) {
		o.RemoveTag(order.TagFlaggedForReplacement)
		return true
	}
	if o.HasTag(order.TagReplacement) || o.HasTag(order.TagMonthly) {
		return false
	}
	return o.HasPaymentAnomaly()
}

// livingItems strips nonliving line items for a replacement shipment. A
// catalog failure keeps the item, assuming living.
func (p OrderLifecycleProcessor) livingItems(ctx context.Context, o *order.Order) []order.LineItem {
	kept := make([]order.LineItem, 0, len(o.Items))
	for _, item := range o.Items {
		if item.SKU != "" {
			categories, err := p.catalog.ProductCategories(ctx, item.SKU)
			if err == nil && categories.IsNonliving() {
				continue
			}
			if err != nil {
				p.logger.WarnContext(ctx, "Catalog lookup failed, keeping item",
					"order", o.Number, "sku", item.SKU, "error", err)
			}
		}
		kept = append(kept, item)
	}
	return kept
}

// multiQuantityReminder is the packing-floor side channel: a human-readable
// note when any line item ships in quantity.
func multiQuantityReminder(items []order.LineItem) string {
	switch n := order.MultiQuantityCount(items); {
	case n == 1:
		return singleMultiQuantityReminder
	case n > 1:
		return fmt.Sprintf(multiQuantityReminderFormat, n)
	default:
		return ""
	}
}
