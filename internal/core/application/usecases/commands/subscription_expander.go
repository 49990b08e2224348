package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

const (
	// holdDaysPerMonth spaces synthesized subscription shipments apart.
	holdDaysPerMonth = 30

	// firstFutureMonth is the earliest synthesized month: the original order
	// itself covers month one.
	firstFutureMonth = 2
)

// SubscriptionExpander rewrites a multi-month subscription purchase into its
// monthly shipments. The original order becomes the month-one shipment with a
// bundle placeholder item, and one held order per remaining future month is
// created.
type SubscriptionExpander struct {
	store  ports.OrderWriter
	logger *slog.Logger
}

// NewSubscriptionExpander creates the expander over the order write port.
func NewSubscriptionExpander(store ports.OrderWriter, logger *slog.Logger) SubscriptionExpander {
	return SubscriptionExpander{
		store:  store,
		logger: logger.With("component", "subscription_expander"),
	}
}

// Expand detects subscription line items and fans the order out into monthly
// shipments. Returns true when the order was rewritten, in which case o
// reflects the rewritten state and must continue through the normal pipeline.
//
// The original order is rewritten first so a later failure never loses the
// purchase: its subscription items are replaced by a bundle placeholder and
// the update is issued immediately with the default service. A failed rewrite
// leaves the order untouched. Future months are then created and held for 30
// days per month; a failed month is reported and skipped without aborting its
// siblings.
func (e SubscriptionExpander) Expand(ctx context.Context, o *order.Order, now time.Time) (bool, error) {
	months, ok := subscriptionMonths(o)
	if !ok {
		return false, nil
	}

	e.logger.InfoContext(ctx, "Expanding subscription", "order", o.Number, "months", months)

	items := withBundlePlaceholder(o.Items)
	tags := make([]order.Tag, 0, len(o.Tags)+1)
	tags = append(tags, o.Tags...)
	if !o.HasTag(order.TagMonthly) {
		tags = append(tags, order.TagMonthly)
	}

	rewrite := ports.UpdateRequest{
		ID:                o.ID,
		Key:               o.Key,
		Number:            o.Number,
		Date:              o.CreatedAt,
		Status:            o.Status,
		BillTo:            o.BillTo,
		ShipTo:            o.ShipTo,
		Items:             items,
		Tags:              tags,
		StoreID:           o.Advanced.StoreID,
		Source:            o.Advanced.Source,
		Weight:            o.Weight,
		CustomerEmail:     o.CustomerEmail,
		RequestedShipping: o.RequestedShipping,
		Service:           shipping.DefaultService,
	}
	if _, err := e.store.CreateOrUpdateOrder(ctx, rewrite); err != nil {
		return false, fmt.Errorf("rewrite subscription order %s: %w", o.Number, err)
	}

	o.Items = items
	o.Tags = tags

	for month := firstFutureMonth; month < months; month++ {
		future := ports.UpdateRequest{
			Number:            fmt.Sprintf("%s-SUB-%d", o.Number, month),
			Date:              now,
			Status:            o.Status,
			BillTo:            o.BillTo,
			ShipTo:            o.ShipTo,
			Items:             []order.LineItem{order.NewBundleItem()},
			Tags:              []order.Tag{order.TagMonthly},
			StoreID:           o.Advanced.StoreID,
			Source:            o.Advanced.Source,
			Weight:            o.Weight,
			CustomerEmail:     o.CustomerEmail,
			RequestedShipping: o.RequestedShipping,
			Service:           shipping.DefaultService,
		}

		id, err := e.store.CreateOrUpdateOrder(ctx, future)
		if err != nil {
			e.logger.ErrorContext(ctx, "Subscription month creation failed",
				"order", o.Number, "month", month, "error", err)
			continue
		}

		holdUntil := now.AddDate(0, 0, holdDaysPerMonth*month)
		if err := e.store.HoldUntil(ctx, id, holdUntil); err != nil {
			e.logger.ErrorContext(ctx, "Subscription month hold failed",
				"order", o.Number, "month", month, "error", err)
		}
	}
	return true, nil
}

// subscriptionMonths returns the month count of the first subscription line
// item, or false when the order holds none.
func subscriptionMonths(o *order.Order) (int, bool) {
	for _, item := range o.Items {
		if months, ok := order.SubscriptionMonths(item.SKU); ok {
			return months, ok
		}
	}
	return 0, false
}

// withBundlePlaceholder drops every subscription line item and appends a
// single bundle placeholder in their place.
func withBundlePlaceholder(items []order.LineItem) []order.LineItem {
	kept := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		if !order.IsSubscriptionSKU(item.SKU) {
			kept = append(kept, item)
		}
	}
	return append(kept, order.NewBundleItem())
}
