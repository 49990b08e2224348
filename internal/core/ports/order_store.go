// Package ports defines the capability interfaces the decision engine needs
// from its collaborators: the order-management backend, the product catalog,
// the carrier rate and transit services, the weather forecast service, and
// the local decision log.
//
// Every call is a single blocking request yielding a value or an error; no
// retries or caching happen behind these interfaces. A failed call degrades
// the decision per the component's documented default instead of aborting
// the run.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
)

// UpdateRequest is the single write the pipeline issues per order. The
// collaborator derives the absolute ship-by date from Date + 5 + ShipByOffset
// days.
type UpdateRequest struct {
	// ID is zero when the update must create a fresh order (replacement
	// restructuring clears it), otherwise the order to rewrite.
	ID     int64
	Key    string
	Number string
	Date   time.Time
	Status string

	BillTo order.Address
	ShipTo order.Address

	Items []order.LineItem
	Tags  []order.Tag

	StoreID int64
	Source  string

	Weight            order.Weight
	CustomerEmail     string
	RequestedShipping string

	Service shipping.ServiceCode
	Notes   string

	// Temperature is the forecast high in °F; zero means no forecast was
	// taken for this write and the field is left blank.
	Temperature  int
	ShipByOffset int

	// Reminder is the multi-quantity annotation, carried on a side channel
	// independent of Notes.
	Reminder string
}

// OrderReader retrieves orders from the order-management backend.
type OrderReader interface {
	// ListPendingOrders returns every order awaiting shipment.
	ListPendingOrders(ctx context.Context) ([]*order.Order, error)

	// GetOrder fetches one order by id.
	GetOrder(ctx context.Context, orderID int64) (*order.Order, error)
}

// OrderTagger attaches a tag to an order immediately, outside the update
// request. The call is idempotent from the caller's perspective.
type OrderTagger interface {
	AddTag(ctx context.Context, orderID int64, tag order.Tag) error
}

// OrderWriter mutates orders in the order-management backend.
type OrderWriter interface {
	// CreateOrUpdateOrder issues the update; it creates a fresh order when
	// the request carries no id. Returns the id of the written order.
	CreateOrUpdateOrder(ctx context.Context, req UpdateRequest) (int64, error)

	// CancelOrder cancels an order; the replacement path supersedes the
	// original this way.
	CancelOrder(ctx context.Context, orderID int64) error

	// HoldUntil places an operational hold on an order until the given date.
	HoldUntil(ctx context.Context, orderID int64, until time.Time) error
}

// OrderStore is the full order-management capability surface.
type OrderStore interface {
	OrderReader
	OrderTagger
	OrderWriter
}
