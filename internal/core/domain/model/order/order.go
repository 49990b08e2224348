package order

import (
	"time"
)

// LatenessWindow is how long after creation an unshipped order is still on
// schedule. An order whose creation timestamp plus this window lies strictly
// in the past is flagged late.
const LatenessWindow = 6 * 24 * time.Hour

// Address is a bill-to or ship-to address. Only the fields the decision
// engine and the carrier collaborators consume are modeled.
type Address struct {
	Name        string
	Street1     string
	City        string
	State       string
	PostalCode  string
	Country     string
	Residential bool
}

// Weight is the package weight with its unit as reported by the order store.
type Weight struct {
	Value float64
	Units string
}

// Dimensions are the package dimensions with their unit.
type Dimensions struct {
	Units  string
	Length float64
	Width  float64
	Height float64
}

// AdvancedOptions is the free-form options bag the order store attaches to
// every order. CustomField1..3 carry operational notes, the forecast
// temperature, and the multi-quantity reminder on updates.
type AdvancedOptions struct {
	StoreID      int64
	Source       string
	CustomField1 string
	CustomField2 string
	CustomField3 string
}

// LineItem is a single purchased item. SKU may be empty for ad-hoc items.
type LineItem struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice float64
}

// Order is an order record as returned by the order-management collaborator.
//
// An Order is fetched once per run and mutated only in memory; persistent
// changes happen exclusively through an update request issued at the end of
// the pipeline. Replacement restructuring clears ID and Key so the update
// creates a fresh order instead of rewriting the original.
type Order struct {
	ID        int64
	Number    string
	Key       string
	Status    string
	CreatedAt time.Time
	// PaidAt is nil when the order has no payment timestamp. A missing or
	// pre-creation payment timestamp marks a replacement candidate.
	PaidAt *time.Time

	BillTo Address
	ShipTo Address

	Weight     Weight
	Dimensions Dimensions
	Total      float64

	RequestedShipping string
	CustomerEmail     string

	Tags     []Tag
	Items    []LineItem
	Advanced AdvancedOptions
}

// HasTag reports whether the order carries the given tag.
func (o *Order) HasTag(tag Tag) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag attaches a tag to the order's in-memory tag set. Tags are unique;
// adding a tag the order already carries is a no-op.
func (o *Order) AddTag(tag Tag) {
	if o.HasTag(tag) {
		return
	}
	o.Tags = append(o.Tags, tag)
}

// RemoveTag detaches a tag from the order's in-memory tag set.
func (o *Order) RemoveTag(tag Tag) {
	for i, t := range o.Tags {
		if t == tag {
			o.Tags = append(o.Tags[:i], o.Tags[i+1:]...)
			return
		}
	}
}

// HasPaymentAnomaly reports whether the payment timestamp is absent or
// precedes the creation timestamp. Storefront replacements are entered this
// way, which is how untagged replacement orders are detected.
func (o *Order) HasPaymentAnomaly() bool {
	return o.PaidAt == nil || o.PaidAt.Before(o.CreatedAt)
}

// IsLate reports whether the order has been waiting longer than the lateness
// window. The boundary is strict: an order created exactly LatenessWindow ago
// is not yet late.
func (o *Order) IsLate(now time.Time) bool {
	return o.CreatedAt.Add(LatenessWindow).Before(now)
}

// MultiQuantityCount returns how many line items have a quantity of 2 or more.
func MultiQuantityCount(items []LineItem) int {
	count := 0
	for _, item := range items {
		if item.Quantity > 1 {
			count++
		}
	}
	return count
}
