package order

// BundleSKU is the placeholder SKU substituted for subscription line items
// when a subscription purchase is expanded.
const BundleSKU = "SUBBUNDLE"

// subscriptionMonths maps the fixed subscription SKU vocabulary to the number
// of months each plan covers.
func subscriptionMonths() map[string]int {
	return map[string]int{
		"SUB3":  3,
		"SUB6":  6,
		"SUB9":  9,
		"SUB12": 12,
	}
}

// SubscriptionMonths returns the plan length for a subscription SKU and
// whether the SKU belongs to the subscription vocabulary.
func SubscriptionMonths(sku string) (int, bool) {
	months, ok := subscriptionMonths()[sku]
	return months, ok
}

// IsSubscriptionSKU reports whether the SKU belongs to the subscription
// vocabulary.
func IsSubscriptionSKU(sku string) bool {
	_, ok := subscriptionMonths()[sku]
	return ok
}

// NewBundleItem returns the placeholder line item that stands in for a
// subscription purchase on each monthly shipment.
func NewBundleItem() LineItem {
	return LineItem{
		SKU:       BundleSKU,
		Name:      "Subscription Bundle",
		Quantity:  1,
		UnitPrice: 0.00,
	}
}
