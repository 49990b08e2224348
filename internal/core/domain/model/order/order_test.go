package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Tags(t *testing.T) {
	t.Run("add_is_unique", func(t *testing.T) {
		o := &order.Order{}

		o.AddTag(order.TagLate)
		o.AddTag(order.TagLate)

		assert.Equal(t, []order.Tag{order.TagLate}, o.Tags)
		assert.True(t, o.HasTag(order.TagLate))
	})

	t.Run("remove_existing", func(t *testing.T) {
		o := &order.Order{Tags: []order.Tag{order.TagFlaggedForReplacement, order.TagImpatient}}

		o.RemoveTag(order.TagFlaggedForReplacement)

		assert.Equal(t, []order.Tag{order.TagImpatient}, o.Tags)
	})

	t.Run("remove_absent_is_noop", func(t *testing.T) {
		o := &order.Order{Tags: []order.Tag{order.TagImpatient}}

		o.RemoveTag(order.TagLate)

		assert.Equal(t, []order.Tag{order.TagImpatient}, o.Tags)
	})
}

func TestOrder_HasPaymentAnomaly(t *testing.T) {
	created := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("missing_payment_timestamp", func(t *testing.T) {
		o := &order.Order{CreatedAt: created}
		assert.True(t, o.HasPaymentAnomaly())
	})

	t.Run("payment_precedes_creation", func(t *testing.T) {
		paid := created.Add(-time.Hour)
		o := &order.Order{CreatedAt: created, PaidAt: &paid}
		assert.True(t, o.HasPaymentAnomaly())
	})

	t.Run("payment_after_creation", func(t *testing.T) {
		paid := created.Add(time.Minute)
		o := &order.Order{CreatedAt: created, PaidAt: &paid}
		assert.False(t, o.HasPaymentAnomaly())
	})

	t.Run("payment_equals_creation", func(t *testing.T) {
		paid := created
		o := &order.Order{CreatedAt: created, PaidAt: &paid}
		assert.False(t, o.HasPaymentAnomaly())
	})
}

func TestOrder_IsLate(t *testing.T) {
	now := time.Date(2025, 5, 16, 12, 0, 0, 0, time.UTC)

	t.Run("six_days_and_one_second_is_late", func(t *testing.T) {
		o := &order.Order{CreatedAt: now.Add(-order.LatenessWindow - time.Second)}
		assert.True(t, o.IsLate(now))
	})

	t.Run("exactly_six_days_is_not_late", func(t *testing.T) {
		o := &order.Order{CreatedAt: now.Add(-order.LatenessWindow)}
		assert.False(t, o.IsLate(now))
	})

	t.Run("fresh_order_is_not_late", func(t *testing.T) {
		o := &order.Order{CreatedAt: now.Add(-time.Hour)}
		assert.False(t, o.IsLate(now))
	})
}

func TestMultiQuantityCount(t *testing.T) {
	items := []order.LineItem{
		{SKU: "A", Quantity: 1},
		{SKU: "B", Quantity: 2},
		{SKU: "C", Quantity: 5},
		{SKU: "", Quantity: 1},
	}

	assert.Equal(t, 2, order.MultiQuantityCount(items))
	assert.Equal(t, 0, order.MultiQuantityCount(nil))
}

func TestClassifyRequestedService(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		want      order.RequestedServiceKind
	}{
		{"empty", "", order.RequestedNone},
		{"plain_ground", "USPS Ground Advantage", order.RequestedNone},
		{"expedite", "EXPEDITE - 2 Day Air", order.RequestedExpedite},
		{"select", "UPS 3 Day Select", order.RequestedSelect},
		{"expedite_wins_over_select", "EXPEDITE Select", order.RequestedExpedite},
		{"lowercase_expedite_not_matched", "expedite please", order.RequestedNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.ClassifyRequestedService(tt.requested))
		})
	}
}

func TestSubscriptionVocabulary(t *testing.T) {
	t.Run("known_skus", func(t *testing.T) {
		for sku, want := range map[string]int{"SUB3": 3, "SUB6": 6, "SUB9": 9, "SUB12": 12} {
			months, ok := order.SubscriptionMonths(sku)
			assert.True(t, ok, sku)
			assert.Equal(t, want, months, sku)
			assert.True(t, order.IsSubscriptionSKU(sku))
		}
	})

	t.Run("unknown_skus", func(t *testing.T) {
		for _, sku := range []string{"", "SUB1", "SUB24", "SUBBUNDLE", "PLANT-1"} {
			assert.False(t, order.IsSubscriptionSKU(sku), sku)
		}
	})

	t.Run("bundle_item", func(t *testing.T) {
		item := order.NewBundleItem()
		assert.Equal(t, order.BundleSKU, item.SKU)
		assert.Equal(t, "Subscription Bundle", item.Name)
		assert.Equal(t, 1, item.Quantity)
		assert.Zero(t, item.UnitPrice)
	})
}
