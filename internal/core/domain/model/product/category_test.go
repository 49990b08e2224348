package product_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
)

func TestCategorySet(t *testing.T) {
	t.Run("contains", func(t *testing.T) {
		set := product.NewCategorySet("Aquatic", "Nonliving")

		assert.True(t, set.Contains("Aquatic"))
		assert.False(t, set.Contains("Terrarium"))
	})

	t.Run("is_nonliving", func(t *testing.T) {
		assert.True(t, product.NewCategorySet("Nonliving").IsNonliving())
		assert.False(t, product.NewCategorySet("Aquatic").IsNonliving())
		assert.False(t, product.NewCategorySet().IsNonliving())
	})
}
