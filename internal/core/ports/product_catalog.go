package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/product"
)

// ProductCatalog looks up product categorization by SKU.
//
// The category value is normalized at the adapter boundary into a
// product.CategorySet regardless of the upstream response shape. An unknown
// SKU yields errs.ErrObjectNotFound; callers treat any failure
// conservatively (assume living).
type ProductCatalog interface {
	ProductCategories(ctx context.Context, sku string) (product.CategorySet, error)
}
