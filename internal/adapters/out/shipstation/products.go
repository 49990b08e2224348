package shipstation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

type productDTO struct {
	SKU             string          `json:"sku"`
	ProductCategory json.RawMessage `json:"productCategory"`
}

type productListDTO struct {
	Products []productDTO `json:"products"`
}

// ProductCategories looks up the category set of a SKU. An unknown SKU yields
// ObjectNotFound; callers treat any failure as "assume living".
func (c *Client) ProductCategories(ctx context.Context, sku string) (product.CategorySet, error) {
	query := url.Values{}
	query.Set("sku", sku)

	var list productListDTO
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &list); err != nil {
		return nil, err
	}
	if len(list.Products) == 0 {
		return nil, errs.NewObjectNotFoundError("sku", sku)
	}

	// SKUs are unique; the first match is the product.
	return normalizeCategories(list.Products[0].ProductCategory), nil
}

// normalizeCategories folds the two category shapes the API serves, a plain
// list of names or a keyed bag whose values are names, into one set. Any
// other shape yields the empty set, which downstream reads as "living".
func normalizeCategories(raw json.RawMessage) product.CategorySet {
	if len(raw) == 0 {
		return product.NewCategorySet()
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err == nil {
		return product.NewCategorySet(names...)
	}

	var bag map[string]string
	if err := json.Unmarshal(raw, &bag); err == nil {
		set := make(product.CategorySet, len(bag))
		for _, name := range bag {
			set[name] = struct{}{}
		}
		return set
	}

	return product.NewCategorySet()
}
