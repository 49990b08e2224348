// Package product models the slice of the product catalog the decision engine
// cares about: the set of categories a SKU belongs to.
//
// Upstream the category value may arrive as a keyed bag or a plain list
// depending on the response shape; the collaborator adapter normalizes both
// into a CategorySet so the engine's nonliving check is one uniform predicate.
package product

// CategoryNonliving is the category assigned to products that need no
// temperature-sensitive packing (pots, substrate, tools).
const CategoryNonliving = "Nonliving"

// CategorySet is the set of category names a product belongs to.
type CategorySet map[string]struct{}

// NewCategorySet builds a CategorySet from category names.
func NewCategorySet(names ...string) CategorySet {
	set := make(CategorySet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether the set includes the given category.
func (s CategorySet) Contains(category string) bool {
	_, ok := s[category]
	return ok
}

// IsNonliving reports whether the product is categorized nonliving.
func (s CategorySet) IsNonliving() bool {
	return s.Contains(CategoryNonliving)
}
