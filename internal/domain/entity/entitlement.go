package entity

import "slices"

// Entitlements is the set of product ids a user may read. It is derived from orders, never stored.
type Entitlements map[int64]struct{}

// EntitlementsFromOrders flattens the product ids of every order into a set.
func EntitlementsFromOrders(orders []*Order) Entitlements {
	set := make(Entitlements)
	for _, order := range orders {
		if order == nil {
			continue
		}
		for _, id := range order.ProductIDs {
			set[id] = struct{}{}
		}
	}

	return set
}

// Has reports whether productID is owned.
func (e Entitlements) Has(productID int64) bool {
	_, ok := e[productID]

	return ok
}

// IDs returns the owned product ids in ascending order.
func (e Entitlements) IDs() []int64 {
	ids := make([]int64, 0, len(e))
	for id := range e {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
