package cart

import "github.com/fjod/go_cart/storefront/internal/domain"

// AddOrIncrement bumps the quantity of productID by one, appending a new
// entry when the product is not in the cart yet. Product ids are not checked
// against the catalog here. The argument is never modified.
func AddOrIncrement(s domain.Snapshot, productID int64) domain.Snapshot {
	out := clone(s)
	if i := out.Find(productID); i >= 0 {
		out[i].Quantity++
		return out
	}
	return append(out, domain.Entry{ProductID: productID, Quantity: 1})
}

// SetQuantity sets the quantity of an existing entry. A quantity <= 0 removes
// the entry; a product that is not in the cart is left out.
func SetQuantity(s domain.Snapshot, productID int64, quantity float64) domain.Snapshot {
	if quantity <= 0 {
		out := make(domain.Snapshot, 0, len(s))
		for _, e := range s {
			if e.ProductID != productID {
				out = append(out, e)
			}
		}
		return out
	}

	out := clone(s)
	if i := out.Find(productID); i >= 0 {
		out[i].Quantity = quantity
	}
	return out
}

// ItemCount is the total number of units in the cart.
func ItemCount(s domain.Snapshot) float64 {
	var n float64
	for _, e := range s {
		n += e.Quantity
	}
	return n
}

func clone(s domain.Snapshot) domain.Snapshot {
	out := make(domain.Snapshot, len(s), len(s)+1)
	copy(out, s)
	return out
}
