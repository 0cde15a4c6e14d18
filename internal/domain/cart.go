package domain

import "github.com/shopspring/decimal"

// Entry is one cart row as persisted: {"id": 3, "qty": 2}.
type Entry struct {
	ProductID int64   `json:"id"`
	Quantity  float64 `json:"qty"`
}

// Snapshot is the complete cart state at a point in time.
// Product ids are unique and every quantity is > 0.
type Snapshot []Entry

// Find returns the index of the entry for productID or -1.
func (s Snapshot) Find(productID int64) int {
	for i, e := range s {
		if e.ProductID == productID {
			return i
		}
	}
	return -1
}

type Line struct {
	ProductID int64
	Quantity  float64
	Product   *Product // nil when the catalog no longer has the product
	Amount    decimal.Decimal
}

func (l Line) Known() bool {
	return l.Product != nil
}

type Totals struct {
	Lines    []Line
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}
