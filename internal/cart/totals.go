package cart

import (
	"strconv"

	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxRate is a flat 10%.
var TaxRate = decimal.RequireFromString("0.10")

const unknownSuffix = " — unknown"

// ComputeTotals prices every entry against the catalog. Products missing from
// the catalog still get a line, priced at zero. Nothing is rounded here.
func ComputeTotals(s domain.Snapshot, c catalog.Catalog) domain.Totals {
	totals := domain.Totals{
		Lines:    make([]domain.Line, 0, len(s)),
		Subtotal: decimal.Zero,
	}

	for _, e := range s {
		line := domain.Line{
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
			Amount:    decimal.Zero,
		}
		if p, ok := c.Lookup(e.ProductID); ok {
			line.Product = &p
			line.Amount = p.Price.Mul(decimal.NewFromFloat(e.Quantity))
		}
		totals.Lines = append(totals.Lines, line)
		totals.Subtotal = totals.Subtotal.Add(line.Amount)
	}

	totals.Tax = totals.Subtotal.Mul(TaxRate)
	totals.Total = totals.Subtotal.Add(totals.Tax)
	return totals
}

// FormatMoney renders an amount with two decimals, e.g. "$4397.80".
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// DisplayAmount is how a line's amount is shown; unknown products read "$0.00 — unknown".
func DisplayAmount(l domain.Line) string {
	if !l.Known() {
		return FormatMoney(decimal.Zero) + unknownSuffix
	}
	return FormatMoney(l.Amount)
}

// DisplayName falls back to the product id for products the catalog no longer has.
func DisplayName(l domain.Line) string {
	if !l.Known() {
		return "Unknown product (ID: " + strconv.FormatInt(l.ProductID, 10) + ")"
	}
	return l.Product.Name
}
