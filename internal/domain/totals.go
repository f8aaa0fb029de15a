package domain

import "github.com/shopspring/decimal"

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals sums the items without per-line rounding, then rounds tax
// and total independently to cents, half-up. Inputs are not validated.
func ComputeTotals(items []OrderItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	tax := round2(subtotal.Mul(taxRate))
	total := round2(subtotal.Add(tax))

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}

// round2 rounds half away from zero, which is half-up for the non-negative
// amounts an order carries.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
