package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(price string, qty int) OrderItem {
	return OrderItem{UnitPrice: decimal.RequireFromString(price), Quantity: qty}
}

func TestComputeTotals_BananaBreadNoTax(t *testing.T) {
	totals := ComputeTotals([]OrderItem{
		{Name: "Banana Bread", UnitPrice: decimal.RequireFromString("13.00"), Quantity: 1},
	}, decimal.Zero)

	assert.Equal(t, "13.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "13.00", totals.Total.StringFixed(2))
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	totals := ComputeTotals(nil, decimal.RequireFromString("0.08"))

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals_Rounding(t *testing.T) {
	tests := []struct {
		name     string
		items    []OrderItem
		rate     string
		subtotal string
		tax      string
		total    string
	}{
		{
			name:     "half cent rounds up",
			items:    []OrderItem{item("1.00", 1)},
			rate:     "0.125",
			subtotal: "1",
			tax:      "0.13",
			total:    "1.13",
		},
		{
			name:     "below half rounds down",
			items:    []OrderItem{item("10.05", 1)},
			rate:     "0.05",
			subtotal: "10.05",
			tax:      "0.5",
			total:    "10.55",
		},
		{
			name:     "no per-line rounding in subtotal",
			items:    []OrderItem{item("0.333", 3), item("1.005", 1)},
			rate:     "0",
			subtotal: "2.004",
			tax:      "0",
			total:    "2",
		},
		{
			name:     "sub-cent subtotal rounds half up in total",
			items:    []OrderItem{item("1.005", 1)},
			rate:     "0",
			subtotal: "1.005",
			tax:      "0",
			total:    "1.01",
		},
		{
			name:     "negative price passes through",
			items:    []OrderItem{item("5.00", 1), item("-2.00", 1)},
			rate:     "0.1",
			subtotal: "3",
			tax:      "0.3",
			total:    "3.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.items, decimal.RequireFromString(tt.rate))

			assert.True(t, decimal.RequireFromString(tt.subtotal).Equal(totals.Subtotal), "subtotal %s", totals.Subtotal)
			assert.True(t, decimal.RequireFromString(tt.tax).Equal(totals.Tax), "tax %s", totals.Tax)
			assert.True(t, decimal.RequireFromString(tt.total).Equal(totals.Total), "total %s", totals.Total)
		})
	}
}

// Prices in whole cents and rates in basis points let the expected values be
// computed with integer arithmetic.
func TestComputeTotals_RandomizedInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(2025, 10))

	for run := 0; run < 500; run++ {
		count := 1 + r.IntN(8)
		items := make([]OrderItem, count)
		var subtotalCents int64
		for i := range items {
			cents := r.Int64N(10000)
			qty := 1 + r.IntN(12)
			items[i] = OrderItem{
				UnitPrice: decimal.New(cents, -2),
				Quantity:  qty,
			}
			subtotalCents += cents * int64(qty)
		}
		basisPoints := r.Int64N(1501) // 0 .. 0.15
		rate := decimal.New(basisPoints, -4)

		totals := ComputeTotals(items, rate)

		taxCents := (subtotalCents*basisPoints + 5000) / 10000

		require.True(t, decimal.New(subtotalCents, -2).Equal(totals.Subtotal), "run %d subtotal", run)
		require.True(t, decimal.New(taxCents, -2).Equal(totals.Tax), "run %d tax", run)
		require.True(t, decimal.New(subtotalCents+taxCents, -2).Equal(totals.Total), "run %d total", run)
		require.True(t, totals.Subtotal.Add(totals.Tax).Equal(totals.Total), "run %d total == subtotal + tax", run)
	}
}
