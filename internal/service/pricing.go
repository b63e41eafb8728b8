package service

import (
	"github.com/shopspring/decimal"

	"go-sales-console/internal/model"
)

// Pricing helpers: pure functions over their arguments, total over
// well-formed input. No rounding happens here; amounts keep full precision
// until the presentation edge formats them.

var hundred = decimal.NewFromInt(100)

// LineAmount is quantity times the unit price snapshot.
func LineAmount(item model.SaleItem) decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Subtotal sums LineAmount over all items. An empty list yields zero.
func Subtotal(items []model.SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineAmount(item))
	}
	return total
}

// DiscountAmount is subtotal * pct / 100. Values outside 0-100 pass
// through arithmetically; range checks belong to the submission form, not
// the calculator.
func DiscountAmount(subtotal, pct decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(pct).Div(hundred)
}

// FinalAmount is the subtotal less the discount.
func FinalAmount(subtotal, pct decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(DiscountAmount(subtotal, pct))
}
