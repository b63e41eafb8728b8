package model

import "github.com/shopspring/decimal"

// UnknownProductName is substituted when a line item references a product
// id that no longer exists in the current catalog snapshot. Catalog drift
// is expected, not an error.
const UnknownProductName = "Unknown Product"

// InvoiceLine is one resolved row of an invoice: product id replaced by a
// display name, amount precomputed as quantity times the unit price
// snapshot.
type InvoiceLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// InvoiceViewModel is the render-ready projection of a sale joined with
// product names. It is a value: rebuilt fresh on every render, never
// persisted, never cached. All three renderers (screen, print, PDF)
// consume this same shape.
type InvoiceViewModel struct {
	SaleID             string
	Number             string // INV-<first 8 chars of sale id>
	CustomerID         string
	PaymentMethod      string
	Date               string // createdAt in the viewer's local date convention
	Lines              []InvoiceLine
	Subtotal           decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	Total              decimal.Decimal
}

// Display helpers round to exactly 2 fractional digits, half-up, at the
// presentation edge only. Internal amounts keep full precision.

func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func (l InvoiceLine) UnitPriceDisplay() string { return Money(l.UnitPrice) }
func (l InvoiceLine) AmountDisplay() string    { return Money(l.Amount) }

func (v InvoiceViewModel) SubtotalDisplay() string { return Money(v.Subtotal) }
func (v InvoiceViewModel) TotalDisplay() string    { return Money(v.Total) }

func (v InvoiceViewModel) DiscountDisplay() string {
	return "-" + Money(v.DiscountAmount)
}

func (v InvoiceViewModel) DiscountLabel() string {
	return "Discount (" + v.DiscountPercentage.String() + "%)"
}
