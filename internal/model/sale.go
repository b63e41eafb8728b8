package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods the sale form offers. The field stays an open string on
// the wire; the remote API does not enforce a closed set.
const (
	PaymentCreditCard   = "Credit Card"
	PaymentCash         = "Cash"
	PaymentBankTransfer = "Bank Transfer"
)

func init() {
	// The remote API speaks plain JSON numbers for monetary values.
	decimal.MarshalJSONWithoutQuotes = true
}

// SaleItem is one product-quantity-price line within a sale. Price is the
// unit price snapshot taken at selection time, never re-fetched.
type SaleItem struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gte=1"`
	Price     decimal.Decimal `json:"price"`
}

// Sale is a completed transaction as returned by the remote API. It is
// immutable in this console: created once via submission, never edited.
// TotalAmount and FinalAmount are server-computed and authoritative.
type Sale struct {
	SaleID             string          `json:"saleId"`
	CustomerID         string          `json:"customerId"`
	SaleItems          []SaleItem      `json:"saleItems"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	FinalAmount        decimal.Decimal `json:"finalAmount"`
	PaymentMethod      string          `json:"paymentMethod"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// ShortID is the truncated sale id used for invoice numbers and file names.
func (s Sale) ShortID() string {
	return ShortID(s.SaleID)
}

func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// NewSaleRequest is the submission payload for POST /sales. Totals are not
// part of it: the server computes them and the client-side preview is for
// live display only.
type NewSaleRequest struct {
	CustomerID         string          `json:"customerId" validate:"required"`
	SaleItems          []SaleItem      `json:"saleItems" validate:"required,min=1,dive"`
	PaymentMethod      string          `json:"paymentMethod" validate:"required"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage" validate:"percent"`
}
