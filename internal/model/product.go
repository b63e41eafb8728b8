package model

import "github.com/shopspring/decimal"

// Product is a read-only projection of the remote catalog. The remote API
// owns the canonical record; ids are opaque strings minted server-side.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  string          `json:"categoryId"`
}

type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name" validate:"required"`
	Products []Product `json:"products"`
}

// HasProducts reports whether the category still holds products.
// A category with products must not be deleted.
func (c Category) HasProducts() bool {
	return len(c.Products) > 0
}
