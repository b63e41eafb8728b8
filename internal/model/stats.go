package model

import "github.com/shopspring/decimal"

// Series points returned by the remote stats endpoints.

type DailySales struct {
	Date       string `json:"date"` // YYYY-MM-DD
	TotalSales int    `json:"totalSales"`
}

type MonthlyRevenue struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
}
