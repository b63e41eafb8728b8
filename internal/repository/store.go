package repository

import (
	"context"

	"go-sales-console/internal/model"
)

// The remote inventory API owns all canonical state. These interfaces are
// the console's view of it; the only implementation is the REST gateway in
// rest.go, but services and tests depend on the interfaces alone.

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, id string, p *model.Product) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, id string, c *model.Category) error
	Delete(ctx context.Context, id string) error
}

type SaleRepository interface {
	// FindAll fetches the whole sales collection. The remote API exposes no
	// by-id lookup; callers locate individual sales client-side.
	FindAll(ctx context.Context) ([]model.Sale, error)
	Create(ctx context.Context, req *model.NewSaleRequest) (*model.Sale, error)
}

type StatsRepository interface {
	SalesLast7Days(ctx context.Context) ([]model.DailySales, error)
	MonthlyRevenue(ctx context.Context) ([]model.MonthlyRevenue, error)
}
