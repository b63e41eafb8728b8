package repository

import (
	"context"

	"go-sales-console/internal/model"
)

type saleRepo struct {
	client *Client
}

func NewSaleRepo(client *Client) SaleRepository {
	return &saleRepo{client: client}
}

func (r *saleRepo) FindAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	if err := r.client.getJSON(ctx, "/sales", &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// Create submits the sale and returns the server's record. The totals in
// the response are authoritative; callers must not substitute their own
// preview figures.
func (r *saleRepo) Create(ctx context.Context, req *model.NewSaleRequest) (*model.Sale, error) {
	var sale model.Sale
	if err := r.client.sendJSON(ctx, "POST", "/sales", req, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}
