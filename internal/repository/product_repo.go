package repository

import (
	"context"

	"go-sales-console/internal/model"
)

type productRepo struct {
	client *Client
}

func NewProductRepo(client *Client) ProductRepository {
	return &productRepo{client: client}
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.client.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.client.sendJSON(ctx, "POST", "/products", p, p)
}

func (r *productRepo) Update(ctx context.Context, id string, p *model.Product) error {
	return r.client.sendJSON(ctx, "PUT", "/products/"+id, p, p)
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	return r.client.sendJSON(ctx, "DELETE", "/products/"+id, nil, nil)
}
