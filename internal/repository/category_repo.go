package repository

import (
	"context"

	"go-sales-console/internal/model"
)

type categoryRepo struct {
	client *Client
}

func NewCategoryRepo(client *Client) CategoryRepository {
	return &categoryRepo{client: client}
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.client.getJSON(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.client.sendJSON(ctx, "POST", "/categories", c, c)
}

func (r *categoryRepo) Update(ctx context.Context, id string, c *model.Category) error {
	return r.client.sendJSON(ctx, "PUT", "/categories/"+id, c, c)
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	return r.client.sendJSON(ctx, "DELETE", "/categories/"+id, nil, nil)
}
