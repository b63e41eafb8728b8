package repository

import (
	"context"

	"go-sales-console/internal/model"
)

type statsRepo struct {
	client *Client
}

func NewStatsRepo(client *Client) StatsRepository {
	return &statsRepo{client: client}
}

func (r *statsRepo) SalesLast7Days(ctx context.Context) ([]model.DailySales, error) {
	var points []model.DailySales
	if err := r.client.getJSON(ctx, "/stats/sales/last7days", &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (r *statsRepo) MonthlyRevenue(ctx context.Context) ([]model.MonthlyRevenue, error) {
	var points []model.MonthlyRevenue
	if err := r.client.getJSON(ctx, "/stats/revenue/monthly", &points); err != nil {
		return nil, err
	}
	return points, nil
}
