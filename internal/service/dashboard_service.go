package service

import (
	"context"
	"sort"

	"go-sales-console/internal/model"
	"go-sales-console/internal/repository"
)

type DashboardService interface {
	GetSalesLast7Days(ctx context.Context) ([]model.DailySales, error)
	GetMonthlyRevenue(ctx context.Context) ([]model.MonthlyRevenue, error)
}

type dashboardService struct {
	statsRepo repository.StatsRepository
}

func NewDashboardService(statsRepo repository.StatsRepository) DashboardService {
	return &dashboardService{statsRepo: statsRepo}
}

// Both series come back unordered from the API; sort ascending for display.

func (s *dashboardService) GetSalesLast7Days(ctx context.Context) ([]model.DailySales, error) {
	points, err := s.statsRepo.SalesLast7Days(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

func (s *dashboardService) GetMonthlyRevenue(ctx context.Context) ([]model.MonthlyRevenue, error) {
	points, err := s.statsRepo.MonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points, nil
}
