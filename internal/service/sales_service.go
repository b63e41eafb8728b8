package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"go-sales-console/internal/model"
	"go-sales-console/internal/repository"
	"go-sales-console/internal/ws"
	"go-sales-console/pkg/validator"
)

// Submission failures surfaced inline, before any network call.
var (
	ErrCustomerRequired = errors.New("please enter a customer ID")
	ErrProductRequired  = errors.New("please select a product for each item")
	ErrValidation       = errors.New("validation failed")
)

type SalesSummary struct {
	Count     int
	Revenue   decimal.Decimal
	Average   decimal.Decimal
	ItemsSold int
}

type SalesService interface {
	GetAllSales(ctx context.Context) ([]model.Sale, error)
	// Filter applies the date-range predicate AND the free-text match;
	// both must pass for a sale to remain visible.
	Filter(sales []model.Sale, term string, rng model.DateRange, now time.Time) []model.Sale
	CreateSale(ctx context.Context, req *model.NewSaleRequest) (*model.Sale, error)
	Summary(sales []model.Sale) SalesSummary
	// PreviewTotals is the live-form figure only. The canonical totals come
	// back from the create response and always win.
	PreviewTotals(items []model.SaleItem, discountPct decimal.Decimal) (subtotal, final decimal.Decimal)
}

type salesService struct {
	saleRepo repository.SaleRepository
	hub      *ws.Hub
}

func NewSalesService(sRepo repository.SaleRepository, hub *ws.Hub) SalesService {
	return &salesService{saleRepo: sRepo, hub: hub}
}

func (s *salesService) GetAllSales(ctx context.Context) ([]model.Sale, error) {
	return s.saleRepo.FindAll(ctx)
}

func (s *salesService) Filter(sales []model.Sale, term string, rng model.DateRange, now time.Time) []model.Sale {
	term = strings.ToLower(strings.TrimSpace(term))

	filtered := make([]model.Sale, 0, len(sales))
	for _, sale := range sales {
		if term != "" &&
			!strings.Contains(strings.ToLower(sale.CustomerID), term) &&
			!strings.Contains(strings.ToLower(sale.SaleID), term) {
			continue
		}
		if !rng.Contains(sale.CreatedAt, now) {
			continue
		}
		filtered = append(filtered, sale)
	}
	return filtered
}

func (s *salesService) CreateSale(ctx context.Context, req *model.NewSaleRequest) (*model.Sale, error) {
	// 1. Local validation, mirroring the form's own checks. Nothing goes
	// over the wire until these pass.
	if strings.TrimSpace(req.CustomerID) == "" {
		return nil, ErrCustomerRequired
	}
	for _, item := range req.SaleItems {
		if item.ProductID == "" {
			return nil, ErrProductRequired
		}
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	// 2. Submit. The server computes totalAmount and finalAmount.
	sale, err := s.saleRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Notify open console pages.
	s.hub.Notify(ws.KindInfo, "Sale created",
		fmt.Sprintf("Sale %s for customer %s has been recorded.", sale.ShortID(), sale.CustomerID))

	return sale, nil
}

func (s *salesService) Summary(sales []model.Sale) SalesSummary {
	sum := SalesSummary{Count: len(sales), Revenue: decimal.Zero, Average: decimal.Zero}
	for _, sale := range sales {
		sum.Revenue = sum.Revenue.Add(sale.TotalAmount)
		for _, item := range sale.SaleItems {
			sum.ItemsSold += item.Quantity
		}
	}
	if sum.Count > 0 {
		sum.Average = sum.Revenue.Div(decimal.NewFromInt(int64(sum.Count)))
	}
	return sum
}

func (s *salesService) PreviewTotals(items []model.SaleItem, discountPct decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	subtotal := Subtotal(items)
	return subtotal, FinalAmount(subtotal, discountPct)
}
