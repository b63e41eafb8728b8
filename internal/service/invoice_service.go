package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-sales-console/internal/model"
	"go-sales-console/internal/repository"
)

// ErrSaleNotFound is returned when the requested sale id has no match in
// the fetched collection. Callers route the user back to the invoice list
// with a notification rather than failing hard.
var ErrSaleNotFound = errors.New("sale not found")

type InvoiceService interface {
	// AssembleByID fetches the current sales and product collections and
	// builds the view model for one sale.
	AssembleByID(ctx context.Context, saleID string) (*model.InvoiceViewModel, error)
	// Assemble joins an already-fetched sale with a product snapshot.
	Assemble(sale model.Sale, products []model.Product) *model.InvoiceViewModel
}

type invoiceService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

func NewInvoiceService(sRepo repository.SaleRepository, pRepo repository.ProductRepository) InvoiceService {
	return &invoiceService{saleRepo: sRepo, productRepo: pRepo}
}

func (s *invoiceService) AssembleByID(ctx context.Context, saleID string) (*model.InvoiceViewModel, error) {
	// The remote API has no by-id endpoint: fetch the full collections
	// (sales and products in parallel) and locate the sale client-side.
	sales, products, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	for _, sale := range sales {
		if sale.SaleID == saleID {
			return s.Assemble(sale, products), nil
		}
	}
	return nil, ErrSaleNotFound
}

// Assemble is deterministic: the same sale and product snapshot always
// yield the same view model. A line whose product id misses the snapshot
// gets the literal "Unknown Product" label; assembly never fails on
// catalog drift.
func (s *invoiceService) Assemble(sale model.Sale, products []model.Product) *model.InvoiceViewModel {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	lines := make([]model.InvoiceLine, 0, len(sale.SaleItems))
	for _, item := range sale.SaleItems {
		name, ok := names[item.ProductID]
		if !ok {
			name = model.UnknownProductName
		}
		lines = append(lines, model.InvoiceLine{
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Price,
			Amount:      LineAmount(item),
		})
	}

	return &model.InvoiceViewModel{
		SaleID:             sale.SaleID,
		Number:             "INV-" + sale.ShortID(),
		CustomerID:         sale.CustomerID,
		PaymentMethod:      sale.PaymentMethod,
		Date:               FormatDate(sale.CreatedAt),
		Lines:              lines,
		Subtotal:           sale.TotalAmount,
		DiscountPercentage: sale.DiscountPercentage,
		DiscountAmount:     DiscountAmount(sale.TotalAmount, sale.DiscountPercentage),
		Total:              sale.FinalAmount,
	}
}

// fetchSnapshot issues both collection fetches concurrently and awaits
// them together. Each call owns its own immutable snapshot; nothing is
// cached across renders.
func (s *invoiceService) fetchSnapshot(ctx context.Context) ([]model.Sale, []model.Product, error) {
	var (
		wg          sync.WaitGroup
		sales       []model.Sale
		products    []model.Product
		salesErr    error
		productsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		sales, salesErr = s.saleRepo.FindAll(ctx)
	}()
	go func() {
		defer wg.Done()
		products, productsErr = s.productRepo.FindAll(ctx)
	}()
	wg.Wait()

	if salesErr != nil {
		return nil, nil, salesErr
	}
	if productsErr != nil {
		return nil, nil, productsErr
	}
	return sales, products, nil
}

// FormatDate renders the timestamp in the viewer's local date convention.
func FormatDate(t time.Time) string {
	return t.Local().Format("1/2/2006")
}

// FormatDateTime is the longer form used on the sales list.
func FormatDateTime(t time.Time) string {
	return t.Local().Format("1/2/2006 3:04:05 PM")
}
