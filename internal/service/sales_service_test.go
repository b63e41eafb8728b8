package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sales-console/internal/model"
	"go-sales-console/internal/ws"
)

type recordingSaleRepo struct {
	created  *model.NewSaleRequest
	response *model.Sale
	err      error
}

func (r *recordingSaleRepo) FindAll(ctx context.Context) ([]model.Sale, error) {
	return nil, nil
}

func (r *recordingSaleRepo) Create(ctx context.Context, req *model.NewSaleRequest) (*model.Sale, error) {
	r.created = req
	return r.response, r.err
}

func newSalesServiceForTest(repo *recordingSaleRepo) SalesService {
	return NewSalesService(repo, ws.NewHub())
}

func validRequest() *model.NewSaleRequest {
	return &model.NewSaleRequest{
		CustomerID: "CUST-1",
		SaleItems: []model.SaleItem{
			{ProductID: "P1", Quantity: 2, Price: dec("10.00")},
		},
		PaymentMethod:      model.PaymentCreditCard,
		DiscountPercentage: dec("10"),
	}
}

func TestCreateSaleRequiresCustomerID(t *testing.T) {
	repo := &recordingSaleRepo{}
	svc := newSalesServiceForTest(repo)

	req := validRequest()
	req.CustomerID = "   "

	_, err := svc.CreateSale(context.Background(), req)
	assert.ErrorIs(t, err, ErrCustomerRequired)
	assert.Nil(t, repo.created, "nothing may go over the wire")
}

func TestCreateSaleRequiresProductOnEveryItem(t *testing.T) {
	repo := &recordingSaleRepo{}
	svc := newSalesServiceForTest(repo)

	req := validRequest()
	req.SaleItems = append(req.SaleItems, model.SaleItem{Quantity: 1})

	_, err := svc.CreateSale(context.Background(), req)
	assert.ErrorIs(t, err, ErrProductRequired)
	assert.Nil(t, repo.created)
}

func TestCreateSaleRejectsZeroQuantity(t *testing.T) {
	repo := &recordingSaleRepo{}
	svc := newSalesServiceForTest(repo)

	req := validRequest()
	req.SaleItems[0].Quantity = 0

	_, err := svc.CreateSale(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, repo.created)
}

func TestCreateSaleRejectsDiscountOutOfRange(t *testing.T) {
	repo := &recordingSaleRepo{}
	svc := newSalesServiceForTest(repo)

	req := validRequest()
	req.DiscountPercentage = dec("150")

	_, err := svc.CreateSale(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, repo.created)
}

func TestCreateSaleReturnsServerTotals(t *testing.T) {
	// The server's figures are authoritative, even when they differ from
	// the client-side preview.
	repo := &recordingSaleRepo{
		response: &model.Sale{
			SaleID:      "abc12345-ffff",
			CustomerID:  "CUST-1",
			TotalAmount: dec("20.00"),
			FinalAmount: dec("18.00"),
		},
	}
	svc := newSalesServiceForTest(repo)

	sale, err := svc.CreateSale(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.True(t, sale.TotalAmount.Equal(dec("20.00")))
	assert.True(t, sale.FinalAmount.Equal(dec("18.00")))
}

func TestFilterComposesSearchAndDateRange(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	sales := []model.Sale{
		{SaleID: "s-1", CustomerID: "Alice", CreatedAt: now},
		{SaleID: "s-2", CustomerID: "Bob", CreatedAt: now},
		{SaleID: "s-3", CustomerID: "alice-archive", CreatedAt: now.AddDate(0, 0, -40)},
	}
	svc := newSalesServiceForTest(&recordingSaleRepo{})

	// Case-insensitive substring match against customer id or sale id.
	byTerm := svc.Filter(sales, "ALICE", model.DateRange{Bucket: model.BucketAll}, now)
	assert.Len(t, byTerm, 2)

	byID := svc.Filter(sales, "s-2", model.DateRange{Bucket: model.BucketAll}, now)
	require.Len(t, byID, 1)
	assert.Equal(t, "Bob", byID[0].CustomerID)

	// Both predicates must pass.
	both := svc.Filter(sales, "alice", model.DateRange{Bucket: model.BucketToday}, now)
	require.Len(t, both, 1)
	assert.Equal(t, "s-1", both[0].SaleID)

	none := svc.Filter(sales, "charlie", model.DateRange{Bucket: model.BucketAll}, now)
	assert.Empty(t, none)
}

func TestSummary(t *testing.T) {
	sales := []model.Sale{
		{TotalAmount: dec("10.00"), SaleItems: []model.SaleItem{{Quantity: 2}, {Quantity: 1}}},
		{TotalAmount: dec("30.00"), SaleItems: []model.SaleItem{{Quantity: 4}}},
	}
	svc := newSalesServiceForTest(&recordingSaleRepo{})

	sum := svc.Summary(sales)
	assert.Equal(t, 2, sum.Count)
	assert.True(t, sum.Revenue.Equal(dec("40.00")))
	assert.True(t, sum.Average.Equal(dec("20.00")))
	assert.Equal(t, 7, sum.ItemsSold)
}

func TestSummaryEmpty(t *testing.T) {
	svc := newSalesServiceForTest(&recordingSaleRepo{})

	sum := svc.Summary(nil)
	assert.Equal(t, 0, sum.Count)
	assert.True(t, sum.Revenue.IsZero())
	assert.True(t, sum.Average.IsZero())
}

func TestPreviewTotalsMatchesCalculator(t *testing.T) {
	svc := newSalesServiceForTest(&recordingSaleRepo{})
	items := []model.SaleItem{
		{ProductID: "P1", Quantity: 2, Price: dec("10.00")},
		{ProductID: "P2", Quantity: 1, Price: dec("5.50")},
	}

	subtotal, final := svc.PreviewTotals(items, dec("10"))
	assert.True(t, subtotal.Equal(dec("25.50")))
	assert.True(t, final.Equal(dec("22.95")))

	subtotal, final = svc.PreviewTotals(nil, decimal.Zero)
	assert.True(t, subtotal.IsZero())
	assert.True(t, final.IsZero())
}
