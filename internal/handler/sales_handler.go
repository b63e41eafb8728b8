package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"go-sales-console/internal/model"
	"go-sales-console/internal/service"
	"go-sales-console/internal/ws"
)

type SalesHandler struct {
	salesService   service.SalesService
	catalogService service.CatalogService
	hub            *ws.Hub
}

func NewSalesHandler(ss service.SalesService, cs service.CatalogService, hub *ws.Hub) *SalesHandler {
	return &SalesHandler{salesService: ss, catalogService: cs, hub: hub}
}

type saleRow struct {
	SaleID        string
	ShortID       string
	CustomerID    string
	ItemCount     int
	Total         string
	PaymentMethod string
	Date          string
}

type summaryView struct {
	Count     int
	Revenue   string
	Average   string
	ItemsSold int
}

func (h *SalesHandler) ListPage(c *fiber.Ctx) error {
	sales, err := h.salesService.GetAllSales(c.Context())
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load sales data.")
		return c.Status(fiber.StatusBadGateway).Render("error", fiber.Map{
			"Title":   "Error",
			"Message": "Failed to load sales data. Please try again.",
		}, "layout")
	}

	// The product list feeds the new-sale form's picker; a failure there
	// blocks sale entry, so it is treated the same as a sales fetch failure.
	products, err := h.catalogService.GetAllProducts(c.Context())
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load product data.")
		return c.Status(fiber.StatusBadGateway).Render("error", fiber.Map{
			"Title":   "Error",
			"Message": "Failed to load product data. Please try again.",
		}, "layout")
	}

	term := c.Query("q")
	rng := dateRangeFromQuery(c)
	filtered := h.salesService.Filter(sales, term, rng, time.Now())

	rows := make([]saleRow, 0, len(filtered))
	for _, sale := range filtered {
		rows = append(rows, saleRow{
			SaleID:        sale.SaleID,
			ShortID:       sale.ShortID(),
			CustomerID:    sale.CustomerID,
			ItemCount:     len(sale.SaleItems),
			Total:         model.Money(sale.TotalAmount),
			PaymentMethod: sale.PaymentMethod,
			Date:          service.FormatDateTime(sale.CreatedAt),
		})
	}

	sum := h.salesService.Summary(filtered)

	return c.Render("sales", fiber.Map{
		"Title":    "Sales",
		"Rows":     rows,
		"Products": products,
		"Summary": summaryView{
			Count:     sum.Count,
			Revenue:   model.Money(sum.Revenue),
			Average:   model.Money(sum.Average),
			ItemsSold: sum.ItemsSold,
		},
		"Query":      term,
		"Range":      string(rng.Bucket),
		"CustomDate": c.Query("date"),
	}, "layout")
}

// Create accepts the sale submission. Validation failures never reach the
// remote API and come back as 400s for inline display.
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var req model.NewSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.salesService.CreateSale(c.Context(), &req)
	if errors.Is(err, service.ErrCustomerRequired) || errors.Is(err, service.ErrProductRequired) ||
		errors.Is(err, service.ErrValidation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create the sale. Please try again."})
	}

	return c.Status(fiber.StatusCreated).JSON(sale)
}
