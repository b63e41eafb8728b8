package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"go-sales-console/internal/model"
	"go-sales-console/internal/render"
	"go-sales-console/internal/service"
	"go-sales-console/internal/ws"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
	salesService   service.SalesService
	hub            *ws.Hub
}

func NewInvoiceHandler(is service.InvoiceService, ss service.SalesService, hub *ws.Hub) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: is, salesService: ss, hub: hub}
}

type invoiceRow struct {
	SaleID     string
	ShortID    string
	CustomerID string
	Date       string
	Amount     string
}

// ListPage renders the invoice list with the search term and date bucket
// applied (both must pass for a row to stay visible).
func (h *InvoiceHandler) ListPage(c *fiber.Ctx) error {
	sales, err := h.salesService.GetAllSales(c.Context())
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load invoice data.")
		return c.Status(fiber.StatusBadGateway).Render("error", fiber.Map{
			"Title":   "Error",
			"Message": "Failed to load invoice data. Please try again.",
		}, "layout")
	}

	term := c.Query("q")
	rng := dateRangeFromQuery(c)
	filtered := h.salesService.Filter(sales, term, rng, time.Now())

	rows := make([]invoiceRow, 0, len(filtered))
	for _, sale := range filtered {
		rows = append(rows, invoiceRow{
			SaleID:     sale.SaleID,
			ShortID:    sale.ShortID(),
			CustomerID: sale.CustomerID,
			Date:       service.FormatDate(sale.CreatedAt),
			Amount:     model.Money(sale.TotalAmount),
		})
	}

	return c.Render("invoices", fiber.Map{
		"Title":      "Invoices",
		"Rows":       rows,
		"Query":      term,
		"Range":      string(rng.Bucket),
		"CustomDate": c.Query("date"),
	}, "layout")
}

// DetailPage is the interactive screen renderer. A missing sale routes the
// user back to the list with a notification instead of a hard failure.
func (h *InvoiceHandler) DetailPage(c *fiber.Ctx) error {
	inv, err := h.invoiceService.AssembleByID(c.Context(), c.Params("id"))
	if errors.Is(err, service.ErrSaleNotFound) {
		h.hub.Notify(ws.KindError, "Invoice not found", "The requested invoice could not be found.")
		return c.Redirect("/invoices", fiber.StatusFound)
	}
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load invoice data.")
		return c.Status(fiber.StatusBadGateway).Render("error", fiber.Map{
			"Title":   "Error",
			"Message": "Failed to load invoice data. Please try again.",
		}, "layout")
	}

	return c.Render("invoice_detail", fiber.Map{
		"Title":   inv.Number,
		"Invoice": inv,
	}, "layout")
}

// PrintPage is the static print renderer. The auto print trigger is only
// emitted when the sale was found; a not-found state never opens the
// print dialog.
func (h *InvoiceHandler) PrintPage(c *fiber.Ctx) error {
	inv, err := h.invoiceService.AssembleByID(c.Context(), c.Params("id"))
	if errors.Is(err, service.ErrSaleNotFound) {
		return c.Status(fiber.StatusNotFound).Render("invoice_print", fiber.Map{"Found": false})
	}
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load invoice data.")
		return c.Status(fiber.StatusBadGateway).Render("invoice_print", fiber.Map{"Found": false})
	}

	return c.Render("invoice_print", fiber.Map{
		"Found":   true,
		"Invoice": inv,
	})
}

// Download generates and serves the PDF document. On generation failure no
// partial file is emitted.
func (h *InvoiceHandler) Download(c *fiber.Ctx) error {
	inv, err := h.invoiceService.AssembleByID(c.Context(), c.Params("id"))
	if errors.Is(err, service.ErrSaleNotFound) {
		h.hub.Notify(ws.KindError, "Invoice not found", "The requested invoice could not be found.")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load invoice data.")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to load invoice data"})
	}

	document, err := render.InvoicePDF(inv)
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to generate PDF. Please try again.")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate PDF"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+render.InvoiceFileName(inv.SaleID)+`"`)
	return c.Send(document)
}
