package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sales-console/internal/model"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func invoiceWithLines(n int) *model.InvoiceViewModel {
	lines := make([]model.InvoiceLine, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, model.InvoiceLine{
			ProductName: fmt.Sprintf("Product %d", i+1),
			Quantity:    2,
			UnitPrice:   dec("10.00"),
			Amount:      dec("20.00"),
		})
	}
	return &model.InvoiceViewModel{
		SaleID:             "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Number:             "INV-f47ac10b",
		CustomerID:         "CUST-77",
		PaymentMethod:      model.PaymentCreditCard,
		Date:               "8/20/2026",
		Lines:              lines,
		Subtotal:           dec("25.50"),
		DiscountPercentage: dec("10"),
		DiscountAmount:     dec("2.55"),
		Total:              dec("22.95"),
	}
}

func TestInvoicePDFGeneratesDocument(t *testing.T) {
	out, err := InvoicePDF(invoiceWithLines(2))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output is a PDF document")
}

func TestInvoicePDFZeroLineItems(t *testing.T) {
	inv := invoiceWithLines(0)
	inv.Subtotal = decimal.Zero
	inv.DiscountAmount = decimal.Zero
	inv.Total = decimal.Zero

	out, err := InvoicePDF(inv)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestTotalsBlockTracksTableEnd(t *testing.T) {
	// Short invoice: the table bottom is start + header + rows.
	_, shortY := drawInvoice(invoiceWithLines(2))
	assert.Equal(t, tableStartY+headerRowH+2*rowH+10, shortY)

	// 20 rows still fit one page; the totals block keeps tracking the
	// table's bottom edge instead of a fixed y.
	_, midY := drawInvoice(invoiceWithLines(20))
	assert.Equal(t, tableStartY+headerRowH+20*rowH+10, midY)
	assert.Greater(t, midY, shortY)
}

func TestTotalsBlockFollowsTableAcrossPageBreak(t *testing.T) {
	// 30 rows spill onto a second page. The totals block must sit 10
	// units below wherever the table actually ended, which the layout
	// helper reports.
	lines := invoiceWithLines(30).Lines

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tableEnd := drawItemsTable(pdf, lines)

	_, totalsY := drawInvoice(invoiceWithLines(30))
	assert.Equal(t, tableEnd+10, totalsY)
}

func TestDrawItemsTableReturnsBottomEdge(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	end := drawItemsTable(pdf, invoiceWithLines(0).Lines)
	assert.Equal(t, tableStartY+headerRowH, end, "zero items still draw the header row")

	pdf = fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	end = drawItemsTable(pdf, invoiceWithLines(5).Lines)
	assert.Equal(t, tableStartY+headerRowH+5*rowH, end)
}

func TestLongInvoiceBreaksOntoNewPage(t *testing.T) {
	pdf, _ := drawInvoice(invoiceWithLines(40))
	require.NoError(t, pdf.Error())
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestInvoiceFileNameTruncatesID(t *testing.T) {
	assert.Equal(t, "invoice-f47ac10b.pdf", InvoiceFileName("f47ac10b-58cc-4372-a567-0e02b2c3d479"))
	assert.Equal(t, "invoice-short.pdf", InvoiceFileName("short"))
}
