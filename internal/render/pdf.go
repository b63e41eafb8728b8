package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"go-sales-console/internal/model"
)

// The document renderer draws on an absolute-coordinate A4 grid (210 mm
// wide) rather than a flow layout. Header blocks sit at fixed positions;
// everything below the item table hangs off the table's actual bottom
// edge, which depends on the row count.

const (
	marginLeft    = 14.0
	companyX      = 150.0 // right-aligned anchor for the company block
	tableStartY   = 65.0
	headerRowH    = 8.0
	rowH          = 8.0
	pageBreakY    = 272.0 // add a page when the next row would pass this
	totalsLabelX  = 130.0
	totalsValueX  = 170.0 // right-aligned anchor for totals values
	notesMaxWidth = 182.0
)

var tableCols = []struct {
	title string
	width float64
	right bool
}{
	{"Item", 92, false},
	{"Quantity", 25, false},
	{"Unit Price", 30, false},
	{"Amount", 35, true},
}

// InvoiceFileName encodes the stable, truncated form of the sale id.
func InvoiceFileName(saleID string) string {
	return fmt.Sprintf("invoice-%s.pdf", model.ShortID(saleID))
}

// InvoicePDF renders the view model into a complete PDF document. On any
// drawing error nothing is returned: no partial file is ever emitted.
func InvoicePDF(inv *model.InvoiceViewModel) ([]byte, error) {
	pdf, _ := drawInvoice(inv)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawInvoice draws every block and returns the document together with the
// baseline y of the totals block, which callers and tests use to verify
// the dynamic positioning.
func drawInvoice(inv *model.InvoiceViewModel) (*fpdf.Fpdf, float64) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Title block, top-left.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(marginLeft, 20, "INVOICE")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginLeft, 26, inv.Number)

	// Company block, top-right, right-aligned at a fixed anchor.
	pdf.SetFont("Helvetica", "B", 10)
	textRight(pdf, companyX, 20, "Your Company Name")
	pdf.SetFont("Helvetica", "", 10)
	textRight(pdf, companyX, 25, "123 Business Street")
	textRight(pdf, companyX, 30, "City, State 12345")
	textRight(pdf, companyX, 35, "contact@yourcompany.com")

	// Bill-to block, mid-left.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(marginLeft, 45, "BILL TO")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginLeft, 50, "Customer ID: "+inv.CustomerID)
	pdf.Text(marginLeft, 55, "customer@example.com")

	// Invoice date and payment method, mid-right.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(120, 45, "INVOICE DATE")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(120, 50, inv.Date)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(170, 45, "PAYMENT METHOD")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(170, 50, inv.PaymentMethod)

	tableEnd := drawItemsTable(pdf, inv.Lines)

	// Totals block, positioned relative to the table's actual end. A fixed
	// offset here would overlap the table on long invoices.
	finalY := tableEnd + 10

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(totalsLabelX, finalY, "Subtotal:")
	textRight(pdf, totalsValueX, finalY, "$"+inv.Subtotal.StringFixed(2))

	pdf.Text(totalsLabelX, finalY+5, fmt.Sprintf("Discount (%s%%):", inv.DiscountPercentage.String()))
	textRight(pdf, totalsValueX, finalY+5, "-$"+inv.DiscountAmount.StringFixed(2))

	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(totalsLabelX, finalY+7, totalsValueX, finalY+7)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(totalsLabelX, finalY+12, "Total:")
	textRight(pdf, totalsValueX, finalY+12, "$"+inv.Total.StringFixed(2))

	// Status badge: filled rectangle with centered white PAID text.
	pdf.SetFillColor(39, 174, 96)
	pdf.Rect(totalsLabelX, finalY+15, 40, 7, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 8)
	textCenter(pdf, 150, finalY+20, "PAID")
	pdf.SetTextColor(0, 0, 0)

	// Closing notes block.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(marginLeft, finalY+30, "Notes")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, finalY+31)
	pdf.MultiCell(notesMaxWidth, 5,
		"Thank you for your business. Please contact us if you have any questions about this invoice.",
		"", "L", false)

	return pdf, finalY
}

// drawItemsTable renders the grid and returns the y coordinate of its
// bottom edge. Zero line items still produce the header row. Long tables
// break onto fresh pages, header repeated.
func drawItemsTable(pdf *fpdf.Fpdf, lines []model.InvoiceLine) float64 {
	y := drawTableHeader(pdf, tableStartY)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range lines {
		if y+rowH > pageBreakY {
			pdf.AddPage()
			y = drawTableHeader(pdf, 20)
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(0, 0, 0)
		}

		cells := []string{
			line.ProductName,
			fmt.Sprintf("%d", line.Quantity),
			"$" + line.UnitPrice.StringFixed(2),
			"$" + line.Amount.StringFixed(2),
		}
		pdf.SetXY(marginLeft, y)
		for i, col := range tableCols {
			align := "L"
			if col.right {
				align = "R"
			}
			pdf.CellFormat(col.width, rowH, cells[i], "1", 0, align, false, 0, "")
		}
		y += rowH
	}
	return y
}

func drawTableHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(66, 66, 66)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(marginLeft, y)
	for _, col := range tableCols {
		pdf.CellFormat(col.width, headerRowH, col.title, "1", 0, "L", true, 0, "")
	}
	return y + headerRowH
}

func textRight(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

func textCenter(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}
