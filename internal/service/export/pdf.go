package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

// Column widths in mm, 275 total on a 297mm A4 landscape page. The
// actions/status column takes the largest share because it holds free
// text.
var pdfColumns = []struct {
	title string
	width float64
}{
	{"Production\nOrder", 25},
	{"Name", 35},
	{"H-Code", 20},
	{"12NC Code", 30},
	{"Performed actions & status", 110},
	{"Time spent", 20},
	{"Technician", 35},
}

const (
	pdfMarginLeft   = 11.0
	pdfMarginBottom = 10.0
	pdfTableTop     = 25.0
	pdfHeadHeight   = 11.0
	pdfLineHeight   = 4.0
	pdfRowPadding   = 3.0
	pdfCellMargin   = 1.5
)

// PDF serializes the report into a landscape paginated table with a
// single-line header banner. Rows grow to fit wrapped comment text.
// Deterministic: the document dates are pinned to the report date, so
// the same input always produces the same bytes.
func PDF(rep *storage.Report, products []storage.Product) ([]byte, error) {
	const op = "export.PDF"

	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pinned := pinnedDate(rep.Date)
	pdf.SetCreationDate(pinned)
	pdf.SetModificationDate(pinned)
	pdf.SetMargins(pdfMarginLeft, 10, pdfMarginLeft)
	pdf.SetAutoPageBreak(false, pdfMarginBottom)
	pdf.SetCellMargin(pdfCellMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 12)
	banner := fmt.Sprintf("Shift Report  |  Reporter: %s  |  Shift: %s  |  Date: %s",
		rep.Reporter, rep.Shift, rep.Date)
	pdf.Text(15, 15, banner)

	y := drawTableHead(pdf, pdfTableTop)
	_, pageH := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "", 8)
	for _, p := range products {
		row := []string{
			p.ProductionOrder,
			p.Name,
			p.HCode,
			p.TwelvNC,
			p.Comment,
			p.TimeSpent,
			p.TechnicianName,
		}

		h := rowHeight(pdf, row)
		if y+h > pageH-pdfMarginBottom {
			pdf.AddPage()
			y = drawTableHead(pdf, 10)
			pdf.SetFont("Helvetica", "", 8)
		}

		x := pdfMarginLeft
		for i, cell := range row {
			pdf.Rect(x, y, pdfColumns[i].width, h, "D")
			pdf.SetXY(x, y+pdfRowPadding/2)
			pdf.MultiCell(pdfColumns[i].width, pdfLineHeight, cell, "", "L", false)
			x += pdfColumns[i].width
		}
		y += h
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func drawTableHead(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(224, 224, 224)

	x := pdfMarginLeft
	for _, col := range pdfColumns {
		pdf.Rect(x, y, col.width, pdfHeadHeight, "FD")
		pdf.SetXY(x, y+pdfRowPadding/2)
		pdf.MultiCell(col.width, pdfLineHeight, col.title, "", "L", false)
		x += col.width
	}

	return y + pdfHeadHeight
}

// rowHeight is driven by the tallest wrapped cell, no truncation.
func rowHeight(pdf *fpdf.Fpdf, row []string) float64 {
	maxLines := 1
	for i, cell := range row {
		lines := pdf.SplitText(cell, pdfColumns[i].width-2*pdfCellMargin)
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	return float64(maxLines)*pdfLineHeight + pdfRowPadding
}

func pinnedDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t.UTC()
}
