package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

// Excel serializes the report into a styled worksheet with the same
// flat ten-column layout as the CSV artifact.
func Excel(rep *storage.Report, products []storage.Product) ([]byte, error) {
	const op = "export.Excel"

	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Shift Report"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	for i, name := range columnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(columnHeaders), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, p := range products {
		rowNum := rowIdx + 2
		f.SetCellValue(sheet, cellName(1, rowNum), rep.Date)
		f.SetCellValue(sheet, cellName(2, rowNum), rep.Shift)
		f.SetCellValue(sheet, cellName(3, rowNum), rep.Reporter)
		f.SetCellValue(sheet, cellName(4, rowNum), p.ProductionOrder)
		f.SetCellValue(sheet, cellName(5, rowNum), p.Name)
		f.SetCellValue(sheet, cellName(6, rowNum), p.HCode)
		f.SetCellValue(sheet, cellName(7, rowNum), p.TwelvNC)
		f.SetCellValue(sheet, cellName(8, rowNum), p.Comment)
		f.SetCellValue(sheet, cellName(9, rowNum), p.TimeSpent)
		f.SetCellValue(sheet, cellName(10, rowNum), p.TechnicianName)
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	f.SetColWidth(sheet, "A", "G", 15)
	// free-text column gets the widest share, like the PDF layout
	f.SetColWidth(sheet, "H", "H", 50)
	f.SetColWidth(sheet, "I", "J", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
