package export

import (
	"errors"
	"strings"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

// ErrNoProducts signals the soft "nothing to export" notice. Callers
// show it to the user, they do not treat it as a failure.
var ErrNoProducts = errors.New("no data to export")

// columnHeaders is the flat denormalized layout shared by the CSV and
// spreadsheet artifacts: report fields repeated on every product row.
var columnHeaders = []string{
	"Date",
	"Shift",
	"Reporter",
	"Production Order",
	"Name",
	"H-Code",
	"12NC Code",
	"Performed actions & status",
	"Time spent",
	"Technician",
}

// CSV serializes the report into a semicolon-delimited artifact:
// UTF-8 BOM, a "sep=;" hint line for spreadsheet tools, the header row,
// then one row per product. Pure function of its inputs.
func CSV(rep *storage.Report, products []storage.Product) ([]byte, error) {
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	var b strings.Builder
	b.WriteString("\uFEFF")
	b.WriteString("sep=;\r\n")
	writeRow(&b, columnHeaders)

	for _, p := range products {
		writeRow(&b, []string{
			rep.Date,
			rep.Shift,
			rep.Reporter,
			p.ProductionOrder,
			p.Name,
			p.HCode,
			p.TwelvNC,
			p.Comment,
			p.TimeSpent,
			p.TechnicianName,
		})
	}

	return []byte(b.String()), nil
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(escapeField(f))
	}
	b.WriteString("\r\n")
}

// escapeField quotes a field containing the delimiter, a double quote
// or a line break, doubling internal quotes. Everything else is emitted
// verbatim, empty values stay empty.
func escapeField(field string) string {
	if strings.ContainsAny(field, ";\"\n\r") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}
