package generate_excel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/service/export"
	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

type ExcelGenerator interface {
	Excel(ctx context.Context, reportID string) ([]byte, string, error)
}

// GenerateReportExcel streams the worksheet artifact for one report.
func GenerateReportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.GenerateReportExcel"

		reportID := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, fileName, err := gen.Excel(ctx, reportID)
		if errors.Is(err, export.ErrNoProducts) {
			render.JSON(w, r, map[string]string{"status": "empty", "message": "no data to export"})
			return
		}
		if errors.Is(err, storage.ErrReportNotFound) {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to generate excel", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
