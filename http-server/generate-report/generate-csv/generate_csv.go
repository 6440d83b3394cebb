package generate_csv

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

type CSVGenerator interface {
	CSV(ctx context.Context, reportID string) ([]byte, string, error)
}

// GenerateReportCSV streams the semicolon-delimited artifact for one
// report.
func GenerateReportCSV(log *slog.Logger, gen CSVGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.GenerateReportCSV"

		reportID := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		csvBytes, fileName, err := gen.CSV(ctx, reportID)
		if errors.Is(err, export.ErrNoProducts) {
			render.JSON(w, r, map[string]string{"status": "empty", "message": "no data to export"})
			return
		}
		if errors.Is(err, storage.ErrReportNotFound) {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to generate csv", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(csvBytes)
	}
}
