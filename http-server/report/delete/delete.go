package delete

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ReportDeleter interface {
	DeleteReportAndProducts(ctx context.Context, reportID string) error
}

// DeleteReport removes the report and every product that references it
// as one unit. The confirmation dialog lives in the UI, not here.
func DeleteReport(log *slog.Logger, deleter ReportDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.delete.DeleteReport"

		reportID := chi.URLParam(r, "id")
		if reportID == "" {
			http.Error(w, "report id is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteReportAndProducts(ctx, reportID); err != nil {
			log.Error("failed to delete report", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
