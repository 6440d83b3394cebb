package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/service/resolver"
)

type ReporterSaver interface {
	SaveReporter(ctx context.Context, rc *resolver.Context, reporter string) (string, error)
}

type Request struct {
	Date     string `json:"date"`
	Shift    string `json:"shift"`
	Reporter string `json:"reporter"`
}

type Response struct {
	Status   string `json:"status"`
	ReportID string `json:"report_id"`
}

// SaveReportHeader persists the reporter for a (date, shift) slot. This
// is a first-write operation: it creates the slot's report when none
// exists yet, and never creates a second one.
func SaveReportHeader(log *slog.Logger, saver ReporterSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.save.SaveReportHeader"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Date == "" || req.Shift == "" {
			http.Error(w, "date and shift are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rc := resolver.NewContext(req.Date, req.Shift)
		id, err := saver.SaveReporter(ctx, rc, req.Reporter)
		if err != nil {
			log.Error("failed to save report header", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "success", ReportID: id})
	}
}
