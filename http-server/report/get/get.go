package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/service/resolver"
	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

type ReportResolver interface {
	ResolveCurrent(ctx context.Context, rc *resolver.Context) (*storage.Report, error)
}

type LatestReport interface {
	GetLatestReport(ctx context.Context) (*storage.Report, error)
}

type ResponseReport struct {
	Status string          `json:"status"`
	Report *storage.Report `json:"report,omitempty"`
}

// GetCurrentReport resolves the (date, shift) selection without ever
// creating a report: an empty slot is a normal answer.
func GetCurrentReport(log *slog.Logger, res ReportResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.get.GetCurrentReport"

		date := r.URL.Query().Get("date")
		shift := r.URL.Query().Get("shift")
		if date == "" || shift == "" {
			http.Error(w, "date and shift are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rc := resolver.NewContext(date, shift)
		rep, err := res.ResolveCurrent(ctx, rc)
		if err != nil {
			log.Error("failed to resolve report", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if rep == nil {
			render.JSON(w, r, ResponseReport{Status: "empty"})
			return
		}

		render.JSON(w, r, ResponseReport{Status: "success", Report: rep})
	}
}

// GetLatestReport returns the most recently created report.
func GetLatestReport(log *slog.Logger, latest LatestReport) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.get.GetLatestReport"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rep, err := latest.GetLatestReport(ctx)
		if errors.Is(err, storage.ErrReportNotFound) {
			render.JSON(w, r, ResponseReport{Status: "empty"})
			return
		}
		if err != nil {
			log.Error("failed to get latest report", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseReport{Status: "success", Report: rep})
	}
}
