package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

type ProductLister interface {
	GetProducts(ctx context.Context, reportID string) ([]storage.Product, error)
}

type ResponseProducts struct {
	Status   string            `json:"status"`
	Products []storage.Product `json:"products"`
}

// GetProducts lists the report's products in insertion order.
func GetProducts(log *slog.Logger, lister ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.product.get.GetProducts"

		reportID := r.URL.Query().Get("report_id")
		if reportID == "" {
			http.Error(w, "report_id is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		products, err := lister.GetProducts(ctx, reportID)
		if err != nil {
			log.Error("failed to list products", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if products == nil {
			products = []storage.Product{}
		}

		render.JSON(w, r, ResponseProducts{Status: "success", Products: products})
	}
}
