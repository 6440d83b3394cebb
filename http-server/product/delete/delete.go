package delete

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ProductRemover interface {
	RemoveProduct(ctx context.Context, id int64) error
}

// RemoveProduct deletes one product by identifier. Removing an id that
// no longer exists still succeeds.
func RemoveProduct(log *slog.Logger, remover ProductRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.product.delete.RemoveProduct"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.RemoveProduct(ctx, id); err != nil {
			log.Error("failed to remove product", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "success"})
	}
}
