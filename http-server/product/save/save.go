package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/service/resolver"
	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

type ProductAdder interface {
	AddProduct(ctx context.Context, rc *resolver.Context, reporter string, p *storage.Product) (int64, error)
}

type Request struct {
	Date     string `json:"date"`
	Shift    string `json:"shift"`
	Reporter string `json:"reporter"`

	ProductionOrder string `json:"production_order"`
	Name            string `json:"name"`
	HCode           string `json:"h_code"`
	TwelvNC         string `json:"twelv_nc"`
	Comment         string `json:"comment"`
	TimeSpent       string `json:"time_spent"`
	TechnicianName  string `json:"technician_name"`
}

type Response struct {
	Status    string `json:"status"`
	ProductID int64  `json:"product_id"`
	ReportID  string `json:"report_id"`
}

// SaveProduct adds one performed-action record. The first product for a
// (date, shift) slot creates the slot's report; required fields are
// rejected before anything is written.
func SaveProduct(log *slog.Logger, adder ProductAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.product.save.SaveProduct"

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

		product := storage.Product{
			ProductionOrder: req.ProductionOrder,
			Name:            req.Name,
			HCode:           req.HCode,
			TwelvNC:         req.TwelvNC,
			Comment:         req.Comment,
			TimeSpent:       req.TimeSpent,
			TechnicianName:  req.TechnicianName,
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rc := resolver.NewContext(req.Date, req.Shift)
		id, err := adder.AddProduct(ctx, rc, req.Reporter, &product)

		var valErr *storage.ValidationError
		if errors.As(err, &valErr) {
			log.Warn("product rejected", slog.String("op", op), slog.Any("missing", valErr.Missing))
			http.Error(w, valErr.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Error("failed to add product", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "success", ProductID: id, ReportID: rc.ReportID()})
	}
}
