package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	generate_csv "github.com/Cir0cuit/Shift-Reporting-Tool/http-server/generate-report/generate-csv"
	generate_excel "github.com/Cir0cuit/Shift-Reporting-Tool/http-server/generate-report/generate-excel"
	generate_pdf "github.com/Cir0cuit/Shift-Reporting-Tool/http-server/generate-report/generate-pdf"
	delproduct "github.com/Cir0cuit/Shift-Reporting-Tool/http-server/product/delete"
	getproduct "github.com/Cir0cuit/Shift-Reporting-Tool/http-server/product/get"
	saveproduct "github.com/Cir0cuit/Shift-Reporting-Tool/http-server/product/save"
	delreport "github.com/Cir0cuit/Shift-Reporting-Tool/http-server/report/delete"
	getreport "github.com/Cir0cuit/Shift-Reporting-Tool/http-server/report/get"
	savereport "github.com/Cir0cuit/Shift-Reporting-Tool/http-server/report/save"
	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/config"
	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/service/export"
	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/service/resolver"
	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage/sqlite"
)

func routes(cfg config.Config, log *slog.Logger, storage *sqlite.Storage, resolverService *resolver.Service, exportService *export.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// report header: resolve, latest, save, cascade delete
	router.Get("/api/report", getreport.GetCurrentReport(log, resolverService))
	router.Get("/api/report/latest", getreport.GetLatestReport(log, storage))
	router.Post("/api/report", savereport.SaveReportHeader(log, resolverService))
	router.Delete("/api/report/{id}", delreport.DeleteReport(log, storage))

	// products within a report
	router.Get("/api/products", getproduct.GetProducts(log, storage))
	router.Post("/api/products", saveproduct.SaveProduct(log, resolverService))
	router.Delete("/api/products/{id}", delproduct.RemoveProduct(log, storage))

	// export artifacts
	router.Get("/api/report/{id}/export/pdf", generate_pdf.GenerateReportPDF(log, exportService))
	router.Get("/api/report/{id}/export/csv", generate_csv.GenerateReportCSV(log, exportService))
	router.Get("/api/report/{id}/export/excel", generate_excel.GenerateReportExcel(log, exportService))

	// static frontend
	frontendDir := cfg.FrontendDir
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend dir not found, serving API only", slog.String("path", frontendDir))
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: any other path -> index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
