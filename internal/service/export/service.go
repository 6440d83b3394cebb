package export

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

type ExportStorage interface {
	GetReportByID(ctx context.Context, id string) (*storage.Report, error)
	GetProducts(ctx context.Context, reportID string) ([]storage.Product, error)
}

// Service loads a report with its products and hands them to the pure
// serializers. Artifact names follow ShiftReport_<date>.<ext>.
type Service struct {
	storage ExportStorage
}

func NewService(storage ExportStorage) *Service {
	return &Service{storage: storage}
}

// Data fetches the report and its product list in parallel.
func (s *Service) Data(ctx context.Context, reportID string) (*storage.Report, []storage.Product, error) {
	const op = "export.Data"

	var (
		rep      *storage.Report
		products []storage.Product
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rep, err = s.storage.GetReportByID(gCtx, reportID)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.storage.GetProducts(gCtx, reportID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return rep, products, nil
}

func (s *Service) PDF(ctx context.Context, reportID string) ([]byte, string, error) {
	rep, products, err := s.Data(ctx, reportID)
	if err != nil {
		return nil, "", err
	}
	out, err := PDF(rep, products)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("ShiftReport_%s.pdf", rep.Date), nil
}

func (s *Service) CSV(ctx context.Context, reportID string) ([]byte, string, error) {
	rep, products, err := s.Data(ctx, reportID)
	if err != nil {
		return nil, "", err
	}
	out, err := CSV(rep, products)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("ShiftReport_%s.csv", rep.Date), nil
}

func (s *Service) Excel(ctx context.Context, reportID string) ([]byte, string, error) {
	rep, products, err := s.Data(ctx, reportID)
	if err != nil {
		return nil, "", err
	}
	out, err := Excel(rep, products)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("ShiftReport_%s.xlsx", rep.Date), nil
}
