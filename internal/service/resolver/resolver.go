package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

type ReportStorage interface {
	GetReportByDateAndShift(ctx context.Context, date, shift string) (*storage.Report, error)
	CreateReport(ctx context.Context, date, shift string) (*storage.Report, error)
	UpdateReport(ctx context.Context, rep *storage.Report) error
	AddProduct(ctx context.Context, p *storage.Product) (int64, error)
}

// Service hides creation-on-demand from callers: a (date, shift)
// selection always resolves to at most one report, and a report is only
// ever created by the first write into its slot.
type Service struct {
	storage ReportStorage
}

func NewService(storage ReportStorage) *Service {
	return &Service{storage: storage}
}

// Context is one editing session's (date, shift) selection plus the
// cached report identifier. Callers hold one Context per session
// instead of sharing ambient state, so independent panes can coexist.
type Context struct {
	date     string
	shift    string
	reportID string
}

func NewContext(date, shift string) *Context {
	return &Context{date: date, shift: shift}
}

func (c *Context) Date() string     { return c.date }
func (c *Context) Shift() string    { return c.shift }
func (c *Context) ReportID() string { return c.reportID }

// Switch changes the selection and invalidates the cached identifier.
// Switching never creates a report, only a subsequent write does.
func (c *Context) Switch(date, shift string) {
	if c.date == date && c.shift == shift {
		return
	}
	c.date = date
	c.shift = shift
	c.reportID = ""
}

// ResolveCurrent looks the selection up and caches the identifier when
// a report exists. Absence returns (nil, nil): no report yet is a
// normal state and must not create one as a side effect.
func (s *Service) ResolveCurrent(ctx context.Context, rc *Context) (*storage.Report, error) {
	const op = "service.resolver.ResolveCurrent"

	rep, err := s.storage.GetReportByDateAndShift(ctx, rc.date, rc.shift)
	if errors.Is(err, storage.ErrReportNotFound) {
		rc.reportID = ""
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rc.reportID = rep.ID
	return rep, nil
}

// GetOrCreateReportID returns the cached identifier, or the stored
// report's identifier for this slot, or creates exactly one new report
// carrying the given reporter. Repeated calls in one context return the
// same identifier and never create a second record.
func (s *Service) GetOrCreateReportID(ctx context.Context, rc *Context, reporter string) (string, error) {
	const op = "service.resolver.GetOrCreateReportID"

	if rc.reportID != "" {
		return rc.reportID, nil
	}

	rep, err := s.storage.GetReportByDateAndShift(ctx, rc.date, rc.shift)
	if err == nil {
		rc.reportID = rep.ID
		return rep.ID, nil
	}
	if !errors.Is(err, storage.ErrReportNotFound) {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	rep, err = s.storage.CreateReport(ctx, rc.date, rc.shift)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if reporter != "" {
		rep.Reporter = reporter
		if err := s.storage.UpdateReport(ctx, rep); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	rc.reportID = rep.ID
	return rep.ID, nil
}

// SaveReporter persists the reporter into the slot's report, creating
// the report on this first write if none exists yet.
func (s *Service) SaveReporter(ctx context.Context, rc *Context, reporter string) (string, error) {
	const op = "service.resolver.SaveReporter"

	id, err := s.GetOrCreateReportID(ctx, rc, reporter)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	rep := storage.Report{
		ID:       id,
		Date:     rc.date,
		Shift:    rc.shift,
		Reporter: reporter,
	}
	if err := s.storage.UpdateReport(ctx, &rep); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// AddProduct is the only path that creates products, so every product's
// report exists before the product row is written.
func (s *Service) AddProduct(ctx context.Context, rc *Context, reporter string, p *storage.Product) (int64, error) {
	const op = "service.resolver.AddProduct"

	if err := p.Validate(); err != nil {
		return 0, err
	}

	id, err := s.GetOrCreateReportID(ctx, rc, reporter)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	p.ReportID = id
	productID, err := s.storage.AddProduct(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return productID, nil
}
