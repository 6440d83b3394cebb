package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

// GetReportByDateAndShift does an exact composite-key lookup on the
// (date, shift) index. Absence is storage.ErrReportNotFound.
func (s *Storage) GetReportByDateAndShift(ctx context.Context, date, shift string) (*storage.Report, error) {
	const op = "storage.sqlite.GetReportByDateAndShift"

	var rep storage.Report
	err := s.db.QueryRowContext(ctx,
		`SELECT id, date, shift, reporter FROM reports WHERE date = ? AND shift = ? LIMIT 1`,
		date, shift,
	).Scan(&rep.ID, &rep.Date, &rep.Shift, &rep.Reporter)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &rep, nil
}

func (s *Storage) GetReportByID(ctx context.Context, id string) (*storage.Report, error) {
	const op = "storage.sqlite.GetReportByID"

	var rep storage.Report
	err := s.db.QueryRowContext(ctx,
		`SELECT id, date, shift, reporter FROM reports WHERE id = ?`,
		id,
	).Scan(&rep.ID, &rep.Date, &rep.Shift, &rep.Reporter)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &rep, nil
}

// GetLatestReport returns the most recently created report.
func (s *Storage) GetLatestReport(ctx context.Context) (*storage.Report, error) {
	const op = "storage.sqlite.GetLatestReport"

	var rep storage.Report
	err := s.db.QueryRowContext(ctx,
		`SELECT id, date, shift, reporter FROM reports ORDER BY rowid DESC LIMIT 1`,
	).Scan(&rep.ID, &rep.Date, &rep.Shift, &rep.Reporter)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &rep, nil
}

// CreateReport inserts a fresh report with an empty reporter. It does
// NOT check for an existing (date, shift) match, the resolver is
// responsible for deduplication.
func (s *Storage) CreateReport(ctx context.Context, date, shift string) (*storage.Report, error) {
	const op = "storage.sqlite.CreateReport"

	if shift == "" {
		shift = storage.ShiftMorning
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	rep := storage.Report{
		ID:       uuid.NewString(),
		Date:     date,
		Shift:    shift,
		Reporter: "",
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (id, date, shift, reporter) VALUES (?, ?, ?, ?)`,
		rep.ID, rep.Date, rep.Shift, rep.Reporter,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &rep, nil
}

// UpdateReport upserts the full record by id. No partial update exists.
func (s *Storage) UpdateReport(ctx context.Context, rep *storage.Report) error {
	const op = "storage.sqlite.UpdateReport"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (id, date, shift, reporter) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET date = excluded.date, shift = excluded.shift, reporter = excluded.reporter`,
		rep.ID, rep.Date, rep.Shift, rep.Reporter,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
