package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/config"
	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

// schemaVersion is kept in PRAGMA user_version. Version 1 databases
// predate the (date, shift) index; opening one adds the index in place
// without touching existing rows.
const schemaVersion = 2

type Storage struct {
	db *sql.DB
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.sqlite.New"

	if dir := filepath.Dir(cfg.StoragePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &storage.InitializationError{Path: cfg.StoragePath, Err: fmt.Errorf("%s: %w", op, err)}
		}
	}

	db, err := sql.Open("sqlite", cfg.StoragePath)
	if err != nil {
		return nil, &storage.InitializationError{Path: cfg.StoragePath, Err: fmt.Errorf("%s: %w", op, err)}
	}

	// single-consumer local store, WAL is still nicer on crashes
	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, &storage.InitializationError{Path: cfg.StoragePath, Err: fmt.Errorf("%s: %w", op, err)}
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, &storage.InitializationError{Path: cfg.StoragePath, Err: fmt.Errorf("%s: %w", op, err)}
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// migrate brings the schema up to schemaVersion. Idempotent across
// application launches; never drops or rewrites existing records.
func migrate(db *sql.DB) error {
	const op = "storage.sqlite.migrate"

	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("%s: read user_version: %w", op, err)
	}
	if version >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	if version < 1 {
		_, err = tx.Exec(`
			CREATE TABLE IF NOT EXISTS reports (
				id       TEXT PRIMARY KEY,
				date     TEXT NOT NULL,
				shift    TEXT NOT NULL,
				reporter TEXT NOT NULL DEFAULT ''
			);
			CREATE TABLE IF NOT EXISTS products (
				id               INTEGER PRIMARY KEY AUTOINCREMENT,
				report_id        TEXT NOT NULL,
				production_order TEXT NOT NULL,
				name             TEXT NOT NULL,
				h_code           TEXT NOT NULL,
				twelv_nc         TEXT NOT NULL DEFAULT '',
				comment          TEXT NOT NULL DEFAULT '',
				time_spent       TEXT NOT NULL DEFAULT '',
				technician_name  TEXT NOT NULL DEFAULT ''
			);
		`)
		if err != nil {
			return fmt.Errorf("%s: create tables: %w", op, err)
		}
	}

	// v1 -> v2: the secondary indexes. Non-unique on (date, shift),
	// deduplication stays the resolver's job.
	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reports_date_shift ON reports (date, shift);
		CREATE INDEX IF NOT EXISTS idx_products_report_id ON products (report_id);
	`)
	if err != nil {
		return fmt.Errorf("%s: create indexes: %w", op, err)
	}

	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion)); err != nil {
		return fmt.Errorf("%s: set user_version: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// DeleteReportAndProducts removes the report and every product that
// references it in one transaction: either both collections are
// updated or neither is.
func (s *Storage) DeleteReportAndProducts(ctx context.Context, reportID string) error {
	const op = "storage.sqlite.DeleteReportAndProducts"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &storage.TransactionError{Op: op, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE report_id = ?`, reportID); err != nil {
		return &storage.TransactionError{Op: op, Err: fmt.Errorf("delete products: %w", err)}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, reportID); err != nil {
		return &storage.TransactionError{Op: op, Err: fmt.Errorf("delete report: %w", err)}
	}

	if err := tx.Commit(); err != nil {
		return &storage.TransactionError{Op: op, Err: fmt.Errorf("commit: %w", err)}
	}

	return nil
}
