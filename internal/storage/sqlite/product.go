package sqlite

import (
	"context"
	"fmt"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

// GetProducts lists every product owned by the report, in insertion
// order.
func (s *Storage) GetProducts(ctx context.Context, reportID string) ([]storage.Product, error) {
	const op = "storage.sqlite.GetProducts"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, report_id, production_order, name, h_code, twelv_nc, comment, time_spent, technician_name
		FROM products WHERE report_id = ? ORDER BY id ASC`,
		reportID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var products []storage.Product
	for rows.Next() {
		var p storage.Product
		err := rows.Scan(&p.ID, &p.ReportID, &p.ProductionOrder, &p.Name, &p.HCode,
			&p.TwelvNC, &p.Comment, &p.TimeSpent, &p.TechnicianName)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// AddProduct inserts the product and returns the store-assigned,
// strictly increasing identifier.
func (s *Storage) AddProduct(ctx context.Context, p *storage.Product) (int64, error) {
	const op = "storage.sqlite.AddProduct"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO products (report_id, production_order, name, h_code, twelv_nc, comment, time_spent, technician_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ReportID, p.ProductionOrder, p.Name, p.HCode, p.TwelvNC, p.Comment, p.TimeSpent, p.TechnicianName,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

// RemoveProduct deletes by identifier. Removing an id that does not
// exist is a no-op success.
func (s *Storage) RemoveProduct(ctx context.Context, id int64) error {
	const op = "storage.sqlite.RemoveProduct"

	if _, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
