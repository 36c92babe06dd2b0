package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/skinuse/internal/analysis"
)

// ErrNotFound is returned when a report ID is not stored.
var ErrNotFound = errors.New("report not found")

// Summary is one row of ListReports.
type Summary struct {
	ID        string `json:"id"`
	Mapset    string `json:"mapset"`
	RuleCount int    `json:"rule_count"`
	Elements  int    `json:"elements"`
	Used      int    `json:"used"`
	CreatedAt string `json:"created_at"`
}

// LoadReport reads a stored report with its elements in saved order.
func (s *Store) LoadReport(ctx context.Context, id string) (*analysis.Report, error) {
	r := &analysis.Report{ID: id}
	err := s.db.QueryRowContext(ctx, `SELECT mapset FROM reports WHERE id = ?`, id).Scan(&r.Mapset)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load report %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, pattern, category, used
		FROM report_elements
		WHERE report_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}
	defer rows.Close()

	r.Elements = []analysis.Element{}
	for rows.Next() {
		var e analysis.Element
		if err := rows.Scan(&e.Name, &e.Pattern, &e.Category, &e.Used); err != nil {
			return nil, fmt.Errorf("load report %s: %w", id, err)
		}
		r.Elements = append(r.Elements, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}

	return r, nil
}

// ListReports returns a summary of every stored report, ordered by ID.
// UUIDv7 IDs sort by creation time.
func (s *Store) ListReports(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.mapset, r.rule_count, r.created_at,
		       COUNT(e.position), COALESCE(SUM(e.used), 0)
		FROM reports r
		LEFT JOIN report_elements e ON e.report_id = r.id
		GROUP BY r.id
		ORDER BY r.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Mapset, &sum.RuleCount, &sum.CreatedAt, &sum.Elements, &sum.Used); err != nil {
			return nil, fmt.Errorf("list reports: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}
