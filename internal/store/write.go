package store

import (
	"context"
	"fmt"

	"github.com/roach88/skinuse/internal/analysis"
)

// SaveReport writes a report and its element verdicts in one transaction.
// Saving a report ID that already exists replaces the stored copy.
//
// ruleCount records the size of the table the report was evaluated against.
func (s *Store) SaveReport(ctx context.Context, r *analysis.Report, ruleCount int) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, r.ID); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO reports (id, mapset, rule_count)
		VALUES (?, ?, ?)
	`, r.ID, r.Mapset, ruleCount); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO report_elements (report_id, position, name, pattern, category, used)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	defer stmt.Close()

	for i, e := range r.Elements {
		if _, err = stmt.ExecContext(ctx, r.ID, i, e.Name, e.Pattern, e.Category, e.Used); err != nil {
			return fmt.Errorf("save report element %q: %w", e.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
