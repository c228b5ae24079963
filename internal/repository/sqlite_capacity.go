package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mkorsten/foresight/internal/db"
	"github.com/mkorsten/foresight/internal/domain"
)

// SQLiteCapacityRepo implements CapacityRepo using a SQLite database.
type SQLiteCapacityRepo struct {
	conn db.DBTX
}

// NewSQLiteCapacityRepo creates a new SQLiteCapacityRepo.
func NewSQLiteCapacityRepo(conn db.DBTX) *SQLiteCapacityRepo {
	return &SQLiteCapacityRepo{conn: conn}
}

func (r *SQLiteCapacityRepo) Create(ctx context.Context, rec *domain.CapacityRecord) error {
	query := `INSERT INTO capacity_records
		(id, project_id, assignee_id, allocated_hours, total_capacity_hours, burnout_risk_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		rec.ID,
		rec.ProjectID,
		rec.AssigneeID,
		rec.AllocatedHours,
		rec.TotalCapacityHours,
		rec.BurnoutRiskScore,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting capacity record: %w", err)
	}
	return nil
}

// Replace swaps the project's allocation snapshot. The snapshot is read-only
// at forecast time, so stale rows are simply dropped.
func (r *SQLiteCapacityRepo) Replace(ctx context.Context, projectID string, recs []domain.CapacityRecord) error {
	if _, err := r.conn.ExecContext(ctx,
		`DELETE FROM capacity_records WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing capacity records: %w", err)
	}
	for i := range recs {
		if err := r.Create(ctx, &recs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteCapacityRepo) ListByProject(ctx context.Context, projectID string) ([]domain.CapacityRecord, error) {
	query := `SELECT id, project_id, assignee_id, allocated_hours, total_capacity_hours, burnout_risk_score, created_at
		FROM capacity_records
		WHERE project_id = ?
		ORDER BY assignee_id`
	rows, err := r.conn.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing capacity records: %w", err)
	}
	defer rows.Close()

	var recs []domain.CapacityRecord
	for rows.Next() {
		var rec domain.CapacityRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.ProjectID, &rec.AssigneeID,
			&rec.AllocatedHours, &rec.TotalCapacityHours, &rec.BurnoutRiskScore, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning capacity record: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
