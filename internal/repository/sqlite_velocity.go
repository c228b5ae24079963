package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mkorsten/foresight/internal/db"
	"github.com/mkorsten/foresight/internal/domain"
)

// SQLiteVelocityRepo implements VelocityRepo using a SQLite database.
type SQLiteVelocityRepo struct {
	conn db.DBTX
}

// NewSQLiteVelocityRepo creates a new SQLiteVelocityRepo.
func NewSQLiteVelocityRepo(conn db.DBTX) *SQLiteVelocityRepo {
	return &SQLiteVelocityRepo{conn: conn}
}

func (r *SQLiteVelocityRepo) Create(ctx context.Context, rec *domain.VelocityRecord) error {
	query := `INSERT INTO velocity_records
		(id, project_id, period_start, period_end, points_completed, team_size, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		rec.ID,
		rec.ProjectID,
		rec.PeriodStart.Format(dateLayout),
		rec.PeriodEnd.Format(dateLayout),
		rec.PointsCompleted,
		rec.TeamSize,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting velocity record: %w", err)
	}
	return nil
}

func (r *SQLiteVelocityRepo) ListRecent(ctx context.Context, projectID string, lookbackPeriods int) ([]domain.VelocityRecord, error) {
	// Newest N rows, then flipped so callers see chronological order.
	query := `SELECT id, project_id, period_start, period_end, points_completed, team_size, created_at
		FROM velocity_records
		WHERE project_id = ?
		ORDER BY period_end DESC
		LIMIT ?`
	rows, err := r.conn.QueryContext(ctx, query, projectID, lookbackPeriods)
	if err != nil {
		return nil, fmt.Errorf("listing velocity records: %w", err)
	}
	defer rows.Close()

	var recs []domain.VelocityRecord
	for rows.Next() {
		var rec domain.VelocityRecord
		var periodStart, periodEnd, createdAt string
		if err := rows.Scan(&rec.ID, &rec.ProjectID, &periodStart, &periodEnd,
			&rec.PointsCompleted, &rec.TeamSize, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning velocity record: %w", err)
		}
		rec.PeriodStart, _ = time.Parse(dateLayout, periodStart)
		rec.PeriodEnd, _ = time.Parse(dateLayout, periodEnd)
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}
	return recs, nil
}
