package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkorsten/foresight/internal/db"
	"github.com/mkorsten/foresight/internal/domain"
)

// SQLiteForecastRepo implements ForecastRepo using a SQLite database.
type SQLiteForecastRepo struct {
	conn db.DBTX
}

// NewSQLiteForecastRepo creates a new SQLiteForecastRepo.
func NewSQLiteForecastRepo(conn db.DBTX) *SQLiteForecastRepo {
	return &SQLiteForecastRepo{conn: conn}
}

func (r *SQLiteForecastRepo) Save(ctx context.Context, f *domain.Forecast) error {
	query := `INSERT INTO forecasts
		(id, target_id, target_type, best_case, p50, p70, p85, p90, worst_case, most_likely,
		 confidence, runs, velocity_mean, velocity_std_dev, hours_per_week, utilization_rate,
		 burnout_risk, team_size, used_fallback, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		f.ID,
		f.TargetID,
		string(f.TargetType),
		f.BestCase.Format(dateLayout),
		f.P50.Format(dateLayout),
		f.P70.Format(dateLayout),
		f.P85.Format(dateLayout),
		f.P90.Format(dateLayout),
		f.WorstCase.Format(dateLayout),
		f.MostLikely.Format(dateLayout),
		string(f.Confidence),
		f.Runs,
		f.VelocityMean,
		f.VelocityStdDev,
		f.HoursPerWeek,
		f.UtilizationRate,
		f.BurnoutRisk,
		f.TeamSize,
		boolToInt(f.UsedFallback),
		f.GeneratedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting forecast: %w", err)
	}
	return nil
}

func (r *SQLiteForecastRepo) FindCached(ctx context.Context, targetID string, targetType domain.TargetType) (*domain.Forecast, error) {
	query := `SELECT id, target_id, target_type, best_case, p50, p70, p85, p90, worst_case, most_likely,
		confidence, runs, velocity_mean, velocity_std_dev, hours_per_week, utilization_rate,
		burnout_risk, team_size, used_fallback, generated_at
		FROM forecasts
		WHERE target_id = ? AND target_type = ?
		ORDER BY generated_at DESC
		LIMIT 1`
	row := r.conn.QueryRowContext(ctx, query, targetID, string(targetType))

	var f domain.Forecast
	var targetTypeCol, confidence string
	var bestCase, p50, p70, p85, p90, worstCase, mostLikely, generatedAt string
	var usedFallback int
	err := row.Scan(&f.ID, &f.TargetID, &targetTypeCol,
		&bestCase, &p50, &p70, &p85, &p90, &worstCase, &mostLikely,
		&confidence, &f.Runs, &f.VelocityMean, &f.VelocityStdDev,
		&f.HoursPerWeek, &f.UtilizationRate, &f.BurnoutRisk, &f.TeamSize,
		&usedFallback, &generatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("forecast: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning forecast: %w", err)
	}
	f.TargetType = domain.TargetType(targetTypeCol)
	f.Confidence = domain.Confidence(confidence)
	f.BestCase, _ = time.Parse(dateLayout, bestCase)
	f.P50, _ = time.Parse(dateLayout, p50)
	f.P70, _ = time.Parse(dateLayout, p70)
	f.P85, _ = time.Parse(dateLayout, p85)
	f.P90, _ = time.Parse(dateLayout, p90)
	f.WorstCase, _ = time.Parse(dateLayout, worstCase)
	f.MostLikely, _ = time.Parse(dateLayout, mostLikely)
	f.UsedFallback = intToBool(usedFallback)
	f.GeneratedAt, _ = time.Parse(time.RFC3339, generatedAt)
	return &f, nil
}
