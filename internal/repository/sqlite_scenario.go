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

// SQLiteScenarioRepo implements ScenarioRepo using a SQLite database.
type SQLiteScenarioRepo struct {
	conn db.DBTX
}

// NewSQLiteScenarioRepo creates a new SQLiteScenarioRepo.
func NewSQLiteScenarioRepo(conn db.DBTX) *SQLiteScenarioRepo {
	return &SQLiteScenarioRepo{conn: conn}
}

func (r *SQLiteScenarioRepo) Save(ctx context.Context, s *domain.ScenarioRecord) error {
	changes, err := marshalJSONColumn(s.Changes)
	if err != nil {
		return err
	}
	notes, err := marshalJSONColumn(s.FeasibilityNotes)
	if err != nil {
		return err
	}

	query := `INSERT INTO scenarios
		(id, project_id, name, changes, baseline_p70, scenario_p70, days_saved,
		 cost_impact, is_feasible, feasibility_notes, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.conn.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		s.Name,
		changes,
		s.BaselineP70.Format(dateLayout),
		s.ScenarioP70.Format(dateLayout),
		s.DaysSaved,
		s.CostImpact,
		boolToInt(s.IsFeasible),
		notes,
		boolToInt(s.IsActive),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting scenario: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) GetByID(ctx context.Context, id string) (*domain.ScenarioRecord, error) {
	query := scenarioSelect + ` WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)

	s, err := scanScenario(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("scenario: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning scenario: %w", err)
	}
	return s, nil
}

func (r *SQLiteScenarioRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.ScenarioRecord, error) {
	query := scenarioSelect + ` WHERE project_id = ? ORDER BY created_at DESC`
	rows, err := r.conn.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []*domain.ScenarioRecord
	for rows.Next() {
		s, err := scanScenario(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning scenario row: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}

// SetActive marks one scenario active and deactivates the rest of the
// project's scenarios. Run it inside a transaction when atomicity with other
// writes matters; on its own the two updates share the caller's DBTX.
func (r *SQLiteScenarioRepo) SetActive(ctx context.Context, projectID, scenarioID string) error {
	if _, err := r.conn.ExecContext(ctx,
		`UPDATE scenarios SET is_active = 0 WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("deactivating scenarios: %w", err)
	}
	res, err := r.conn.ExecContext(ctx,
		`UPDATE scenarios SET is_active = 1 WHERE id = ? AND project_id = ?`, scenarioID, projectID)
	if err != nil {
		return fmt.Errorf("activating scenario: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking activation result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("scenario: %w", ErrNotFound)
	}
	return nil
}

const scenarioSelect = `SELECT id, project_id, name, changes, baseline_p70, scenario_p70,
	days_saved, cost_impact, is_feasible, feasibility_notes, is_active, created_at
	FROM scenarios`

func scanScenario(scan func(...any) error) (*domain.ScenarioRecord, error) {
	var s domain.ScenarioRecord
	var changes, notes, baselineP70, scenarioP70, createdAt string
	var isFeasible, isActive int
	if err := scan(&s.ID, &s.ProjectID, &s.Name, &changes, &baselineP70, &scenarioP70,
		&s.DaysSaved, &s.CostImpact, &isFeasible, &notes, &isActive, &createdAt); err != nil {
		return nil, err
	}
	if err := unmarshalJSONColumn(changes, &s.Changes); err != nil {
		return nil, err
	}
	if err := unmarshalJSONColumn(notes, &s.FeasibilityNotes); err != nil {
		return nil, err
	}
	s.BaselineP70, _ = time.Parse(dateLayout, baselineP70)
	s.ScenarioP70, _ = time.Parse(dateLayout, scenarioP70)
	s.IsFeasible = intToBool(isFeasible)
	s.IsActive = intToBool(isActive)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &s, nil
}
