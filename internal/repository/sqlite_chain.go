package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mkorsten/foresight/internal/db"
	"github.com/mkorsten/foresight/internal/domain"
)

// SQLiteChainRepo implements ChainRepo using a SQLite database.
type SQLiteChainRepo struct {
	conn db.DBTX
}

// NewSQLiteChainRepo creates a new SQLiteChainRepo.
func NewSQLiteChainRepo(conn db.DBTX) *SQLiteChainRepo {
	return &SQLiteChainRepo{conn: conn}
}

func (r *SQLiteChainRepo) Save(ctx context.Context, c *domain.DependencyChain) error {
	criticalPath, err := marshalJSONColumn(c.CriticalPath)
	if err != nil {
		return err
	}
	affected, err := marshalJSONColumn(c.Affected)
	if err != nil {
		return err
	}
	recommendations, err := marshalJSONColumn(c.Recommendations)
	if err != nil {
		return err
	}

	query := `INSERT INTO dependency_chains
		(id, project_id, root_item_id, delay_days, total_delay_days, risk_score,
		 on_critical_path, critical_path, affected, recommendations, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.conn.ExecContext(ctx, query,
		c.ID,
		c.ProjectID,
		c.RootItemID,
		c.DelayDays,
		c.TotalDelayDays,
		c.RiskScore,
		boolToInt(c.OnCriticalPath),
		criticalPath,
		affected,
		recommendations,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting dependency chain: %w", err)
	}
	return nil
}

func (r *SQLiteChainRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.DependencyChain, error) {
	query := `SELECT id, project_id, root_item_id, delay_days, total_delay_days, risk_score,
		on_critical_path, critical_path, affected, recommendations, created_at
		FROM dependency_chains
		WHERE project_id = ?
		ORDER BY created_at DESC`
	rows, err := r.conn.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing dependency chains: %w", err)
	}
	defer rows.Close()

	var chains []*domain.DependencyChain
	for rows.Next() {
		var c domain.DependencyChain
		var onCriticalPath int
		var criticalPath, affected, recommendations, createdAt string
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.RootItemID,
			&c.DelayDays, &c.TotalDelayDays, &c.RiskScore,
			&onCriticalPath, &criticalPath, &affected, &recommendations, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning dependency chain: %w", err)
		}
		c.OnCriticalPath = intToBool(onCriticalPath)
		if err := unmarshalJSONColumn(criticalPath, &c.CriticalPath); err != nil {
			return nil, err
		}
		if err := unmarshalJSONColumn(affected, &c.Affected); err != nil {
			return nil, err
		}
		if err := unmarshalJSONColumn(recommendations, &c.Recommendations); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		chains = append(chains, &c)
	}
	return chains, rows.Err()
}
