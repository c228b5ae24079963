package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS velocity_records (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		period_start     TEXT NOT NULL,
		period_end       TEXT NOT NULL,
		points_completed REAL NOT NULL,
		team_size        INTEGER NOT NULL DEFAULT 1,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_velocity_project_period
		ON velocity_records(project_id, period_end)`,

	`CREATE TABLE IF NOT EXISTS capacity_records (
		id                   TEXT PRIMARY KEY,
		project_id           TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		assignee_id          TEXT NOT NULL DEFAULT '',
		allocated_hours      REAL NOT NULL,
		total_capacity_hours REAL NOT NULL,
		burnout_risk_score   REAL NOT NULL DEFAULT 0
		                     CHECK(burnout_risk_score >= 0 AND burnout_risk_score <= 100),
		created_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_capacity_project ON capacity_records(project_id)`,

	`CREATE TABLE IF NOT EXISTS work_items (
		id                     TEXT PRIMARY KEY,
		project_id             TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		parent_id              TEXT REFERENCES work_items(id) ON DELETE SET NULL,
		title                  TEXT NOT NULL,
		status                 TEXT NOT NULL DEFAULT 'todo'
		                       CHECK(status IN ('todo','in_progress','blocked','done','cancelled')),
		estimated_effort_hours REAL NOT NULL DEFAULT 0,
		assignee_id            TEXT,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_items_project ON work_items(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_work_items_parent ON work_items(parent_id)`,

	`CREATE TABLE IF NOT EXISTS forecasts (
		id               TEXT PRIMARY KEY,
		target_id        TEXT NOT NULL,
		target_type      TEXT NOT NULL
		                 CHECK(target_type IN ('task','sprint','milestone','feature_group','project')),
		best_case        TEXT NOT NULL,
		p50              TEXT NOT NULL,
		p70              TEXT NOT NULL,
		p85              TEXT NOT NULL,
		p90              TEXT NOT NULL,
		worst_case       TEXT NOT NULL,
		most_likely      TEXT NOT NULL,
		confidence       TEXT NOT NULL,
		runs             INTEGER NOT NULL,
		velocity_mean    REAL NOT NULL,
		velocity_std_dev REAL NOT NULL,
		hours_per_week   REAL NOT NULL,
		utilization_rate REAL NOT NULL,
		burnout_risk     REAL NOT NULL,
		team_size        INTEGER NOT NULL,
		used_fallback    INTEGER NOT NULL DEFAULT 0,
		generated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_forecasts_target
		ON forecasts(target_id, target_type, generated_at)`,

	`CREATE TABLE IF NOT EXISTS dependency_chains (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		root_item_id     TEXT NOT NULL,
		delay_days       REAL NOT NULL,
		total_delay_days REAL NOT NULL,
		risk_score       INTEGER NOT NULL,
		on_critical_path INTEGER NOT NULL DEFAULT 0,
		critical_path    TEXT NOT NULL DEFAULT '[]',
		affected         TEXT NOT NULL DEFAULT '[]',
		recommendations  TEXT NOT NULL DEFAULT '[]',
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_chains_project ON dependency_chains(project_id)`,

	`CREATE TABLE IF NOT EXISTS scenarios (
		id                TEXT PRIMARY KEY,
		project_id        TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name              TEXT NOT NULL,
		changes           TEXT NOT NULL DEFAULT '[]',
		baseline_p70      TEXT NOT NULL,
		scenario_p70      TEXT NOT NULL,
		days_saved        REAL NOT NULL,
		cost_impact       REAL NOT NULL,
		is_feasible       INTEGER NOT NULL DEFAULT 1,
		feasibility_notes TEXT NOT NULL DEFAULT '[]',
		is_active         INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_scenarios_project ON scenarios(project_id)`,
}
