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

// SQLiteWorkItemRepo implements WorkItemRepo using a SQLite database.
type SQLiteWorkItemRepo struct {
	conn db.DBTX
}

// NewSQLiteWorkItemRepo creates a new SQLiteWorkItemRepo.
func NewSQLiteWorkItemRepo(conn db.DBTX) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{conn: conn}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items
		(id, project_id, parent_id, title, status, estimated_effort_hours, assignee_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		w.ID,
		w.ProjectID,
		nullableStringToValue(w.ParentID),
		w.Title,
		string(w.Status),
		w.EstimatedEffortHours,
		nullableStringToValue(w.AssigneeID),
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	query := `SELECT id, project_id, parent_id, title, status, estimated_effort_hours, assignee_id, created_at, updated_at
		FROM work_items WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)

	w, err := scanWorkItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("work item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work item: %w", err)
	}
	return w, nil
}

func (r *SQLiteWorkItemRepo) ListByProject(ctx context.Context, projectID string) ([]domain.WorkItem, error) {
	query := `SELECT id, project_id, parent_id, title, status, estimated_effort_hours, assignee_id, created_at, updated_at
		FROM work_items WHERE project_id = ? ORDER BY created_at, id`
	rows, err := r.conn.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing work items: %w", err)
	}
	defer rows.Close()

	var items []domain.WorkItem
	for rows.Next() {
		w, err := scanWorkItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning work item row: %w", err)
		}
		items = append(items, *w)
	}
	return items, rows.Err()
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items
		SET parent_id = ?, title = ?, status = ?, estimated_effort_hours = ?, assignee_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, query,
		nullableStringToValue(w.ParentID),
		w.Title,
		string(w.Status),
		w.EstimatedEffortHours,
		nullableStringToValue(w.AssigneeID),
		w.UpdatedAt.Format(time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("work item: %w", ErrNotFound)
	}
	return nil
}

func scanWorkItem(scan func(...any) error) (*domain.WorkItem, error) {
	var w domain.WorkItem
	var parentID, assigneeID sql.NullString
	var status, createdAt, updatedAt string
	if err := scan(&w.ID, &w.ProjectID, &parentID, &w.Title, &status,
		&w.EstimatedEffortHours, &assigneeID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	w.ParentID = nullableStringFromColumn(parentID)
	w.AssigneeID = nullableStringFromColumn(assigneeID)
	w.Status = domain.WorkItemStatus(status)
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	w.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &w, nil
}
