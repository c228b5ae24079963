package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorsten/foresight/internal/importer"
	"github.com/mkorsten/foresight/internal/repository"
	"github.com/mkorsten/foresight/internal/testutil"
)

func importSchemaFixture() *importer.ImportSchema {
	parent := "design"
	return &importer.ImportSchema{
		Project: importer.ProjectImport{Name: "checkout"},
		WorkItems: []importer.WorkItemImport{
			{Ref: "design", Title: "Design checkout", EstimatedEffortHours: 16},
			{Ref: "build", ParentRef: &parent, Title: "Build checkout", EstimatedEffortHours: 48},
		},
		VelocityHistory: []importer.VelocityImport{
			{PeriodStart: "2026-02-02", PeriodEnd: "2026-02-09", PointsCompleted: 20, TeamSize: 2},
		},
		Capacity: []importer.CapacityImport{
			{Assignee: "alice", AllocatedHours: 30, TotalCapacityHours: 40, BurnoutRiskScore: 10},
		},
	}
}

func TestImportService_ImportFromSchema(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	svc := NewImportService(testutil.NewTestUoW(database))

	result, err := svc.ImportProjectFromSchema(ctx, importSchemaFixture())
	require.NoError(t, err)
	assert.Equal(t, 2, result.WorkItemCount)
	assert.Equal(t, 1, result.VelocityCount)
	assert.Equal(t, 1, result.CapacityCount)

	items, err := repository.NewSQLiteWorkItemRepo(database).ListByProject(ctx, result.Project.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	history, err := repository.NewSQLiteVelocityRepo(database).ListRecent(ctx, result.Project.ID, 6)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestImportService_ImportFromFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	path := filepath.Join(t.TempDir(), "import.json")
	content := `{
		"project": {"name": "mobile app"},
		"work_items": [
			{"ref": "ui", "title": "Build UI", "estimated_effort_hours": 24}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := svc.ImportProject(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "mobile app", result.Project.Name)
	assert.Equal(t, 1, result.WorkItemCount)
}

func TestImportService_ValidationFailureListsAllErrors(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	schema := importSchemaFixture()
	schema.Project.Name = ""
	schema.WorkItems[0].Title = ""

	_, err := svc.ImportProjectFromSchema(context.Background(), schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project.name")
	assert.Contains(t, err.Error(), "title")
}

func TestImportService_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: injected}
	svc := NewImportService(uow)

	_, err := svc.ImportProjectFromSchema(ctx, importSchemaFixture())
	require.ErrorIs(t, err, injected)

	projects, err := repository.NewSQLiteProjectRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
