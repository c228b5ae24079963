package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorsten/foresight/internal/repository"
	"github.com/mkorsten/foresight/internal/service"
	"github.com/mkorsten/foresight/internal/testutil"
)

func newTestApp(database *sql.DB) *App {
	return &App{
		Projects:  service.NewProjectService(repository.NewSQLiteProjectRepo(database)),
		WorkItems: service.NewWorkItemService(repository.NewSQLiteWorkItemRepo(database)),
	}
}

func TestResolveProjectID(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	app := newTestApp(database)

	p := testutil.NewTestProject("payments")
	require.NoError(t, app.Projects.Create(ctx, p))
	other := testutil.NewTestProject("platform")
	require.NoError(t, app.Projects.Create(ctx, other))

	t.Run("exact UUID", func(t *testing.T) {
		got, err := resolveProjectID(ctx, app, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got)
	})

	t.Run("name case-insensitive", func(t *testing.T) {
		got, err := resolveProjectID(ctx, app, "PAYMENTS")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got)
	})

	t.Run("UUID prefix", func(t *testing.T) {
		got, err := resolveProjectID(ctx, app, p.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, p.ID, got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := resolveProjectID(ctx, app, "nope")
		assert.ErrorContains(t, err, "project not found")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := resolveProjectID(ctx, app, "")
		assert.Error(t, err)
	})
}

func TestResolveWorkItemID(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	app := newTestApp(database)

	p := testutil.NewTestProject("payments")
	require.NoError(t, app.Projects.Create(ctx, p))
	w := testutil.NewTestWorkItem(p.ID, "Design API")
	require.NoError(t, app.WorkItems.Create(ctx, w))

	t.Run("exact UUID", func(t *testing.T) {
		got, err := resolveWorkItemID(ctx, app, p.ID, w.ID)
		require.NoError(t, err)
		assert.Equal(t, w.ID, got)
	})

	t.Run("title", func(t *testing.T) {
		got, err := resolveWorkItemID(ctx, app, p.ID, "design api")
		require.NoError(t, err)
		assert.Equal(t, w.ID, got)
	})

	t.Run("prefix", func(t *testing.T) {
		got, err := resolveWorkItemID(ctx, app, p.ID, w.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, w.ID, got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := resolveWorkItemID(ctx, app, p.ID, "ghost")
		assert.ErrorContains(t, err, "work item not found")
	})
}
