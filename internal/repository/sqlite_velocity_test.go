package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorsten/foresight/internal/testutil"
)

func TestSQLiteVelocityRepo_ListRecent_OldestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	projects := NewSQLiteProjectRepo(database)
	velocity := NewSQLiteVelocityRepo(database)

	p := testutil.NewTestProject("payments")
	require.NoError(t, projects.Create(ctx, p))

	// Insert out of chronological order on purpose.
	for _, weeksAgo := range []int{2, 5, 1, 4, 3} {
		rec := testutil.NewTestVelocityRecord(p.ID, weeksAgo, float64(10+weeksAgo))
		require.NoError(t, velocity.Create(ctx, rec))
	}

	got, err := velocity.ListRecent(ctx, p.ID, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Three most recent periods (3, 2, 1 weeks ago), oldest first.
	assert.InDelta(t, 13.0, got[0].PointsCompleted, 1e-9)
	assert.InDelta(t, 12.0, got[1].PointsCompleted, 1e-9)
	assert.InDelta(t, 11.0, got[2].PointsCompleted, 1e-9)
	assert.True(t, got[0].PeriodEnd.Before(got[1].PeriodEnd))
	assert.True(t, got[1].PeriodEnd.Before(got[2].PeriodEnd))
}

func TestSQLiteVelocityRepo_ListRecent_Empty(t *testing.T) {
	database := testutil.NewTestDB(t)
	velocity := NewSQLiteVelocityRepo(database)

	got, err := velocity.ListRecent(context.Background(), "missing", 6)
	require.NoError(t, err)
	assert.Empty(t, got)
}
