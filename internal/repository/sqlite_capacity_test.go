package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorsten/foresight/internal/domain"
	"github.com/mkorsten/foresight/internal/testutil"
)

func TestSQLiteCapacityRepo_Replace(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	projects := NewSQLiteProjectRepo(database)
	capacity := NewSQLiteCapacityRepo(database)

	p := testutil.NewTestProject("payments")
	require.NoError(t, projects.Create(ctx, p))

	require.NoError(t, capacity.Create(ctx, testutil.NewTestCapacityRecord(p.ID, "alice", 30, 40, 20)))
	require.NoError(t, capacity.Create(ctx, testutil.NewTestCapacityRecord(p.ID, "bob", 35, 40, 60)))

	fresh := []domain.CapacityRecord{
		*testutil.NewTestCapacityRecord(p.ID, "carol", 25, 40, 10),
	}
	require.NoError(t, capacity.Replace(ctx, p.ID, fresh))

	got, err := capacity.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "carol", got[0].AssigneeID)
	assert.InDelta(t, 25.0, got[0].AllocatedHours, 1e-9)
	assert.InDelta(t, 10.0, got[0].BurnoutRiskScore, 1e-9)
}

func TestSQLiteCapacityRepo_ListByProject_SortedByAssignee(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	projects := NewSQLiteProjectRepo(database)
	capacity := NewSQLiteCapacityRepo(database)

	p := testutil.NewTestProject("payments")
	require.NoError(t, projects.Create(ctx, p))

	require.NoError(t, capacity.Create(ctx, testutil.NewTestCapacityRecord(p.ID, "zoe", 10, 40, 0)))
	require.NoError(t, capacity.Create(ctx, testutil.NewTestCapacityRecord(p.ID, "amy", 20, 40, 0)))

	got, err := capacity.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "amy", got[0].AssigneeID)
	assert.Equal(t, "zoe", got[1].AssigneeID)
}
