package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Janjiran/workoutkit/internal/domain"
	"github.com/Janjiran/workoutkit/internal/repository"
	"github.com/Janjiran/workoutkit/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() *domain.Plan {
	return &domain.Plan{
		ID: uuid.New().String(),
		Definition: domain.Definition{
			Kind: domain.PlanSingleGoal,
			SingleGoal: &domain.SingleGoalWorkout{
				Activity:    domain.ActivityRunning,
				Location:    domain.LocationOutdoor,
				DisplayName: "Morning 5k",
				Goal:        domain.DistanceGoal(5, domain.UnitKilometers),
			},
		},
		ScheduledAt: &domain.DateComponents{Year: 2026, Month: 9, Day: 1, Hour: 7, Minute: 30},
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestSQLitePlanRepo_CreateAndGet(t *testing.T) {
	repo := repository.NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testPlan()
	require.NoError(t, repo.Create(ctx, plan))

	got, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)
	assert.Equal(t, plan.Definition, got.Definition)
	assert.Equal(t, plan.ScheduledAt, got.ScheduledAt)
	assert.True(t, plan.CreatedAt.Equal(got.CreatedAt))
}

func TestSQLitePlanRepo_GetMissing(t *testing.T) {
	repo := repository.NewSQLitePlanRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLitePlanRepo_ListOrdersByCreation(t *testing.T) {
	repo := repository.NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testPlan()
	first.CreatedAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	second := testPlan()
	second.CreatedAt = time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, first.ID, plans[0].ID)
	assert.Equal(t, second.ID, plans[1].ID)
}

func TestSQLitePlanRepo_Delete(t *testing.T) {
	repo := repository.NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testPlan()
	require.NoError(t, repo.Create(ctx, plan))
	require.NoError(t, repo.Delete(ctx, plan.ID))

	_, err := repo.GetByID(ctx, plan.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting again reports not found.
	assert.ErrorIs(t, repo.Delete(ctx, plan.ID), repository.ErrNotFound)
}

func TestSQLitePlanRepo_DeleteAll(t *testing.T) {
	repo := repository.NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testPlan()))
	require.NoError(t, repo.Create(ctx, testPlan()))
	require.NoError(t, repo.DeleteAll(ctx))

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)

	// DeleteAll on an empty store is not an error.
	require.NoError(t, repo.DeleteAll(ctx))
}

func TestSQLitePlanRepo_UnscheduledPlan(t *testing.T) {
	repo := repository.NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testPlan()
	plan.ScheduledAt = nil
	require.NoError(t, repo.Create(ctx, plan))

	got, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ScheduledAt)
}
