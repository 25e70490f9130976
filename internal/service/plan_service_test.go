package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/Janjiran/workoutkit/internal/capability"
	"github.com/Janjiran/workoutkit/internal/domain"
	"github.com/Janjiran/workoutkit/internal/repository"
	"github.com/Janjiran/workoutkit/internal/service"
	"github.com/Janjiran/workoutkit/internal/testutil"
	"github.com/Janjiran/workoutkit/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(f float64) *float64 { return &f }

func fiveKConfig() *workout.Config {
	return &workout.Config{
		Kind: "singleGoal",
		SingleGoal: &workout.SingleGoalConfig{
			ActivityType: "running",
			DisplayName:  "Morning 5k",
			Goal:         &workout.GoalConfig{Type: "distance", Value: ptrFloat(5), Unit: "km"},
		},
	}
}

func newTestService(t *testing.T, auth capability.Authorizer) service.PlanService {
	t.Helper()
	parser := workout.NewParser(capability.NewRuleset(capability.PowerAlertMinVersion))
	repo := repository.NewSQLitePlanRepo(testutil.NewTestDB(t))
	return service.NewPlanService(parser, repo, auth)
}

func TestPlanService_ValidateAndCreate(t *testing.T) {
	svc := newTestService(t, capability.NewStaticAuthorizer(capability.AuthAuthorized))
	ctx := context.Background()

	def, err := svc.Validate(ctx, fiveKConfig())
	require.NoError(t, err)
	assert.Equal(t, domain.PlanSingleGoal, def.Kind)

	plan, err := svc.Create(ctx, fiveKConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, def, plan.Definition)
	assert.Nil(t, plan.ScheduledAt)

	// Create does not persist.
	plans, err := svc.ListScheduled(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestPlanService_ScheduleRoundTrip(t *testing.T) {
	svc := newTestService(t, capability.NewStaticAuthorizer(capability.AuthAuthorized))
	ctx := context.Background()

	at := domain.DateComponents{Year: 2026, Month: 9, Day: 1, Hour: 7}
	plan, err := svc.Schedule(ctx, fiveKConfig(), at)
	require.NoError(t, err)
	require.NotNil(t, plan.ScheduledAt)
	assert.Equal(t, at, *plan.ScheduledAt)

	plans, err := svc.ListScheduled(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, plan.ID, plans[0].ID)
	assert.Equal(t, plan.Definition, plans[0].Definition)

	require.NoError(t, svc.Remove(ctx, plan.ID))
	plans, err = svc.ListScheduled(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestPlanService_ScheduleDenied(t *testing.T) {
	svc := newTestService(t, capability.NewStaticAuthorizer(capability.AuthDenied))

	_, err := svc.Schedule(context.Background(), fiveKConfig(), domain.DateComponents{Year: 2026, Month: 9, Day: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	// A denied schedule leaves nothing behind.
	plans, err := svc.ListScheduled(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestPlanService_ScheduleRequestsUndetermined(t *testing.T) {
	// The not-determined state triggers a request, which the static
	// authorizer grants.
	svc := newTestService(t, capability.NewStaticAuthorizer(capability.AuthNotDetermined))

	_, err := svc.Schedule(context.Background(), fiveKConfig(), domain.DateComponents{Year: 2026, Month: 9, Day: 1})
	require.NoError(t, err)
}

func TestPlanService_ScheduleInvalidConfigPersistsNothing(t *testing.T) {
	svc := newTestService(t, capability.NewStaticAuthorizer(capability.AuthAuthorized))
	ctx := context.Background()

	cfg := fiveKConfig()
	cfg.SingleGoal.Goal.Value = nil
	_, err := svc.Schedule(ctx, cfg, domain.DateComponents{Year: 2026, Month: 9, Day: 1})
	require.Error(t, err)
	assert.Equal(t, workout.ErrMissingField, workout.KindOf(err))

	plans, err := svc.ListScheduled(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestPlanService_RemoveAll(t *testing.T) {
	svc := newTestService(t, capability.NewStaticAuthorizer(capability.AuthAuthorized))
	ctx := context.Background()

	at := domain.DateComponents{Year: 2026, Month: 9, Day: 1}
	_, err := svc.Schedule(ctx, fiveKConfig(), at)
	require.NoError(t, err)
	_, err = svc.Schedule(ctx, fiveKConfig(), at)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveAll(ctx))
	plans, err := svc.ListScheduled(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestPlanService_Export(t *testing.T) {
	svc := newTestService(t, capability.NewStaticAuthorizer(capability.AuthAuthorized))

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), fiveKConfig(), &buf))

	var def domain.Definition
	require.NoError(t, json.Unmarshal(buf.Bytes(), &def))
	assert.Equal(t, domain.PlanSingleGoal, def.Kind)
	require.NotNil(t, def.SingleGoal)
	assert.Equal(t, domain.DistanceGoal(5, domain.UnitKilometers), def.SingleGoal.Goal)
}
