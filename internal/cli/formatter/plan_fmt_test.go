package formatter

import (
	"strings"
	"testing"

	"github.com/Janjiran/workoutkit/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatGoal(t *testing.T) {
	assert.Equal(t, "open", FormatGoal(domain.OpenGoal()))
	assert.Equal(t, "5 kilometers", FormatGoal(domain.DistanceGoal(5, domain.UnitKilometers)))
	assert.Equal(t, "1.5 hours", FormatGoal(domain.TimeGoal(1.5, domain.UnitHours)))
	assert.Equal(t, "500 kilocalories", FormatGoal(domain.EnergyGoal(500, domain.UnitKilocalories)))
}

func TestFormatAlert(t *testing.T) {
	assert.Equal(t, "heart rate zone 3", FormatAlert(domain.HeartRateZoneAlert(3)))
	assert.Equal(t, "heart rate 120–150 bpm", FormatAlert(domain.HeartRateRangeAlert(120, 150)))
	assert.Equal(t, "cadence 80–95 rpm", FormatAlert(domain.CadenceRangeAlert(80, 95)))
	assert.Equal(t, "power 200–250 W", FormatAlert(domain.PowerRangeAlert(200, 250)))
	assert.Equal(t, "pace 3.33–4.17 m/s", FormatAlert(domain.PaceRangeAlert(3.333, 4.167)))
}

func TestFormatTarget(t *testing.T) {
	assert.Equal(t, "1000 m in 5:00", FormatTarget(domain.PacerTarget{DistanceMeters: 1000, DurationSeconds: 300}))
	assert.Equal(t, "1609.34 m in 6:00", FormatTarget(domain.PacerTarget{DistanceMeters: domain.MetersPerMile, DurationSeconds: 360}))
}

func TestFormatSchedule(t *testing.T) {
	assert.Equal(t, "-", FormatSchedule(nil))
	assert.Equal(t, "2026-09-01", FormatSchedule(&domain.DateComponents{Year: 2026, Month: 9, Day: 1}))
	assert.Equal(t, "2026-09-01 07:30", FormatSchedule(&domain.DateComponents{Year: 2026, Month: 9, Day: 1, Hour: 7, Minute: 30}))
}

func TestSummary(t *testing.T) {
	def := domain.Definition{
		Kind: domain.PlanSingleGoal,
		SingleGoal: &domain.SingleGoalWorkout{
			Activity: domain.ActivityRunning,
			Location: domain.LocationOutdoor,
			Goal:     domain.DistanceGoal(5, domain.UnitKilometers),
		},
	}
	assert.Equal(t, "running (outdoor), goal 5 kilometers", Summary(def))

	multi := domain.Definition{
		Kind: domain.PlanMultisport,
		Multisport: &domain.MultisportWorkout{
			Activities: []domain.MultisportActivity{
				{Activity: domain.ActivitySwimming},
				{Activity: domain.ActivityRunning},
			},
		},
	}
	assert.Equal(t, "multisport, 2 leg(s)", Summary(multi))
}

func TestFormatDefinition_Custom(t *testing.T) {
	def := domain.Definition{
		Kind: domain.PlanCustom,
		Custom: &domain.CustomWorkout{
			Activity:    domain.ActivityRunning,
			Location:    domain.LocationOutdoor,
			DisplayName: "Track Tuesday",
			Blocks: []domain.IntervalBlock{
				{
					Iterations: 4,
					Steps: []domain.IntervalStep{
						{Purpose: domain.PurposeWork, Step: domain.WorkoutStep{Goal: domain.DistanceGoal(400, domain.UnitMeters)}},
						{Purpose: domain.PurposeRecovery, Step: domain.WorkoutStep{Goal: domain.TimeGoal(90, domain.UnitSeconds)}},
					},
				},
			},
		},
	}

	out := FormatDefinition(def)
	assert.Contains(t, out, "TRACK TUESDAY")
	assert.Contains(t, out, "block 1 ×4")
	assert.Contains(t, out, "400 meters")
	assert.Contains(t, out, "recovery")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "KIND"},
		[][]string{{"abc12345", "custom"}, {"def67890", "pacer"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[2], "abc12345")
	assert.Contains(t, lines[3], "pacer")
}
