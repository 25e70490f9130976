package workout

import (
	"testing"

	"github.com/Janjiran/workoutkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapActivityType_CanonicalAndAliases(t *testing.T) {
	tests := []struct {
		input string
		want  domain.ActivityType
	}{
		{"running", domain.ActivityRunning},
		{"Running", domain.ActivityRunning},
		{"RUNNING", domain.ActivityRunning},
		{"hiit", domain.ActivityHighIntensityIntervalTraining},
		{"highIntensityIntervalTraining", domain.ActivityHighIntensityIntervalTraining},
		{"strength", domain.ActivityFunctionalStrengthTraining},
		{"core", domain.ActivityCoreTraining},
		{"stairs", domain.ActivityStairClimbing},
		{"stairClimbing", domain.ActivityStairClimbing},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := mapActivityType("activityType", tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMapActivityType_Unrecognized(t *testing.T) {
	_, err := mapActivityType("activityType", "underwaterBasketWeaving")
	require.Error(t, err)
	assert.Equal(t, ErrUnrecognizedValue, KindOf(err))
}

func TestMapActivityType_Missing(t *testing.T) {
	_, err := mapActivityType("activityType", "")
	require.Error(t, err)
	assert.Equal(t, ErrMissingField, KindOf(err))
}

func TestMapLocationType(t *testing.T) {
	assert.Equal(t, domain.LocationIndoor, mapLocationType("indoor", domain.LocationOutdoor))
	assert.Equal(t, domain.LocationIndoor, mapLocationType("Indoor", domain.LocationOutdoor))
	assert.Equal(t, domain.LocationOutdoor, mapLocationType("outdoor", domain.LocationIndoor))

	// Absent takes the caller's default.
	assert.Equal(t, domain.LocationOutdoor, mapLocationType("", domain.LocationOutdoor))
	assert.Equal(t, domain.LocationIndoor, mapLocationType("", domain.LocationIndoor))

	// Anything else is unknown, not a failure.
	assert.Equal(t, domain.LocationUnknown, mapLocationType("garage", domain.LocationOutdoor))
}

func TestUnitMappers_Aliases(t *testing.T) {
	for _, alias := range []string{"m", "meter", "meters", "M", "Meters"} {
		assert.Equal(t, domain.UnitMeters, mapDistanceUnit(alias), alias)
	}
	for _, alias := range []string{"km", "kilometer", "kilometers"} {
		assert.Equal(t, domain.UnitKilometers, mapDistanceUnit(alias), alias)
	}
	for _, alias := range []string{"mi", "mile", "miles"} {
		assert.Equal(t, domain.UnitMiles, mapDistanceUnit(alias), alias)
	}
	for _, alias := range []string{"s", "sec", "second", "seconds"} {
		assert.Equal(t, domain.UnitSeconds, mapTimeUnit(alias), alias)
	}
	for _, alias := range []string{"min", "minute", "minutes"} {
		assert.Equal(t, domain.UnitMinutes, mapTimeUnit(alias), alias)
	}
	for _, alias := range []string{"kcal", "kilocalorie", "kilocalories"} {
		assert.Equal(t, domain.UnitKilocalories, mapEnergyUnit(alias), alias)
	}
	for _, alias := range []string{"m/s", "mps", "metersPerSecond"} {
		assert.Equal(t, domain.UnitMetersPerSecond, mapSpeedUnit(alias), alias)
	}
	for _, alias := range []string{"km/h", "kph", "kilometersPerHour"} {
		assert.Equal(t, domain.UnitKilometersPerHour, mapSpeedUnit(alias), alias)
	}
	for _, alias := range []string{"mph", "milesPerHour"} {
		assert.Equal(t, domain.UnitMilesPerHour, mapSpeedUnit(alias), alias)
	}
}

func TestUnitMappers_FallbackNotFailure(t *testing.T) {
	// Unrecognized unit strings fall back to the base unit instead of
	// failing the parse.
	assert.Equal(t, domain.UnitMeters, mapDistanceUnit("furlongs"))
	assert.Equal(t, domain.UnitSeconds, mapTimeUnit("fortnights"))
	assert.Equal(t, domain.UnitKilocalories, mapEnergyUnit("watts"))
	assert.Equal(t, domain.UnitMetersPerSecond, mapSpeedUnit("knots"))
	assert.Equal(t, domain.UnitMeters, mapDistanceUnit(""))
}
