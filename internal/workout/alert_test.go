package workout

import (
	"testing"

	"github.com/Janjiran/workoutkit/internal/capability"
	"github.com/Janjiran/workoutkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlert_HeartRateZoneWinsOverRange(t *testing.T) {
	cfg := &AlertConfig{Type: "heartRate", Zone: ptrInt(3), Min: ptrFloat(120), Max: ptrFloat(150)}
	a, err := newTestParser().parseAlert("alert", cfg)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, domain.HeartRateZoneAlert(3), *a)
}

func TestParseAlert_HeartRateRange(t *testing.T) {
	cfg := &AlertConfig{Type: "heartRate", Min: ptrFloat(120), Max: ptrFloat(150)}
	a, err := newTestParser().parseAlert("alert", cfg)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, domain.HeartRateRangeAlert(120, 150), *a)
}

func TestParseAlert_HeartRateEmptyMeansNoAlert(t *testing.T) {
	// Neither zone nor a full range: the alert is dropped, the workout
	// is not rejected.
	tests := []*AlertConfig{
		{Type: "heartRate"},
		{Type: "heartRate", Min: ptrFloat(120)},
		{Type: "heartRate", Max: ptrFloat(150)},
	}
	for _, cfg := range tests {
		a, err := newTestParser().parseAlert("alert", cfg)
		require.NoError(t, err)
		assert.Nil(t, a)
	}
}

func TestParseAlert_NilAndUnknownType(t *testing.T) {
	p := newTestParser()

	a, err := p.parseAlert("alert", nil)
	require.NoError(t, err)
	assert.Nil(t, a)

	// Unknown alert types are dropped rather than failing the workout.
	a, err = p.parseAlert("alert", &AlertConfig{Type: "hydration", Min: ptrFloat(1), Max: ptrFloat(2)})
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestParseAlert_PaceRangeInverts(t *testing.T) {
	cfg := &AlertConfig{Type: "pace", Min: ptrFloat(4), Max: ptrFloat(5), Unit: "km"}
	a, err := newTestParser().parseAlert("alert", cfg)
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.Equal(t, domain.AlertPaceRange, a.Kind)
	// min/max swap across the pace-to-speed inversion.
	assert.InDelta(t, 3.333, a.Min, 0.001)
	assert.InDelta(t, 4.167, a.Max, 0.001)
}

func TestParseAlert_PaceRequiresPositiveBounds(t *testing.T) {
	p := newTestParser()

	_, err := p.parseAlert("alert", &AlertConfig{Type: "pace", Min: ptrFloat(0), Max: ptrFloat(5), Unit: "km"})
	assert.Equal(t, ErrInvalidAlert, KindOf(err))

	_, err = p.parseAlert("alert", &AlertConfig{Type: "pace", Min: ptrFloat(4)})
	assert.Equal(t, ErrInvalidAlert, KindOf(err))
}

func TestParseAlert_SpeedRangeNormalizes(t *testing.T) {
	cfg := &AlertConfig{Type: "speed", Min: ptrFloat(18), Max: ptrFloat(36), Unit: "km/h"}
	a, err := newTestParser().parseAlert("alert", cfg)
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.Equal(t, domain.AlertSpeedRange, a.Kind)
	assert.InDelta(t, 5, a.Min, 1e-9)
	assert.InDelta(t, 10, a.Max, 1e-9)
}

func TestParseAlert_CadenceRange(t *testing.T) {
	cfg := &AlertConfig{Type: "cadence", Min: ptrFloat(80), Max: ptrFloat(95)}
	a, err := newTestParser().parseAlert("alert", cfg)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, domain.CadenceRangeAlert(80, 95), *a)
}

func TestParseAlert_PowerVersionGate(t *testing.T) {
	cfg := &AlertConfig{Type: "power", Min: ptrFloat(200), Max: ptrFloat(250)}

	a, err := newTestParser().parseAlert("alert", cfg)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, domain.PowerRangeAlert(200, 250), *a)

	// Below the power-alert platform version the alert silently
	// degrades to "no alert" instead of rejecting the workout.
	old := NewParser(&stubCaps{version: capability.PowerAlertMinVersion - 1})
	a, err = old.parseAlert("alert", cfg)
	require.NoError(t, err)
	assert.Nil(t, a)
}
