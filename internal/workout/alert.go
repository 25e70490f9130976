package workout

import (
	"strings"

	"github.com/Janjiran/workoutkit/internal/capability"
	"github.com/Janjiran/workoutkit/internal/domain"
)

// parseAlert parses an alert configuration. Alerts are optional, and the
// parser is lenient where the goal parser is not: a heart-rate alert with
// neither a zone nor a full range, an unknown alert type, and a power
// alert on a platform below the power-alert version all parse to "no
// alert" (nil) rather than failing the workout.
func (p *Parser) parseAlert(field string, cfg *AlertConfig) (*domain.Alert, error) {
	if cfg == nil {
		return nil, nil
	}

	switch strings.ToLower(cfg.Type) {
	case "heartrate":
		return parseHeartRateAlert(cfg), nil

	case "pace":
		min, max, err := alertRange(field, cfg)
		if err != nil {
			return nil, err
		}
		if min <= 0 || max <= 0 {
			return nil, invalidAlert(field, "pace bounds must be > 0")
		}
		low, high := PaceRangeToSpeedRange(min, max, mapDistanceUnit(cfg.Unit))
		a := domain.PaceRangeAlert(low, high)
		return &a, nil

	case "speed":
		min, max, err := alertRange(field, cfg)
		if err != nil {
			return nil, err
		}
		if min <= 0 || max <= 0 {
			return nil, invalidAlert(field, "speed bounds must be > 0")
		}
		unit := mapSpeedUnit(cfg.Unit)
		a := domain.SpeedRangeAlert(unit.MetersPerSecond(min), unit.MetersPerSecond(max))
		return &a, nil

	case "cadence":
		min, max, err := alertRange(field, cfg)
		if err != nil {
			return nil, err
		}
		a := domain.CadenceRangeAlert(min, max)
		return &a, nil

	case "power":
		if p.caps.Version() < capability.PowerAlertMinVersion {
			return nil, nil
		}
		min, max, err := alertRange(field, cfg)
		if err != nil {
			return nil, err
		}
		a := domain.PowerRangeAlert(min, max)
		return &a, nil

	default:
		return nil, nil
	}
}

// parseHeartRateAlert handles the overloaded heart-rate shape: a zone
// integer wins over a min/max range, and neither means no alert.
func parseHeartRateAlert(cfg *AlertConfig) *domain.Alert {
	if cfg.Zone != nil {
		a := domain.HeartRateZoneAlert(*cfg.Zone)
		return &a
	}
	if cfg.Min != nil && cfg.Max != nil {
		a := domain.HeartRateRangeAlert(*cfg.Min, *cfg.Max)
		return &a
	}
	return nil
}

func alertRange(field string, cfg *AlertConfig) (min, max float64, err error) {
	if cfg.Min == nil || cfg.Max == nil {
		return 0, 0, invalidAlert(field, "range alert requires both min and max")
	}
	return *cfg.Min, *cfg.Max, nil
}
