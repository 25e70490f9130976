package workout

import (
	"fmt"
	"math"
	"strings"

	"github.com/Janjiran/workoutkit/internal/domain"
)

// parseGoal parses a goal configuration. A nil config is an open goal;
// that default lets steps omit their goal entirely. Non-open kinds require
// a finite numeric value and default their unit per kind (meters, seconds,
// kilocalories).
func parseGoal(field string, cfg *GoalConfig) (domain.Goal, error) {
	if cfg == nil {
		return domain.OpenGoal(), nil
	}
	if cfg.Type == "" {
		return domain.Goal{}, missingField(field + ".type")
	}

	kind := strings.ToLower(cfg.Type)
	if kind == "open" {
		return domain.OpenGoal(), nil
	}

	value, err := goalValue(field, cfg.Value)
	if err != nil {
		return domain.Goal{}, err
	}

	switch kind {
	case "distance":
		return domain.DistanceGoal(value, mapDistanceUnit(cfg.Unit)), nil
	case "time":
		return domain.TimeGoal(value, mapTimeUnit(cfg.Unit)), nil
	case "energy":
		return domain.EnergyGoal(value, mapEnergyUnit(cfg.Unit)), nil
	default:
		return domain.Goal{}, unrecognizedValue(field+".type", cfg.Type)
	}
}

func goalValue(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, missingField(field + ".value")
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, invalidGoal(field+".value", fmt.Sprintf("value must be finite, got %v", *v))
	}
	return *v, nil
}
