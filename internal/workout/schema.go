package workout

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the top-level JSON structure for a workout configuration.
// Kind selects which of the workout fields is read.
type Config struct {
	Kind       string            `json:"kind"`
	Custom     *CustomConfig     `json:"custom,omitempty"`
	SingleGoal *SingleGoalConfig `json:"singleGoal,omitempty"`
	Pacer      *PacerConfig      `json:"pacer,omitempty"`
	Multisport *MultisportConfig `json:"multisport,omitempty"`
}

// CustomConfig describes a custom interval workout.
type CustomConfig struct {
	ActivityType string        `json:"activityType"`
	LocationType string        `json:"locationType,omitempty"`
	DisplayName  string        `json:"displayName,omitempty"`
	Warmup       *StepConfig   `json:"warmup,omitempty"`
	Blocks       []BlockConfig `json:"blocks"`
	Cooldown     *StepConfig   `json:"cooldown,omitempty"`
}

// SingleGoalConfig describes a workout with one overall goal.
type SingleGoalConfig struct {
	ActivityType string      `json:"activityType"`
	LocationType string      `json:"locationType,omitempty"`
	DisplayName  string      `json:"displayName,omitempty"`
	Goal         *GoalConfig `json:"goal,omitempty"`
}

// PacerConfig describes a workout paced against a target.
type PacerConfig struct {
	ActivityType string        `json:"activityType"`
	LocationType string        `json:"locationType,omitempty"`
	DisplayName  string        `json:"displayName,omitempty"`
	Target       *TargetConfig `json:"target,omitempty"`
}

// MultisportConfig describes an ordered sequence of activity legs.
type MultisportConfig struct {
	DisplayName string                     `json:"displayName,omitempty"`
	Activities  []MultisportActivityConfig `json:"activities"`
}

// MultisportActivityConfig describes one multisport leg.
type MultisportActivityConfig struct {
	Type         string `json:"type"`
	LocationType string `json:"locationType,omitempty"`
}

// GoalConfig describes a workout goal in the input configuration.
type GoalConfig struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value,omitempty"`
	Unit  string   `json:"unit,omitempty"`
}

// TargetConfig describes a pacer target, expressed as either a pace
// (minutes per distance unit) or a speed.
type TargetConfig struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value,omitempty"`
	Unit  string   `json:"unit,omitempty"`
}

// AlertConfig describes a workout alert in the input configuration.
type AlertConfig struct {
	Type string   `json:"type"`
	Zone *int     `json:"zone,omitempty"`
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Unit string   `json:"unit,omitempty"`
}

// StepConfig describes a warmup or cooldown step.
type StepConfig struct {
	Goal  *GoalConfig  `json:"goal,omitempty"`
	Alert *AlertConfig `json:"alert,omitempty"`
}

// IntervalStepConfig describes one step inside an interval block.
type IntervalStepConfig struct {
	Purpose string       `json:"purpose,omitempty"`
	Goal    *GoalConfig  `json:"goal,omitempty"`
	Alert   *AlertConfig `json:"alert,omitempty"`
}

// BlockConfig describes an interval block.
type BlockConfig struct {
	Iterations *int                 `json:"iterations,omitempty"`
	Steps      []IntervalStepConfig `json:"steps"`
}

// LoadConfig reads and parses a workout configuration JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing workout config: %w", err)
	}
	return &cfg, nil
}
