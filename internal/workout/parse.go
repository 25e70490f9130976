// Package workout turns declarative workout configurations into
// normalized, validated plan definitions. Parsing is pure and fail-fast:
// the first problem found aborts the call with a ParseError, and a
// successful parse never holds partially-built state. Capability checks
// run only after structural parsing succeeds, mirroring the platform's own
// ordering.
package workout

import (
	"fmt"
	"strings"

	"github.com/Janjiran/workoutkit/internal/capability"
	"github.com/Janjiran/workoutkit/internal/domain"
)

// Parser parses workout configurations against an injected set of
// platform capabilities. Parsers are stateless and safe for concurrent
// use.
type Parser struct {
	caps capability.Capabilities
}

// NewParser returns a Parser validating against caps.
func NewParser(caps capability.Capabilities) *Parser {
	return &Parser{caps: caps}
}

// Parse dispatches on cfg.Kind and returns the normalized definition.
func (p *Parser) Parse(cfg *Config) (domain.Definition, error) {
	if err := p.checkAvailable(); err != nil {
		return domain.Definition{}, err
	}
	if cfg.Kind == "" {
		return domain.Definition{}, missingField("kind")
	}

	switch strings.ToLower(cfg.Kind) {
	case "custom":
		if cfg.Custom == nil {
			return domain.Definition{}, missingField("custom")
		}
		w, err := p.ParseCustom(cfg.Custom)
		if err != nil {
			return domain.Definition{}, err
		}
		return domain.Definition{Kind: domain.PlanCustom, Custom: w}, nil
	case "singlegoal":
		if cfg.SingleGoal == nil {
			return domain.Definition{}, missingField("singleGoal")
		}
		w, err := p.ParseSingleGoal(cfg.SingleGoal)
		if err != nil {
			return domain.Definition{}, err
		}
		return domain.Definition{Kind: domain.PlanSingleGoal, SingleGoal: w}, nil
	case "pacer":
		if cfg.Pacer == nil {
			return domain.Definition{}, missingField("pacer")
		}
		w, err := p.ParsePacer(cfg.Pacer)
		if err != nil {
			return domain.Definition{}, err
		}
		return domain.Definition{Kind: domain.PlanPacer, Pacer: w}, nil
	case "multisport":
		if cfg.Multisport == nil {
			return domain.Definition{}, missingField("multisport")
		}
		w, err := p.ParseMultisport(cfg.Multisport)
		if err != nil {
			return domain.Definition{}, err
		}
		return domain.Definition{Kind: domain.PlanMultisport, Multisport: w}, nil
	default:
		return domain.Definition{}, unrecognizedValue("kind", cfg.Kind)
	}
}

// ParseCustom parses and capability-validates a custom interval workout.
func (p *Parser) ParseCustom(cfg *CustomConfig) (*domain.CustomWorkout, error) {
	activity, err := mapActivityType("activityType", cfg.ActivityType)
	if err != nil {
		return nil, err
	}
	location := mapLocationType(cfg.LocationType, domain.LocationOutdoor)

	w := &domain.CustomWorkout{
		Activity:    activity,
		Location:    location,
		DisplayName: cfg.DisplayName,
	}

	if w.Warmup, err = p.parseStep("warmup", cfg.Warmup); err != nil {
		return nil, err
	}
	for i, b := range cfg.Blocks {
		block, err := p.parseBlock(fmt.Sprintf("blocks[%d]", i), b)
		if err != nil {
			return nil, err
		}
		w.Blocks = append(w.Blocks, block)
	}
	if w.Cooldown, err = p.parseStep("cooldown", cfg.Cooldown); err != nil {
		return nil, err
	}

	if err := p.validateCustom(w); err != nil {
		return nil, err
	}
	return w, nil
}

// ParseSingleGoal parses and capability-validates a single-goal workout.
func (p *Parser) ParseSingleGoal(cfg *SingleGoalConfig) (*domain.SingleGoalWorkout, error) {
	activity, err := mapActivityType("activityType", cfg.ActivityType)
	if err != nil {
		return nil, err
	}
	if cfg.Goal == nil {
		return nil, missingField("goal")
	}
	goal, err := parseGoal("goal", cfg.Goal)
	if err != nil {
		return nil, err
	}

	location := mapLocationType(cfg.LocationType, domain.LocationOutdoor)
	if !p.caps.SupportsGoal(goal, activity, location) {
		return nil, validationError(fmt.Sprintf("goal %s is not supported for %s", goal.Kind, activity))
	}

	return &domain.SingleGoalWorkout{
		Activity:    activity,
		Location:    location,
		DisplayName: cfg.DisplayName,
		Goal:        goal,
	}, nil
}

// ParsePacer parses a pacer workout, resolving the pace or speed target
// to its canonical distance/duration pair.
func (p *Parser) ParsePacer(cfg *PacerConfig) (*domain.PacerWorkout, error) {
	activity, err := mapActivityType("activityType", cfg.ActivityType)
	if err != nil {
		return nil, err
	}
	target, err := parseTarget(cfg.Target)
	if err != nil {
		return nil, err
	}

	return &domain.PacerWorkout{
		Activity:    activity,
		Location:    mapLocationType(cfg.LocationType, domain.LocationOutdoor),
		DisplayName: cfg.DisplayName,
		Target:      target,
	}, nil
}

// ParseMultisport parses a multisport workout and validates the activity
// ordering against the platform predicate.
func (p *Parser) ParseMultisport(cfg *MultisportConfig) (*domain.MultisportWorkout, error) {
	w := &domain.MultisportWorkout{DisplayName: cfg.DisplayName}

	for i, a := range cfg.Activities {
		leg, err := parseMultisportActivity(fmt.Sprintf("activities[%d]", i), a)
		if err != nil {
			return nil, err
		}
		w.Activities = append(w.Activities, leg)
	}

	if !p.caps.SupportsActivityOrdering(w.Activities) {
		return nil, validationError("activity ordering is not supported")
	}
	return w, nil
}

func parseMultisportActivity(field string, cfg MultisportActivityConfig) (domain.MultisportActivity, error) {
	if cfg.Type == "" {
		return domain.MultisportActivity{}, missingField(field + ".type")
	}

	switch strings.ToLower(cfg.Type) {
	case "running":
		return domain.MultisportActivity{
			Activity: domain.ActivityRunning,
			Location: mapLocationType(cfg.LocationType, domain.LocationOutdoor),
		}, nil
	case "cycling":
		return domain.MultisportActivity{
			Activity: domain.ActivityCycling,
			Location: mapLocationType(cfg.LocationType, domain.LocationOutdoor),
		}, nil
	case "swimming":
		// Swimming legs default to a pool swim, not outdoor.
		swim := domain.SwimPool
		if strings.EqualFold(cfg.LocationType, string(domain.SwimOpenWater)) {
			swim = domain.SwimOpenWater
		}
		return domain.MultisportActivity{
			Activity: domain.ActivitySwimming,
			Location: swim.Location(),
			Swimming: swim,
		}, nil
	default:
		return domain.MultisportActivity{}, unrecognizedValue(field+".type", cfg.Type)
	}
}

func parseTarget(cfg *TargetConfig) (domain.PacerTarget, error) {
	if cfg == nil {
		return domain.PacerTarget{}, missingField("target")
	}
	if cfg.Type == "" {
		return domain.PacerTarget{}, missingField("target.type")
	}
	if cfg.Value == nil {
		return domain.PacerTarget{}, missingField("target.value")
	}

	switch strings.ToLower(cfg.Type) {
	case "pace":
		if *cfg.Value <= 0 {
			return domain.PacerTarget{}, invalidTarget("target.value", "pace must be > 0")
		}
		return PaceTarget(*cfg.Value, mapDistanceUnit(cfg.Unit)), nil
	case "speed":
		return SpeedTarget(*cfg.Value, mapSpeedUnit(cfg.Unit))
	default:
		return domain.PacerTarget{}, unrecognizedValue("target.type", cfg.Type)
	}
}

func (p *Parser) parseStep(field string, cfg *StepConfig) (*domain.WorkoutStep, error) {
	if cfg == nil {
		return nil, nil
	}
	goal, err := parseGoal(field+".goal", cfg.Goal)
	if err != nil {
		return nil, err
	}
	alert, err := p.parseAlert(field+".alert", cfg.Alert)
	if err != nil {
		return nil, err
	}
	return &domain.WorkoutStep{Goal: goal, Alert: alert}, nil
}

func (p *Parser) parseBlock(field string, cfg BlockConfig) (domain.IntervalBlock, error) {
	// A block without iterations runs once.
	block := domain.IntervalBlock{
		Iterations: domain.IntFromPtrWithDefault(1, cfg.Iterations),
	}

	for i, s := range cfg.Steps {
		stepField := fmt.Sprintf("%s.steps[%d]", field, i)
		goal, err := parseGoal(stepField+".goal", s.Goal)
		if err != nil {
			return domain.IntervalBlock{}, err
		}
		alert, err := p.parseAlert(stepField+".alert", s.Alert)
		if err != nil {
			return domain.IntervalBlock{}, err
		}

		purpose := domain.PurposeWork
		if strings.EqualFold(s.Purpose, string(domain.PurposeRecovery)) {
			purpose = domain.PurposeRecovery
		}
		block.Steps = append(block.Steps, domain.IntervalStep{
			Purpose: purpose,
			Step:    domain.WorkoutStep{Goal: goal, Alert: alert},
		})
	}

	return block, nil
}

// validateCustom runs the capability predicates over every step of a
// structurally valid custom workout. Any unsupported goal or alert
// rejects the whole workout; there is no step-level recovery.
func (p *Parser) validateCustom(w *domain.CustomWorkout) error {
	check := func(name string, step domain.WorkoutStep) error {
		if !p.caps.SupportsGoal(step.Goal, w.Activity, w.Location) {
			return validationError(fmt.Sprintf("%s: goal %s is not supported for %s", name, step.Goal.Kind, w.Activity))
		}
		if step.Alert != nil && !p.caps.SupportsAlert(*step.Alert, w.Activity, w.Location) {
			return validationError(fmt.Sprintf("%s: alert %s is not supported for %s", name, step.Alert.Kind, w.Activity))
		}
		return nil
	}

	if w.Warmup != nil {
		if err := check("warmup", *w.Warmup); err != nil {
			return err
		}
	}
	for i, b := range w.Blocks {
		for j, s := range b.Steps {
			if err := check(fmt.Sprintf("blocks[%d].steps[%d]", i, j), s.Step); err != nil {
				return err
			}
		}
	}
	if w.Cooldown != nil {
		if err := check("cooldown", *w.Cooldown); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) checkAvailable() error {
	if p.caps.Version() < capability.BaselineVersion {
		return unavailable(fmt.Sprintf("structured workouts require platform version %d, have %d",
			capability.BaselineVersion, p.caps.Version()))
	}
	return nil
}
