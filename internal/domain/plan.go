package domain

import "time"

// Definition is the normalized result of parsing a workout configuration.
// Exactly one of the workout fields is set, matching Kind.
type Definition struct {
	Kind       PlanKind           `json:"kind"`
	Custom     *CustomWorkout     `json:"custom,omitempty"`
	SingleGoal *SingleGoalWorkout `json:"singleGoal,omitempty"`
	Pacer      *PacerWorkout      `json:"pacer,omitempty"`
	Multisport *MultisportWorkout `json:"multisport,omitempty"`
}

// DisplayName returns the display name of whichever workout the
// definition carries.
func (d Definition) DisplayName() string {
	switch d.Kind {
	case PlanCustom:
		return d.Custom.DisplayName
	case PlanSingleGoal:
		return d.SingleGoal.DisplayName
	case PlanPacer:
		return d.Pacer.DisplayName
	case PlanMultisport:
		return d.Multisport.DisplayName
	}
	return ""
}

// Activity returns the definition's activity type, or empty for
// multisport plans, which have one per leg.
func (d Definition) Activity() ActivityType {
	switch d.Kind {
	case PlanCustom:
		return d.Custom.Activity
	case PlanSingleGoal:
		return d.SingleGoal.Activity
	case PlanPacer:
		return d.Pacer.Activity
	}
	return ""
}

// DateComponents is a calendar point for scheduling a plan. It is passed
// through to the scheduler as-is; unset components are zero.
type DateComponents struct {
	Year   int `json:"year,omitempty"`
	Month  int `json:"month,omitempty"`
	Day    int `json:"day,omitempty"`
	Hour   int `json:"hour,omitempty"`
	Minute int `json:"minute,omitempty"`
}

// Plan is a parsed, validated workout definition wrapped with identity and
// scheduling state.
type Plan struct {
	ID          string          `json:"id"`
	Definition  Definition      `json:"definition"`
	ScheduledAt *DateComponents `json:"scheduledAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
