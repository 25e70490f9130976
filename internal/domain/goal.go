package domain

// GoalKind identifies the shape of a workout goal.
type GoalKind string

const (
	GoalOpen     GoalKind = "open"
	GoalDistance GoalKind = "distance"
	GoalTime     GoalKind = "time"
	GoalEnergy   GoalKind = "energy"
)

// Goal is a workout goal. It is a tagged union over Kind: exactly one of
// the unit fields is meaningful for the non-open kinds, and Value is unset
// for open goals. Goals are plain values and compare with ==.
type Goal struct {
	Kind         GoalKind     `json:"kind"`
	Value        float64      `json:"value,omitempty"`
	DistanceUnit DistanceUnit `json:"distanceUnit,omitempty"`
	TimeUnit     TimeUnit     `json:"timeUnit,omitempty"`
	EnergyUnit   EnergyUnit   `json:"energyUnit,omitempty"`
}

// OpenGoal returns the open (untargeted) goal.
func OpenGoal() Goal {
	return Goal{Kind: GoalOpen}
}

// DistanceGoal returns a distance goal in the given unit.
func DistanceGoal(value float64, unit DistanceUnit) Goal {
	return Goal{Kind: GoalDistance, Value: value, DistanceUnit: unit}
}

// TimeGoal returns a duration goal in the given unit.
func TimeGoal(value float64, unit TimeUnit) Goal {
	return Goal{Kind: GoalTime, Value: value, TimeUnit: unit}
}

// EnergyGoal returns an energy-burn goal in the given unit.
func EnergyGoal(value float64, unit EnergyUnit) Goal {
	return Goal{Kind: GoalEnergy, Value: value, EnergyUnit: unit}
}
