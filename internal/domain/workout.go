package domain

// WorkoutStep is a single step of a workout: a goal (open when the input
// omitted one) and an optional alert.
type WorkoutStep struct {
	Goal  Goal   `json:"goal"`
	Alert *Alert `json:"alert,omitempty"`
}

// IntervalStep is a workout step tagged with its purpose within a block.
type IntervalStep struct {
	Purpose StepPurpose `json:"purpose"`
	Step    WorkoutStep `json:"step"`
}

// IntervalBlock is an ordered sequence of interval steps repeated
// Iterations times. Iterations is at least 1; a block with Iterations 1 is
// a plain unrepeated sequence.
type IntervalBlock struct {
	Iterations int            `json:"iterations"`
	Steps      []IntervalStep `json:"steps"`
}

// CustomWorkout is a fully structured interval workout.
type CustomWorkout struct {
	Activity    ActivityType    `json:"activity"`
	Location    LocationType    `json:"location"`
	DisplayName string          `json:"displayName,omitempty"`
	Warmup      *WorkoutStep    `json:"warmup,omitempty"`
	Blocks      []IntervalBlock `json:"blocks"`
	Cooldown    *WorkoutStep    `json:"cooldown,omitempty"`
}

// SingleGoalWorkout is a workout with one overall goal and no structure.
type SingleGoalWorkout struct {
	Activity    ActivityType `json:"activity"`
	Location    LocationType `json:"location"`
	DisplayName string       `json:"displayName,omitempty"`
	Goal        Goal         `json:"goal"`
}

// PacerTarget is the canonical resolution of a pace or speed target:
// cover DistanceMeters in DurationSeconds.
type PacerTarget struct {
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// PacerWorkout is a workout paced against a distance/duration target.
type PacerWorkout struct {
	Activity    ActivityType `json:"activity"`
	Location    LocationType `json:"location"`
	DisplayName string       `json:"displayName,omitempty"`
	Target      PacerTarget  `json:"target"`
}

// MultisportActivity is one leg of a multisport workout. Swimming is the
// only field set exclusively for swimming legs; Location is always
// populated (for swims it is derived from the swimming location).
type MultisportActivity struct {
	Activity ActivityType     `json:"activity"`
	Location LocationType     `json:"location"`
	Swimming SwimmingLocation `json:"swimming,omitempty"`
}

// MultisportWorkout is an ordered sequence of activity legs scheduled as
// one unit.
type MultisportWorkout struct {
	DisplayName string               `json:"displayName,omitempty"`
	Activities  []MultisportActivity `json:"activities"`
}
