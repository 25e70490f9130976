package domain

// ActivityType identifies the sport or exercise kind of a workout.
type ActivityType string

const (
	ActivityRunning                       ActivityType = "running"
	ActivityWalking                       ActivityType = "walking"
	ActivityHiking                        ActivityType = "hiking"
	ActivityCycling                       ActivityType = "cycling"
	ActivitySwimming                      ActivityType = "swimming"
	ActivityRowing                        ActivityType = "rowing"
	ActivityElliptical                    ActivityType = "elliptical"
	ActivityStairClimbing                 ActivityType = "stairClimbing"
	ActivityJumpRope                      ActivityType = "jumpRope"
	ActivityHighIntensityIntervalTraining ActivityType = "highIntensityIntervalTraining"
	ActivityFunctionalStrengthTraining    ActivityType = "functionalStrengthTraining"
	ActivityTraditionalStrengthTraining   ActivityType = "traditionalStrengthTraining"
	ActivityCoreTraining                  ActivityType = "coreTraining"
	ActivityCrossTraining                 ActivityType = "crossTraining"
	ActivityFlexibility                   ActivityType = "flexibility"
	ActivityYoga                          ActivityType = "yoga"
	ActivityPilates                       ActivityType = "pilates"
	ActivityDance                         ActivityType = "dance"
	ActivityKickboxing                    ActivityType = "kickboxing"
	ActivitySoccer                        ActivityType = "soccer"
	ActivityBasketball                    ActivityType = "basketball"
	ActivityTennis                        ActivityType = "tennis"
)

// LocationType identifies where a workout takes place.
type LocationType string

const (
	LocationIndoor  LocationType = "indoor"
	LocationOutdoor LocationType = "outdoor"
	LocationUnknown LocationType = "unknown"
)

// SwimmingLocation identifies where a swimming leg takes place.
type SwimmingLocation string

const (
	SwimPool      SwimmingLocation = "pool"
	SwimOpenWater SwimmingLocation = "openWater"
)

// Location maps a swimming location onto the generic location enum:
// pool swims are indoor, open-water swims are outdoor.
func (s SwimmingLocation) Location() LocationType {
	if s == SwimOpenWater {
		return LocationOutdoor
	}
	return LocationIndoor
}

// StepPurpose distinguishes work intervals from recovery intervals.
type StepPurpose string

const (
	PurposeWork     StepPurpose = "work"
	PurposeRecovery StepPurpose = "recovery"
)

// PlanKind identifies which workout shape a plan definition carries.
type PlanKind string

const (
	PlanCustom     PlanKind = "custom"
	PlanSingleGoal PlanKind = "singleGoal"
	PlanPacer      PlanKind = "pacer"
	PlanMultisport PlanKind = "multisport"
)
