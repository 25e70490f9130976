package workout

import (
	"github.com/Janjiran/workoutkit/internal/domain"
)

// PaceTarget resolves a pace value (minutes per one unit of distance) to
// its canonical distance/duration pair: one unit of distance in meters,
// covered in value minutes.
func PaceTarget(minutes float64, unit domain.DistanceUnit) domain.PacerTarget {
	return domain.PacerTarget{
		DistanceMeters:  unit.Meters(),
		DurationSeconds: minutes * domain.SecondsPerMinute,
	}
}

// PaceRangeToSpeedRange inverts a pace range (minutes per distance unit)
// into a speed range in meters per second. Pace and speed are inversely
// related, so the bounds swap: the slowest pace (maxPace) yields the speed
// lower bound and the fastest pace (minPace) the upper bound.
func PaceRangeToSpeedRange(minPace, maxPace float64, unit domain.DistanceUnit) (low, high float64) {
	d := unit.Meters()
	low = d / (maxPace * domain.SecondsPerMinute)
	high = d / (minPace * domain.SecondsPerMinute)
	return low, high
}

// SpeedTarget resolves a speed value to its canonical distance/duration
// pair: the unit-preferred reference distance (one mile for mph, one
// kilometer otherwise), covered at the given speed.
func SpeedTarget(value float64, unit domain.SpeedUnit) (domain.PacerTarget, error) {
	if value <= 0 {
		return domain.PacerTarget{}, invalidTarget("target.value", "speed must be > 0")
	}
	ref := unit.ReferenceDistanceMeters()
	return domain.PacerTarget{
		DistanceMeters:  ref,
		DurationSeconds: ref / unit.MetersPerSecond(value),
	}, nil
}
