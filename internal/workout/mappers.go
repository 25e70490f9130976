package workout

import (
	"strings"

	"github.com/Janjiran/workoutkit/internal/domain"
)

// activityTypes maps lowercased input strings, including shorthand
// aliases, to canonical activity types. Unrecognized strings are a parse
// failure: a misspelled sport must never silently become another one.
var activityTypes = map[string]domain.ActivityType{
	"running":                       domain.ActivityRunning,
	"walking":                       domain.ActivityWalking,
	"hiking":                        domain.ActivityHiking,
	"cycling":                       domain.ActivityCycling,
	"swimming":                      domain.ActivitySwimming,
	"rowing":                        domain.ActivityRowing,
	"elliptical":                    domain.ActivityElliptical,
	"stairclimbing":                 domain.ActivityStairClimbing,
	"stairs":                        domain.ActivityStairClimbing,
	"jumprope":                      domain.ActivityJumpRope,
	"highintensityintervaltraining": domain.ActivityHighIntensityIntervalTraining,
	"hiit":                          domain.ActivityHighIntensityIntervalTraining,
	"functionalstrengthtraining":    domain.ActivityFunctionalStrengthTraining,
	"strength":                      domain.ActivityFunctionalStrengthTraining,
	"traditionalstrengthtraining":   domain.ActivityTraditionalStrengthTraining,
	"coretraining":                  domain.ActivityCoreTraining,
	"core":                          domain.ActivityCoreTraining,
	"crosstraining":                 domain.ActivityCrossTraining,
	"flexibility":                   domain.ActivityFlexibility,
	"yoga":                          domain.ActivityYoga,
	"pilates":                       domain.ActivityPilates,
	"dance":                         domain.ActivityDance,
	"kickboxing":                    domain.ActivityKickboxing,
	"soccer":                        domain.ActivitySoccer,
	"basketball":                    domain.ActivityBasketball,
	"tennis":                        domain.ActivityTennis,
}

func mapActivityType(field, input string) (domain.ActivityType, error) {
	if input == "" {
		return "", missingField(field)
	}
	if a, ok := activityTypes[strings.ToLower(input)]; ok {
		return a, nil
	}
	return "", unrecognizedValue(field, input)
}

// mapLocationType is deliberately permissive: anything that is not indoor
// or outdoor maps to unknown, and an absent value takes the caller's
// default.
func mapLocationType(input string, fallback domain.LocationType) domain.LocationType {
	switch strings.ToLower(input) {
	case "":
		return fallback
	case "indoor":
		return domain.LocationIndoor
	case "outdoor":
		return domain.LocationOutdoor
	default:
		return domain.LocationUnknown
	}
}

// Unit alias tables. Unlike the enumeration mappers above, unit mappers
// fall back to a fixed base unit when the string is unrecognized rather
// than failing: a missing unit already defaulted upstream, and an odd
// spelling of one should not reject an otherwise valid plan.

var distanceUnits = map[string]domain.DistanceUnit{
	"m": domain.UnitMeters, "meter": domain.UnitMeters, "meters": domain.UnitMeters,
	"km": domain.UnitKilometers, "kilometer": domain.UnitKilometers, "kilometers": domain.UnitKilometers,
	"mi": domain.UnitMiles, "mile": domain.UnitMiles, "miles": domain.UnitMiles,
	"yd": domain.UnitYards, "yard": domain.UnitYards, "yards": domain.UnitYards,
	"ft": domain.UnitFeet, "foot": domain.UnitFeet, "feet": domain.UnitFeet,
}

var timeUnits = map[string]domain.TimeUnit{
	"s": domain.UnitSeconds, "sec": domain.UnitSeconds, "second": domain.UnitSeconds, "seconds": domain.UnitSeconds,
	"min": domain.UnitMinutes, "minute": domain.UnitMinutes, "minutes": domain.UnitMinutes,
	"h": domain.UnitHours, "hr": domain.UnitHours, "hour": domain.UnitHours, "hours": domain.UnitHours,
}

var energyUnits = map[string]domain.EnergyUnit{
	"kcal": domain.UnitKilocalories, "kilocalorie": domain.UnitKilocalories, "kilocalories": domain.UnitKilocalories,
	"cal": domain.UnitCalories, "calorie": domain.UnitCalories, "calories": domain.UnitCalories,
	"kj": domain.UnitKilojoules, "kilojoule": domain.UnitKilojoules, "kilojoules": domain.UnitKilojoules,
	"j": domain.UnitJoules, "joule": domain.UnitJoules, "joules": domain.UnitJoules,
}

var speedUnits = map[string]domain.SpeedUnit{
	"m/s": domain.UnitMetersPerSecond, "mps": domain.UnitMetersPerSecond, "meterspersecond": domain.UnitMetersPerSecond,
	"km/h": domain.UnitKilometersPerHour, "kph": domain.UnitKilometersPerHour, "kilometersperhour": domain.UnitKilometersPerHour,
	"mph": domain.UnitMilesPerHour, "milesperhour": domain.UnitMilesPerHour,
}

func mapDistanceUnit(input string) domain.DistanceUnit {
	if u, ok := distanceUnits[strings.ToLower(input)]; ok {
		return u
	}
	return domain.UnitMeters
}

func mapTimeUnit(input string) domain.TimeUnit {
	if u, ok := timeUnits[strings.ToLower(input)]; ok {
		return u
	}
	return domain.UnitSeconds
}

func mapEnergyUnit(input string) domain.EnergyUnit {
	if u, ok := energyUnits[strings.ToLower(input)]; ok {
		return u
	}
	return domain.UnitKilocalories
}

func mapSpeedUnit(input string) domain.SpeedUnit {
	if u, ok := speedUnits[strings.ToLower(input)]; ok {
		return u
	}
	return domain.UnitMetersPerSecond
}
