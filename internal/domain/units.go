package domain

// Conversion constants. All internal computation is done in meters,
// seconds, and kilocalories.
const (
	MetersPerKilometer = 1000.0
	MetersPerMile      = 1609.344
	MetersPerYard      = 0.9144
	MetersPerFoot      = 0.3048

	SecondsPerMinute = 60.0
	SecondsPerHour   = 3600.0

	KilocaloriesPerKilojoule = 0.239005736
)

// DistanceUnit is a canonical distance unit.
type DistanceUnit string

const (
	UnitMeters     DistanceUnit = "meters"
	UnitKilometers DistanceUnit = "kilometers"
	UnitMiles      DistanceUnit = "miles"
	UnitYards      DistanceUnit = "yards"
	UnitFeet       DistanceUnit = "feet"
)

// Meters returns the meter equivalent of one unit of distance.
func (u DistanceUnit) Meters() float64 {
	switch u {
	case UnitKilometers:
		return MetersPerKilometer
	case UnitMiles:
		return MetersPerMile
	case UnitYards:
		return MetersPerYard
	case UnitFeet:
		return MetersPerFoot
	default:
		return 1
	}
}

// TimeUnit is a canonical duration unit.
type TimeUnit string

const (
	UnitSeconds TimeUnit = "seconds"
	UnitMinutes TimeUnit = "minutes"
	UnitHours   TimeUnit = "hours"
)

// Seconds returns the second equivalent of one unit of time.
func (u TimeUnit) Seconds() float64 {
	switch u {
	case UnitMinutes:
		return SecondsPerMinute
	case UnitHours:
		return SecondsPerHour
	default:
		return 1
	}
}

// EnergyUnit is a canonical energy unit.
type EnergyUnit string

const (
	UnitKilocalories EnergyUnit = "kilocalories"
	UnitCalories     EnergyUnit = "calories"
	UnitKilojoules   EnergyUnit = "kilojoules"
	UnitJoules       EnergyUnit = "joules"
)

// Kilocalories returns the kilocalorie equivalent of one unit of energy.
func (u EnergyUnit) Kilocalories() float64 {
	switch u {
	case UnitCalories:
		return 0.001
	case UnitKilojoules:
		return KilocaloriesPerKilojoule
	case UnitJoules:
		return KilocaloriesPerKilojoule / 1000
	default:
		return 1
	}
}

// SpeedUnit is a canonical speed unit.
type SpeedUnit string

const (
	UnitMetersPerSecond   SpeedUnit = "metersPerSecond"
	UnitKilometersPerHour SpeedUnit = "kilometersPerHour"
	UnitMilesPerHour      SpeedUnit = "milesPerHour"
)

// MetersPerSecond converts a speed value in this unit to meters per second.
func (u SpeedUnit) MetersPerSecond(v float64) float64 {
	switch u {
	case UnitKilometersPerHour:
		return v * MetersPerKilometer / SecondsPerHour
	case UnitMilesPerHour:
		return v * MetersPerMile / SecondsPerHour
	default:
		return v
	}
}

// ReferenceDistanceMeters returns the one-unit reference distance a pacer
// target expressed in this speed unit resolves against: one mile for mph,
// one kilometer for km/h, 1000 meters otherwise.
func (u SpeedUnit) ReferenceDistanceMeters() float64 {
	if u == UnitMilesPerHour {
		return MetersPerMile
	}
	return MetersPerKilometer
}
