package domain

// AlertKind identifies the shape of a workout alert.
type AlertKind string

const (
	AlertHeartRateZone  AlertKind = "heartRateZone"
	AlertHeartRateRange AlertKind = "heartRateRange"
	AlertPaceRange      AlertKind = "paceRange"
	AlertSpeedRange     AlertKind = "speedRange"
	AlertCadenceRange   AlertKind = "cadenceRange"
	AlertPowerRange     AlertKind = "powerRange"
)

// Alert is a workout alert, tagged by Kind. Zone is meaningful only for
// heart-rate-zone alerts. Min and Max carry the range bounds in the kind's
// normalized unit: beats per minute for heart rate, meters per second for
// pace and speed (pace bounds are inverted into speed bounds at parse
// time), revolutions per minute for cadence, watts for power. Alerts are
// plain values and compare with ==.
type Alert struct {
	Kind AlertKind `json:"kind"`
	Zone int       `json:"zone,omitempty"`
	Min  float64   `json:"min,omitempty"`
	Max  float64   `json:"max,omitempty"`
}

// HeartRateZoneAlert returns an alert pinned to a heart-rate zone.
func HeartRateZoneAlert(zone int) Alert {
	return Alert{Kind: AlertHeartRateZone, Zone: zone}
}

// HeartRateRangeAlert returns an alert over a bpm range.
func HeartRateRangeAlert(min, max float64) Alert {
	return Alert{Kind: AlertHeartRateRange, Min: min, Max: max}
}

// PaceRangeAlert returns a pace alert. The bounds are speeds in meters per
// second, already inverted from the source pace range.
func PaceRangeAlert(minSpeed, maxSpeed float64) Alert {
	return Alert{Kind: AlertPaceRange, Min: minSpeed, Max: maxSpeed}
}

// SpeedRangeAlert returns a speed alert with bounds in meters per second.
func SpeedRangeAlert(min, max float64) Alert {
	return Alert{Kind: AlertSpeedRange, Min: min, Max: max}
}

// CadenceRangeAlert returns a cadence alert with bounds in rpm.
func CadenceRangeAlert(min, max float64) Alert {
	return Alert{Kind: AlertCadenceRange, Min: min, Max: max}
}

// PowerRangeAlert returns a power alert with bounds in watts.
func PowerRangeAlert(min, max float64) Alert {
	return Alert{Kind: AlertPowerRange, Min: min, Max: max}
}
