package capability

import (
	"github.com/Janjiran/workoutkit/internal/domain"
)

// Activities for which distance and pace/speed targets are meaningful.
var distanceActivities = map[domain.ActivityType]bool{
	domain.ActivityRunning:       true,
	domain.ActivityWalking:       true,
	domain.ActivityHiking:        true,
	domain.ActivityCycling:       true,
	domain.ActivitySwimming:      true,
	domain.ActivityRowing:        true,
	domain.ActivityElliptical:    true,
	domain.ActivityStairClimbing: true,
	domain.ActivityCrossTraining: true,
}

// Activities that report a cadence stream.
var cadenceActivities = map[domain.ActivityType]bool{
	domain.ActivityRunning:    true,
	domain.ActivityWalking:    true,
	domain.ActivityCycling:    true,
	domain.ActivityElliptical: true,
	domain.ActivityJumpRope:   true,
}

// Activities that report a power stream.
var powerActivities = map[domain.ActivityType]bool{
	domain.ActivityRunning: true,
	domain.ActivityCycling: true,
}

// Leg kinds a multisport workout may contain.
var multisportActivities = map[domain.ActivityType]bool{
	domain.ActivityRunning:  true,
	domain.ActivityCycling:  true,
	domain.ActivitySwimming: true,
}

// Ruleset is a static, table-driven Capabilities implementation. It is a
// stand-in for the platform's own support queries, tuned to reject the
// combinations the platform rejects (distance targets on non-distance
// sports, cadence or power alerts on sports without those streams, and
// degenerate multisport orderings).
type Ruleset struct {
	version int
}

// NewRuleset returns a Ruleset reporting the given platform version.
func NewRuleset(version int) *Ruleset {
	return &Ruleset{version: version}
}

func (r *Ruleset) Version() int {
	return r.version
}

func (r *Ruleset) SupportsGoal(g domain.Goal, activity domain.ActivityType, location domain.LocationType) bool {
	switch g.Kind {
	case domain.GoalOpen, domain.GoalTime, domain.GoalEnergy:
		return true
	case domain.GoalDistance:
		return distanceActivities[activity]
	}
	return false
}

func (r *Ruleset) SupportsAlert(a domain.Alert, activity domain.ActivityType, location domain.LocationType) bool {
	switch a.Kind {
	case domain.AlertHeartRateZone, domain.AlertHeartRateRange:
		return true
	case domain.AlertPaceRange, domain.AlertSpeedRange:
		return distanceActivities[activity]
	case domain.AlertCadenceRange:
		return cadenceActivities[activity]
	case domain.AlertPowerRange:
		return r.version >= PowerAlertMinVersion && powerActivities[activity]
	}
	return false
}

func (r *Ruleset) SupportsActivityOrdering(legs []domain.MultisportActivity) bool {
	if len(legs) < 2 {
		return false
	}
	for i, leg := range legs {
		if !multisportActivities[leg.Activity] {
			return false
		}
		if i > 0 && legs[i-1].Activity == leg.Activity {
			return false
		}
	}
	return true
}
