// Package capability models the platform-side support queries a workout
// definition must pass before it can be scheduled. The real predicates live
// in the host platform; everything here is an injection point so the
// parsing pipeline and services can be exercised without it.
package capability

import (
	"github.com/Janjiran/workoutkit/internal/domain"
)

// Platform capability versions. Structured workouts need the baseline;
// power range alerts arrived later and silently degrade below their
// minimum.
const (
	BaselineVersion      = 17
	PowerAlertMinVersion = 18
)

// Capabilities answers whether the platform supports a given goal, alert,
// or multisport ordering for an activity and location.
type Capabilities interface {
	// Version reports the platform capability version.
	Version() int
	SupportsGoal(g domain.Goal, activity domain.ActivityType, location domain.LocationType) bool
	SupportsAlert(a domain.Alert, activity domain.ActivityType, location domain.LocationType) bool
	SupportsActivityOrdering(legs []domain.MultisportActivity) bool
}

// AuthorizationStatus is the platform's scheduling-authorization state.
type AuthorizationStatus string

const (
	AuthNotDetermined AuthorizationStatus = "notDetermined"
	AuthAuthorized    AuthorizationStatus = "authorized"
	AuthDenied        AuthorizationStatus = "denied"
)

// Authorizer queries and requests scheduling authorization.
type Authorizer interface {
	Status() AuthorizationStatus
	// Request asks the user for authorization and returns the resulting
	// status. Requesting after a terminal answer returns that answer.
	Request() AuthorizationStatus
}

// StaticAuthorizer is a fixed-state Authorizer. Requesting from the
// not-determined state grants authorization.
type StaticAuthorizer struct {
	state AuthorizationStatus
}

// NewStaticAuthorizer returns a StaticAuthorizer in the given state.
func NewStaticAuthorizer(state AuthorizationStatus) *StaticAuthorizer {
	if state == "" {
		state = AuthNotDetermined
	}
	return &StaticAuthorizer{state: state}
}

func (a *StaticAuthorizer) Status() AuthorizationStatus {
	return a.state
}

func (a *StaticAuthorizer) Request() AuthorizationStatus {
	if a.state == AuthNotDetermined {
		a.state = AuthAuthorized
	}
	return a.state
}
