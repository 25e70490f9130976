package service

import (
	"context"
	"errors"
	"io"

	"github.com/Janjiran/workoutkit/internal/domain"
	"github.com/Janjiran/workoutkit/internal/workout"
)

// ErrUnauthorized is returned when scheduling is attempted without
// authorization.
var ErrUnauthorized = errors.New("workout scheduling is not authorized")

// PlanService turns workout configurations into plans and manages the
// scheduled-plan store.
type PlanService interface {
	// Validate parses and capability-validates a configuration without
	// persisting anything.
	Validate(ctx context.Context, cfg *workout.Config) (domain.Definition, error)
	// Create validates a configuration and mints an unscheduled plan.
	Create(ctx context.Context, cfg *workout.Config) (*domain.Plan, error)
	// Schedule validates a configuration and persists it as a plan
	// scheduled at the given calendar point.
	Schedule(ctx context.Context, cfg *workout.Config, at domain.DateComponents) (*domain.Plan, error)
	ListScheduled(ctx context.Context) ([]*domain.Plan, error)
	Remove(ctx context.Context, id string) error
	RemoveAll(ctx context.Context) error
	// Export writes the normalized definition of a configuration as
	// indented JSON.
	Export(ctx context.Context, cfg *workout.Config, w io.Writer) error
}
