package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Janjiran/workoutkit/internal/capability"
	"github.com/Janjiran/workoutkit/internal/domain"
	"github.com/Janjiran/workoutkit/internal/repository"
	"github.com/Janjiran/workoutkit/internal/workout"
	"github.com/google/uuid"
)

type planService struct {
	parser   *workout.Parser
	plans    repository.PlanRepo
	auth     capability.Authorizer
	observer OperationObserver
}

// NewPlanService creates a PlanService parsing with the given parser,
// persisting into plans, and gating scheduling on auth.
func NewPlanService(parser *workout.Parser, plans repository.PlanRepo, auth capability.Authorizer, observers ...OperationObserver) PlanService {
	return &planService{
		parser:   parser,
		plans:    plans,
		auth:     auth,
		observer: observerOrNoop(observers),
	}
}

func (s *planService) Validate(ctx context.Context, cfg *workout.Config) (domain.Definition, error) {
	return s.parser.Parse(cfg)
}

func (s *planService) Create(ctx context.Context, cfg *workout.Config) (*domain.Plan, error) {
	def, err := s.parser.Parse(cfg)
	if err != nil {
		return nil, err
	}
	return &domain.Plan{
		ID:         uuid.New().String(),
		Definition: def,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (s *planService) Schedule(ctx context.Context, cfg *workout.Config, at domain.DateComponents) (plan *domain.Plan, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveOperation(ctx, OperationEvent{
			Name:      "schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	if err = s.authorize(); err != nil {
		return nil, err
	}

	plan, err = s.Create(ctx, cfg)
	if err != nil {
		return nil, err
	}
	plan.ScheduledAt = &at

	if err = s.plans.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("storing scheduled plan: %w", err)
	}
	return plan, nil
}

// authorize gates scheduling on the platform authorization state,
// requesting it once if it was never determined.
func (s *planService) authorize() error {
	status := s.auth.Status()
	if status == capability.AuthNotDetermined {
		status = s.auth.Request()
	}
	if status != capability.AuthAuthorized {
		return ErrUnauthorized
	}
	return nil
}

func (s *planService) ListScheduled(ctx context.Context) ([]*domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *planService) Remove(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}

func (s *planService) RemoveAll(ctx context.Context) error {
	return s.plans.DeleteAll(ctx)
}

func (s *planService) Export(ctx context.Context, cfg *workout.Config, w io.Writer) error {
	def, err := s.parser.Parse(cfg)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(def); err != nil {
		return fmt.Errorf("encoding definition: %w", err)
	}
	return nil
}
