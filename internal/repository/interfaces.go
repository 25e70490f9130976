package repository

import (
	"context"
	"errors"

	"github.com/Janjiran/workoutkit/internal/domain"
)

// ErrNotFound is returned when a plan does not exist in the store.
var ErrNotFound = errors.New("not found")

// PlanRepo stores scheduled workout plans. It stands in for the
// platform's scheduler, which owns the real scheduled-workout list.
type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
