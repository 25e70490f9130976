package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Janjiran/workoutkit/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db *sql.DB
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	definition, err := json.Marshal(p.Definition)
	if err != nil {
		return fmt.Errorf("encoding plan definition: %w", err)
	}

	var scheduledAt sql.NullString
	if p.ScheduledAt != nil {
		at, err := json.Marshal(p.ScheduledAt)
		if err != nil {
			return fmt.Errorf("encoding schedule date: %w", err)
		}
		scheduledAt = sql.NullString{String: string(at), Valid: true}
	}

	query := `INSERT INTO plans (id, kind, display_name, activity, definition, scheduled_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		string(p.Definition.Kind),
		p.Definition.DisplayName(),
		string(p.Definition.Activity()),
		string(definition),
		scheduledAt,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT id, definition, scheduled_at, created_at FROM plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var p domain.Plan
	var definition string
	var scheduledAt sql.NullString
	var createdAtStr string

	err := row.Scan(&p.ID, &definition, &scheduledAt, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	return populatePlan(&p, definition, scheduledAt, createdAtStr)
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	query := `SELECT id, definition, scheduled_at, created_at FROM plans ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		var p domain.Plan
		var definition string
		var scheduledAt sql.NullString
		var createdAtStr string

		if err := rows.Scan(&p.ID, &definition, &scheduledAt, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		plan, err := populatePlan(&p, definition, scheduledAt, createdAtStr)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans`); err != nil {
		return fmt.Errorf("deleting all plans: %w", err)
	}
	return nil
}

func populatePlan(p *domain.Plan, definition string, scheduledAt sql.NullString, createdAtStr string) (*domain.Plan, error) {
	if err := json.Unmarshal([]byte(definition), &p.Definition); err != nil {
		return nil, fmt.Errorf("decoding plan definition: %w", err)
	}
	if scheduledAt.Valid {
		var at domain.DateComponents
		if err := json.Unmarshal([]byte(scheduledAt.String), &at); err != nil {
			return nil, fmt.Errorf("decoding schedule date: %w", err)
		}
		p.ScheduledAt = &at
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	p.CreatedAt = createdAt
	return p, nil
}
