package postgres

import (
	"context"
	"database/sql"

	"github.com/petshield/petshield/internal/domain/plan"
	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/petshield/petshield/internal/logger"
	"github.com/petshield/petshield/internal/postgres"
	"github.com/petshield/petshield/internal/types"
)

type planRepository struct {
	client *postgres.Client
	logger *logger.Logger
}

func NewPlanRepository(client *postgres.Client, logger *logger.Logger) plan.Repository {
	return &planRepository{client: client, logger: logger}
}

const planColumns = `id, name, description, billing_period, tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *planRepository) Create(ctx context.Context, p *plan.Plan) error {
	_, err := r.client.DB().ExecContext(ctx, `
		INSERT INTO plans (`+planColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, p.ID, p.Name, p.Description, p.BillingPeriod, p.TenantID, p.Status, p.CreatedAt, p.UpdatedAt, p.CreatedBy, p.UpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHintf("Plan %s already exists", p.ID).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHintf("Failed to create plan %s", p.ID).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *planRepository) Get(ctx context.Context, id string) (*plan.Plan, error) {
	row := r.client.DB().QueryRowContext(ctx, `
		SELECT `+planColumns+`
		FROM plans
		WHERE id = $1 AND status = $2
	`, id, types.StatusPublished)

	p, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, ierr.NewErrorf("plan %s not found", id).
			WithHint("The plan does not exist or was deleted").
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to get plan %s", id).
			Mark(ierr.ErrDatabase)
	}
	return p, nil
}

func (r *planRepository) Update(ctx context.Context, p *plan.Plan) error {
	result, err := r.client.DB().ExecContext(ctx, `
		UPDATE plans
		SET name = $2, description = $3, billing_period = $4, updated_at = now(), updated_by = $5
		WHERE id = $1 AND status = $6
	`, p.ID, p.Name, p.Description, p.BillingPeriod, p.UpdatedBy, types.StatusPublished)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to update plan %s", p.ID).
			Mark(ierr.ErrDatabase)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ierr.NewErrorf("plan %s not found", p.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *planRepository) List(ctx context.Context) ([]*plan.Plan, error) {
	rows, err := r.client.DB().QueryContext(ctx, `
		SELECT `+planColumns+`
		FROM plans
		WHERE status = $1
		ORDER BY name
	`, types.StatusPublished)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list plans").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var plans []*plan.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan plan row").
				Mark(ierr.ErrDatabase)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate plan rows").
			Mark(ierr.ErrDatabase)
	}
	return plans, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*plan.Plan, error) {
	var p plan.Plan
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.BillingPeriod,
		&p.TenantID, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
