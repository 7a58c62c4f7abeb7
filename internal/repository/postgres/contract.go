package postgres

import (
	"context"
	"database/sql"

	"github.com/petshield/petshield/internal/domain/contract"
	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/petshield/petshield/internal/logger"
	"github.com/petshield/petshield/internal/postgres"
	"github.com/petshield/petshield/internal/types"
)

type contractRepository struct {
	client *postgres.Client
	logger *logger.Logger
}

func NewContractRepository(client *postgres.Client, logger *logger.Logger) contract.Repository {
	return &contractRepository{client: client, logger: logger}
}

const contractColumns = `id, contract_number, customer_id, plan_id, original_start_date, billing_period, last_paid_date, base_amount, tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *contractRepository) Create(ctx context.Context, c *contract.Contract) error {
	_, err := r.client.DB().ExecContext(ctx, `
		INSERT INTO contracts (`+contractColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, c.ID, c.ContractNumber, c.CustomerID, c.PlanID, c.OriginalStartDate, c.BillingPeriod,
		c.LastPaidDate, int64(c.BaseAmount), c.TenantID, c.Status, c.CreatedAt, c.UpdatedAt, c.CreatedBy, c.UpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHintf("Contract %s already exists", c.ContractNumber).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHintf("Failed to create contract %s", c.ID).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *contractRepository) Get(ctx context.Context, id string) (*contract.Contract, error) {
	row := r.client.DB().QueryRowContext(ctx, `
		SELECT `+contractColumns+`
		FROM contracts
		WHERE id = $1 AND status = $2
	`, id, types.StatusPublished)

	c, err := scanContract(row)
	if err == sql.ErrNoRows {
		return nil, ierr.NewErrorf("contract %s not found", id).
			WithHint("The contract does not exist or was deleted").
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to get contract %s", id).
			Mark(ierr.ErrDatabase)
	}
	return c, nil
}

func (r *contractRepository) Update(ctx context.Context, c *contract.Contract) error {
	// original_start_date is intentionally absent: the anchor is immutable
	result, err := r.client.DB().ExecContext(ctx, `
		UPDATE contracts
		SET last_paid_date = $2, base_amount = $3, updated_at = now(), updated_by = $4
		WHERE id = $1 AND status = $5
	`, c.ID, c.LastPaidDate, int64(c.BaseAmount), c.UpdatedBy, types.StatusPublished)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to update contract %s", c.ID).
			Mark(ierr.ErrDatabase)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ierr.NewErrorf("contract %s not found", c.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *contractRepository) List(ctx context.Context) ([]*contract.Contract, error) {
	rows, err := r.client.DB().QueryContext(ctx, `
		SELECT `+contractColumns+`
		FROM contracts
		WHERE status = $1
		ORDER BY contract_number
	`, types.StatusPublished)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contracts").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var contracts []*contract.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan contract row").
				Mark(ierr.ErrDatabase)
		}
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate contract rows").
			Mark(ierr.ErrDatabase)
	}
	return contracts, nil
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	result, err := r.client.DB().ExecContext(ctx, `
		UPDATE contracts
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3
	`, id, types.StatusDeleted, types.StatusPublished)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to delete contract %s", id).
			Mark(ierr.ErrDatabase)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ierr.NewErrorf("contract %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func scanContract(row rowScanner) (*contract.Contract, error) {
	var c contract.Contract
	var lastPaid sql.NullTime
	var baseAmount int64
	err := row.Scan(
		&c.ID, &c.ContractNumber, &c.CustomerID, &c.PlanID, &c.OriginalStartDate, &c.BillingPeriod,
		&lastPaid, &baseAmount, &c.TenantID, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if lastPaid.Valid {
		t := lastPaid.Time
		c.LastPaidDate = &t
	}
	c.BaseAmount = types.Money(baseAmount)
	return &c, nil
}
