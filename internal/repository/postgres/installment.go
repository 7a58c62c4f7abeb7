package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/petshield/petshield/internal/domain/installment"
	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/petshield/petshield/internal/logger"
	"github.com/petshield/petshield/internal/postgres"
	"github.com/petshield/petshield/internal/types"
)

type installmentRepository struct {
	client *postgres.Client
	logger *logger.Logger
}

func NewInstallmentRepository(client *postgres.Client, logger *logger.Logger) installment.Repository {
	return &installmentRepository{client: client, logger: logger}
}

const installmentColumns = `id, contract_id, installment_number, due_date, amount, installment_status, tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *installmentRepository) Create(ctx context.Context, i *installment.Installment) error {
	_, err := r.client.DB().ExecContext(ctx, `
		INSERT INTO installments (`+installmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, i.ID, i.ContractID, i.InstallmentNumber, i.DueDate, int64(i.Amount), i.InstallmentStatus,
		i.TenantID, i.Status, i.CreatedAt, i.UpdatedAt, i.CreatedBy, i.UpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHintf("Installment %s already exists", i.ID).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHintf("Failed to create installment %s", i.ID).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *installmentRepository) Get(ctx context.Context, id string) (*installment.Installment, error) {
	row := r.client.DB().QueryRowContext(ctx, `
		SELECT `+installmentColumns+`
		FROM installments
		WHERE id = $1 AND status = $2
	`, id, types.StatusPublished)

	i, err := scanInstallment(row)
	if err == sql.ErrNoRows {
		return nil, ierr.NewErrorf("installment %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to get installment %s", id).
			Mark(ierr.ErrDatabase)
	}
	return i, nil
}

func (r *installmentRepository) ListByContract(ctx context.Context, contractID string) ([]*installment.Installment, error) {
	rows, err := r.client.DB().QueryContext(ctx, `
		SELECT `+installmentColumns+`
		FROM installments
		WHERE contract_id = $1 AND status = $2
		ORDER BY installment_number
	`, contractID, types.StatusPublished)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to list installments for contract %s", contractID).
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var installments []*installment.Installment
	for rows.Next() {
		i, err := scanInstallment(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan installment row").
				Mark(ierr.ErrDatabase)
		}
		installments = append(installments, i)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate installment rows").
			Mark(ierr.ErrDatabase)
	}
	return installments, nil
}

func (r *installmentRepository) UpdateDueDate(ctx context.Context, id string, dueDate time.Time) error {
	result, err := r.client.DB().ExecContext(ctx, `
		UPDATE installments
		SET due_date = $2, updated_at = now()
		WHERE id = $1 AND status = $3
	`, id, dueDate, types.StatusPublished)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to update due date of installment %s", id).
			Mark(ierr.ErrDatabase)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ierr.NewErrorf("installment %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func scanInstallment(row rowScanner) (*installment.Installment, error) {
	var i installment.Installment
	var amount int64
	err := row.Scan(
		&i.ID, &i.ContractID, &i.InstallmentNumber, &i.DueDate, &amount, &i.InstallmentStatus,
		&i.TenantID, &i.Status, &i.CreatedAt, &i.UpdatedAt, &i.CreatedBy, &i.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	i.Amount = types.Money(amount)
	return &i, nil
}
