package service

import (
	"context"
	"time"

	"github.com/petshield/petshield/internal/api/dto"
	"github.com/petshield/petshield/internal/domain/installment"
	"github.com/petshield/petshield/internal/domain/plan"
	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/petshield/petshield/internal/types"
)

// ContractService creates contracts with their cadence validated against the
// plan and their first installment scheduled from the anchor date.
type ContractService interface {
	CreateContract(ctx context.Context, req dto.CreateContractRequest) (*dto.ContractResponse, error)
	GetContract(ctx context.Context, id string) (*dto.ContractResponse, error)
	RecordPayment(ctx context.Context, id string, receivedAt time.Time) (*dto.ContractResponse, error)
}

type contractService struct {
	ServiceParams
}

func NewContractService(params ServiceParams) ContractService {
	return &contractService{ServiceParams: params}
}

func (s *contractService) CreateContract(ctx context.Context, req dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PlanRepo.Get(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	// hard stop on plan/cadence disagreement, never a silent correction
	cadence, err := plan.EnforceCadence(p.Name, req.BillingPeriod)
	if err != nil {
		return nil, err
	}

	c := req.ToContract(ctx, cadence)
	if err := s.ContractRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	first := &installment.Installment{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INSTALLMENT),
		ContractID:        c.ID,
		InstallmentNumber: 1,
		DueDate:           c.OriginalStartDate,
		Amount:            c.BaseAmount,
		InstallmentStatus: types.InstallmentStatusPending,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
	if err := s.InstallmentRepo.Create(ctx, first); err != nil {
		// compensate so no contract is left behind without an installment
		if delErr := s.ContractRepo.Delete(ctx, c.ID); delErr != nil {
			s.Logger.Errorw("failed to roll back contract after installment failure",
				"contract_id", c.ID,
				"error", delErr,
			)
		}
		return nil, err
	}

	s.Logger.Infow("created contract",
		"contract_id", c.ID,
		"contract_number", c.ContractNumber,
		"plan_id", c.PlanID,
		"billing_period", c.BillingPeriod,
	)
	return dto.NewContractResponse(c), nil
}

func (s *contractService) GetContract(ctx context.Context, id string) (*dto.ContractResponse, error) {
	if id == "" {
		return nil, ierr.NewError("contract ID is required").
			WithHint("Please provide a valid contract ID").
			Mark(ierr.ErrValidation)
	}
	c, err := s.ContractRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewContractResponse(c), nil
}

func (s *contractService) RecordPayment(ctx context.Context, id string, receivedAt time.Time) (*dto.ContractResponse, error) {
	c, err := s.ContractRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	receivedAt = types.DateOnly(receivedAt)
	if receivedAt.Before(types.DateOnly(c.ReferenceDate())) {
		return nil, ierr.NewError("payment date precedes the contract reference date").
			WithHintf("Payments cannot be recorded before %s", c.ReferenceDate().Format("2006-01-02")).
			WithReportableDetails(map[string]any{
				"contract_id":    c.ID,
				"received_at":    receivedAt,
				"reference_date": c.ReferenceDate(),
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	c.RecordPayment(receivedAt)
	if err := s.ContractRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("recorded contract payment",
		"contract_id", c.ID,
		"contract_number", c.ContractNumber,
		"received_at", receivedAt,
	)
	return dto.NewContractResponse(c), nil
}
