package dto

import (
	"context"
	"time"

	"github.com/petshield/petshield/internal/domain/contract"
	"github.com/petshield/petshield/internal/types"
	"github.com/petshield/petshield/internal/validator"
)

type CreateContractRequest struct {
	ContractNumber string               `json:"contract_number" validate:"required"`
	CustomerID     string               `json:"customer_id" validate:"required"`
	PlanID         string               `json:"plan_id" validate:"required"`
	StartDate      time.Time            `json:"start_date" validate:"required"`
	BillingPeriod  *types.BillingPeriod `json:"billing_period,omitempty"`
	BaseAmount     string               `json:"base_amount" validate:"required"`
}

func (r *CreateContractRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.BillingPeriod != nil {
		if err := r.BillingPeriod.Validate(); err != nil {
			return err
		}
	}
	if _, err := types.MoneyFromString(r.BaseAmount); err != nil {
		return err
	}
	return nil
}

// ToContract builds the domain contract with the resolved cadence. The
// caller is responsible for having enforced plan/cadence compatibility.
func (r *CreateContractRequest) ToContract(ctx context.Context, cadence types.BillingPeriod) *contract.Contract {
	amount, _ := types.MoneyFromString(r.BaseAmount)
	return &contract.Contract{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CONTRACT),
		ContractNumber:    r.ContractNumber,
		CustomerID:        r.CustomerID,
		PlanID:            r.PlanID,
		OriginalStartDate: types.DateOnly(r.StartDate),
		BillingPeriod:     cadence,
		BaseAmount:        amount,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}

type RecordPaymentRequest struct {
	ReceivedAt time.Time `json:"received_at" validate:"required"`
}

func (r *RecordPaymentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type ContractResponse struct {
	*contract.Contract
	BaseAmountDisplay string `json:"base_amount_display"`
}

func NewContractResponse(c *contract.Contract) *ContractResponse {
	return &ContractResponse{
		Contract:          c,
		BaseAmountDisplay: c.BaseAmount.String(),
	}
}
