package dto

import (
	"time"

	"github.com/petshield/petshield/internal/types"
	"github.com/petshield/petshield/internal/validator"
)

type ValidateCadenceRequest struct {
	PlanName      string               `json:"plan_name" validate:"required"`
	BillingPeriod *types.BillingPeriod `json:"billing_period,omitempty"`
}

func (r *ValidateCadenceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type CadenceResponse struct {
	PlanName      string              `json:"plan_name"`
	BillingPeriod types.BillingPeriod `json:"billing_period"`
}

type RenewalPreviewRequest struct {
	AnchorDate    time.Time           `json:"anchor_date" validate:"required"`
	CurrentDate   *time.Time          `json:"current_date,omitempty"`
	BillingPeriod types.BillingPeriod `json:"billing_period" validate:"required"`
}

func (r *RenewalPreviewRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.BillingPeriod.Validate()
}

// Now returns the request's current date, defaulting to wall-clock now.
func (r *RenewalPreviewRequest) Now() time.Time {
	if r.CurrentDate != nil {
		return *r.CurrentDate
	}
	return time.Now().UTC()
}

type RenewalPreviewResponse struct {
	NextRenewalDate time.Time           `json:"next_renewal_date"`
	BillingPeriod   types.BillingPeriod `json:"billing_period"`
}

type RegularizationQuoteRequest struct {
	AnchorDate    time.Time           `json:"anchor_date" validate:"required"`
	LastPaidDate  *time.Time          `json:"last_paid_date,omitempty"`
	CurrentDate   *time.Time          `json:"current_date,omitempty"`
	BillingPeriod types.BillingPeriod `json:"billing_period" validate:"required"`
	BaseAmount    string              `json:"base_amount" validate:"required"`
}

func (r *RegularizationQuoteRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.BillingPeriod.Validate(); err != nil {
		return err
	}
	if _, err := types.MoneyFromString(r.BaseAmount); err != nil {
		return err
	}
	return nil
}

// Now returns the request's current date, defaulting to wall-clock now.
func (r *RegularizationQuoteRequest) Now() time.Time {
	if r.CurrentDate != nil {
		return *r.CurrentDate
	}
	return time.Now().UTC()
}

type RegularizationQuoteResponse struct {
	OverduePeriods int       `json:"overdue_periods"`
	ReceivedDate   time.Time `json:"received_date"`
	// Amount covers all overdue periods plus the current one, formatted in
	// major units.
	Amount      string `json:"amount"`
	AmountMinor int64  `json:"amount_minor"`
}
