package plan

import (
	"context"

	"github.com/petshield/petshield/internal/types"
)

// Plan represents an insurance plan a contract subscribes to.
type Plan struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	BillingPeriod types.BillingPeriod `json:"billing_period"`
	types.BaseModel
}

// NewPlan builds a plan with its cadence resolved from the name.
func NewPlan(ctx context.Context, name, description string) *Plan {
	return &Plan{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:          name,
		Description:   description,
		BillingPeriod: ResolveCadence(name),
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}
