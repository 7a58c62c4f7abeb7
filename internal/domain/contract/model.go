package contract

import (
	"time"

	"github.com/petshield/petshield/internal/types"
)

// Contract is an insurance contract for a pet. OriginalStartDate is the
// anchor every future renewal and regularization traces back to; it is set
// once at creation and never mutated afterwards.
type Contract struct {
	ID                string              `json:"id"`
	ContractNumber    string              `json:"contract_number"`
	CustomerID        string              `json:"customer_id"`
	PlanID            string              `json:"plan_id"`
	OriginalStartDate time.Time           `json:"original_start_date"`
	BillingPeriod     types.BillingPeriod `json:"billing_period"`
	LastPaidDate      *time.Time          `json:"last_paid_date,omitempty"`
	BaseAmount        types.Money         `json:"base_amount"`
	types.BaseModel
}

// ReferenceDate returns the date overdue-period math counts from: the last
// paid date when a payment was ever recorded, otherwise the original anchor.
func (c *Contract) ReferenceDate() time.Time {
	if c.LastPaidDate != nil {
		return *c.LastPaidDate
	}
	return c.OriginalStartDate
}

// RecordPayment advances the last paid date. The anchor is never touched.
func (c *Contract) RecordPayment(receivedAt time.Time) {
	c.LastPaidDate = &receivedAt
	c.UpdatedAt = time.Now().UTC()
}
