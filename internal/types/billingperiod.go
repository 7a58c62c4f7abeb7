package types

import (
	"fmt"
	"strings"

	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/samber/lo"
)

// BillingPeriod is the recurrence unit a contract is charged on.
type BillingPeriod string

const (
	BILLING_PERIOD_MONTHLY BillingPeriod = "MONTHLY"
	BILLING_PERIOD_ANNUAL  BillingPeriod = "ANNUAL"
)

// String returns the string representation of the billing period
func (b BillingPeriod) String() string {
	return string(b)
}

// Validate validates the billing period
func (b BillingPeriod) Validate() error {
	allowed := []BillingPeriod{
		BILLING_PERIOD_MONTHLY,
		BILLING_PERIOD_ANNUAL,
	}
	if lo.Contains(allowed, b) {
		return nil
	}
	return ierr.NewError("invalid billing period").
		WithHint(fmt.Sprintf("Billing period must be one of: %s", strings.Join(lo.Map(allowed, func(b BillingPeriod, _ int) string { return string(b) }), ", "))).
		Mark(ierr.ErrValidation)
}

// PeriodDays returns the day-count bucket used for overdue-period math.
// 30 and 365 are intentionally fixed, not calendar-exact: downstream charge
// amounts depend on this bucketing, so it must not change without a business
// decision.
func (b BillingPeriod) PeriodDays() int {
	if b == BILLING_PERIOD_ANNUAL {
		return 365
	}
	return 30
}
