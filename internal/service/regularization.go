package service

import (
	"time"

	"github.com/petshield/petshield/internal/types"
)

// RegularizationService computes what a contract in arrears owes and which
// date to record for the catch-up payment so the schedule stays anchored to
// the original start date.
type RegularizationService interface {
	// OverduePeriods returns how many complete billing periods are overdue,
	// excluding the current not-yet-due one.
	OverduePeriods(lastPaid *time.Time, now time.Time, cadence types.BillingPeriod, anchor time.Time) (int, error)

	// ReceivedDate returns the anniversary-aligned date to record for a
	// catch-up payment made at now.
	ReceivedDate(anchor, now time.Time, cadence types.BillingPeriod) (time.Time, error)

	// Amount returns the total to charge for the overdue periods, plus the
	// current one when includeCurrent is set. Never charges fewer than one
	// period.
	Amount(base types.Money, overduePeriods int, includeCurrent bool) types.Money
}

type regularizationService struct {
	ServiceParams
}

func NewRegularizationService(params ServiceParams) RegularizationService {
	return &regularizationService{ServiceParams: params}
}

// OverduePeriods buckets elapsed whole days into fixed 30-day (monthly) or
// 365-day (annual) periods. This is a day-count heuristic, not calendar
// exact; it drifts from true calendar months over long arrears. Kept as-is
// because charge amounts depend on it (see DESIGN.md).
func (s *regularizationService) OverduePeriods(lastPaid *time.Time, now time.Time, cadence types.BillingPeriod, anchor time.Time) (int, error) {
	if err := cadence.Validate(); err != nil {
		return 0, err
	}

	reference := anchor
	if lastPaid != nil {
		reference = *lastPaid
	}

	days := int(types.DateOnly(now).Sub(types.DateOnly(reference)).Hours() / 24)
	if days < 0 {
		return 0, nil
	}

	// the most recent period is current, not overdue
	periods := days/cadence.PeriodDays() - 1
	if periods < 0 {
		return 0, nil
	}
	return periods, nil
}

func (s *regularizationService) ReceivedDate(anchor, now time.Time, cadence types.BillingPeriod) (time.Time, error) {
	if err := cadence.Validate(); err != nil {
		return time.Time{}, err
	}

	anchor = types.DateOnly(anchor)
	now = types.DateOnly(now)

	switch cadence {
	case types.BILLING_PERIOD_ANNUAL:
		// this year's anniversary, or last year's if it hasn't come yet
		received := anchorDayInYear(anchor, now.Year())
		if now.Before(received) {
			received = anchorDayInYear(anchor, now.Year()-1)
		}
		return received, nil
	default:
		// this month's anchor day, or the previous month's if the payment
		// landed before it
		received := anchorDayInMonth(anchor, now.Year(), now.Month())
		if now.Day() < received.Day() {
			prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
			received = anchorDayInMonth(anchor, prev.Year(), prev.Month())
		}
		return received, nil
	}
}

func (s *regularizationService) Amount(base types.Money, overduePeriods int, includeCurrent bool) types.Money {
	totalPeriods := overduePeriods
	if includeCurrent {
		totalPeriods++
	}
	if totalPeriods < 1 {
		totalPeriods = 1
	}
	return base.MulPeriods(totalPeriods)
}
