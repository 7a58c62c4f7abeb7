package service

import (
	"time"

	"github.com/petshield/petshield/internal/types"
)

// RenewalService computes renewal dates anchored to a contract's original
// start date. The central invariant: the returned date's day-of-month
// (monthly) or month+day (annual) always traces back to the original anchor,
// never to whenever a payment actually landed.
type RenewalService interface {
	// NextRenewalDate returns the smallest anchor-aligned date strictly
	// after now.
	NextRenewalDate(anchor, now time.Time, cadence types.BillingPeriod) (time.Time, error)
}

type renewalService struct {
	ServiceParams
}

func NewRenewalService(params ServiceParams) RenewalService {
	return &renewalService{ServiceParams: params}
}

func (s *renewalService) NextRenewalDate(anchor, now time.Time, cadence types.BillingPeriod) (time.Time, error) {
	if err := cadence.Validate(); err != nil {
		return time.Time{}, err
	}

	anchor = types.DateOnly(anchor)
	now = types.DateOnly(now)

	switch cadence {
	case types.BILLING_PERIOD_ANNUAL:
		return nextAnnualRenewal(anchor, now), nil
	default:
		return nextMonthlyRenewal(anchor, now), nil
	}
}

// nextMonthlyRenewal walks month by month from now's month, each time
// clamping the anchor day to the month's length (anchor day 31 in a 30-day
// month uses day 30), until the candidate is strictly after now.
func nextMonthlyRenewal(anchor, now time.Time) time.Time {
	candidate := anchorDayInMonth(anchor, now.Year(), now.Month())
	for !candidate.After(now) {
		firstOfNext := time.Date(candidate.Year(), candidate.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		candidate = anchorDayInMonth(anchor, firstOfNext.Year(), firstOfNext.Month())
	}
	return candidate
}

// nextAnnualRenewal places the anchor's month+day in now's year and advances
// one year if that is not strictly after now.
func nextAnnualRenewal(anchor, now time.Time) time.Time {
	candidate := anchorDayInYear(anchor, now.Year())
	if !candidate.After(now) {
		candidate = anchorDayInYear(anchor, now.Year()+1)
	}
	return candidate
}

// anchorDayInMonth returns the anchor's day-of-month placed in the given
// month, clamped to the month's last day.
func anchorDayInMonth(anchor time.Time, year int, month time.Month) time.Time {
	day := anchor.Day()
	if last := types.DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// anchorDayInYear returns the anchor's month+day placed in the given year,
// clamped for Feb 29 in non-leap years.
func anchorDayInYear(anchor time.Time, year int) time.Time {
	return anchorDayInMonth(anchor, year, anchor.Month())
}
