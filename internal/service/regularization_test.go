package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petshield/petshield/internal/types"
)

func TestOverduePeriods(t *testing.T) {
	svc := NewRegularizationService(newCalcParams())

	tests := []struct {
		name     string
		lastPaid *time.Time
		now      time.Time
		cadence  types.BillingPeriod
		anchor   time.Time
		expected int
	}{
		{
			name:     "NeverPaid_UsesAnchor",
			lastPaid: nil,
			now:      day(2023, time.September, 10),
			cadence:  types.BILLING_PERIOD_MONTHLY,
			anchor:   day(2023, time.May, 31),
			// 102 days / 30 = 3 complete buckets, minus the current period
			expected: 2,
		},
		{
			name:     "LastPaidTakesPrecedenceOverAnchor",
			lastPaid: lo.ToPtr(day(2023, time.August, 1)),
			now:      day(2023, time.September, 10),
			cadence:  types.BILLING_PERIOD_MONTHLY,
			anchor:   day(2020, time.May, 31),
			// 40 days / 30 = 1 bucket, minus current
			expected: 0,
		},
		{
			name:     "UpToDate_ZeroOverdue",
			lastPaid: lo.ToPtr(day(2023, time.September, 1)),
			now:      day(2023, time.September, 10),
			cadence:  types.BILLING_PERIOD_MONTHLY,
			anchor:   day(2023, time.January, 1),
			expected: 0,
		},
		{
			name:     "Annual_TwoYearsBehind",
			lastPaid: lo.ToPtr(day(2021, time.March, 1)),
			now:      day(2023, time.April, 1),
			cadence:  types.BILLING_PERIOD_ANNUAL,
			anchor:   day(2019, time.March, 1),
			// 761 days / 365 = 2 buckets, minus current
			expected: 1,
		},
		{
			name:     "ReferenceInFuture_ClampsToZero",
			lastPaid: lo.ToPtr(day(2023, time.December, 1)),
			now:      day(2023, time.September, 10),
			cadence:  types.BILLING_PERIOD_MONTHLY,
			anchor:   day(2023, time.January, 1),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.OverduePeriods(tt.lastPaid, tt.now, tt.cadence, tt.anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReceivedDate_Monthly(t *testing.T) {
	svc := NewRegularizationService(newCalcParams())

	tests := []struct {
		name     string
		anchor   time.Time
		now      time.Time
		expected time.Time
	}{
		{
			name:     "PaymentAfterAnchorDay_CurrentMonth",
			anchor:   day(2023, time.May, 15),
			now:      day(2023, time.September, 20),
			expected: day(2023, time.September, 15),
		},
		{
			name:     "PaymentBeforeAnchorDay_PreviousMonth",
			anchor:   day(2023, time.May, 15),
			now:      day(2023, time.September, 10),
			expected: day(2023, time.August, 15),
		},
		{
			name:     "PaymentOnAnchorDay_CurrentMonth",
			anchor:   day(2023, time.May, 15),
			now:      day(2023, time.September, 15),
			expected: day(2023, time.September, 15),
		},
		{
			name:     "AnchorDay31_ClampsInFebruary",
			anchor:   day(2023, time.May, 31),
			now:      day(2024, time.February, 29),
			expected: day(2024, time.February, 29),
		},
		{
			name:     "AnchorDay31_BeforeClampedDay_PreviousMonth",
			anchor:   day(2023, time.May, 31),
			now:      day(2024, time.February, 10),
			expected: day(2024, time.January, 31),
		},
		{
			name:     "JanuaryPaymentBeforeAnchor_RollsToDecember",
			anchor:   day(2023, time.May, 20),
			now:      day(2024, time.January, 5),
			expected: day(2023, time.December, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ReceivedDate(tt.anchor, tt.now, types.BILLING_PERIOD_MONTHLY)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReceivedDate_Annual(t *testing.T) {
	svc := NewRegularizationService(newCalcParams())

	tests := []struct {
		name     string
		anchor   time.Time
		now      time.Time
		expected time.Time
	}{
		{
			name:     "PaymentAfterAnniversary_CurrentYear",
			anchor:   day(2020, time.March, 10),
			now:      day(2023, time.June, 1),
			expected: day(2023, time.March, 10),
		},
		{
			name:     "PaymentBeforeAnniversary_PreviousYear",
			anchor:   day(2020, time.October, 10),
			now:      day(2023, time.June, 1),
			expected: day(2022, time.October, 10),
		},
		{
			name:     "PaymentOnAnniversary_CurrentYear",
			anchor:   day(2020, time.June, 1),
			now:      day(2023, time.June, 1),
			expected: day(2023, time.June, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ReceivedDate(tt.anchor, tt.now, types.BILLING_PERIOD_ANNUAL)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRegularizationAmount(t *testing.T) {
	svc := NewRegularizationService(newCalcParams())

	tests := []struct {
		name           string
		base           types.Money
		overduePeriods int
		includeCurrent bool
		expected       types.Money
	}{
		{"ZeroOverdue_ChargesCurrentPeriod", 10000, 0, true, 10000},
		{"TwoOverdue_PlusCurrent", 5000, 2, true, 15000},
		{"TwoOverdue_WithoutCurrent", 5000, 2, false, 10000},
		{"ZeroOverdue_WithoutCurrent_StillOnePeriod", 10000, 0, false, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.Amount(tt.base, tt.overduePeriods, tt.includeCurrent))
		})
	}
}

// Full late-payment scenario: contract anchored 2023-05-31, never paid,
// payment arrives 2023-09-10.
func TestRegularization_EndToEnd(t *testing.T) {
	svc := NewRegularizationService(newCalcParams())

	anchor := day(2023, time.May, 31)
	now := day(2023, time.September, 10)

	overdue, err := svc.OverduePeriods(nil, now, types.BILLING_PERIOD_MONTHLY, anchor)
	require.NoError(t, err)
	assert.Equal(t, 2, overdue)

	amount := svc.Amount(types.Money(5000), overdue, true)
	assert.Equal(t, types.Money(15000), amount)

	received, err := svc.ReceivedDate(anchor, now, types.BILLING_PERIOD_MONTHLY)
	require.NoError(t, err)
	// Sep 10 precedes the clamped anchor day (30), so the payment belongs
	// to August's cycle, on the anniversary day
	assert.Equal(t, day(2023, time.August, 31), received)
}
