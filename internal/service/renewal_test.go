package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petshield/petshield/internal/logger"
	"github.com/petshield/petshield/internal/types"
)

func newCalcParams() ServiceParams {
	return ServiceParams{Logger: logger.GetLogger()}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextRenewalDate_Monthly(t *testing.T) {
	svc := NewRenewalService(newCalcParams())

	tests := []struct {
		name     string
		anchor   time.Time
		now      time.Time
		expected time.Time
	}{
		{
			name:     "MidMonth_BeforeAnchorDay",
			anchor:   day(2023, time.May, 15),
			now:      day(2023, time.September, 10),
			expected: day(2023, time.September, 15),
		},
		{
			name:     "MidMonth_OnAnchorDay_AdvancesToNext",
			anchor:   day(2023, time.May, 15),
			now:      day(2023, time.September, 15),
			expected: day(2023, time.October, 15),
		},
		{
			name:     "AnchorDay31_In30DayMonth_Clamps",
			anchor:   day(2023, time.May, 31),
			now:      day(2023, time.September, 10),
			expected: day(2023, time.September, 30),
		},
		{
			name:     "AnchorDay31_February_LeapYear",
			anchor:   day(2023, time.May, 31),
			now:      day(2024, time.February, 10),
			expected: day(2024, time.February, 29),
		},
		{
			name:     "DecemberRollsToJanuary",
			anchor:   day(2023, time.January, 20),
			now:      day(2023, time.December, 25),
			expected: day(2024, time.January, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.NextRenewalDate(tt.anchor, tt.now, types.BILLING_PERIOD_MONTHLY)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNextRenewalDate_Annual(t *testing.T) {
	svc := NewRenewalService(newCalcParams())

	tests := []struct {
		name     string
		anchor   time.Time
		now      time.Time
		expected time.Time
	}{
		{
			name:     "AnniversaryStillAhead",
			anchor:   day(2020, time.October, 5),
			now:      day(2023, time.June, 1),
			expected: day(2023, time.October, 5),
		},
		{
			name:     "AnniversaryPassed_AdvancesYear",
			anchor:   day(2020, time.March, 5),
			now:      day(2023, time.June, 1),
			expected: day(2024, time.March, 5),
		},
		{
			name:     "OnAnniversary_AdvancesYear",
			anchor:   day(2020, time.June, 1),
			now:      day(2023, time.June, 1),
			expected: day(2024, time.June, 1),
		},
		{
			name:     "Feb29Anchor_NonLeapTarget_Clamps",
			anchor:   day(2024, time.February, 29),
			now:      day(2024, time.June, 1),
			expected: day(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.NextRenewalDate(tt.anchor, tt.now, types.BILLING_PERIOD_ANNUAL)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Walking the schedule forward with each result as the new current date must
// advance exactly one period at a time and keep tracing back to the anchor,
// even through short months.
func TestNextRenewalDate_AnchoringIdempotence(t *testing.T) {
	svc := NewRenewalService(newCalcParams())

	t.Run("Monthly_AnchorDay31", func(t *testing.T) {
		anchor := day(2024, time.January, 31)
		current := anchor
		for i := 0; i < 24; i++ {
			next, err := svc.NextRenewalDate(anchor, current, types.BILLING_PERIOD_MONTHLY)
			require.NoError(t, err)
			assert.True(t, next.After(current))

			// day is the anchor day, or the last day of a shorter month
			last := types.DaysInMonth(next.Year(), next.Month())
			if last >= anchor.Day() {
				assert.Equal(t, anchor.Day(), next.Day())
			} else {
				assert.Equal(t, last, next.Day())
			}
			current = next
		}
		// 24 single-period steps from January 2024 land on January 2026
		assert.Equal(t, day(2026, time.January, 31), current)
	})

	t.Run("Annual_Feb29Anchor", func(t *testing.T) {
		anchor := day(2024, time.February, 29)
		current := anchor
		for i := 0; i < 4; i++ {
			next, err := svc.NextRenewalDate(anchor, current, types.BILLING_PERIOD_ANNUAL)
			require.NoError(t, err)
			assert.True(t, next.After(current))
			assert.Equal(t, time.February, next.Month())
			current = next
		}
		// leap anchor comes back to Feb 29 on the next leap year
		assert.Equal(t, day(2028, time.February, 29), current)
	})
}

func TestNextRenewalDate_InvalidCadence(t *testing.T) {
	svc := NewRenewalService(newCalcParams())
	_, err := svc.NextRenewalDate(day(2023, time.May, 15), day(2023, time.June, 1), types.BillingPeriod("WEEKLY"))
	require.Error(t, err)
}
