package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "Jan31_PlusOne_LeapYear",
			start:    date(2024, time.January, 31),
			months:   1,
			expected: date(2024, time.February, 29),
		},
		{
			name:     "Jan31_PlusOne_NonLeapYear",
			start:    date(2023, time.January, 31),
			months:   1,
			expected: date(2023, time.February, 28),
		},
		{
			name:     "Day31_Into30DayMonth",
			start:    date(2024, time.March, 31),
			months:   1,
			expected: date(2024, time.April, 30),
		},
		{
			name:     "PlainAdd_NoClamp",
			start:    date(2024, time.May, 15),
			months:   1,
			expected: date(2024, time.June, 15),
		},
		{
			name:     "YearRollover",
			start:    date(2023, time.November, 30),
			months:   3,
			expected: date(2024, time.February, 29),
		},
		{
			name:     "NegativeMonths",
			start:    date(2024, time.March, 31),
			months:   -1,
			expected: date(2024, time.February, 29),
		},
		{
			name:     "NegativeAcrossYear",
			start:    date(2024, time.January, 31),
			months:   -2,
			expected: date(2023, time.November, 30),
		},
		{
			name:     "ZeroMonths",
			start:    date(2024, time.July, 4),
			months:   0,
			expected: date(2024, time.July, 4),
		},
		{
			name:     "TwelveMonths",
			start:    date(2024, time.February, 29),
			months:   12,
			expected: date(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddYears_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		years    int
		expected time.Time
	}{
		{
			name:     "Feb29_ToNonLeapYear",
			start:    date(2024, time.February, 29),
			years:    1,
			expected: date(2025, time.February, 28),
		},
		{
			name:     "Feb29_ToLeapYear",
			start:    date(2024, time.February, 29),
			years:    4,
			expected: date(2028, time.February, 29),
		},
		{
			name:     "PlainAdd",
			start:    date(2023, time.May, 31),
			years:    2,
			expected: date(2025, time.May, 31),
		},
		{
			name:     "NegativeYears",
			start:    date(2024, time.February, 29),
			years:    -1,
			expected: date(2023, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddYears(tt.start, tt.years))
		})
	}
}

func TestAddMonths_PreservesClock(t *testing.T) {
	start := time.Date(2024, time.January, 31, 13, 45, 10, 0, time.UTC)
	got := AddMonths(start, 1)
	assert.Equal(t, time.Date(2024, time.February, 29, 13, 45, 10, 0, time.UTC), got)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}
