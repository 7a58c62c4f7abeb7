package types

import "time"

// AddMonths adds n calendar months to t, clamping the day-of-month to the
// last valid day of the target month (Jan 31 + 1 month is Feb 28, or Feb 29
// in a leap year). time.Time.AddDate is not used here because it normalizes
// overflow forward (Jan 31 + 1 month becomes Mar 2/3), which would drift a
// billing anchor. Negative n subtracts months with the same clamping rule.
func AddMonths(t time.Time, n int) time.Time {
	months := int(t.Month()) - 1 + n
	year := t.Year() + months/12
	months %= 12
	if months < 0 {
		months += 12
		year--
	}
	month := time.Month(months + 1)

	day := t.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddYears adds n years to t preserving month and day, clamping Feb 29 to
// Feb 28 when the target year is not a leap year.
func AddYears(t time.Time, n int) time.Time {
	year := t.Year() + n
	day := t.Day()
	if last := DaysInMonth(year, t.Month()); day > last {
		day = last
	}
	return time.Date(year, t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOnly truncates t to midnight UTC so date comparisons ignore the
// time-of-day component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
