package hours

import (
	"fmt"

	"restohours/models"
)

// FormatIntTime renders an integer time as a 12-hour clock, e.g. 2430 -> "12:30 AM".
// Values past midnight wrap back into the day.
func FormatIntTime(t int) string {
	t %= models.DayThreshold
	hour, minute := t/100, t%100
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, ampm)
}

// Label describes an interval, e.g. "Mon 5:00 PM - 12:30 AM".
func Label(h models.OperatingHours) string {
	day := "?"
	if h.DayIdx >= 0 && h.DayIdx < len(DaysOfWeek) {
		day = DaysOfWeek[h.DayIdx]
	}
	return fmt.Sprintf("%s %s - %s", day, FormatIntTime(h.Start), FormatIntTime(h.End))
}
