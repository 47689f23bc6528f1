package hours

import (
	"strings"
	"time"
)

// DaysOfWeek lists the recognized abbreviations in index order.
var DaysOfWeek = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayOfWeekIdx returns the index of a short day name, or -1 when it is not recognized.
// Matching is exact: "mon" and "Monday" are both unknown.
func DayOfWeekIdx(name string) int {
	for i, d := range DaysOfWeek {
		if d == name {
			return i
		}
	}
	return -1
}

// NextDayIdx returns the day following dayIdx, wrapping Saturday to Sunday.
func NextDayIdx(dayIdx int) int {
	dayIdx++
	if dayIdx == len(DaysOfWeek) {
		dayIdx = 0
	}
	return dayIdx
}

// WeekdayIdx returns the day index of t in its own location.
func WeekdayIdx(t time.Time) int {
	return int(t.Weekday())
}

// daySet keeps resolved day indexes in first-seen order.
type daySet struct {
	seen  map[int]bool
	order []int
}

func newDaySet() *daySet {
	return &daySet{seen: make(map[int]bool)}
}

func (s *daySet) add(dayIdx int) {
	if s.seen[dayIdx] {
		return
	}
	s.seen[dayIdx] = true
	s.order = append(s.order, dayIdx)
}

// ParseDayRanges resolves tokens such as "Mon", "Mon-Wed" or "Sat-Sun" into day
// indexes, in the order they are first reached. Unknown days are not reported: an
// unknown start day contributes -1 and the walk continues from Sunday, and an unknown
// end day stops the walk after the start day.
func ParseDayRanges(dayRanges []string) []int {
	days, _ := parseDayRanges("", dayRanges, false)
	return days
}

func parseDayRanges(entry string, dayRanges []string, strict bool) ([]int, error) {
	set := newDaySet()
	for _, r := range dayRanges {
		parts := strings.Split(r, "-")
		start, end := parts[0], ""
		if len(parts) > 1 {
			end = parts[1]
		}

		dayIdx := DayOfWeekIdx(start)
		endIdx := DayOfWeekIdx(end)
		if strict {
			if len(parts) > 2 {
				return nil, newParseError(CodeUnknownDay, entry, r, "too many days in range")
			}
			if dayIdx == -1 {
				return nil, newParseError(CodeUnknownDay, entry, start, "unknown day")
			}
			if len(parts) == 2 && endIdx == -1 {
				return nil, newParseError(CodeUnknownDay, entry, end, "unknown day")
			}
		}

		set.add(dayIdx)
		for endIdx != -1 && dayIdx != endIdx {
			dayIdx = NextDayIdx(dayIdx)
			set.add(dayIdx)
		}
	}
	return set.order, nil
}
