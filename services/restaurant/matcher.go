package restaurant

import (
	"time"

	"restohours/models"
	"restohours/services/hours"
)

// Matcher answers which restaurants are open at a point in time.
type Matcher struct {
	// Inclusive treats the start and end of every interval as open.
	Inclusive bool
}

// NewMatcher returns a Matcher with inclusive boundaries.
func NewMatcher() Matcher {
	return Matcher{Inclusive: true}
}

// FindOpen returns the names of the restaurants open at at, in dataset order.
func (m Matcher) FindOpen(db []models.Restaurant, at time.Time) []string {
	return FindOpenAt(db, hours.WeekdayIdx(at), hours.TimeToInt(at), m.Inclusive)
}

// FindOpen is Matcher.FindOpen with inclusive boundaries.
func FindOpen(db []models.Restaurant, at time.Time) []string {
	return NewMatcher().FindOpen(db, at)
}

// FindOpenAt is the day index and integer time form of FindOpen. A dayIdx of -1
// matches nothing. Each restaurant contributes its name at most once; two entries
// sharing a name are both reported.
func FindOpenAt(db []models.Restaurant, dayIdx, timeInt int, inclusive bool) []string {
	names := []string{}
	for _, r := range db {
		for _, item := range r.Hours {
			if InRange(item, timeInt, dayIdx, inclusive) {
				names = append(names, r.Name)
				break
			}
		}
	}
	return names
}

// IsTimeInRange reports whether dayIdx and timeInt fall inside item, boundaries included.
func IsTimeInRange(item models.OperatingHours, timeInt, dayIdx int) bool {
	return InRange(item, timeInt, dayIdx, true)
}

// InRange reports whether dayIdx and timeInt fall inside item. When inclusive is false
// the start and end times themselves are outside the range.
func InRange(item models.OperatingHours, timeInt, dayIdx int, inclusive bool) bool {
	if dayIdx != item.DayIdx {
		return false
	}
	if inclusive {
		return item.Start <= timeInt && item.End >= timeInt
	}
	return item.Start < timeInt && item.End > timeInt
}
