package hours

import (
	"strconv"
	"strings"
	"time"

	"restohours/models"
)

// ToIntTime converts a 12-hour clock such as ("9:30", "pm") to hour*100+minute in
// 24-hour form. An empty amPm counts as "am", and hour or minute digits that cannot
// be read count as zero.
func ToIntTime(clock, amPm string) int {
	hourStr, minStr, _ := strings.Cut(clock, ":")
	return clockToInt(leadingInt(hourStr), leadingInt(minStr), amPm)
}

// TimeToInt returns the integer time of t's wall clock, always within 0..2359.
func TimeToInt(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}

// ParseTimeRange reads the five time tokens of a schedule entry,
// e.g. ["10", "am", "-", "1:30", "am"]. An end before the start is moved into the
// following day by adding DayThreshold.
func ParseTimeRange(tokens []string) models.TimeRange {
	startTime, startA := tokenAt(tokens, 0, "0"), tokenAt(tokens, 1, "am")
	endTime, endA := tokenAt(tokens, 3, "0"), tokenAt(tokens, 4, "am")
	return normalizeRange(ToIntTime(startTime, startA), ToIntTime(endTime, endA))
}

func parseTimeRangeStrict(entry string, tokens []string) (models.TimeRange, error) {
	if len(tokens) != 5 || tokens[2] != "-" {
		return models.TimeRange{}, newParseError(CodeMalformedTime, entry, strings.Join(tokens, " "), "expected time range like \"10 am - 10 pm\"")
	}
	start, err := strictIntTime(entry, tokens[0], tokens[1])
	if err != nil {
		return models.TimeRange{}, err
	}
	end, err := strictIntTime(entry, tokens[3], tokens[4])
	if err != nil {
		return models.TimeRange{}, err
	}
	return normalizeRange(start, end), nil
}

func normalizeRange(start, end int) models.TimeRange {
	if end < start {
		// the time range goes into the next day
		end += models.DayThreshold
	}
	return models.TimeRange{Start: start, End: end}
}

func strictIntTime(entry, clock, amPm string) (int, error) {
	lower := strings.ToLower(amPm)
	if lower != "am" && lower != "pm" {
		return 0, newParseError(CodeMalformedTime, entry, amPm, "expected am or pm")
	}
	hourStr, minStr, hasMin := strings.Cut(clock, ":")
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return 0, newParseError(CodeMalformedTime, entry, clock, "invalid hour")
	}
	minute := 0
	if hasMin {
		minute, err = strconv.Atoi(minStr)
		if err != nil || minute < 0 || minute > 59 || len(minStr) != 2 {
			return 0, newParseError(CodeMalformedTime, entry, clock, "invalid minute")
		}
	}
	return clockToInt(hour, minute, lower), nil
}

func clockToInt(hour, minute int, amPm string) int {
	lower := strings.ToLower(amPm)
	if lower == "" {
		lower = "am"
	}
	if hour < 12 && lower == "pm" {
		hour += 12
	} else if hour == 12 && lower == "am" {
		hour -= 12
	}
	return hour*100 + minute
}

// leadingInt reads the run of digits at the start of s, so "10am" yields 10.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func tokenAt(tokens []string, i int, def string) string {
	if i < len(tokens) && tokens[i] != "" {
		return tokens[i]
	}
	return def
}
