package hours

import (
	"fmt"
	"testing"

	"restohours/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOperatingHoursSimpleRange(t *testing.T) {
	assert.Equal(t, []models.OperatingHours{
		{DayIdx: 1, Start: 1000, End: 2200},
		{DayIdx: 2, Start: 1000, End: 2200},
		{DayIdx: 3, Start: 1000, End: 2200},
	}, ToOperatingHours([]string{"Mon-Wed 10 am - 10 pm"}))
}

func TestToOperatingHoursIntoFollowingDay(t *testing.T) {
	assert.Equal(t, []models.OperatingHours{
		{DayIdx: 1, Start: 1000, End: 2500},
		{DayIdx: 2, Start: 0, End: 100},
		{DayIdx: 2, Start: 1000, End: 2500},
		{DayIdx: 3, Start: 0, End: 100},
	}, ToOperatingHours([]string{"Mon-Tue 10 am - 1 am"}))
}

func TestToOperatingHoursMultipleDayRanges(t *testing.T) {
	assert.Equal(t, []models.OperatingHours{
		{DayIdx: 1, Start: 1000, End: 2200},
		{DayIdx: 2, Start: 1000, End: 2200},
		// closed Wednesday
		{DayIdx: 4, Start: 1000, End: 2200},
		{DayIdx: 5, Start: 1000, End: 2200},
	}, ToOperatingHours([]string{"Mon-Tue, Thu-Fri 10 am - 10 pm"}))
}

func TestToOperatingHoursMultipleEntries(t *testing.T) {
	times := []string{
		"Mon 10 am - 10 pm",
		"Wed-Thu, Sat 10 am - 11 pm",
	}
	assert.Equal(t, []models.OperatingHours{
		{DayIdx: 1, Start: 1000, End: 2200},
		{DayIdx: 3, Start: 1000, End: 2300},
		{DayIdx: 4, Start: 1000, End: 2300},
		{DayIdx: 6, Start: 1000, End: 2300},
	}, ToOperatingHours(times))
}

func TestToOperatingHoursWeek(t *testing.T) {
	times := []string{"Mon-Wed 5 pm - 12:30 am", "Thu-Fri 5 pm - 1:30 am", "Sat 3 pm - 1:30 am", "Sun 3 pm - 11:30 pm"}
	assert.Equal(t, []models.OperatingHours{
		{DayIdx: 1, Start: 1700, End: 2430},
		{DayIdx: 2, Start: 0, End: 30},
		{DayIdx: 2, Start: 1700, End: 2430},
		{DayIdx: 3, Start: 0, End: 30},
		{DayIdx: 3, Start: 1700, End: 2430},
		{DayIdx: 4, Start: 0, End: 30},
		{DayIdx: 4, Start: 1700, End: 2530},
		{DayIdx: 5, Start: 0, End: 130},
		{DayIdx: 5, Start: 1700, End: 2530},
		{DayIdx: 6, Start: 0, End: 130},
		{DayIdx: 6, Start: 1500, End: 2530},
		{DayIdx: 0, Start: 0, End: 130},
		{DayIdx: 0, Start: 1500, End: 2330},
	}, ToOperatingHours(times))
}

func TestToOperatingHoursSaturdayWrap(t *testing.T) {
	assert.Equal(t, []models.OperatingHours{
		{DayIdx: 6, Start: 1800, End: 2600},
		{DayIdx: 0, Start: 0, End: 200},
		{DayIdx: 0, Start: 1800, End: 2600},
		{DayIdx: 1, Start: 0, End: 200},
	}, ToOperatingHours([]string{"Sat-Sun 6 pm - 2 am"}))
}

func TestSingleDayEntries(t *testing.T) {
	for dayIdx, day := range DaysOfWeek {
		for start := 1; start <= 11; start++ {
			for end := 1; end <= 11; end++ {
				hours := ToOperatingHours([]string{fmt.Sprintf("%s %d am - %d pm", day, start, end)})
				require.Len(t, hours, 1)
				h := hours[0]
				assert.Equal(t, dayIdx, h.DayIdx)
				assert.Less(t, h.Start, h.End)
				assert.GreaterOrEqual(t, h.Start, 0)
				assert.LessOrEqual(t, h.End, 2359)
			}
		}
	}
}

func TestMidnightCrossingEmitsSpillover(t *testing.T) {
	for dayIdx, day := range DaysOfWeek {
		hours := ToOperatingHours([]string{day + " 9 pm - 3:15 am"})
		require.Len(t, hours, 2)
		assert.Equal(t, models.OperatingHours{DayIdx: dayIdx, Start: 2100, End: 315 + 2400}, hours[0])
		assert.Equal(t, models.OperatingHours{DayIdx: NextDayIdx(dayIdx), Start: 0, End: 315}, hours[1])
	}
}

func TestBestEffortUnknownDays(t *testing.T) {
	p := NewParser()
	assert.Equal(t, BestEffort, p.Mode())

	hours, err := p.Parse([]string{"Xyz 10 am - 10 pm"})
	require.NoError(t, err)
	assert.Equal(t, []models.OperatingHours{{DayIdx: -1, Start: 1000, End: 2200}}, hours)

	// the spillover of an unknown day lands on Sunday
	hours, err = p.Parse([]string{"Xyz 10 pm - 1 am"})
	require.NoError(t, err)
	assert.Equal(t, []models.OperatingHours{
		{DayIdx: -1, Start: 2200, End: 2500},
		{DayIdx: 0, Start: 0, End: 100},
	}, hours)

	hours, err = p.Parse([]string{"Mon-Funday 10 am - 10 pm"})
	require.NoError(t, err)
	assert.Equal(t, []models.OperatingHours{{DayIdx: 1, Start: 1000, End: 2200}}, hours)
}

func TestBestEffortMalformedEntries(t *testing.T) {
	assert.Empty(t, ToOperatingHours([]string{"10 am - 10 pm"}))
	assert.Empty(t, ToOperatingHours([]string{""}))
	// a leading day is not kept when the entry is too short to hold a full range
	assert.Empty(t, ToOperatingHours([]string{"Mon 10 am"}))
	assert.Equal(t, []models.OperatingHours{{DayIdx: 2, Start: 0, End: 2200}},
		ToOperatingHours([]string{"Tue ?? am - 10 pm"}))
}

func TestStrictParser(t *testing.T) {
	p := NewParser(WithStrict())
	assert.Equal(t, Strict, p.Mode())

	hours, err := p.Parse([]string{"Mon-Tue, Thu 11:30 AM - 9 PM"})
	require.NoError(t, err)
	assert.Len(t, hours, 3)

	tests := []struct {
		entry string
		code  string
	}{
		{"Xyz 10 am - 10 pm", CodeUnknownDay},
		{"Mon-Funday 10 am - 10 pm", CodeUnknownDay},
		{"10 am - 10 pm", CodeMissingDays},
		{"Mon 10 am to 10 pm", CodeMalformedTime},
		{"Mon, Tue 10 am 10 pm", CodeMalformedTime},
		{"Mon 25 am - 10 pm", CodeMalformedTime},
	}
	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			_, err := p.Parse([]string{"Sun 1 pm - 2 pm", tt.entry})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schedule entry 1")
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.code, perr.Code)
			assert.Equal(t, tt.entry, perr.Entry)
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("strict")
	require.NoError(t, err)
	assert.Equal(t, Strict, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, BestEffort, m)
	assert.Equal(t, "best-effort", m.String())

	_, err = ParseMode("lenient")
	assert.Error(t, err)
}
