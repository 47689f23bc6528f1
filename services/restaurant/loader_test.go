package restaurant

import (
	"testing"

	"restohours/models"
	"restohours/services/hours"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadData(t *testing.T) {
	data := []models.RawRestaurant{{Name: "Open on Weekdays", Times: []string{"Mon-Fri 10 am - 10 pm"}}}

	assert.Equal(t, []models.Restaurant{{
		Name: "Open on Weekdays",
		Hours: []models.OperatingHours{
			{DayIdx: 1, Start: 1000, End: 2200},
			{DayIdx: 2, Start: 1000, End: 2200},
			{DayIdx: 3, Start: 1000, End: 2200},
			{DayIdx: 4, Start: 1000, End: 2200},
			{DayIdx: 5, Start: 1000, End: 2200},
		},
	}}, LoadData(data))
}

func TestLoadDataKeepsOrder(t *testing.T) {
	data := []models.RawRestaurant{
		{Name: "b", Times: []string{"Mon 1 pm - 2 pm"}},
		{Name: "a", Times: nil},
		{Name: "c", Times: []string{"Nope 1 pm - 2 pm"}},
	}
	loaded := LoadData(data)
	require.Len(t, loaded, 3)
	assert.Equal(t, "b", loaded[0].Name)
	assert.Equal(t, "a", loaded[1].Name)
	assert.Empty(t, loaded[1].Hours)
	assert.Equal(t, -1, loaded[2].Hours[0].DayIdx)
}

func TestLoadDataWithStrictParser(t *testing.T) {
	data := []models.RawRestaurant{
		{Name: "Good", Times: []string{"Mon 1 pm - 2 pm"}},
		{Name: "Bad", Times: []string{"Mon 1 pm - 2 pm", "Someday 1 pm - 2 pm"}},
	}
	_, err := LoadDataWith(hours.NewParser(hours.WithStrict()), data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `restaurant "Bad"`)

	var perr *hours.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, hours.CodeUnknownDay, perr.Code)

	loaded, err := LoadDataWith(hours.NewParser(hours.WithStrict()), data[:1])
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}
