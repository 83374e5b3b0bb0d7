package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDay(date *time.Time) []Day {
	return []Day{{
		Label: "Sunday 10th August",
		DayID: "sunday-10th-august",
		Date:  date,
		TimeSlots: []TimeSlot{
			{
				Time: "09:00",
				Events: []Event{{
					ID:    "e1",
					Track: "Track 1",
					Title: "Opening Session",
					Talks: []Talk{
						{ID: "t1", Title: "Welcome Keynote", Time: "09:00 – 09:45", EventID: "e1"},
						{ID: "t2", Title: "Untimed Talk", Time: "TBD", EventID: "e1"},
					},
				}},
			},
			{Time: "── Afternoon ──", IsPeriodSeparator: true},
		},
	}}
}

func TestEnrichDateTimes(t *testing.T) {
	date := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	days := testDay(&date)

	EnrichDateTimes(days)

	talk := days[0].TimeSlots[0].Events[0].Talks[0]
	require.NotNil(t, talk.StartDateTime)
	require.NotNil(t, talk.EndDateTime)
	assert.Equal(t, time.Date(2025, time.August, 10, 9, 0, 0, 0, time.UTC), *talk.StartDateTime)
	assert.Equal(t, time.Date(2025, time.August, 10, 9, 45, 0, 0, time.UTC), *talk.EndDateTime)
	assert.Equal(t, "sunday-10th-august", talk.DayID)
	require.NotNil(t, talk.DayDate)
	assert.Equal(t, date, *talk.DayDate)
}

func TestEnrichDateTimesUnparseableTimeStillStamps(t *testing.T) {
	date := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	days := testDay(&date)

	EnrichDateTimes(days)

	untimed := days[0].TimeSlots[0].Events[0].Talks[1]
	assert.Nil(t, untimed.StartDateTime)
	assert.Nil(t, untimed.EndDateTime)
	assert.Equal(t, "sunday-10th-august", untimed.DayID)
	require.NotNil(t, untimed.DayDate)
}

func TestEnrichDateTimesNoDayDate(t *testing.T) {
	days := testDay(nil)

	EnrichDateTimes(days)

	talk := days[0].TimeSlots[0].Events[0].Talks[0]
	assert.Nil(t, talk.StartDateTime)
	assert.Nil(t, talk.EndDateTime)
	assert.Equal(t, "sunday-10th-august", talk.DayID)
	assert.Nil(t, talk.DayDate)
}

func TestEnrichDateTimesIdempotent(t *testing.T) {
	date := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	days := testDay(&date)

	EnrichDateTimes(days)
	first := days[0].TimeSlots[0].Events[0].Talks[0]

	EnrichDateTimes(days)
	second := days[0].TimeSlots[0].Events[0].Talks[0]

	assert.Equal(t, first, second)
}

func TestRestoreAfterSerializationRoundTrip(t *testing.T) {
	date := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	days := testDay(&date)
	EnrichDateTimes(days)

	// Persisting serializes dates to RFC 3339 strings; loading decodes them
	// back, and restore plus re-enrichment must reproduce the same instants.
	raw, err := json.Marshal(days)
	require.NoError(t, err)

	var restored []Day
	require.NoError(t, json.Unmarshal(raw, &restored))
	RestoreDates(restored)
	EnrichDateTimes(restored)

	orig := days[0].TimeSlots[0].Events[0].Talks[0]
	back := restored[0].TimeSlots[0].Events[0].Talks[0]
	require.NotNil(t, back.StartDateTime)
	assert.True(t, orig.StartDateTime.Equal(*back.StartDateTime))
	assert.True(t, orig.EndDateTime.Equal(*back.EndDateTime))
	assert.True(t, orig.DayDate.Equal(*back.DayDate))
}
