package share

import (
	"testing"

	"github.com/conference-planner/backend/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localSchedule() []schedule.Day {
	return []schedule.Day{{
		Label: "Sunday 10th August",
		DayID: "sunday-10th-august",
		TimeSlots: []schedule.TimeSlot{{
			Time: "09:00",
			Events: []schedule.Event{{
				ID:    "e1",
				Title: "Opening Session",
				Talks: []schedule.Talk{
					{ID: "local-1", Title: "Welcome Keynote", Time: "09:00 – 09:45"},
					{ID: "local-2", Title: "Sponsor Notes", Time: "09:45 – 10:00"},
				},
			}},
		}},
	}}
}

func TestMatchByTitleAndTime(t *testing.T) {
	payload := Payload{Talks: []Talk{
		{ID: "remote-9", Title: "welcome keynote", Time: "09:00 – 09:45"},
	}}

	result := Match(payload, localSchedule())
	assert.Equal(t, 1, result.Matched)
	assert.Zero(t, result.Unmatched)
	// Local IDs win over the IDs carried in the payload.
	require.Equal(t, []string{"local-1"}, result.TalkIDs)
}

func TestMatchFallsBackToTitleOnly(t *testing.T) {
	payload := Payload{Talks: []Talk{
		{Title: "Sponsor Notes", Time: "10:00 – 10:15"},
	}}

	result := Match(payload, localSchedule())
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, []string{"local-2"}, result.TalkIDs)
}

func TestMatchReportsUnmatched(t *testing.T) {
	payload := Payload{Talks: []Talk{
		{Title: "Welcome Keynote", Time: "09:00 – 09:45"},
		{Title: "Talk From Another Conference", Time: "11:00 – 11:30"},
	}}

	result := Match(payload, localSchedule())
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, 1, result.Unmatched)
	assert.Equal(t, []string{"Talk From Another Conference"}, result.UnmatchedTalks)
	assert.Equal(t, []string{"local-1"}, result.TalkIDs)
}

func TestMatchDeduplicatesIDs(t *testing.T) {
	payload := Payload{Talks: []Talk{
		{Title: "Welcome Keynote", Time: "09:00 – 09:45"},
		{Title: "Welcome Keynote", Time: "09:00 – 09:45"},
	}}

	result := Match(payload, localSchedule())
	assert.Equal(t, 2, result.Matched)
	assert.Equal(t, []string{"local-1"}, result.TalkIDs)
}
