package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breakEvent(title, location string) Event {
	return Event{ID: "event-" + title, Title: title, Location: location, Track: "All", IsBreak: true}
}

func TestMergeBreakEventsPassThrough(t *testing.T) {
	session := Event{ID: "e1", Title: "Session A", Track: "Track 1"}
	single := breakEvent("Coffee Break", "Lobby")

	assert.Equal(t, []Event{session}, MergeBreakEvents([]Event{session}))
	assert.Equal(t, []Event{session, single}, MergeBreakEvents([]Event{session, single}))
}

func TestMergeBreakEventsCoffeeHeuristic(t *testing.T) {
	events := []Event{
		breakEvent("Coffee Break", "Lobby"),
		breakEvent("Morning Break", "Foyer"),
		breakEvent("Tea", "Lobby"),
	}

	merged := MergeBreakEvents(events)
	require.Len(t, merged, 1)
	assert.Equal(t, "Coffee Break", merged[0].Title)
	assert.Equal(t, "All", merged[0].Track)
	assert.True(t, merged[0].IsBreak)
	assert.Empty(t, merged[0].Talks)
	assert.Equal(t, "Lobby / Foyer", merged[0].Location)
}

func TestMergeBreakEventsLunchWins(t *testing.T) {
	merged := MergeBreakEvents([]Event{
		breakEvent("Coffee Break", ""),
		breakEvent("Lunch", "Cafeteria"),
	})
	require.Len(t, merged, 1)
	assert.Equal(t, "Lunch Break", merged[0].Title)
	assert.Equal(t, "Cafeteria", merged[0].Location)
}

func TestMergeBreakEventsIdenticalTitles(t *testing.T) {
	merged := MergeBreakEvents([]Event{
		breakEvent("Refreshments", "Hall 1"),
		breakEvent("Refreshments", "Hall 1"),
	})
	require.Len(t, merged, 1)
	assert.Equal(t, "Refreshments", merged[0].Title)
	assert.Equal(t, "Hall 1", merged[0].Location)
}

func TestMergeBreakEventsJoinsUnrelatedTitles(t *testing.T) {
	merged := MergeBreakEvents([]Event{
		breakEvent("Poster Walk", ""),
		breakEvent("Networking", ""),
	})
	require.Len(t, merged, 1)
	assert.Equal(t, "Poster Walk & Networking", merged[0].Title)
	assert.Equal(t, "", merged[0].Location)
}

func TestMergeBreakEventsKeepsSessionsFirst(t *testing.T) {
	session := Event{ID: "e1", Title: "Session A", Track: "Track 1"}
	merged := MergeBreakEvents([]Event{
		breakEvent("Coffee Break", ""),
		session,
		breakEvent("Snacks", ""),
	})
	require.Len(t, merged, 2)
	assert.Equal(t, "Session A", merged[0].Title)
	assert.True(t, merged[1].IsBreak)
}

func TestMergeBreakEventsIdempotent(t *testing.T) {
	merged := MergeBreakEvents([]Event{
		breakEvent("Coffee Break", "Lobby"),
		breakEvent("Tea Break", "Foyer"),
	})
	require.Len(t, merged, 1)

	again := MergeBreakEvents(merged)
	assert.Equal(t, merged, again)
}
