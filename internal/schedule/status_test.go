package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusAt(t *testing.T) {
	base := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	talk := enrichedTalk("a", "day-1", base.Add(9*time.Hour), base.Add(10*time.Hour))

	assert.Equal(t, StatusUpcoming, StatusAt(&talk, base.Add(8*time.Hour)))
	assert.Equal(t, StatusLive, StatusAt(&talk, base.Add(9*time.Hour)))
	assert.Equal(t, StatusLive, StatusAt(&talk, base.Add(9*time.Hour+30*time.Minute)))
	assert.Equal(t, StatusLive, StatusAt(&talk, base.Add(10*time.Hour)))
	assert.Equal(t, StatusPast, StatusAt(&talk, base.Add(10*time.Hour+time.Second)))

	untimed := timedTalk("b", "day-1", "TBD")
	assert.Equal(t, StatusUnknown, StatusAt(&untimed, base))
}

func TestCurrentAndNext(t *testing.T) {
	base := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	talks := []Talk{
		enrichedTalk("later", "day-1", base.Add(14*time.Hour), base.Add(15*time.Hour)),
		enrichedTalk("running", "day-1", base.Add(9*time.Hour), base.Add(10*time.Hour)),
		enrichedTalk("soon", "day-1", base.Add(11*time.Hour), base.Add(12*time.Hour)),
		timedTalk("untimed", "day-1", "TBD"),
	}

	current, next := CurrentAndNext(talks, base.Add(9*time.Hour+30*time.Minute))
	require.NotNil(t, current)
	assert.Equal(t, "running", current.ID)
	require.NotNil(t, next)
	assert.Equal(t, "soon", next.ID)
}

func TestCurrentAndNextNoneRunning(t *testing.T) {
	base := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	talks := []Talk{
		enrichedTalk("done", "day-1", base.Add(8*time.Hour), base.Add(9*time.Hour)),
	}

	current, next := CurrentAndNext(talks, base.Add(10*time.Hour))
	assert.Nil(t, current)
	assert.Nil(t, next)
}

func TestFindTalkByID(t *testing.T) {
	date := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	days := testDay(&date)

	found := FindTalkByID(days, "t1")
	require.NotNil(t, found)
	assert.Equal(t, "Welcome Keynote", found.Title)

	assert.Nil(t, FindTalkByID(days, "missing"))
}

func TestFindTalkByTitleAndTime(t *testing.T) {
	date := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	days := testDay(&date)

	exact := FindTalkByTitleAndTime(days, "welcome keynote", "09:00 – 09:45")
	require.NotNil(t, exact)
	assert.Equal(t, "t1", exact.ID)

	// Title-only fallback when the time string differs.
	fallback := FindTalkByTitleAndTime(days, "Welcome Keynote", "10:00 – 11:00")
	require.NotNil(t, fallback)
	assert.Equal(t, "t1", fallback.ID)

	assert.Nil(t, FindTalkByTitleAndTime(days, "Nonexistent", ""))
}

func TestResolveTalksSkipsMissingIDs(t *testing.T) {
	date := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	days := testDay(&date)

	talks := ResolveTalks(days, []string{"t1", "gone", "t2"})
	require.Len(t, talks, 2)
	assert.Equal(t, "t1", talks[0].ID)
	assert.Equal(t, "t2", talks[1].ID)
}
