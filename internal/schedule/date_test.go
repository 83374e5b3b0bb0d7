package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestParseDayLabel(t *testing.T) {
	date := ParseDayLabel("Sunday 10th August", refNow)
	require.NotNil(t, date)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.August, date.Month())
	assert.Equal(t, 10, date.Day())
}

func TestParseDayLabelOrdinalSuffixes(t *testing.T) {
	for label, day := range map[string]int{
		"Monday 1st September":   1,
		"Tuesday 2nd September":  2,
		"Wednesday 3rd December": 3,
		"Thursday 4 January":     4,
	} {
		date := ParseDayLabel(label, refNow)
		require.NotNil(t, date, "label %q", label)
		assert.Equal(t, day, date.Day(), "label %q", label)
	}
}

func TestParseDayLabelCaseInsensitiveMonth(t *testing.T) {
	date := ParseDayLabel("friday 15th AUGUST", refNow)
	require.NotNil(t, date)
	assert.Equal(t, time.August, date.Month())
}

func TestParseDayLabelUnknownMonth(t *testing.T) {
	assert.Nil(t, ParseDayLabel("Funday 10th Augtober", refNow))
}

func TestParseDayLabelNoStructuralMatch(t *testing.T) {
	for _, label := range []string{"", "Sunday", "August 2025", "Day One"} {
		assert.Nil(t, ParseDayLabel(label, refNow), "label %q", label)
	}
}

func TestParseDayLabelYearFromReference(t *testing.T) {
	later := time.Date(2031, time.January, 2, 0, 0, 0, 0, time.UTC)
	date := ParseDayLabel("Sunday 10th August", later)
	require.NotNil(t, date)
	assert.Equal(t, 2031, date.Year())
}
