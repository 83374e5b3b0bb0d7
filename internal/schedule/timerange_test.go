package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
		end   int
	}{
		{"en dash with spaces", "09:30 – 10:30", 9*60 + 30, 10*60 + 30},
		{"hyphen no spaces", "10:00-10:45", 10 * 60, 10*60 + 45},
		{"single digit hours", "9:15 – 9:30", 9*60 + 15, 9*60 + 30},
		{"embedded in text", "Session 11:20 – 11:40 (Room B)", 11*60 + 20, 11*60 + 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := ParseTimeRange(tt.input)
			require.NotNil(t, tr)
			assert.Equal(t, tt.start, tr.Start)
			assert.Equal(t, tt.end, tr.End)
		})
	}
}

func TestParseTimeRangeLabels(t *testing.T) {
	tr := ParseTimeRange("9:05 – 10:30")
	require.NotNil(t, tr)
	assert.Equal(t, "9:05", tr.StartLabel)
	assert.Equal(t, "10:30", tr.EndLabel)
}

func TestParseTimeRangeNoMatch(t *testing.T) {
	for _, input := range []string{"", "TBD", "morning session", "12:00", "12h00 - 13h00"} {
		assert.Nil(t, ParseTimeRange(input), "input %q", input)
	}
}

func TestParseTimeRangeOvernight(t *testing.T) {
	// An end before the start is returned as-is; overnight ranges are not
	// special-cased.
	tr := ParseTimeRange("23:30 – 00:15")
	require.NotNil(t, tr)
	assert.Equal(t, 23*60+30, tr.Start)
	assert.Equal(t, 15, tr.End)
	assert.Greater(t, tr.Start, tr.End)
}
