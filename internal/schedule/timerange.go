package schedule

import (
	"regexp"
	"strconv"
)

// TimeRange is a parsed talk time range in minutes since midnight, keeping
// the literal start/end strings for display.
type TimeRange struct {
	Start      int
	End        int
	StartLabel string
	EndLabel   string
}

// Matches "09:30 – 10:30", "11:20-11:40", "9:15 – 9:30" with an en-dash or
// hyphen, optionally surrounded by whitespace.
var timeRangeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[–-]\s*(\d{1,2}):(\d{2})`)

// ParseTimeRange parses a free-form time-range string. Returns nil when the
// string does not contain a recognizable range; callers treat nil as
// "unknown, assume no conflict" rather than as an error.
func ParseTimeRange(s string) *TimeRange {
	if s == "" {
		return nil
	}

	m := timeRangeRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	startHour, _ := strconv.Atoi(m[1])
	startMin, _ := strconv.Atoi(m[2])
	endHour, _ := strconv.Atoi(m[3])
	endMin, _ := strconv.Atoi(m[4])

	return &TimeRange{
		Start:      startHour*60 + startMin,
		End:        endHour*60 + endMin,
		StartLabel: m[1] + ":" + m[2],
		EndLabel:   m[3] + ":" + m[4],
	}
}
