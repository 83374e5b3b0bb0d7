package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Matches day labels like "Sunday 10th August": weekday, numeric day with an
// optional ordinal suffix, month name.
var dayLabelRe = regexp.MustCompile(`(\w+)\s+(\d{1,2})(?:st|nd|rd|th)?\s+(\w+)`)

var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseDayLabel parses a loose day label such as "Sunday 10th August" into a
// calendar date. The label carries no year, so the year is taken from now;
// conferences spanning a year boundary are not supported. Returns nil when
// the label doesn't match structurally or the month name is unknown.
func ParseDayLabel(label string, now time.Time) *time.Time {
	m := dayLabelRe.FindStringSubmatch(label)
	if m == nil {
		return nil
	}

	month, ok := monthsByName[strings.ToLower(m[3])]
	if !ok {
		return nil
	}

	dayNum, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}

	date := time.Date(now.Year(), month, dayNum, 0, 0, 0, 0, now.Location())
	return &date
}
