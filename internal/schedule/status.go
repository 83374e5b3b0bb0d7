package schedule

import (
	"sort"
	"time"
)

// TalkStatus classifies a talk relative to the current time.
type TalkStatus string

const (
	StatusUpcoming TalkStatus = "upcoming"
	StatusLive     TalkStatus = "live"
	StatusPast     TalkStatus = "past"
	// StatusUnknown marks talks without enriched instants; they are never
	// reported as started or ended.
	StatusUnknown TalkStatus = "unknown"
)

// StatusAt classifies a talk at the given instant. Boundaries are inclusive:
// a talk is live from its start instant through its end instant.
func StatusAt(t *Talk, now time.Time) TalkStatus {
	if t.StartDateTime == nil || t.EndDateTime == nil {
		return StatusUnknown
	}
	if t.EndDateTime.Before(now) {
		return StatusPast
	}
	if !now.Before(*t.StartDateTime) && !now.After(*t.EndDateTime) {
		return StatusLive
	}
	return StatusUpcoming
}

// CurrentAndNext picks the talk running at now and the earliest talk starting
// after now from a selection. Talks without enriched instants are skipped.
// Either result may be nil.
func CurrentAndNext(talks []Talk, now time.Time) (current, next *Talk) {
	valid := make([]Talk, 0, len(talks))
	for _, t := range talks {
		if t.StartDateTime != nil && t.EndDateTime != nil {
			valid = append(valid, t)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].StartDateTime.Before(*valid[j].StartDateTime)
	})

	for i := range valid {
		if StatusAt(&valid[i], now) == StatusLive {
			current = &valid[i]
			break
		}
	}
	for i := range valid {
		if valid[i].StartDateTime.After(now) {
			next = &valid[i]
			break
		}
	}
	return current, next
}
