package schedule

import (
	"strings"

	"github.com/google/uuid"
)

// MergeBreakEvents collapses multiple break events in one time slot into a
// single synthesized break. Slots with at most one break pass through
// unchanged, which makes the merge idempotent. Non-break events keep their
// order and precede the merged break.
func MergeBreakEvents(events []Event) []Event {
	var breaks, sessions []Event
	for _, e := range events {
		if e.IsBreak {
			breaks = append(breaks, e)
		} else {
			sessions = append(sessions, e)
		}
	}

	if len(breaks) <= 1 {
		return events
	}

	merged := Event{
		ID:       "merged-break-" + uuid.NewString(),
		Track:    "All",
		Title:    mergedBreakTitle(breaks),
		Location: mergedBreakLocation(breaks),
		IsBreak:  true,
	}

	return append(sessions, merged)
}

// mergedBreakTitle picks a title for a set of merged breaks: a shared title
// when they all agree, otherwise the common break type, otherwise a join of
// the distinct titles.
func mergedBreakTitle(breaks []Event) string {
	unique := distinct(breaks, func(e Event) string { return e.Title })
	if len(unique) == 1 {
		return unique[0]
	}

	var hasLunch, hasCoffee, hasBreak bool
	for _, e := range breaks {
		t := strings.ToLower(e.Title)
		hasLunch = hasLunch || strings.Contains(t, "lunch")
		hasCoffee = hasCoffee || strings.Contains(t, "coffee")
		hasBreak = hasBreak || strings.Contains(t, "break")
	}

	if hasLunch {
		return "Lunch Break"
	}
	if hasCoffee || hasBreak {
		return "Coffee Break"
	}
	return strings.Join(unique, " & ")
}

func mergedBreakLocation(breaks []Event) string {
	unique := distinct(breaks, func(e Event) string { return e.Location })
	if len(unique) == 0 {
		return ""
	}
	if len(unique) == 1 {
		return unique[0]
	}
	return strings.Join(unique, " / ")
}

// distinct returns the non-empty values of key over events, deduplicated in
// first-seen order.
func distinct(events []Event, key func(Event) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range events {
		v := key(e)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
