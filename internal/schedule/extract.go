package schedule

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// IsBreakEvent reports whether an event is a break rather than a session,
// sniffed from its track and title text. Kept as a standalone predicate so
// the heuristic can be tested and replaced independently of extraction.
func IsBreakEvent(track, title string) bool {
	t := strings.ToLower(track)
	ti := strings.ToLower(title)
	return strings.Contains(t, "all") ||
		strings.Contains(ti, "break") ||
		strings.Contains(ti, "lunch") ||
		strings.Contains(ti, "coffee")
}

// extractEvent turns one ".event" element into an Event with zero or more
// nested talks. Simple events carry only track/title/location; detailed
// events additionally hold an ".event-info-block" listing of talks. Returns
// nil when the block yields no title, guarding against malformed markup.
func extractEvent(sel *goquery.Selection) *Event {
	event := &Event{
		ID: "event-" + uuid.NewString(),
	}

	titleBlock := sel.Find(".event-title-block").First()
	undetailedBlock := sel.Find(".event-undetailed-block").First()

	switch {
	case undetailedBlock.Length() > 0:
		// Simple event, typically a break
		event.Track = text(undetailedBlock, ".event-track")
		event.Title = text(undetailedBlock, ".event-title")
		event.Location = text(undetailedBlock, ".event-loc")
		event.IsBreak = IsBreakEvent(event.Track, event.Title)

	case titleBlock.Length() > 0:
		// Session with individual talks
		event.Track = text(titleBlock, ".event-track")
		event.Title = text(titleBlock, ".event-title")
		event.Location = text(titleBlock, ".event-loc")

		sel.Find(".event-info-block").First().Find(".event-info").Each(func(_ int, info *goquery.Selection) {
			title := strings.TrimSpace(info.ChildrenFiltered("div").First().Text())
			if title == "" {
				return
			}

			event.Talks = append(event.Talks, Talk{
				ID:       "talk-" + uuid.NewString(),
				Title:    title,
				Authors:  text(info, ".eauthors"),
				Time:     text(info, ".etime"),
				EventID:  event.ID,
				Track:    event.Track,
				Location: event.Location,
			})
		})
	}

	if event.Title == "" {
		return nil
	}
	return event
}

// text returns the trimmed text of the first match of selector under sel,
// or "" when absent.
func text(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}
