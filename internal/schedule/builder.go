package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Builder parses a conference program document into the normalized schedule
// model. The zero interval between parse calls is irrelevant: parsing is a
// pure transform of the markup, so the builder is safe to reuse.
type Builder struct {
	// now supplies the reference time for year inference in day labels.
	now func() time.Time
}

// NewBuilder creates a schedule builder using the wall clock for year
// inference.
func NewBuilder() *Builder {
	return &Builder{now: time.Now}
}

// NewBuilderAt creates a builder with a fixed reference time, used by tests
// to pin the inferred year.
func NewBuilderAt(now func() time.Time) *Builder {
	return &Builder{now: now}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// periodBlock is one raw day/period block: a header's period name plus the
// ordered, unmerged time slots beneath it.
type periodBlock struct {
	name      string
	periodID  string
	roomInfo  string
	timeSlots []TimeSlot
}

// dayGroup accumulates the period blocks sharing one base day label.
type dayGroup struct {
	label   string
	dayID   string
	date    *time.Time
	periods []periodBlock
}

// Parse reads an HTML program page and returns one Day per distinct base day
// label, in the order the days are first encountered. Returns an empty slice
// when the document holds no recognizable schedule blocks.
func (b *Builder) Parse(html string) ([]Day, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing schedule document: %w", err)
	}
	return b.parseDocument(doc), nil
}

func (b *Builder) parseDocument(doc *goquery.Document) []Day {
	groups := make(map[string]*dayGroup)
	var order []string

	doc.Find(".schedule-wrapper").Each(func(i int, wrapper *goquery.Selection) {
		header := wrapper.Find(".head").First()
		if header.Length() == 0 {
			return
		}

		fullLabel := strings.TrimSpace(header.Text())
		periodID := header.AttrOr("id", fmt.Sprintf("day-%d", i))

		// "Sunday 10th August – Morning" splits into the base day label and
		// the period name; headers without an en-dash are a full day.
		baseLabel := strings.TrimSpace(strings.SplitN(fullLabel, " –", 2)[0])
		period := "Full Day"
		if idx := strings.Index(fullLabel, "–"); idx >= 0 {
			period = strings.TrimSpace(fullLabel[idx+len("–"):])
		}

		group, ok := groups[baseLabel]
		if !ok {
			group = &dayGroup{
				label: baseLabel,
				dayID: slugify(baseLabel),
				date:  ParseDayLabel(baseLabel, b.now()),
			}
			groups[baseLabel] = group
			order = append(order, baseLabel)
		}

		block := periodBlock{
			name:     period,
			periodID: periodID,
			roomInfo: strings.TrimSpace(wrapper.Find(".roominfo").First().Text()),
		}

		// Children alternate time labels and event blocks. A time label with
		// no events before the next label is dropped rather than emitted as
		// an empty slot.
		var currentTime string
		var currentEvents []Event
		flush := func() {
			if currentTime != "" && len(currentEvents) > 0 {
				block.timeSlots = append(block.timeSlots, TimeSlot{
					Time:   currentTime,
					Events: currentEvents,
				})
			}
			currentEvents = nil
		}

		wrapper.Children().Each(func(_ int, child *goquery.Selection) {
			switch {
			case child.HasClass("time"):
				flush()
				currentTime = strings.TrimSpace(child.Text())
			case child.HasClass("event"):
				if event := extractEvent(child); event != nil {
					event.DayID = group.dayID
					event.PeriodID = periodID
					event.TimeSlot = currentTime
					for t := range event.Talks {
						event.Talks[t].DayID = group.dayID
						event.Talks[t].TimeSlot = currentTime
					}
					currentEvents = append(currentEvents, *event)
				}
			}
		})
		flush()

		group.periods = append(group.periods, block)
	})

	days := make([]Day, 0, len(order))
	for _, label := range order {
		days = append(days, buildDay(groups[label]))
	}
	return days
}

// buildDay merges a group's periods into one Day: morning periods first,
// separator slots between periods, breaks merged per slot, and the day's
// track set aggregated from non-break events.
func buildDay(group *dayGroup) Day {
	sorted := make([]periodBlock, len(group.periods))
	copy(sorted, group.periods)

	// Morning-first bias only; ties keep encounter order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return isMorning(sorted[i].name) && !isMorning(sorted[j].name)
	})

	var slots []TimeSlot
	trackSet := make(map[string]bool)

	for i, period := range sorted {
		if i > 0 {
			slots = append(slots, TimeSlot{
				Time:              fmt.Sprintf("── %s ──", period.name),
				IsPeriodSeparator: true,
			})
		}

		for _, slot := range period.timeSlots {
			merged := MergeBreakEvents(slot.Events)
			slots = append(slots, TimeSlot{
				Time:   slot.Time,
				Events: merged,
				Period: period.name,
			})

			for _, e := range merged {
				if e.Track != "" && !e.IsBreak {
					trackSet[e.Track] = true
				}
			}
		}
	}

	tracks := make([]string, 0, len(trackSet))
	for t := range trackSet {
		tracks = append(tracks, t)
	}
	sort.Strings(tracks)

	var roomInfos, periods []string
	for _, p := range sorted {
		if p.roomInfo != "" {
			roomInfos = append(roomInfos, p.roomInfo)
		}
		periods = append(periods, p.name)
	}

	return Day{
		Label:     group.label,
		DayID:     group.dayID,
		Date:      group.date,
		RoomInfo:  strings.Join(roomInfos, " "),
		TimeSlots: slots,
		Tracks:    tracks,
		Periods:   periods,
	}
}

func isMorning(period string) bool {
	return strings.Contains(strings.ToLower(period), "morning")
}

// slugify lowercases a day label and collapses whitespace runs into hyphens,
// producing the stable dayId used for conflict scoping.
func slugify(label string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(label), "-")
}
