// Package schedule implements the conference schedule pipeline: parsing an
// HTML program page into a normalized day/slot/event/talk model, enriching
// talks with absolute date-times, and detecting conflicts between selections.
package schedule

import (
	"strings"
	"time"
)

// Day is one calendar day of the conference with its periods merged into a
// single ordered timeline.
type Day struct {
	Label     string     `json:"day"`
	DayID     string     `json:"dayId"`
	Date      *time.Time `json:"date,omitempty"`
	RoomInfo  string     `json:"roomInfo,omitempty"`
	TimeSlots []TimeSlot `json:"timeSlots"`
	Tracks    []string   `json:"tracks"`
	Periods   []string   `json:"periods"`
}

// TimeSlot is one time label and the events scheduled under it. Separator
// slots mark period boundaries and carry no events.
type TimeSlot struct {
	Time              string  `json:"time"`
	Events            []Event `json:"events"`
	Period            string  `json:"period,omitempty"`
	IsPeriodSeparator bool    `json:"isPeriodSeparator,omitempty"`
}

// Event is a scheduled block at a given time and track: either a break or a
// session containing talks. Break events always have an empty talk list.
type Event struct {
	ID       string `json:"id"`
	Track    string `json:"track"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Talks    []Talk `json:"talks"`
	IsBreak  bool   `json:"isBreak"`
	DayID    string `json:"dayId,omitempty"`
	PeriodID string `json:"periodId,omitempty"`
	TimeSlot string `json:"timeSlot,omitempty"`
}

// Talk is an individual presentation nested inside a session event.
// StartDateTime/EndDateTime are nil until enrichment combines the parent
// day's date with the raw time range. Identity is the string ID: persisted
// schedules reconstruct fresh Talk values, so lookups must never rely on
// pointer equality.
type Talk struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Authors       string     `json:"authors"`
	Time          string     `json:"time"`
	EventID       string     `json:"eventId"`
	DayID         string     `json:"dayId"`
	TimeSlot      string     `json:"timeSlot,omitempty"`
	Track         string     `json:"track"`
	Location      string     `json:"location"`
	StartDateTime *time.Time `json:"startDateTime,omitempty"`
	EndDateTime   *time.Time `json:"endDateTime,omitempty"`
	DayDate       *time.Time `json:"dayDate,omitempty"`
}

// ConflictGroup is a cluster of mutually or transitively overlapping selected
// talks on a single day.
type ConflictGroup struct {
	DayID string `json:"dayId"`
	Talks []Talk `json:"talks"`
}

// FindTalkByID walks the schedule and returns the talk with the given ID,
// or nil when no talk matches.
func FindTalkByID(days []Day, talkID string) *Talk {
	for i := range days {
		for j := range days[i].TimeSlots {
			slot := &days[i].TimeSlots[j]
			for k := range slot.Events {
				talks := slot.Events[k].Talks
				for l := range talks {
					if talks[l].ID == talkID {
						return &talks[l]
					}
				}
			}
		}
	}
	return nil
}

// FindTalkByTitleAndTime resolves a talk by case-insensitive title plus exact
// time string, falling back to a title-only match. Used when importing a
// shared selection into a schedule whose talk IDs differ.
func FindTalkByTitleAndTime(days []Day, title, timeStr string) *Talk {
	lower := strings.ToLower(title)

	for i := range days {
		for j := range days[i].TimeSlots {
			slot := &days[i].TimeSlots[j]
			for k := range slot.Events {
				talks := slot.Events[k].Talks
				for l := range talks {
					if strings.ToLower(talks[l].Title) == lower && talks[l].Time == timeStr {
						return &talks[l]
					}
				}
			}
		}
	}

	// Fallback: title only
	for i := range days {
		for j := range days[i].TimeSlots {
			slot := &days[i].TimeSlots[j]
			for k := range slot.Events {
				talks := slot.Events[k].Talks
				for l := range talks {
					if strings.ToLower(talks[l].Title) == lower {
						return &talks[l]
					}
				}
			}
		}
	}

	return nil
}

// ResolveTalks maps selected talk IDs to talks in the schedule, skipping IDs
// that no longer resolve.
func ResolveTalks(days []Day, talkIDs []string) []Talk {
	var talks []Talk
	for _, id := range talkIDs {
		if t := FindTalkByID(days, id); t != nil {
			talks = append(talks, *t)
		}
	}
	return talks
}
