package schedule

import "time"

// EnrichDateTimes stamps every talk with its day's ID and date and, when both
// the day date and the talk's time range are known, computes absolute start
// and end instants. The computation is a pure function of (day date, raw time
// string), so re-running it over already-enriched data yields the same
// values. Talks whose time cannot be resolved keep nil instants but are still
// stamped so downstream grouping can fall back to the day ID.
func EnrichDateTimes(days []Day) {
	for i := range days {
		day := &days[i]

		for j := range day.TimeSlots {
			slot := &day.TimeSlots[j]
			if slot.IsPeriodSeparator {
				continue
			}

			for k := range slot.Events {
				event := &slot.Events[k]
				for l := range event.Talks {
					enrichTalk(&event.Talks[l], day)
				}
			}
		}
	}
}

func enrichTalk(talk *Talk, day *Day) {
	talk.DayID = day.DayID
	talk.DayDate = day.Date

	if day.Date == nil {
		return
	}

	tr := ParseTimeRange(talk.Time)
	if tr == nil {
		return
	}

	start := at(*day.Date, tr.Start)
	end := at(*day.Date, tr.End)
	talk.StartDateTime = &start
	talk.EndDateTime = &end
}

// at places a minutes-since-midnight offset on a calendar date.
func at(date time.Time, minutes int) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		minutes/60, minutes%60, 0, 0,
		date.Location(),
	)
}

// RestoreDates normalizes a schedule reloaded from storage. JSON decoding
// already turns RFC 3339 strings back into time.Time values; this re-links
// each talk's day date to the parent day so a following EnrichDateTimes sees
// exactly the inputs the original enrichment saw.
func RestoreDates(days []Day) {
	for i := range days {
		day := &days[i]
		for j := range day.TimeSlots {
			slot := &day.TimeSlots[j]
			if slot.IsPeriodSeparator {
				continue
			}
			for k := range slot.Events {
				event := &slot.Events[k]
				for l := range event.Talks {
					event.Talks[l].DayDate = day.Date
				}
			}
		}
	}
}
