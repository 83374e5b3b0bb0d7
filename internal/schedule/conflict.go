package schedule

// ConflictReport is the outcome of conflict detection over a selection:
// clusters of overlapping talks plus the total number of overlapping pairs.
// The pair count is computed independently of grouping, so three mutually
// overlapping talks yield one group and a count of three.
type ConflictReport struct {
	Groups    []ConflictGroup `json:"groups"`
	PairCount int             `json:"pairCount"`
}

// TalksOverlap reports whether two talks collide in time. Talks on different
// days never overlap regardless of clock time. Enriched instants are
// preferred; otherwise the raw time strings are parsed, and if either fails
// to parse the talks are assumed not to conflict. Intervals are half-open: a
// talk ending exactly when another starts is not a conflict.
func TalksOverlap(a, b *Talk) bool {
	if a.DayID != b.DayID {
		return false
	}

	if a.StartDateTime != nil && a.EndDateTime != nil &&
		b.StartDateTime != nil && b.EndDateTime != nil {
		return a.StartDateTime.Before(*b.EndDateTime) && b.StartDateTime.Before(*a.EndDateTime)
	}

	ta := ParseTimeRange(a.Time)
	tb := ParseTimeRange(b.Time)
	if ta == nil || tb == nil {
		return false
	}

	return ta.Start < tb.End && tb.Start < ta.End
}

// DetectConflicts checks every unordered pair of selected talks within each
// day for overlap. Overlapping pairs are folded into conflict groups by
// incremental first-match merging: a pair joins the first existing group
// already containing either talk, otherwise it starts a new group. This
// deliberately replicates the planner's historical behavior instead of a
// canonical connected-components reduction, which can differ on adversarial
// overlap orders.
func DetectConflicts(selected []Talk) ConflictReport {
	var report ConflictReport

	// Talks without any resolvable time cannot participate in overlap checks.
	var talks []Talk
	for _, t := range selected {
		if hasResolvableTime(&t) {
			talks = append(talks, t)
		}
	}

	byDay := make(map[string][]Talk)
	var dayOrder []string
	for _, t := range talks {
		if _, ok := byDay[t.DayID]; !ok {
			dayOrder = append(dayOrder, t.DayID)
		}
		byDay[t.DayID] = append(byDay[t.DayID], t)
	}

	for _, dayID := range dayOrder {
		dayTalks := byDay[dayID]
		for i := 0; i < len(dayTalks); i++ {
			for j := i + 1; j < len(dayTalks); j++ {
				if !TalksOverlap(&dayTalks[i], &dayTalks[j]) {
					continue
				}
				report.PairCount++
				report.Groups = mergeIntoGroups(report.Groups, dayID, dayTalks[i], dayTalks[j])
			}
		}
	}

	return report
}

func hasResolvableTime(t *Talk) bool {
	if t.StartDateTime != nil && t.EndDateTime != nil {
		return true
	}
	return ParseTimeRange(t.Time) != nil
}

// mergeIntoGroups adds an overlapping pair to the first group containing
// either talk, creating a new group when none matches.
func mergeIntoGroups(groups []ConflictGroup, dayID string, a, b Talk) []ConflictGroup {
	for g := range groups {
		if groupContains(&groups[g], a.ID) || groupContains(&groups[g], b.ID) {
			if !groupContains(&groups[g], a.ID) {
				groups[g].Talks = append(groups[g].Talks, a)
			}
			if !groupContains(&groups[g], b.ID) {
				groups[g].Talks = append(groups[g].Talks, b)
			}
			return groups
		}
	}

	return append(groups, ConflictGroup{DayID: dayID, Talks: []Talk{a, b}})
}

func groupContains(g *ConflictGroup, talkID string) bool {
	for i := range g.Talks {
		if g.Talks[i].ID == talkID {
			return true
		}
	}
	return false
}
