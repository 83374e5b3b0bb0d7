package share

import (
	"github.com/conference-planner/backend/internal/schedule"
)

// ImportResult reports how a shared payload resolved against a schedule.
// Unmatched talks are reported, never fatal: a payload from a differently
// parsed copy of the program may reference talks the local schedule lacks.
type ImportResult struct {
	TalkIDs        []string `json:"talkIds"`
	Matched        int      `json:"matched"`
	Unmatched      int      `json:"unmatched"`
	UnmatchedTalks []string `json:"unmatchedTalks,omitempty"`
}

// Match resolves the payload's talks against the given schedule by exact
// (title, time) match, falling back to a title-only match. Talk IDs in the
// payload are ignored; only the local schedule's IDs are returned.
func Match(p Payload, days []schedule.Day) ImportResult {
	result := ImportResult{}
	seen := make(map[string]bool)

	for _, shared := range p.Talks {
		talk := schedule.FindTalkByTitleAndTime(days, shared.Title, shared.Time)
		if talk == nil {
			result.Unmatched++
			result.UnmatchedTalks = append(result.UnmatchedTalks, shared.Title)
			continue
		}
		result.Matched++
		if !seen[talk.ID] {
			seen[talk.ID] = true
			result.TalkIDs = append(result.TalkIDs, talk.ID)
		}
	}

	return result
}
