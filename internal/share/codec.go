// Package share encodes a schedule selection into a compact URL-safe payload
// and resolves such payloads back against a loaded schedule.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/conference-planner/backend/internal/schedule"
)

// Payload is the shared document: the schedule's name plus the selected
// talks, flattened to the fields a recipient needs to re-match them.
type Payload struct {
	ScheduleName string `json:"scheduleName"`
	ExportedAt   string `json:"exportedAt,omitempty"`
	Talks        []Talk `json:"talks"`
}

// Talk is a shared talk. Field order matters: the key-shortening substitution
// rewrites the serialized keys in place, so the JSON layout must stay stable.
type Talk struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Authors       string  `json:"authors"`
	Time          string  `json:"time"`
	Track         string  `json:"track"`
	Location      string  `json:"location"`
	DayID         string  `json:"dayId"`
	StartDateTime *string `json:"startDateTime"`
	EndDateTime   *string `json:"endDateTime"`
}

// The shortening map is reversible because every pattern carries its closing
// quote: `,"t"` cannot swallow `,"tm"` or `,"tr"`.
var shortener = newSubstitution([][2]string{
	{`{"id"`, `{"i"`},
	{`,"title"`, `,"t"`},
	{`,"authors"`, `,"a"`},
	{`,"time"`, `,"tm"`},
	{`,"track"`, `,"tr"`},
	{`,"location"`, `,"l"`},
	{`,"dayId"`, `,"d"`},
	{`,"startDateTime"`, `,"s"`},
	{`,"endDateTime"`, `,"e"`},
})

// NewPayload flattens selected talks into a share payload. Enriched instants
// serialize as ISO-8601 strings; talks without them carry explicit nulls.
func NewPayload(scheduleName string, talks []schedule.Talk) Payload {
	p := Payload{ScheduleName: scheduleName, Talks: make([]Talk, 0, len(talks))}
	for _, t := range talks {
		p.Talks = append(p.Talks, Talk{
			ID:            t.ID,
			Title:         t.Title,
			Authors:       t.Authors,
			Time:          t.Time,
			Track:         t.Track,
			Location:      t.Location,
			DayID:         t.DayID,
			StartDateTime: isoOrNil(t.StartDateTime),
			EndDateTime:   isoOrNil(t.EndDateTime),
		})
	}
	return p
}

// Stamp records the export time on the payload.
func (p *Payload) Stamp(now time.Time) {
	p.ExportedAt = now.UTC().Format(time.RFC3339)
}

// Encode serializes the payload, applies the key-shortening substitution, and
// base64-encodes the result for URL embedding.
func Encode(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding share payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString([]byte(shortener.apply(string(raw)))), nil
}

// Decode reverses Encode. The shortened form is tried first; plain
// base64-JSON payloads (produced by older exports) decode via the fallback.
func Decode(encoded string) (Payload, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Payload{}, fmt.Errorf("decoding share payload: %w", err)
	}

	var p Payload
	if err := json.Unmarshal([]byte(shortener.revert(string(raw))), &p); err == nil {
		return p, nil
	}

	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, fmt.Errorf("decoding share payload: %w", err)
	}
	return p, nil
}

func isoOrNil(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
