// Package planner wires the schedule pipeline together: importing programs,
// managing selections, detecting conflicts and sharing.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/conference-planner/backend/internal/fetch"
	"github.com/conference-planner/backend/internal/schedule"
	"github.com/conference-planner/backend/internal/share"
	"github.com/conference-planner/backend/internal/storage"
	"github.com/conference-planner/backend/internal/storage/models"
	"github.com/conference-planner/backend/internal/websocket"
)

// ErrNotFound is returned when no schedule matches the requested ID.
var ErrNotFound = errors.New("schedule not found")

// ErrNoDays is returned when a program document yields no schedule days.
var ErrNoDays = errors.New("no schedule days found in document")

// Service implements the planner operations over the storage layer.
type Service struct {
	repo    *storage.ScheduleRepository
	fetcher *fetch.Fetcher
	builder *schedule.Builder
	events  *websocket.EventBroadcaster
}

// NewService creates a new planner service.
func NewService(repo *storage.ScheduleRepository, fetcher *fetch.Fetcher, events *websocket.EventBroadcaster) *Service {
	return &Service{
		repo:    repo,
		fetcher: fetcher,
		builder: schedule.NewBuilder(),
		events:  events,
	}
}

// ImportFromURL fetches a program page and imports it as a new schedule.
func (s *Service) ImportFromURL(ctx context.Context, url, name string) (*models.Schedule, error) {
	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching program: %w", err)
	}
	if name == "" {
		name = url
	}
	return s.ImportFromHTML(ctx, html, name, url)
}

// ImportFromHTML parses a program document and stores it as a new schedule.
// The imported schedule becomes the active one.
func (s *Service) ImportFromHTML(ctx context.Context, html, name, source string) (*models.Schedule, error) {
	days, err := s.builder.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parsing program: %w", err)
	}
	if len(days) == 0 {
		return nil, ErrNoDays
	}
	schedule.EnrichDateTimes(days)

	stored := &models.Schedule{
		Name:   name,
		Source: source,
		Data:   days,
	}
	if err := s.repo.Create(ctx, stored); err != nil {
		return nil, err
	}
	if err := s.repo.SetActiveScheduleID(ctx, stored.ID); err != nil {
		log.Printf("Failed to activate schedule %s: %v", stored.ID, err)
	}

	s.events.BroadcastScheduleImported(stored, true)
	log.Printf("Imported schedule %q (%d days)", stored.Name, len(stored.Data))
	return stored, nil
}

// List returns summaries of all stored schedules.
func (s *Service) List(ctx context.Context) ([]models.ScheduleSummary, error) {
	return s.repo.List(ctx)
}

// Load retrieves a schedule and restores its computed date fields, which do
// not survive the JSON round trip through storage intact.
func (s *Service) Load(ctx context.Context, id string) (*models.Schedule, error) {
	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrNotFound
	}
	schedule.RestoreDates(stored.Data)
	schedule.EnrichDateTimes(stored.Data)
	return stored, nil
}

// LoadActive retrieves the active schedule, or ErrNotFound when none is set.
func (s *Service) LoadActive(ctx context.Context) (*models.Schedule, error) {
	id, err := s.repo.ActiveScheduleID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrNotFound
	}
	return s.Load(ctx, id)
}

// Activate marks a schedule as the active one.
func (s *Service) Activate(ctx context.Context, id string) error {
	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stored == nil {
		return ErrNotFound
	}
	return s.repo.SetActiveScheduleID(ctx, id)
}

// Delete removes a schedule.
func (s *Service) Delete(ctx context.Context, id string) error {
	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stored == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.BroadcastScheduleDeleted(id)
	return nil
}

// SetSelections replaces a schedule's selected talks. Unknown talk IDs are
// dropped rather than rejected.
func (s *Service) SetSelections(ctx context.Context, id string, talkIDs []string) ([]string, error) {
	stored, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(talkIDs))
	seen := make(map[string]bool)
	for _, talkID := range talkIDs {
		if seen[talkID] || schedule.FindTalkByID(stored.Data, talkID) == nil {
			continue
		}
		seen[talkID] = true
		kept = append(kept, talkID)
	}

	if err := s.saveSelections(ctx, stored, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// ToggleSelection adds or removes one talk from a schedule's selection and
// reports whether the talk is now selected.
func (s *Service) ToggleSelection(ctx context.Context, id, talkID string) ([]string, bool, error) {
	stored, err := s.Load(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if schedule.FindTalkByID(stored.Data, talkID) == nil {
		return nil, false, fmt.Errorf("talk not found: %s", talkID)
	}

	selections := make([]string, 0, len(stored.Selections)+1)
	selected := true
	for _, existing := range stored.Selections {
		if existing == talkID {
			selected = false
			continue
		}
		selections = append(selections, existing)
	}
	if selected {
		selections = append(selections, talkID)
	}

	if err := s.saveSelections(ctx, stored, selections); err != nil {
		return nil, false, err
	}
	return selections, selected, nil
}

// ClearSelections removes every selected talk from a schedule.
func (s *Service) ClearSelections(ctx context.Context, id string) error {
	stored, err := s.Load(ctx, id)
	if err != nil {
		return err
	}
	return s.saveSelections(ctx, stored, []string{})
}

// SelectedTalks resolves a schedule's selection to full talk values. IDs
// that no longer resolve are skipped.
func (s *Service) SelectedTalks(ctx context.Context, id string) (*models.Schedule, []schedule.Talk, error) {
	stored, err := s.Load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return stored, schedule.ResolveTalks(stored.Data, stored.Selections), nil
}

// Conflicts computes the overlap report for a schedule's selected talks.
func (s *Service) Conflicts(ctx context.Context, id string) (schedule.ConflictReport, error) {
	_, talks, err := s.SelectedTalks(ctx, id)
	if err != nil {
		return schedule.ConflictReport{}, err
	}
	return schedule.DetectConflicts(talks), nil
}

// Share encodes a schedule's selected talks into a compact share string,
// returning the export document alongside.
func (s *Service) Share(ctx context.Context, id string) (string, share.Payload, error) {
	stored, talks, err := s.SelectedTalks(ctx, id)
	if err != nil {
		return "", share.Payload{}, err
	}

	payload := share.NewPayload(stored.Name, talks)
	payload.Stamp(time.Now().UTC())
	encoded, err := share.Encode(payload)
	if err != nil {
		return "", share.Payload{}, err
	}
	return encoded, payload, nil
}

// ImportShare resolves a share string against a schedule and merges the
// matched talks into its selection. The code may be the compact encoded form
// or a plain JSON export document.
func (s *Service) ImportShare(ctx context.Context, id, code string) (share.ImportResult, error) {
	stored, err := s.Load(ctx, id)
	if err != nil {
		return share.ImportResult{}, err
	}

	payload, err := decodeShareCode(code)
	if err != nil {
		return share.ImportResult{}, err
	}
	result := share.Match(payload, stored.Data)

	merged := append([]string{}, stored.Selections...)
	seen := make(map[string]bool, len(merged))
	for _, existing := range merged {
		seen[existing] = true
	}
	for _, talkID := range result.TalkIDs {
		if !seen[talkID] {
			seen[talkID] = true
			merged = append(merged, talkID)
		}
	}

	if err := s.saveSelections(ctx, stored, merged); err != nil {
		return share.ImportResult{}, err
	}
	return result, nil
}

// decodeShareCode accepts either the compact base64 form or a plain JSON
// export document.
func decodeShareCode(code string) (share.Payload, error) {
	trimmed := strings.TrimSpace(code)
	if strings.HasPrefix(trimmed, "{") {
		var p share.Payload
		if err := json.Unmarshal([]byte(trimmed), &p); err != nil {
			return share.Payload{}, fmt.Errorf("decoding share document: %w", err)
		}
		return p, nil
	}

	p, err := share.Decode(trimmed)
	if err != nil {
		return share.Payload{}, fmt.Errorf("decoding share code: %w", err)
	}
	return p, nil
}

// saveSelections persists a selection and broadcasts the selection and
// conflict changes.
func (s *Service) saveSelections(ctx context.Context, stored *models.Schedule, talkIDs []string) error {
	if err := s.repo.UpdateSelections(ctx, stored.ID, talkIDs); err != nil {
		return err
	}
	stored.Selections = talkIDs

	s.events.BroadcastSelectionChanged(stored.ID, talkIDs)
	report := schedule.DetectConflicts(schedule.ResolveTalks(stored.Data, talkIDs))
	s.events.BroadcastConflictsChanged(stored.ID, report)
	return nil
}
