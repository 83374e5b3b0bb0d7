package websocket

import (
	"log"
	"time"

	"github.com/conference-planner/backend/internal/schedule"
	"github.com/conference-planner/backend/internal/storage/models"
)

// EventBroadcaster handles broadcasting WebSocket events.
type EventBroadcaster struct {
	hub *Hub
}

// NewEventBroadcaster creates a new event broadcaster.
func NewEventBroadcaster(hub *Hub) *EventBroadcaster {
	return &EventBroadcaster{hub: hub}
}

// BroadcastScheduleImported sends a schedule imported event.
func (b *EventBroadcaster) BroadcastScheduleImported(s *models.Schedule, active bool) {
	payload := ScheduleImportedPayload{
		ScheduleID: s.ID,
		Name:       s.Name,
		Source:     s.Source,
		Days:       len(s.Data),
		Active:     active,
	}

	msg := NewMessage(TypeScheduleImported, payload)
	b.broadcast(msg)
}

// BroadcastScheduleDeleted sends a schedule deleted event.
func (b *EventBroadcaster) BroadcastScheduleDeleted(scheduleID string) {
	msg := NewMessage(TypeScheduleDeleted, ScheduleDeletedPayload{ScheduleID: scheduleID})
	b.broadcast(msg)
}

// BroadcastSelectionChanged sends a selection changed event.
func (b *EventBroadcaster) BroadcastSelectionChanged(scheduleID string, talkIDs []string) {
	payload := SelectionChangedPayload{
		ScheduleID: scheduleID,
		TalkIDs:    talkIDs,
		Selected:   len(talkIDs),
	}

	msg := NewMessage(TypeSelectionChanged, payload)
	b.broadcast(msg)
}

// BroadcastConflictsChanged sends a conflicts changed event.
func (b *EventBroadcaster) BroadcastConflictsChanged(scheduleID string, report schedule.ConflictReport) {
	payload := ConflictsChangedPayload{
		ScheduleID: scheduleID,
		Groups:     len(report.Groups),
		Pairs:      report.PairCount,
	}

	msg := NewMessage(TypeConflictsChanged, payload)
	b.broadcast(msg)
}

// BroadcastTalkStatusChanged sends a talk status changed event.
func (b *EventBroadcaster) BroadcastTalkStatusChanged(scheduleID string, talk schedule.Talk, previous, current schedule.TalkStatus) {
	payload := TalkStatusPayload{
		ScheduleID:     scheduleID,
		TalkID:         talk.ID,
		Title:          talk.Title,
		PreviousStatus: string(previous),
		NewStatus:      string(current),
	}

	msg := NewMessage(TypeTalkStatusChanged, payload)
	b.broadcast(msg)
}

// BroadcastLiveTick sends a live timeline tick event.
func (b *EventBroadcaster) BroadcastLiveTick(scheduleID string, now time.Time, current, next *schedule.Talk, live, upcoming, past int) {
	payload := LiveTickPayload{
		ScheduleID: scheduleID,
		Now:        now,
		Live:       live,
		Upcoming:   upcoming,
		Past:       past,
	}
	if current != nil {
		payload.CurrentID = current.ID
		payload.CurrentTitle = current.Title
	}
	if next != nil {
		payload.NextID = next.ID
		payload.NextTitle = next.Title
	}

	msg := NewMessage(TypeLiveTick, payload)
	b.broadcast(msg)
}

// BroadcastNotification sends a notification to all connected clients.
func (b *EventBroadcaster) BroadcastNotification(level, title, message string) {
	payload := NotificationPayload{
		Level:       level,
		Title:       title,
		Message:     message,
		Dismissible: true,
	}

	msg := NewMessage(TypeNotification, payload)
	b.broadcast(msg)
}

// broadcast sends a message to all connected clients.
func (b *EventBroadcaster) broadcast(msg Message) {
	data, err := msg.JSON()
	if err != nil {
		log.Printf("Error encoding WebSocket message: %v", err)
		return
	}

	b.hub.Broadcast(data)
}
