package websocket

import (
	"encoding/json"
	"time"
)

// MessageType identifies the type of WebSocket message.
type MessageType string

const (
	// Server -> Client event types
	TypeScheduleImported  MessageType = "schedule.imported"
	TypeScheduleDeleted   MessageType = "schedule.deleted"
	TypeSelectionChanged  MessageType = "selection.changed"
	TypeConflictsChanged  MessageType = "conflicts.changed"
	TypeTalkStatusChanged MessageType = "talk.status_changed"
	TypeLiveTick          MessageType = "live.tick"
	TypeNotification      MessageType = "notification"

	// Client -> Server command types
	TypeSubscribe   MessageType = "subscribe"
	TypeUnsubscribe MessageType = "unsubscribe"
	TypePing        MessageType = "ping"

	// Server -> Client response types
	TypeSubscribeAck MessageType = "subscribe.ack"
	TypePong         MessageType = "pong"
	TypeError        MessageType = "error"
)

// Message represents a WebSocket message envelope.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload"`
}

// NewMessage creates a new message with the current timestamp.
func NewMessage(msgType MessageType, payload any) Message {
	return Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// JSON serializes the message to JSON bytes.
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// ScheduleImportedPayload is the payload for schedule.imported events.
type ScheduleImportedPayload struct {
	ScheduleID string `json:"schedule_id"`
	Name       string `json:"name"`
	Source     string `json:"source,omitempty"`
	Days       int    `json:"days"`
	Active     bool   `json:"active"`
}

// ScheduleDeletedPayload is the payload for schedule.deleted events.
type ScheduleDeletedPayload struct {
	ScheduleID string `json:"schedule_id"`
}

// SelectionChangedPayload is the payload for selection.changed events.
type SelectionChangedPayload struct {
	ScheduleID string   `json:"schedule_id"`
	TalkIDs    []string `json:"talk_ids"`
	Selected   int      `json:"selected"`
}

// ConflictsChangedPayload is the payload for conflicts.changed events.
type ConflictsChangedPayload struct {
	ScheduleID string `json:"schedule_id"`
	Groups     int    `json:"groups"`
	Pairs      int    `json:"pairs"`
}

// TalkStatusPayload is the payload for talk.status_changed events.
type TalkStatusPayload struct {
	ScheduleID     string `json:"schedule_id"`
	TalkID         string `json:"talk_id"`
	Title          string `json:"title"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
}

// LiveTickPayload is the payload for live.tick events.
type LiveTickPayload struct {
	ScheduleID   string    `json:"schedule_id"`
	Now          time.Time `json:"now"`
	CurrentID    string    `json:"current_id,omitempty"`
	CurrentTitle string    `json:"current_title,omitempty"`
	NextID       string    `json:"next_id,omitempty"`
	NextTitle    string    `json:"next_title,omitempty"`
	Live         int       `json:"live"`
	Upcoming     int       `json:"upcoming"`
	Past         int       `json:"past"`
}

// NotificationPayload is the payload for notification events.
type NotificationPayload struct {
	Level       string `json:"level"` // info, warning, error, success
	Title       string `json:"title"`
	Message     string `json:"message"`
	Dismissible bool   `json:"dismissible"`
}

// ErrorPayload is the payload for error messages.
type ErrorPayload struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	OriginalType string `json:"original_type,omitempty"`
}
