package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "chat.answered").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain-struct implementation used by publishers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewQuestionAnswered builds the analytics event emitted after each
// successfully answered question. It carries no query or answer text, only
// shape metadata.
func NewQuestionAnswered(sessionId, language string, passages int, latencyMs int64) Event {
	return BaseEvent{
		Type: "chat.answered",
		Data: map[string]interface{}{
			"session_id": sessionId,
			"language":   language,
			"passages":   passages,
			"latency_ms": latencyMs,
		},
		OccurredAt: time.Now(),
	}
}
