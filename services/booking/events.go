package booking

import (
	"time"

	"github.com/google/uuid"
)

// EventType discriminates session events.
type EventType string

const (
	EventStepChanged         EventType = "step_changed"
	EventDataUpdated         EventType = "data_updated"
	EventValidationError     EventType = "validation_error"
	EventSubmissionStarted   EventType = "submission_started"
	EventSubmissionCompleted EventType = "submission_completed"
	EventSubmissionFailed    EventType = "submission_failed"
)

// Event is the observable record of one session mutation. Events are the
// integration point for logging and analytics collaborators; the session
// itself does not interpret them.
type Event struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Step      int            `json:"step"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// EventListener receives session events synchronously, in emission order,
// on the session's own control flow. Listeners must not block.
type EventListener func(Event)

// Subscribe registers a listener and returns a function that removes it.
func (s *Session) Subscribe(listener EventListener) func() {
	id := uuid.New().String()
	s.listeners[id] = listener
	return func() {
		delete(s.listeners, id)
	}
}

func (s *Session) emit(eventType EventType, step int, data map[string]any) {
	evt := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Step:      step,
		Timestamp: time.Now(),
		Data:      data,
	}
	for _, l := range s.listeners {
		l(evt)
	}
}
