package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/school-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded EventType = "login_succeeded"
	EventLoginFailed    EventType = "login_failed"
	EventLogout         EventType = "logout"
	EventTokenRefreshed EventType = "token_refreshed"
)

// Event represents an auth lifecycle event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Role      domain.Role `json:"role,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// New stamps an event with an id and the current time.
func New(eventType EventType, subjectID string, role domain.Role, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Role:      role,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// LoginFailedPayload payload.
type LoginFailedPayload struct {
	Reason string `json:"reason"`
}

// TokenIssuedPayload payload.
type TokenIssuedPayload struct {
	ExpiresAt time.Time `json:"expires_at"`
}
