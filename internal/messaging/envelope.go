// Package messaging defines the event contract published when interactions
// are ingested, so downstream consumers (batch scoring, warehousing) can
// subscribe without coupling to the HTTP layer.
package messaging

import (
	"time"

	"github.com/adpulse/adpulse/internal/domain"
)

const (
	EnvelopeVersion = 1
	Producer        = "adpulse-server"

	RoutingKeyInteractionTracked = "user.interaction.tracked"
)

// Envelope is the canonical message wrapper. Consumers tolerate extra
// fields; message_id is stable per interaction for de-duplication.
type Envelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

type InteractionTrackedPayload struct {
	InteractionID   string           `json:"interaction_id"`
	UserID          string           `json:"user_id"`
	SessionID       string           `json:"session_id"`
	EventType       domain.EventType `json:"event_type"`
	ContentCategory string           `json:"content_category"`
	Duration        int              `json:"duration"`
}

func NewInteractionTracked(e *domain.InteractionEvent) Envelope[InteractionTrackedPayload] {
	return Envelope[InteractionTrackedPayload]{
		Version:    EnvelopeVersion,
		Producer:   Producer,
		MessageID:  e.InteractionID,
		OccurredAt: e.Timestamp,
		Payload: InteractionTrackedPayload{
			InteractionID:   e.InteractionID,
			UserID:          e.UserID,
			SessionID:       e.SessionID,
			EventType:       e.EventType,
			ContentCategory: e.ContentCategory,
			Duration:        e.Duration,
		},
	}
}
