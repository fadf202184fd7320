package domain

import (
	"math/rand"
	"strings"
	"time"
)

// EventType enumerates the tracked interaction kinds.
type EventType string

const (
	EventPageView  EventType = "page_view"
	EventClick     EventType = "click"
	EventScroll    EventType = "scroll"
	EventTimeSpent EventType = "time_spent"
	EventLike      EventType = "like"
	EventShare     EventType = "share"
	EventComment   EventType = "comment"
)

var eventTypes = map[EventType]struct{}{
	EventPageView:  {},
	EventClick:     {},
	EventScroll:    {},
	EventTimeSpent: {},
	EventLike:      {},
	EventShare:     {},
	EventComment:   {},
}

func ValidEventType(t EventType) bool {
	_, ok := eventTypes[t]
	return ok
}

// InteractionEvent is a single tracked user action. Immutable once stored;
// the client fires it at the backend and forgets it.
type InteractionEvent struct {
	InteractionID   string    `json:"interaction_id,omitempty"`
	UserID          string    `json:"user_id"`
	SessionID       string    `json:"session_id"`
	EventType       EventType `json:"event_type"`
	ContentCategory string    `json:"content_category"`
	ContentID       string    `json:"content_id"`
	Duration        int       `json:"duration"`
	Timestamp       time.Time `json:"timestamp"`
}

func (e *InteractionEvent) Validate() error {
	if e.EventType == "" {
		return ErrValidation("Event type is required")
	}
	if !ValidEventType(e.EventType) {
		return ErrValidationMeta("invalid event_type", map[string]string{
			"event_type": string(e.EventType),
		})
	}
	if e.Duration < 0 {
		return ErrValidation("duration must be >= 0")
	}
	return nil
}

const (
	sessionIDPrefix = "session_"
	sessionIDLen    = 9
	base36          = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewSessionID mints an opaque token in the wire format the frontend has
// always produced: "session_" followed by 9 base-36 characters.
func NewSessionID() string {
	b := make([]byte, sessionIDLen)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return sessionIDPrefix + string(b)
}

func ValidSessionID(s string) bool {
	if !strings.HasPrefix(s, sessionIDPrefix) {
		return false
	}
	rest := s[len(sessionIDPrefix):]
	if len(rest) != sessionIDLen {
		return false
	}
	for _, c := range rest {
		if !strings.ContainsRune(base36, c) {
			return false
		}
	}
	return true
}
