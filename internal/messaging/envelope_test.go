package messaging

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adpulse/adpulse/internal/domain"
)

func TestNewInteractionTracked(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e := &domain.InteractionEvent{
		InteractionID:   "0b9febe3-7a86-4e63-9431-f657b9f0a9a1",
		UserID:          "u1",
		SessionID:       "session_a1b2c3d4e",
		EventType:       domain.EventClick,
		ContentCategory: "tech_news",
		Duration:        0,
		Timestamp:       ts,
	}

	env := NewInteractionTracked(e)
	assert.Equal(t, EnvelopeVersion, env.Version)
	assert.Equal(t, Producer, env.Producer)
	assert.Equal(t, e.InteractionID, env.MessageID)
	assert.Equal(t, ts, env.OccurredAt)

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	// consumers rely on these exact field names
	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Contains(t, wire, "message_id")
	assert.Contains(t, wire, "occurred_at")
	payload := wire["payload"].(map[string]any)
	assert.Equal(t, "click", payload["event_type"])
	assert.Equal(t, "tech_news", payload["content_category"])
}
