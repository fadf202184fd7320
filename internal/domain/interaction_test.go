package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteractionEvent_Validate(t *testing.T) {
	t.Run("missing_event_type", func(t *testing.T) {
		e := &InteractionEvent{ContentCategory: "tech_news"}
		err := e.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Event type is required")
	})

	t.Run("unknown_event_type", func(t *testing.T) {
		e := &InteractionEvent{EventType: "hover"}
		assert.Error(t, e.Validate())
	})

	t.Run("negative_duration", func(t *testing.T) {
		e := &InteractionEvent{EventType: EventTimeSpent, Duration: -1}
		assert.Error(t, e.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		e := &InteractionEvent{
			EventType:       EventClick,
			ContentCategory: "tech_news",
			ContentID:       "tech_news",
		}
		assert.NoError(t, e.Validate())
	})
}

func TestNewSessionID_Format(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewSessionID()
		assert.True(t, ValidSessionID(id), "bad session id: %q", id)
		seen[id] = true
	}
	// 50 draws from a 36^9 space should not collide
	assert.Greater(t, len(seen), 1)
}

func TestValidSessionID(t *testing.T) {
	assert.True(t, ValidSessionID("session_a1b2c3d4e"))
	assert.False(t, ValidSessionID("session_short"))
	assert.False(t, ValidSessionID("session_a1b2c3d4e5"))
	assert.False(t, ValidSessionID("sess_a1b2c3d4e"))
	assert.False(t, ValidSessionID("session_A1B2C3D4E"))
}

func TestInterestPrediction_Validate(t *testing.T) {
	p := &InterestPrediction{
		PrimaryInterest: "technology",
		Confidence:      0.8,
		InterestScores: map[string]float64{
			"technology": 0.8,
			"sports":     0.1,
		},
	}
	assert.NoError(t, p.Validate())

	t.Run("primary_not_in_scores", func(t *testing.T) {
		bad := *p
		bad.PrimaryInterest = "fashion"
		assert.Error(t, bad.Validate())
	})

	t.Run("score_out_of_range", func(t *testing.T) {
		bad := &InterestPrediction{
			PrimaryInterest: "technology",
			Confidence:      0.5,
			InterestScores:  map[string]float64{"technology": 1.2},
		}
		assert.Error(t, bad.Validate())
	})
}
