package memory

import (
	"context"
	"testing"
	"time"

	"github.com/adpulse/adpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_CreateGetTouch(t *testing.T) {
	ctx := context.Background()
	s := New()

	now := time.Now().UTC()
	u, err := domain.NewUser("Alice", "alice@example.com", now)
	require.NoError(t, err)
	require.NoError(t, s.CreateUser(ctx, u))

	got, err := s.GetUser(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.True(t, got.IsDemoUser)

	later := now.Add(time.Minute)
	require.NoError(t, s.TouchUser(ctx, u.UserID, later))
	got, err = s.GetUser(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, later, got.LastActive)

	_, err = s.GetUser(ctx, "nope")
	var ae *domain.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, domain.CodeNotFound, ae.Code)
}

func TestInteractions_NewestFirstAndLimit(t *testing.T) {
	ctx := context.Background()
	s := New()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.AddInteraction(ctx, &domain.InteractionEvent{
			UserID:          "u1",
			SessionID:       domain.NewSessionID(),
			EventType:       domain.EventClick,
			ContentCategory: "tech_news",
			ContentID:       "tech_news",
			Timestamp:       base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, s.AddInteraction(ctx, &domain.InteractionEvent{
		UserID:    "u2",
		EventType: domain.EventPageView,
		Timestamp: base.Add(time.Hour),
	}))

	got, err := s.ListInteractions(ctx, "u1", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Timestamp.After(got[1].Timestamp))

	all, err := s.ListInteractions(ctx, "u1", 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	n, err := s.CountInteractions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestDistributions(t *testing.T) {
	ctx := context.Background()
	s := New()

	ts := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	add := func(et domain.EventType, cat string) {
		require.NoError(t, s.AddInteraction(ctx, &domain.InteractionEvent{
			UserID: "u1", EventType: et, ContentCategory: cat, Timestamp: ts,
		}))
	}
	add(domain.EventClick, "tech_news")
	add(domain.EventClick, "tech_news")
	add(domain.EventPageView, "sports_news")

	events, err := s.EventTypeDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.BucketCount{Key: "click", Count: 2}, events[0])

	cats, err := s.CategoryDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tech_news", cats[0].Key)

	hours, err := s.HourlyPattern(ctx)
	require.NoError(t, err)
	require.Len(t, hours, 1)
	assert.Equal(t, "14", hours[0].Key)

	days, err := s.DailyInteractions(ctx, 7)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-01", days[0].Key)
	assert.Equal(t, 3, days[0].Count)
}

func TestPredictions_UpsertAndAggregates(t *testing.T) {
	ctx := context.Background()
	s := New()

	miss, err := s.GetPrediction(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, miss)

	now := time.Now().UTC()
	p := &domain.InterestPrediction{
		UserID:          "u1",
		PrimaryInterest: "technology",
		InterestScores:  map[string]float64{"technology": 0.8},
		Confidence:      0.8,
		Timestamp:       now,
	}
	require.NoError(t, s.SavePrediction(ctx, p))

	// upsert: same user again replaces
	p2 := *p
	p2.Confidence = 0.9
	require.NoError(t, s.SavePrediction(ctx, &p2))

	got, err := s.GetPrediction(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0.9, got.Confidence)

	n, err := s.CountPredictions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	dist, err := s.InterestDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.BucketCount{{Key: "technology", Count: 1}}, dist)

	conf, err := s.ConfidenceByInterest(ctx)
	require.NoError(t, err)
	require.Len(t, conf, 1)
	assert.Equal(t, 0.9, conf[0].AvgConfidence)

	recent, err := s.RecentPredictions(ctx, now.Add(-time.Hour), 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
