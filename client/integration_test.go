package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adpulse/adpulse/client"
	"github.com/adpulse/adpulse/internal/config"
	"github.com/adpulse/adpulse/internal/ml"
	"github.com/adpulse/adpulse/internal/service"
	"github.com/adpulse/adpulse/internal/store/memory"
	"github.com/adpulse/adpulse/internal/transport/http/router"
)

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now() }

// startBackend wires the real router over the in-memory store so the SDK is
// exercised against the actual wire contract.
func startBackend(t *testing.T) *client.Client {
	t.Helper()
	classifier := ml.NewClassifier(filepath.Join(t.TempDir(), "model.gob"))
	svc := service.New(memory.New(), classifier, nil, nil, sysClock{})
	h := router.New(svc, &config.Config{CORSOrigins: []string{"*"}})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return client.New(client.Config{BaseURL: srv.URL + "/api"})
}

func TestEndToEnd_DemoFlow(t *testing.T) {
	ctx := context.Background()
	c := startBackend(t)

	session := client.NewSession(filepath.Join(t.TempDir(), "session.json"), client.PerCall)
	require.NoError(t, session.Register(ctx, c, "Demo User", "demo@example.com"))
	require.True(t, session.Active())
	userID := session.UserID()

	u, err := c.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", u.Email)
	assert.True(t, u.IsDemoUser)

	// prediction before any behavior is a backend-reported failure
	_, err = c.PredictInterests(ctx, userID)
	var se *client.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "No interaction data available for prediction", se.Message)

	tracker := client.NewTracker(c, session)
	for i := 0; i < 3; i++ {
		tracker.TrackClick(ctx, userID, "tech_news", "tech_news")
	}
	require.NoError(t, tracker.Flush(ctx))

	pred, err := c.PredictInterests(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "technology", pred.PrimaryInterest)
	assert.Greater(t, pred.Confidence, 0.0)
	assert.LessOrEqual(t, pred.Confidence, 1.0)

	ads, err := c.GetPersonalizedAds(ctx, userID, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, ads)
	assert.LessOrEqual(t, len(ads), 3)
	assert.Contains(t, ads[0].RecommendationReason, "technology")

	empty, err := c.GetPersonalizedAds(ctx, userID, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	snap, err := c.GetUserAnalytics(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.InteractionStats.TotalInteractions)
	assert.Equal(t, 3, snap.CategoryBreakdown["tech_news"])
	require.NotNil(t, snap.Prediction)

	require.NoError(t, tracker.Close())
}

func TestEndToEnd_ModelAdmin(t *testing.T) {
	ctx := context.Background()
	c := startBackend(t)

	info, err := c.GetModelInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "not_trained", info.Status)

	_, err = c.TrainModel(ctx)
	var se *client.StatusError
	require.ErrorAs(t, err, &se)
	assert.NotEmpty(t, se.Message)

	session := client.NewSession("", client.PerCall)
	require.NoError(t, session.Register(ctx, c, "Demo", "demo@example.com"))
	tracker := client.NewTracker(c, session)
	tracker.TrackClick(ctx, session.UserID(), "tech_news", "tech_news")
	require.NoError(t, tracker.Flush(ctx))

	acc, err := c.TrainModel(ctx)
	require.NoError(t, err)
	assert.Greater(t, acc, 0.0)

	info, err = c.GetModelInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "trained", info.Status)
	assert.NotEmpty(t, info.FeatureNames)

	// info reads are idempotent
	again, err := c.GetModelInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, info, again)
}

func TestEndToEnd_IndependentFailures(t *testing.T) {
	ctx := context.Background()
	c := startBackend(t)

	session := client.NewSession("", client.PerCall)
	require.NoError(t, session.Register(ctx, c, "Demo", "demo@example.com"))
	userID := session.UserID()

	// prediction fails with no data, but ads still resolve via the random
	// fallback: the two reads are independent
	_, predErr := c.PredictInterests(ctx, userID)
	require.Error(t, predErr)

	ads, adsErr := c.GetRandomAds(ctx, 2)
	require.NoError(t, adsErr)
	assert.Len(t, ads, 2)
	assert.False(t, errors.Is(predErr, client.ErrUnavailable))
}
