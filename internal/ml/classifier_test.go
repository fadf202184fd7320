package ml

import (
	"path/filepath"
	"testing"

	"github.com/adpulse/adpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempClassifier(t *testing.T) *Classifier {
	t.Helper()
	return NewClassifier(filepath.Join(t.TempDir(), "classifier.gob"))
}

func clickEvents(category string, n int) []domain.InteractionEvent {
	events := make([]domain.InteractionEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, domain.InteractionEvent{
			EventType:       domain.EventClick,
			ContentCategory: category,
			ContentID:       category,
			SessionID:       domain.NewSessionID(),
		})
	}
	return events
}

func TestPredict_EmptyInteractions(t *testing.T) {
	c := tempClassifier(t)
	_, err := c.Predict(nil)
	require.Error(t, err)

	var ae *domain.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, domain.CodeNoData, ae.Code)
}

func TestPredict_ClicksDriveInterest(t *testing.T) {
	c := tempClassifier(t)

	pred, err := c.Predict(clickEvents("tech_news", 3))
	require.NoError(t, err)
	require.NoError(t, pred.Validate())

	assert.Equal(t, "technology", pred.PrimaryInterest)
	// 3 interactions: 0.5 + 3*0.1
	assert.InDelta(t, 0.8, pred.Confidence, 1e-9)
	assert.Equal(t, pred.Confidence, pred.InterestScores["technology"])
	assert.Equal(t, 0.1, pred.InterestScores["sports"])
	assert.Equal(t, 3, pred.FeaturesUsed.TotalInteractions)
	assert.Equal(t, []string{"technology"}, pred.FeaturesUsed.CategoriesVisited)
}

func TestPredict_ConfidenceCapped(t *testing.T) {
	c := tempClassifier(t)
	pred, err := c.Predict(clickEvents("sports_news", 20))
	require.NoError(t, err)
	assert.Equal(t, 0.9, pred.Confidence)
}

func TestTrain_ReturnsAccuracyAndInfo(t *testing.T) {
	c := tempClassifier(t)

	assert.Equal(t, domain.ModelUntrained, c.Info().Status)

	acc, err := c.Train()
	require.NoError(t, err)
	// nearest centroid must clearly beat the 1-of-8 random baseline on the
	// synthetic generator it was designed around
	assert.Greater(t, acc, 0.25)
	assert.LessOrEqual(t, acc, 1.0)

	info := c.Info()
	assert.Equal(t, domain.ModelTrained, info.Status)
	assert.Equal(t, "NearestCentroidClassifier", info.ModelType)
	assert.Len(t, info.Categories, 8)
	assert.Equal(t, FeatureNames(), info.FeatureNames)

	// idempotent reads
	assert.Equal(t, info, c.Info())
}

func TestTrain_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.gob")

	c := NewClassifier(path)
	_, err := c.Train()
	require.NoError(t, err)

	reloaded := NewClassifier(path)
	assert.True(t, reloaded.Trained())
	assert.Equal(t, c.Accuracy(), reloaded.Accuracy())
}

func TestPredict_TrainedScoresStayInRange(t *testing.T) {
	c := tempClassifier(t)
	_, err := c.Train()
	require.NoError(t, err)

	events := append(clickEvents("tech_news", 4), domain.InteractionEvent{
		EventType:       domain.EventTimeSpent,
		ContentCategory: "sports_news",
		ContentID:       "sports_news",
		Duration:        120,
		SessionID:       domain.NewSessionID(),
	})

	pred, err := c.Predict(events)
	require.NoError(t, err)
	require.NoError(t, pred.Validate())
	assert.Equal(t, "technology", pred.PrimaryInterest)
	// sports saw real dwell time, so it scores above the baseline
	assert.Greater(t, pred.InterestScores["sports"], 0.1)
	assert.LessOrEqual(t, pred.InterestScores["sports"], pred.Confidence)
}

func TestExtractFeatures(t *testing.T) {
	sid := domain.NewSessionID()
	events := []domain.InteractionEvent{
		{EventType: domain.EventClick, ContentCategory: "tech_news", SessionID: sid},
		{EventType: domain.EventTimeSpent, ContentCategory: "tech_news", Duration: 90, SessionID: sid},
		{EventType: domain.EventPageView, ContentCategory: "food_recipes", SessionID: domain.NewSessionID()},
	}

	f := ExtractFeatures(events)
	assert.Equal(t, 1.0, f.Clicks["technology"])
	assert.Equal(t, 90.0, f.Time["technology"])
	assert.Equal(t, 3.0, f.TotalInteractions)
	assert.Equal(t, 2.0, f.TotalSessions)
	assert.Equal(t, 45.0, f.AvgSessionDuration)
}
