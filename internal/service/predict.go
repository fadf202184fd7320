package service

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/adpulse/adpulse/internal/domain"
)

// PredictInterests scores a user's stored interactions and persists the
// resulting prediction (upsert per user).
func (s *Service) PredictInterests(ctx context.Context, userID string) (*domain.InterestPrediction, error) {
	events, err := s.store.ListInteractions(ctx, userID, predictionWindow)
	if err != nil {
		return nil, err
	}

	pred, err := s.classifier.Predict(events)
	if err != nil {
		return nil, err
	}
	pred.UserID = userID
	pred.Timestamp = s.clock.Now().UTC()

	if err := s.store.SavePrediction(ctx, pred); err != nil {
		return nil, err
	}
	if err := s.cache.SetPrediction(ctx, pred); err != nil {
		zlog.Warn().Err(err).Str("user_id", userID).Msg("prediction cache set failed")
	}
	return pred, nil
}

// TrainModel retrains the classifier. An empty interaction dataset is a
// reported failure, not a panic: there is nothing to learn from.
func (s *Service) TrainModel(ctx context.Context) (*domain.TrainingResult, error) {
	n, err := s.store.CountInteractions(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNoData("No interaction data available for training")
	}

	accuracy, err := s.classifier.Train()
	if err != nil {
		return nil, err
	}
	return &domain.TrainingResult{Accuracy: accuracy}, nil
}

func (s *Service) ModelInfo() domain.ModelInfo {
	return s.classifier.Info()
}
