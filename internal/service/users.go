package service

import (
	"context"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/adpulse/adpulse/internal/domain"
	"github.com/adpulse/adpulse/internal/messaging"
)

func (s *Service) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	u, err := domain.NewUser(name, email, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.store.GetUser(ctx, userID)
}

// TrackInteraction ingests one event. The caller may omit the session id;
// the backend fills one in so the row always correlates to something, same
// as the original service did.
func (s *Service) TrackInteraction(ctx context.Context, userID string, e *domain.InteractionEvent) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}

	now := s.clock.Now().UTC()
	e.InteractionID = uuid.NewString()
	e.UserID = userID
	e.Timestamp = now
	if e.SessionID == "" {
		e.SessionID = uuid.NewString()
	}

	if err := s.store.AddInteraction(ctx, e); err != nil {
		return "", err
	}
	_ = s.store.TouchUser(ctx, userID, now)

	// new behavior invalidates any cached prediction
	if err := s.cache.InvalidatePrediction(ctx, userID); err != nil {
		zlog.Warn().Err(err).Str("user_id", userID).Msg("prediction cache invalidate failed")
	}

	// telemetry fan-out is best effort, never fails the ingest
	env := messaging.NewInteractionTracked(e)
	if err := s.pub.Publish(ctx, messaging.RoutingKeyInteractionTracked, e.InteractionID, env); err != nil {
		zlog.Warn().Err(err).Str("interaction_id", e.InteractionID).Msg("interaction publish failed")
	}

	return e.InteractionID, nil
}

func (s *Service) ListInteractions(ctx context.Context, userID string, limit int) ([]domain.InteractionEvent, error) {
	if limit <= 0 {
		limit = defaultInteractionLimit
	}
	return s.store.ListInteractions(ctx, userID, limit)
}
