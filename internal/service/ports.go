package service

import (
	"context"
	"time"

	"github.com/adpulse/adpulse/internal/domain"
)

type Clock interface{ Now() time.Time }

// PredictionCache is the optional read-path cache in front of the store.
type PredictionCache interface {
	GetPrediction(ctx context.Context, userID string) (*domain.InterestPrediction, error)
	SetPrediction(ctx context.Context, p *domain.InterestPrediction) error
	InvalidatePrediction(ctx context.Context, userID string) error
}

// EventPublisher fans tracked interactions out to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey, messageID string, envelope any) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }

type nopCache struct{}

func (nopCache) GetPrediction(context.Context, string) (*domain.InterestPrediction, error) {
	return nil, nil
}
func (nopCache) SetPrediction(context.Context, *domain.InterestPrediction) error { return nil }
func (nopCache) InvalidatePrediction(context.Context, string) error              { return nil }
