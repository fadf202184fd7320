// Package store defines the persistence ports the application service is
// written against. Two implementations exist: an in-memory store (dev and
// tests) and a postgres store used when DATABASE_URL is configured.
package store

import (
	"context"
	"time"

	"github.com/adpulse/adpulse/internal/domain"
)

// Store is the full persistence surface. List results are newest-first.
// GetUser returns domain.ErrNotFound for unknown ids; GetPrediction returns
// (nil, nil) when the user has no stored prediction, since an absent
// prediction is ordinary state, not a failure.
type Store interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	TouchUser(ctx context.Context, userID string, at time.Time) error
	CountUsers(ctx context.Context) (int, error)
	CountUsersSince(ctx context.Context, since time.Time) (int, error)

	AddInteraction(ctx context.Context, e *domain.InteractionEvent) error
	ListInteractions(ctx context.Context, userID string, limit int) ([]domain.InteractionEvent, error)
	RecentInteractions(ctx context.Context, limit int) ([]domain.InteractionEvent, error)
	CountInteractions(ctx context.Context) (int, error)
	CountInteractionsSince(ctx context.Context, since time.Time) (int, error)
	EventTypeDistribution(ctx context.Context) ([]domain.BucketCount, error)
	CategoryDistribution(ctx context.Context) ([]domain.BucketCount, error)
	HourlyPattern(ctx context.Context) ([]domain.BucketCount, error)
	DailyInteractions(ctx context.Context, days int) ([]domain.BucketCount, error)

	SavePrediction(ctx context.Context, p *domain.InterestPrediction) error
	GetPrediction(ctx context.Context, userID string) (*domain.InterestPrediction, error)
	CountPredictions(ctx context.Context) (int, error)
	InterestDistribution(ctx context.Context) ([]domain.BucketCount, error)
	ConfidenceByInterest(ctx context.Context) ([]domain.ConfidenceBucket, error)
	RecentPredictions(ctx context.Context, since time.Time, limit int) ([]domain.InterestPrediction, error)
}
