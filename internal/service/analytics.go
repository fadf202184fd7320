package service

import (
	"context"
	"time"

	"github.com/adpulse/adpulse/internal/domain"
)

// UserAnalytics rebuilds the per-user snapshot from scratch on every call.
// Unknown users are a not-found failure; a known user with zero activity
// gets zeroed stats and empty breakdowns.
func (s *Service) UserAnalytics(ctx context.Context, userID string) (*domain.AnalyticsSnapshot, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.store.ListInteractions(ctx, userID, analyticsWindow)
	if err != nil {
		return nil, err
	}

	sessions := make(map[string]struct{})
	categoryCounts := make(map[string]int)
	eventCounts := make(map[string]int)
	for _, e := range events {
		sessions[e.SessionID] = struct{}{}
		cat := e.ContentCategory
		if cat == "" {
			cat = "unknown"
		}
		categoryCounts[cat]++
		eventCounts[string(e.EventType)]++
	}

	stats := domain.InteractionStats{
		TotalInteractions: len(events),
		UniqueSessions:    len(sessions),
	}
	if stats.UniqueSessions > 0 {
		stats.AvgInteractionsPerSession = float64(stats.TotalInteractions) / float64(stats.UniqueSessions)
	}

	pred, err := s.store.GetPrediction(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.AnalyticsSnapshot{
		UserInfo: domain.UserInfo{
			UserID:     user.UserID,
			Name:       user.Name,
			CreatedAt:  user.CreatedAt,
			LastActive: user.LastActive,
		},
		InteractionStats:   stats,
		CategoryBreakdown:  categoryCounts,
		EventTypeBreakdown: eventCounts,
		Prediction:         pred,
	}, nil
}

func (s *Service) SystemOverview(ctx context.Context) (*domain.SystemOverview, error) {
	weekAgo := s.clock.Now().UTC().Add(-7 * 24 * time.Hour)

	totalUsers, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalInteractions, err := s.store.CountInteractions(ctx)
	if err != nil {
		return nil, err
	}
	totalPredictions, err := s.store.CountPredictions(ctx)
	if err != nil {
		return nil, err
	}
	recentUsers, err := s.store.CountUsersSince(ctx, weekAgo)
	if err != nil {
		return nil, err
	}
	recentInteractions, err := s.store.CountInteractionsSince(ctx, weekAgo)
	if err != nil {
		return nil, err
	}
	interests, err := s.store.InterestDistribution(ctx)
	if err != nil {
		return nil, err
	}
	daily, err := s.store.DailyInteractions(ctx, 7)
	if err != nil {
		return nil, err
	}

	return &domain.SystemOverview{
		TotalUsers:           totalUsers,
		TotalInteractions:    totalInteractions,
		TotalPredictions:     totalPredictions,
		RecentUsers:          recentUsers,
		RecentInteractions:   recentInteractions,
		InterestDistribution: interests,
		DailyInteractions:    daily,
	}, nil
}

func (s *Service) InterestAnalytics(ctx context.Context) (*domain.InterestAnalytics, error) {
	dist, err := s.store.InterestDistribution(ctx)
	if err != nil {
		return nil, err
	}
	conf, err := s.store.ConfidenceByInterest(ctx)
	if err != nil {
		return nil, err
	}
	dayAgo := s.clock.Now().UTC().Add(-24 * time.Hour)
	recent, err := s.store.RecentPredictions(ctx, dayAgo, 10)
	if err != nil {
		return nil, err
	}

	return &domain.InterestAnalytics{
		InterestDistribution: dist,
		ConfidenceByInterest: conf,
		RecentPredictions:    recent,
	}, nil
}

func (s *Service) InteractionAnalytics(ctx context.Context) (*domain.InteractionAnalytics, error) {
	events, err := s.store.EventTypeDistribution(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.store.CategoryDistribution(ctx)
	if err != nil {
		return nil, err
	}
	hourly, err := s.store.HourlyPattern(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.store.RecentInteractions(ctx, 20)
	if err != nil {
		return nil, err
	}

	return &domain.InteractionAnalytics{
		EventDistribution:    events,
		CategoryDistribution: categories,
		HourlyPattern:        hourly,
		RecentInteractions:   recent,
	}, nil
}
