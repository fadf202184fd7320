package domain

import "time"

type UserInfo struct {
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

type InteractionStats struct {
	TotalInteractions         int     `json:"total_interactions"`
	UniqueSessions            int     `json:"unique_sessions"`
	AvgInteractionsPerSession float64 `json:"avg_interactions_per_session"`
}

// AnalyticsSnapshot is the full per-user rollup, rebuilt on every request.
// A brand-new user gets a zeroed snapshot with empty (non-nil) breakdowns,
// which is a success, not a failure.
type AnalyticsSnapshot struct {
	UserInfo           UserInfo            `json:"user_info"`
	InteractionStats   InteractionStats    `json:"interaction_stats"`
	CategoryBreakdown  map[string]int      `json:"category_breakdown"`
	EventTypeBreakdown map[string]int      `json:"event_type_breakdown"`
	Prediction         *InterestPrediction `json:"prediction"`
}

// BucketCount is a generic grouped-count row used by the system-wide
// aggregate endpoints.
type BucketCount struct {
	Key   string `json:"_id"`
	Count int    `json:"count"`
}

type ConfidenceBucket struct {
	Key           string  `json:"_id"`
	AvgConfidence float64 `json:"avg_confidence"`
	Count         int     `json:"count"`
}

type SystemOverview struct {
	TotalUsers           int           `json:"total_users"`
	TotalInteractions    int           `json:"total_interactions"`
	TotalPredictions     int           `json:"total_predictions"`
	RecentUsers          int           `json:"recent_users"`
	RecentInteractions   int           `json:"recent_interactions"`
	InterestDistribution []BucketCount `json:"interest_distribution"`
	DailyInteractions    []BucketCount `json:"daily_interactions"`
}

type InterestAnalytics struct {
	InterestDistribution []BucketCount        `json:"interest_distribution"`
	ConfidenceByInterest []ConfidenceBucket   `json:"confidence_by_interest"`
	RecentPredictions    []InterestPrediction `json:"recent_predictions"`
}

type InteractionAnalytics struct {
	EventDistribution    []BucketCount      `json:"event_distribution"`
	CategoryDistribution []BucketCount      `json:"category_distribution"`
	HourlyPattern        []BucketCount      `json:"hourly_pattern"`
	RecentInteractions   []InteractionEvent `json:"recent_interactions"`
}
