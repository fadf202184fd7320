package client

import "time"

// Wire models as the backend serves them. The SDK keeps its own copies so
// it stays importable without dragging the server's internals along.

type User struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
	IsDemoUser bool      `json:"is_demo_user"`
}

type Interaction struct {
	InteractionID   string    `json:"interaction_id,omitempty"`
	UserID          string    `json:"user_id"`
	SessionID       string    `json:"session_id"`
	EventType       string    `json:"event_type"`
	ContentCategory string    `json:"content_category"`
	ContentID       string    `json:"content_id"`
	Duration        int       `json:"duration"`
	Timestamp       time.Time `json:"timestamp"`
}

// Event types the backend accepts.
const (
	EventPageView  = "page_view"
	EventClick     = "click"
	EventScroll    = "scroll"
	EventTimeSpent = "time_spent"
	EventLike      = "like"
	EventShare     = "share"
	EventComment   = "comment"
)

type FeaturesUsed struct {
	TotalInteractions int      `json:"total_interactions"`
	CategoriesVisited []string `json:"categories_visited"`
}

type InterestPrediction struct {
	UserID          string             `json:"user_id,omitempty"`
	PrimaryInterest string             `json:"primary_interest"`
	InterestScores  map[string]float64 `json:"interest_scores"`
	Confidence      float64            `json:"confidence"`
	FeaturesUsed    FeaturesUsed       `json:"features_used"`
	ModelVersion    string             `json:"model_version,omitempty"`
	Timestamp       time.Time          `json:"timestamp,omitempty"`
}

type Ad struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	ImageURL             string  `json:"image_url"`
	CTA                  string  `json:"cta"`
	URL                  string  `json:"url"`
	RecommendationReason string  `json:"recommendation_reason,omitempty"`
	ConfidenceScore      float64 `json:"confidence_score"`
}

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

type AnalyticsSnapshot struct {
	UserInfo           UserInfo            `json:"user_info"`
	InteractionStats   InteractionStats    `json:"interaction_stats"`
	CategoryBreakdown  map[string]int      `json:"category_breakdown"`
	EventTypeBreakdown map[string]int      `json:"event_type_breakdown"`
	Prediction         *InterestPrediction `json:"prediction"`
}

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
	EventDistribution    []BucketCount `json:"event_distribution"`
	CategoryDistribution []BucketCount `json:"category_distribution"`
	HourlyPattern        []BucketCount `json:"hourly_pattern"`
	RecentInteractions   []Interaction `json:"recent_interactions"`
}

type ModelInfo struct {
	Status       string   `json:"status"`
	ModelType    string   `json:"model_type"`
	Categories   []string `json:"categories"`
	FeatureNames []string `json:"feature_names"`
	ModelPath    string   `json:"model_path"`
}
