// Package dto holds the stable wire models for the /api surface. Every
// response embeds the success flag the frontend switches on.
package dto

import "github.com/adpulse/adpulse/internal/domain"

type CreateUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required"`
}

type TrackInteractionReq struct {
	SessionID       string `json:"session_id"`
	EventType       string `json:"event_type" validate:"required"`
	ContentCategory string `json:"content_category"`
	ContentID       string `json:"content_id"`
	Duration        int    `json:"duration" validate:"gte=0"`
}

type CreateUserResp struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type UserResp struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

type TrackInteractionResp struct {
	Success       bool   `json:"success"`
	InteractionID string `json:"interaction_id"`
	Message       string `json:"message"`
}

type InteractionsResp struct {
	Success      bool                      `json:"success"`
	Interactions []domain.InteractionEvent `json:"interactions"`
	Count        int                       `json:"count"`
}

type PredictionResp struct {
	Success    bool                       `json:"success"`
	Prediction *domain.InterestPrediction `json:"prediction"`
	Message    string                     `json:"message"`
}

type AdsResp struct {
	Success bool        `json:"success"`
	Ads     []domain.Ad `json:"ads"`
	Count   int         `json:"count"`
	UserID  string      `json:"user_id,omitempty"`
}

type AdCategoriesResp struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
	Count      int      `json:"count"`
}

type CategoryAdsResp struct {
	Success  bool        `json:"success"`
	Category string      `json:"category"`
	Ads      []domain.Ad `json:"ads"`
	Count    int         `json:"count"`
}

type UserAnalyticsResp struct {
	Success   bool                      `json:"success"`
	Analytics *domain.AnalyticsSnapshot `json:"analytics"`
}

type OverviewResp struct {
	Success  bool                   `json:"success"`
	Overview *domain.SystemOverview `json:"overview"`
}

type InterestAnalyticsResp struct {
	Success   bool                      `json:"success"`
	Analytics *domain.InterestAnalytics `json:"analytics"`
}

type InteractionAnalyticsResp struct {
	Success   bool                         `json:"success"`
	Analytics *domain.InteractionAnalytics `json:"analytics"`
}

type TrainResp struct {
	Success  bool    `json:"success"`
	Accuracy float64 `json:"accuracy"`
	Message  string  `json:"message"`
}

type ModelInfoResp struct {
	Success   bool             `json:"success"`
	ModelInfo domain.ModelInfo `json:"model_info"`
}
