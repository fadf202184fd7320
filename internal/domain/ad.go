package domain

// Ad is a ranked creative unit. Backend-owned, read-only to clients; the
// recommendation fields are stamped at selection time.
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

const RandomRecommendationReason = "Random recommendation"
