package domain

import "time"

// FeaturesUsed documents the inputs a prediction was derived from.
type FeaturesUsed struct {
	TotalInteractions int      `json:"total_interactions"`
	CategoriesVisited []string `json:"categories_visited"`
}

// InterestPrediction is the backend-computed interest estimate for one user.
// Scores are independent per-category confidences in [0,1]; they are NOT a
// normalized distribution and must not be assumed to sum to 1.
type InterestPrediction struct {
	UserID          string             `json:"user_id,omitempty"`
	PrimaryInterest string             `json:"primary_interest"`
	InterestScores  map[string]float64 `json:"interest_scores"`
	Confidence      float64            `json:"confidence"`
	FeaturesUsed    FeaturesUsed       `json:"features_used"`
	ModelVersion    string             `json:"model_version,omitempty"`
	Timestamp       time.Time          `json:"timestamp,omitempty"`
}

// Validate checks the structural invariants a consumer may rely on.
func (p *InterestPrediction) Validate() error {
	if p.PrimaryInterest == "" {
		return ErrValidation("primary_interest is required")
	}
	if _, ok := p.InterestScores[p.PrimaryInterest]; !ok {
		return ErrValidation("primary_interest must be a key of interest_scores")
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return ErrValidation("confidence must be within [0,1]")
	}
	for k, v := range p.InterestScores {
		if v < 0 || v > 1 {
			return ErrValidationMeta("interest score out of range", map[string]string{
				"category": k,
			})
		}
	}
	return nil
}
