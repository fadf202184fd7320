package domain

type ModelStatus string

const (
	ModelUntrained ModelStatus = "not_trained"
	ModelTrained   ModelStatus = "trained"
)

// ModelInfo is the model metadata surfaced by GET /ml/info. Repeated reads
// with no intervening training must return identical content.
type ModelInfo struct {
	Status       ModelStatus `json:"status"`
	ModelType    string      `json:"model_type,omitempty"`
	Categories   []string    `json:"categories,omitempty"`
	FeatureNames []string    `json:"feature_names,omitempty"`
	ModelPath    string      `json:"model_path,omitempty"`
}

type TrainingResult struct {
	Accuracy float64 `json:"accuracy"`
}
