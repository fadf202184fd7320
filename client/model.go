package client

import (
	"context"
	"net/http"
)

// GetModelInfo reads the classifier's metadata. Idempotent; repeated reads
// without retraining return the same document.
func (c *Client) GetModelInfo(ctx context.Context) (*ModelInfo, error) {
	var resp struct {
		ModelInfo *ModelInfo `json:"model_info"`
	}
	if err := c.do(ctx, http.MethodGet, "/ml/info", nil, &resp); err != nil {
		return nil, err
	}
	return resp.ModelInfo, nil
}

// TrainModel triggers a retrain and blocks until the backend resolves it.
// Failures carry the backend's message (errors.As *StatusError).
func (c *Client) TrainModel(ctx context.Context) (float64, error) {
	var resp struct {
		Accuracy float64 `json:"accuracy"`
	}
	if err := c.do(ctx, http.MethodPost, "/ml/train", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Accuracy, nil
}
