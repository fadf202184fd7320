package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adpulse/adpulse/internal/service"
	"github.com/adpulse/adpulse/internal/transport/http/dto"
	"github.com/adpulse/adpulse/internal/transport/http/response"
)

type MLHandler struct {
	svc *service.Service
}

func NewMLHandler(svc *service.Service) *MLHandler {
	return &MLHandler{svc: svc}
}

// Predict serves both POST /users/{user_id}/predict and
// POST /ml/predict/{user_id}; the two routes are aliases.
func (h *MLHandler) Predict(w http.ResponseWriter, r *http.Request) {
	pred, err := h.svc.PredictInterests(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.PredictionResp{
		Success:    true,
		Prediction: pred,
		Message:    "Interest prediction completed",
	})
}

func (h *MLHandler) Train(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.TrainModel(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.TrainResp{
		Success:  true,
		Accuracy: res.Accuracy,
		Message:  "Model trained successfully",
	})
}

func (h *MLHandler) Info(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dto.ModelInfoResp{
		Success:   true,
		ModelInfo: h.svc.ModelInfo(),
	})
}
