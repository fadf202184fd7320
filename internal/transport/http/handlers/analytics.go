package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adpulse/adpulse/internal/service"
	"github.com/adpulse/adpulse/internal/transport/http/dto"
	"github.com/adpulse/adpulse/internal/transport/http/response"
)

type AnalyticsHandler struct {
	svc *service.Service
}

func NewAnalyticsHandler(svc *service.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) User(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.UserAnalytics(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.UserAnalyticsResp{Success: true, Analytics: snap})
}

func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.SystemOverview(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.OverviewResp{Success: true, Overview: overview})
}

func (h *AnalyticsHandler) Interests(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.svc.InterestAnalytics(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.InterestAnalyticsResp{Success: true, Analytics: analytics})
}

func (h *AnalyticsHandler) Interactions(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.svc.InteractionAnalytics(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.InteractionAnalyticsResp{Success: true, Analytics: analytics})
}
