package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adpulse/adpulse/internal/domain"
	"github.com/adpulse/adpulse/internal/service"
	"github.com/adpulse/adpulse/internal/transport/http/dto"
	"github.com/adpulse/adpulse/internal/transport/http/response"
)

type AdsHandler struct {
	svc *service.Service
}

func NewAdsHandler(svc *service.Service) *AdsHandler {
	return &AdsHandler{svc: svc}
}

func adLimit(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return service.DefaultAdLimit, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.ErrValidationMeta("invalid query param", map[string]string{
			"limit": "must be an integer",
		})
	}
	return n, nil
}

func (h *AdsHandler) Personalized(w http.ResponseWriter, r *http.Request) {
	limit, err := adLimit(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	userID := chi.URLParam(r, "user_id")
	ads, err := h.svc.PersonalizedAds(r.Context(), userID, limit)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.AdsResp{
		Success: true,
		Ads:     ads,
		Count:   len(ads),
		UserID:  userID,
	})
}

func (h *AdsHandler) Random(w http.ResponseWriter, r *http.Request) {
	limit, err := adLimit(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	ads := h.svc.RandomAds(limit)
	response.JSON(w, http.StatusOK, dto.AdsResp{
		Success: true,
		Ads:     ads,
		Count:   len(ads),
	})
}

func (h *AdsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := h.svc.AdCategories()
	response.JSON(w, http.StatusOK, dto.AdCategoriesResp{
		Success:    true,
		Categories: categories,
		Count:      len(categories),
	})
}

func (h *AdsHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	ads := h.svc.AdsByCategory(category)
	response.JSON(w, http.StatusOK, dto.CategoryAdsResp{
		Success:  true,
		Category: category,
		Ads:      ads,
		Count:    len(ads),
	})
}
