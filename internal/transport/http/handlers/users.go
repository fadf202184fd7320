package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adpulse/adpulse/internal/domain"
	"github.com/adpulse/adpulse/internal/service"
	"github.com/adpulse/adpulse/internal/transport/http/dto"
	"github.com/adpulse/adpulse/internal/transport/http/response"
	"github.com/adpulse/adpulse/internal/transport/http/validate"
)

type UsersHandler struct {
	svc *service.Service
}

func NewUsersHandler(svc *service.Service) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("Email is required"))
		return
	}
	if err := validate.Struct(&req, map[string]string{"Email": "Email is required"}); err != nil {
		response.Err(w, r, err)
		return
	}

	u, err := h.svc.CreateUser(r.Context(), req.Name, req.Email)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.CreateUserResp{
		Success: true,
		UserID:  u.UserID,
		Message: "User created successfully",
	})
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.UserResp{Success: true, User: u})
}

func (h *UsersHandler) TrackInteraction(w http.ResponseWriter, r *http.Request) {
	var req dto.TrackInteractionReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("Event type is required"))
		return
	}
	if err := validate.Struct(&req, map[string]string{"EventType": "Event type is required"}); err != nil {
		response.Err(w, r, err)
		return
	}

	event := &domain.InteractionEvent{
		SessionID:       req.SessionID,
		EventType:       domain.EventType(req.EventType),
		ContentCategory: req.ContentCategory,
		ContentID:       req.ContentID,
		Duration:        req.Duration,
	}
	id, err := h.svc.TrackInteraction(r.Context(), chi.URLParam(r, "user_id"), event)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.TrackInteractionResp{
		Success:       true,
		InteractionID: id,
		Message:       "Interaction tracked successfully",
	})
}

func (h *UsersHandler) ListInteractions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
				"limit": "must be an integer",
			}))
			return
		}
		limit = n
	}

	events, err := h.svc.ListInteractions(r.Context(), chi.URLParam(r, "user_id"), limit)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	if events == nil {
		events = []domain.InteractionEvent{}
	}

	response.JSON(w, http.StatusOK, dto.InteractionsResp{
		Success:      true,
		Interactions: events,
		Count:        len(events),
	})
}
