package handlers

import (
	"net/http"

	swipesvc "github.com/kingRayhan/dating-app/internal/service/swipe"
	"github.com/kingRayhan/dating-app/internal/transport/http/dto"
	"github.com/kingRayhan/dating-app/internal/transport/http/httperr"
)

type SwipeHandler struct {
	service *swipesvc.Service
}

func NewSwipeHandler(service *swipesvc.Service) *SwipeHandler {
	return &SwipeHandler{service: service}
}

// Record handles POST /swipes.
func (h *SwipeHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.SwipeRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.WriteBadRequest(w, "invalid request body")
		return
	}
	if req.ActorID == 0 || req.TargetID == 0 || req.Action == "" {
		httperr.WriteBadRequest(w, "actor_id, target_id and action are required")
		return
	}

	result, err := h.service.Record(r.Context(), req.ActorID, req.TargetID, req.Action)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	httperr.Write(w, http.StatusOK, dto.SwipeResponse{
		SwipeID: result.SwipeID,
		IsMatch: result.IsMatch,
		MatchID: result.MatchID,
	})
}
