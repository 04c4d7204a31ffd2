package handlers

import (
	"net/http"

	discoverysvc "github.com/kingRayhan/dating-app/internal/service/discovery"
	"github.com/kingRayhan/dating-app/internal/transport/http/dto"
	"github.com/kingRayhan/dating-app/internal/transport/http/httperr"
)

type DiscoveryHandler struct {
	service *discoverysvc.Service
}

func NewDiscoveryHandler(service *discoverysvc.Service) *DiscoveryHandler {
	return &DiscoveryHandler{service: service}
}

// GetFeed handles GET /discovery/feed?user_id&limit&offset.
func (h *DiscoveryHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID := queryUint(r, "user_id")
	if userID == 0 {
		httperr.WriteBadRequest(w, "user_id is required")
		return
	}

	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	candidates, err := h.service.GetFeed(r.Context(), userID, limit, offset)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	resp := dto.FeedResponse{Candidates: make([]dto.FeedCandidate, 0, len(candidates))}
	for _, c := range candidates {
		resp.Candidates = append(resp.Candidates, dto.FeedCandidate{
			UserID:     c.UserID,
			FirstName:  c.FirstName,
			Age:        c.Age,
			Bio:        c.Bio,
			DistanceKM: c.DistanceKM,
			Photos:     c.Photos,
		})
	}

	httperr.Write(w, http.StatusOK, resp)
}
