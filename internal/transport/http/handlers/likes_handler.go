package handlers

import (
	"net/http"
	"strings"

	likessvc "github.com/kingRayhan/dating-app/internal/service/likes"
	"github.com/kingRayhan/dating-app/internal/transport/http/dto"
	"github.com/kingRayhan/dating-app/internal/transport/http/httperr"
)

type LikesHandler struct {
	service *likessvc.Service
}

func NewLikesHandler(service *likessvc.Service) *LikesHandler {
	return &LikesHandler{service: service}
}

// LikedYou handles GET /likes/liked-you?user_id&pagination_token.
func (h *LikesHandler) LikedYou(w http.ResponseWriter, r *http.Request) {
	userID := queryUint(r, "user_id")
	if userID == 0 {
		httperr.WriteBadRequest(w, "user_id is required")
		return
	}

	var token *string
	if v := strings.TrimSpace(r.URL.Query().Get("pagination_token")); v != "" {
		token = &v
	}

	page, err := h.service.ListLikedYou(r.Context(), userID, token)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	resp := dto.LikedYouResponse{
		Likers:    make([]dto.LikerEntry, 0, len(page.Likers)),
		NextToken: page.NextToken,
	}
	for _, l := range page.Likers {
		resp.Likers = append(resp.Likers, dto.LikerEntry{
			UserID:    l.UserID,
			FirstName: l.FirstName,
			LikedAt:   l.LikedAt,
		})
	}

	httperr.Write(w, http.StatusOK, resp)
}

// LikedYouCount handles GET /likes/liked-you/count?user_id.
func (h *LikesHandler) LikedYouCount(w http.ResponseWriter, r *http.Request) {
	userID := queryUint(r, "user_id")
	if userID == 0 {
		httperr.WriteBadRequest(w, "user_id is required")
		return
	}

	count, err := h.service.CountLikedYou(r.Context(), userID)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	httperr.Write(w, http.StatusOK, dto.LikedYouCountResponse{Count: count})
}
