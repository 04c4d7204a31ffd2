package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	chatsvc "github.com/kingRayhan/dating-app/internal/service/chat"
	"github.com/kingRayhan/dating-app/internal/transport/http/dto"
	"github.com/kingRayhan/dating-app/internal/transport/http/httperr"
)

type ChatHandler struct {
	service *chatsvc.Service
}

func NewChatHandler(service *chatsvc.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// Send handles POST /messages.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.WriteBadRequest(w, "invalid request body")
		return
	}
	if req.MatchID == 0 || req.SenderID == 0 || req.Content == "" {
		httperr.WriteBadRequest(w, "match_id, sender_id and content are required")
		return
	}

	msgID, err := h.service.Send(r.Context(), req.MatchID, req.SenderID, req.Content, req.Type)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	httperr.Write(w, http.StatusCreated, dto.SendMessageResponse{MessageID: msgID})
}

// History handles GET /matches/{matchID}/messages?user_id&limit&before.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	matchID := pathUint(chi.URLParam(r, "matchID"))
	userID := queryUint(r, "user_id")
	if matchID == 0 || userID == 0 {
		httperr.WriteBadRequest(w, "match id and user_id are required")
		return
	}

	before, err := queryTime(r, "before")
	if err != nil {
		httperr.WriteBadRequest(w, "before must be RFC3339 or unix millis")
		return
	}
	limit := queryInt(r, "limit", 0)

	msgs, err := h.service.History(r.Context(), matchID, userID, limit, before)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	resp := dto.MessagesResponse{Messages: make([]dto.MessageEntry, 0, len(msgs))}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, dto.MessageEntry{
			ID:       m.ID,
			SenderID: m.SenderID,
			Content:  m.Content,
			Type:     m.MessageType,
			IsRead:   m.IsRead,
			SentAt:   m.CreatedAt,
		})
	}

	httperr.Write(w, http.StatusOK, resp)
}

// MarkRead handles POST /matches/{matchID}/read.
func (h *ChatHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	matchID := pathUint(chi.URLParam(r, "matchID"))
	if matchID == 0 {
		httperr.WriteBadRequest(w, "match id is required")
		return
	}

	var req dto.MarkReadRequest
	if err := decodeJSON(r, &req); err != nil || req.UserID == 0 {
		httperr.WriteBadRequest(w, "user_id is required")
		return
	}

	updated, err := h.service.MarkRead(r.Context(), matchID, req.UserID)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	httperr.Write(w, http.StatusOK, dto.MarkReadResponse{Updated: updated})
}

// ListMatches handles GET /matches?user_id.
func (h *ChatHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID := queryUint(r, "user_id")
	if userID == 0 {
		httperr.WriteBadRequest(w, "user_id is required")
		return
	}

	matches, err := h.service.ListMatches(r.Context(), userID)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	resp := dto.MatchesResponse{Matches: make([]dto.MatchEntry, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, dto.MatchEntry{
			MatchID:   m.MatchID,
			PeerID:    m.PeerID,
			PeerName:  m.PeerName,
			PeerBio:   m.PeerBio,
			MatchedAt: m.MatchedAt,
		})
	}

	httperr.Write(w, http.StatusOK, resp)
}

// Unmatch handles DELETE /matches/{matchID}?user_id.
func (h *ChatHandler) Unmatch(w http.ResponseWriter, r *http.Request) {
	matchID := pathUint(chi.URLParam(r, "matchID"))
	userID := queryUint(r, "user_id")
	if matchID == 0 || userID == 0 {
		httperr.WriteBadRequest(w, "match id and user_id are required")
		return
	}

	if err := h.service.Unmatch(r.Context(), matchID, userID); err != nil {
		httperr.WriteError(w, err)
		return
	}

	httperr.Write(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}
