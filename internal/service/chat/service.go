package chat

import (
	"context"
	"strings"
	"time"

	"github.com/kingRayhan/dating-app/internal/app"
	"github.com/kingRayhan/dating-app/internal/db"
	svcErr "github.com/kingRayhan/dating-app/internal/errors"
	"github.com/kingRayhan/dating-app/internal/notify"
	"github.com/kingRayhan/dating-app/internal/repository"
)

const defaultPageSize = 50

// MatchSummary is one entry of a user's match list: the match plus the
// other participant's profile summary.
type MatchSummary struct {
	MatchID   uint64
	PeerID    uint64
	PeerName  string
	PeerBio   string
	MatchedAt time.Time
}

// Service gates conversation access on match membership and exposes
// message history.
type Service struct {
	appCtx      *app.AppContext
	userRepo    *repository.UserRepository
	matchRepo   *repository.MatchRepository
	messageRepo *repository.MessageRepository
	notifier    notify.Notifier
}

// NewService creates a chat service with dependencies from AppContext.
func NewService(appCtx *app.AppContext, notifier notify.Notifier) *Service {
	return &Service{
		appCtx:      appCtx,
		userRepo:    repository.NewUserRepository(appCtx.DB),
		matchRepo:   repository.NewMatchRepository(appCtx.DB),
		messageRepo: repository.NewMessageRepository(appCtx.DB),
		notifier:    notifier,
	}
}

// authorize loads the match and verifies the user is one of its two
// participants.
func (s *Service) authorize(ctx context.Context, matchID, userID uint64) (db.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return db.Match{}, svcErr.Map(err)
	}
	if match.UserAID != userID && match.UserBID != userID {
		return db.Match{}, svcErr.ErrUnauthorized
	}
	return match, nil
}

// Send appends a message to a match's conversation.
//
// Behavior:
//   - Sender must be a participant; otherwise ErrUnauthorized.
//   - The match must still be active; sending into an unmatched
//     conversation fails with ErrInactiveMatch, even for an original
//     participant.
//   - On success the peer is notified best-effort.
func (s *Service) Send(ctx context.Context, matchID, senderID uint64, content, messageType string) (uint64, error) {
	s.appCtx.Logger.Debug("Send called", "match", matchID, "sender", senderID)

	if matchID == 0 || senderID == 0 || strings.TrimSpace(content) == "" {
		return 0, svcErr.ErrInvalidArgument
	}

	match, err := s.authorize(ctx, matchID, senderID)
	if err != nil {
		return 0, err
	}
	if !match.IsActive {
		return 0, svcErr.ErrInactiveMatch
	}

	msg, err := s.messageRepo.Create(ctx, matchID, senderID, content, messageType)
	if err != nil {
		return 0, svcErr.Map(err)
	}

	if s.notifier != nil {
		peer := match.UserAID
		if peer == senderID {
			peer = match.UserBID
		}
		s.notifier.Notify(ctx, notify.NewEvent(notify.EventNewMessage, matchID, senderID, peer))
	}

	return msg.ID, nil
}

// History returns a page of the conversation in chronological order.
//
// Behavior:
//   - Requester must be a participant; otherwise ErrUnauthorized.
//   - `before` walks history backwards: only messages sent strictly
//     before that instant are returned. Nil means the latest page.
//   - History stays readable after an unmatch; only sending is gated
//     on the active flag.
func (s *Service) History(ctx context.Context, matchID, requesterID uint64, limit int, before *time.Time) ([]db.Message, error) {
	if matchID == 0 || requesterID == 0 {
		return nil, svcErr.ErrInvalidArgument
	}
	if limit <= 0 || limit > defaultPageSize {
		limit = defaultPageSize
	}

	if _, err := s.authorize(ctx, matchID, requesterID); err != nil {
		return nil, err
	}

	msgs, err := s.messageRepo.ListByMatch(ctx, matchID, limit, before)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return msgs, nil
}

// MarkRead marks the peer's messages in a match as read. Messages sent
// by the reader are untouched; read state on your own messages belongs
// to the other side.
func (s *Service) MarkRead(ctx context.Context, matchID, readerID uint64) (int64, error) {
	if matchID == 0 || readerID == 0 {
		return 0, svcErr.ErrInvalidArgument
	}

	if _, err := s.authorize(ctx, matchID, readerID); err != nil {
		return 0, err
	}

	n, err := s.messageRepo.MarkReadFromPeer(ctx, matchID, readerID)
	if err != nil {
		return 0, svcErr.Map(err)
	}
	return n, nil
}

// ListMatches returns the user's active matches with peer summaries,
// newest first.
func (s *Service) ListMatches(ctx context.Context, userID uint64) ([]MatchSummary, error) {
	if userID == 0 {
		return nil, svcErr.ErrInvalidArgument
	}

	matches, err := s.matchRepo.ListActiveForUser(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	out := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		peerID := m.UserAID
		if peerID == userID {
			peerID = m.UserBID
		}
		peer, err := s.userRepo.GetByID(ctx, peerID)
		if err != nil {
			s.appCtx.Logger.Warn("match peer missing", "match", m.ID, "peer", peerID, "err", err)
			continue
		}
		out = append(out, MatchSummary{
			MatchID:   m.ID,
			PeerID:    peerID,
			PeerName:  peer.FirstName,
			PeerBio:   peer.Bio,
			MatchedAt: m.MatchedAt,
		})
	}
	return out, nil
}

// Unmatch deactivates a match. The row and its messages stay; sending
// is blocked from here on.
func (s *Service) Unmatch(ctx context.Context, matchID, requesterID uint64) error {
	s.appCtx.Logger.Debug("Unmatch called", "match", matchID, "requester", requesterID)

	if matchID == 0 || requesterID == 0 {
		return svcErr.ErrInvalidArgument
	}

	if _, err := s.authorize(ctx, matchID, requesterID); err != nil {
		return err
	}

	if err := s.matchRepo.Deactivate(ctx, matchID); err != nil {
		return svcErr.Map(err)
	}
	return nil
}
