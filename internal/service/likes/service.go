package likes

import (
	"context"
	"strconv"
	"time"

	"github.com/kingRayhan/dating-app/internal/app"
	svcErr "github.com/kingRayhan/dating-app/internal/errors"
	"github.com/kingRayhan/dating-app/internal/repository"
)

const pageSize = 20

// Liker is one entry of the liked-you list.
type Liker struct {
	UserID    uint64
	FirstName string
	LikedAt   time.Time
}

// Page is a cursor-paginated slice of likers.
type Page struct {
	Likers    []Liker
	NextToken *string
}

// Service exposes who-liked-you lists and counts. Counts are served
// cache-first from Redis with the database as fallback.
type Service struct {
	appCtx    *app.AppContext
	swipeRepo *repository.SwipeRepository
	userRepo  *repository.UserRepository
}

// NewService creates a likes service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		swipeRepo: repository.NewSwipeRepository(appCtx.DB),
		userRepo:  repository.NewUserRepository(appCtx.DB),
	}
}

// ListLikedYou returns users who liked the recipient, newest first.
//
// Behavior:
//   - Likers the recipient explicitly passed are excluded.
//   - Cursor-based pagination via paginationToken.
func (s *Service) ListLikedYou(ctx context.Context, recipientID uint64, paginationToken *string) (Page, error) {
	s.appCtx.Logger.Debug("ListLikedYou called", "recipient", recipientID)

	if recipientID == 0 {
		return Page{}, svcErr.ErrInvalidArgument
	}

	swipes, nextToken, err := s.swipeRepo.GetLikers(ctx, recipientID, paginationToken, pageSize)
	if err != nil {
		return Page{}, svcErr.Map(err)
	}

	// load all liker profiles in one query
	ids := make([]uint64, 0, len(swipes))
	for _, sw := range swipes {
		ids = append(ids, sw.ActorID)
	}
	profiles, err := s.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return Page{}, svcErr.Map(err)
	}
	names := make(map[uint64]string, len(profiles))
	for _, u := range profiles {
		names[u.ID] = u.FirstName
	}

	page := Page{NextToken: nextToken, Likers: make([]Liker, 0, len(swipes))}
	for _, sw := range swipes {
		page.Likers = append(page.Likers, Liker{
			UserID:    sw.ActorID,
			FirstName: names[sw.ActorID],
			LikedAt:   sw.CreatedAt,
		})
	}

	return page, nil
}

// CountLikedYou returns how many users liked the recipient.
//
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:count:userID).
//  2. On cache miss, falls back to the DB via SwipeRepository.
//  3. On DB fetch, refreshes Redis with the standard TTL.
func (s *Service) CountLikedYou(ctx context.Context, recipientID uint64) (int64, error) {
	s.appCtx.Logger.Debug("CountLikedYou called", "recipient", recipientID)

	if recipientID == 0 {
		return 0, svcErr.ErrInvalidArgument
	}

	if count, ok, err := s.appCtx.RedisCache.GetLikedYouCount(ctx, recipientID); err == nil && ok {
		return count, nil
	}

	count, err := s.swipeRepo.CountLikers(ctx, recipientID)
	if err != nil {
		return 0, svcErr.Map(err)
	}

	if err := s.appCtx.RedisCache.SetLikedYouCount(ctx, recipientID, count); err != nil {
		s.appCtx.Logger.Warn("liked-you count cache set failed",
			"recipient", strconv.FormatUint(recipientID, 10), "err", err)
	}

	return count, nil
}
