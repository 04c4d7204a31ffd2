package swipe

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingRayhan/dating-app/internal/app"
	"github.com/kingRayhan/dating-app/internal/db"
	svcErr "github.com/kingRayhan/dating-app/internal/errors"
	"github.com/kingRayhan/dating-app/internal/notify"
	"github.com/kingRayhan/dating-app/internal/repository"
)

// Result reports what a recorded swipe produced.
type Result struct {
	SwipeID uint64
	IsMatch bool
	MatchID *uint64
}

// Service records directional swipes and detects mutual matches.
//
// The swipe insert, the reverse-like lookup, and the match insert all
// run inside one database transaction. On MySQL the transaction first
// takes a locking read on the pair's lower user row, so two reciprocal
// likes racing each other execute one after the other and the later
// one always observes the earlier like. The unique index on the swipe
// pair makes duplicates a conflict instead of a lost update, and the
// canonical-pair unique index on matches keeps the match row unique
// across retries.
type Service struct {
	appCtx   *app.AppContext
	userRepo *repository.UserRepository
	notifier notify.Notifier
}

// NewService creates a swipe service with dependencies from AppContext.
func NewService(appCtx *app.AppContext, notifier notify.Notifier) *Service {
	return &Service{
		appCtx:   appCtx,
		userRepo: repository.NewUserRepository(appCtx.DB),
		notifier: notifier,
	}
}

// Record persists actor's like/pass on target and reports whether it
// completed a mutual match.
//
// Behavior:
//   - Validates ids and action; swiping on yourself is rejected.
//   - A second swipe on the same (actor, target) pair fails with
//     ErrSwipeExists; swipes are not updatable through this path.
//   - On a like, if target already liked actor, the match is created
//     (or, under a concurrent race, adopted) in the same transaction
//     and IsMatch is true.
//   - A pass never creates a match, whatever target did before.
//   - Side effects after commit, both best-effort: the liked-you cache
//     is raised on a like and lowered on a pass that drops a liker out
//     of the actor's count; a new match notifies both users.
func (s *Service) Record(ctx context.Context, actorID, targetID uint64, action string) (Result, error) {
	s.appCtx.Logger.Debug("Record called", "actor", actorID, "target", targetID, "action", action)

	if actorID == 0 || targetID == 0 {
		return Result{}, svcErr.ErrInvalidArgument
	}
	if actorID == targetID {
		return Result{}, svcErr.ErrInvalidArgument
	}
	if action != db.ActionLike && action != db.ActionPass {
		return Result{}, svcErr.ErrInvalidArgument
	}

	// both sides must exist before anything is written
	if _, err := s.userRepo.GetByID(ctx, actorID); err != nil {
		return Result{}, svcErr.Map(err)
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return Result{}, svcErr.Map(err)
	}

	var result Result
	var reverse bool
	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		swipes := repository.NewSwipeRepository(tx)
		matches := repository.NewMatchRepository(tx)

		// Serialize concurrent swipes on this pair: both directions
		// lock the same user row, so a reciprocal like in another
		// transaction commits before the reverse check below runs.
		// SQLite admits a single writer and has no locking reads.
		if tx.Dialector.Name() == "mysql" {
			low, _ := db.NormalizePair(actorID, targetID)
			var pivot db.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&pivot, low).Error; err != nil {
				return err
			}
		}

		swipe, err := swipes.Create(ctx, actorID, targetID, action)
		if err != nil {
			return err
		}
		result.SwipeID = swipe.ID

		reverse, err = swipes.HasLiked(ctx, targetID, actorID)
		if err != nil {
			return err
		}
		if action != db.ActionLike || !reverse {
			return nil
		}

		match, err := matches.CreateForPair(ctx, actorID, targetID)
		if err != nil {
			return err
		}
		result.IsMatch = true
		result.MatchID = &match.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.appCtx.Logger.Debug("Record conflict", "actor", actorID, "target", targetID)
			return Result{}, svcErr.ErrSwipeExists
		}
		s.appCtx.Logger.Error("Record failed", "actor", actorID, "target", targetID, "err", err)
		return Result{}, svcErr.Map(err)
	}

	switch {
	case action == db.ActionLike:
		if err := s.appCtx.RedisCache.IncrLikedYouCount(ctx, targetID); err != nil {
			s.appCtx.Logger.Warn("liked-you cache incr failed", "target", targetID, "err", err)
		}
	case reverse:
		// passing someone who liked you removes them from your count
		if err := s.appCtx.RedisCache.DecrLikedYouCount(ctx, actorID); err != nil {
			s.appCtx.Logger.Warn("liked-you cache decr failed", "actor", actorID, "err", err)
		}
	}

	if result.IsMatch && s.notifier != nil {
		s.notifier.Notify(ctx, notify.NewEvent(notify.EventNewMatch, *result.MatchID, actorID, actorID, targetID))
	}

	return result, nil
}
