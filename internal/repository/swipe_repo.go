package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kingRayhan/dating-app/internal/db"
	"github.com/kingRayhan/dating-app/internal/utils/pagination"
)

// SwipeRepository provides data access methods for the Swipe model.
// It encapsulates all queries related to likes/passes between users.
type SwipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new repository bound to the given DB
// connection. Pass a transaction handle to make the repository operate
// inside that transaction.
func NewSwipeRepository(database *gorm.DB) *SwipeRepository {
	return &SwipeRepository{db: database}
}

// Create inserts a swipe made by actor -> target.
//
// Behavior:
//   - Insert-only: if the (actor_id, target_id) pair exists the unique
//     index rejects the row and gorm.ErrDuplicatedKey is returned.
//     Swipes are never overwritten through this path.
//
// Example:
//
//	repo.Create(ctx, 1, 2, db.ActionLike) // user 1 liked user 2
func (r *SwipeRepository) Create(
	ctx context.Context,
	actorID, targetID uint64,
	action string,
) (db.Swipe, error) {
	swipe := db.Swipe{
		ActorID:  actorID,
		TargetID: targetID,
		Action:   action,
	}
	err := r.db.WithContext(ctx).Create(&swipe).Error
	return swipe, err
}

// HasLiked checks whether an actor has liked a target.
//
// Behavior:
//   - Returns true if there exists a swipe row where actor_id = X,
//     target_id = Y, and action = like.
//   - Used for the reverse-swipe lookup in mutual-match detection.
func (r *SwipeRepository) HasLiked(
	ctx context.Context,
	actorID, targetID uint64,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("actor_id = ? AND target_id = ? AND action = ?", actorID, targetID, db.ActionLike).
		Count(&count).Error
	return count > 0, err
}

// GetLikers returns all users who liked the given recipient.
//
// Behavior:
//   - Only swipes where target_id = X and action = like are returned.
//   - Excludes users that the recipient explicitly passed.
//   - Ordered by created_at DESC, actor_id DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.GetLikers(ctx, 42, nil, 20) // first 20 people who liked user 42
func (r *SwipeRepository) GetLikers(
	ctx context.Context,
	recipientID uint64,
	paginationToken *string,
	limit int,
) ([]db.Swipe, *string, error) {
	var swipes []db.Swipe

	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Table("swipes s").
		Where("s.target_id = ? AND s.action = ?", recipientID, db.ActionLike).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM swipes s2
				WHERE s2.actor_id = ?
				  AND s2.target_id = s.actor_id
				  AND s2.action = ?
			)`, recipientID, db.ActionPass).
		Order("s.created_at DESC, s.actor_id DESC").
		Limit(limit + 1)

	if cursor.ID > 0 && cursor.Unix > 0 {
		ts := time.UnixMilli(cursor.Unix)
		query = query.Where(
			"(s.created_at < ? OR (s.created_at = ? AND s.actor_id < ?))",
			ts, ts, cursor.ID,
		)
	}

	if err := query.Find(&swipes).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(swipes) > limit {
		last := swipes[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			ID:   last.ActorID,
			Unix: last.CreatedAt.UnixMilli(),
		})
		nextToken = &token
		swipes = swipes[:limit]
	}

	return swipes, nextToken, nil
}

// CountLikers returns how many users liked the given recipient.
//
// Behavior:
//   - Counts only swipes where target_id = X and action = like.
//   - Excludes users that the recipient explicitly passed.
//   - Used in conjunction with the Redis cache (DB is fallback).
func (r *SwipeRepository) CountLikers(
	ctx context.Context,
	recipientID uint64,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("swipes s").
		Where("s.target_id = ? AND s.action = ?", recipientID, db.ActionLike).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM swipes s2
				WHERE s2.actor_id = ?
				  AND s2.target_id = s.actor_id
				  AND s2.action = ?
			)`, recipientID, db.ActionPass).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
