package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingRayhan/dating-app/internal/db"
)

// MatchRepository provides data access methods for the Match model.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new repository bound to the given DB
// connection. Pass a transaction handle to make the repository operate
// inside that transaction.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CreateForPair materializes the match for an unordered user pair.
//
// Behavior:
//   - The pair is canonicalized to (low, high) before insert, so the
//     composite unique index holds regardless of which participant's
//     like landed second.
//   - If a concurrent call already inserted the row, the unique index
//     rejects this insert and the existing match is returned instead.
//     Exactly one row per pair, never two, never zero.
func (r *MatchRepository) CreateForPair(ctx context.Context, userA, userB uint64) (db.Match, error) {
	a, b := db.NormalizePair(userA, userB)
	match := db.Match{UserAID: a, UserBID: b, IsActive: true}

	err := r.db.WithContext(ctx).Create(&match).Error
	if err == nil {
		return match, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return db.Match{}, err
	}

	// lost the race: another insert won, read that row
	err = r.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		First(&match).Error
	return match, err
}

// GetByID loads a single match. Returns gorm.ErrRecordNotFound when the
// id is unknown.
func (r *MatchRepository) GetByID(ctx context.Context, id uint64) (db.Match, error) {
	var match db.Match
	err := r.db.WithContext(ctx).First(&match, id).Error
	return match, err
}

// GetByPair loads the match for an unordered pair, if any.
func (r *MatchRepository) GetByPair(ctx context.Context, userA, userB uint64) (db.Match, error) {
	a, b := db.NormalizePair(userA, userB)
	var match db.Match
	err := r.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		First(&match).Error
	return match, err
}

// ListActiveForUser returns a user's active matches, newest first.
func (r *MatchRepository) ListActiveForUser(ctx context.Context, userID uint64) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("matched_at DESC, id DESC").
		Find(&matches).Error
	return matches, err
}

// Deactivate flips a match to inactive. The row stays; an unmatched
// conversation is frozen, not erased.
func (r *MatchRepository) Deactivate(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
