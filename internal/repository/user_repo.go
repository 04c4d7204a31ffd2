package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingRayhan/dating-app/internal/db"
)

// UserRepository provides read access to the user profile store. The
// discovery core never writes profiles; edits belong to a separate
// surface.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// GetByID loads a single user. Returns gorm.ErrRecordNotFound when the
// id is unknown.
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (db.User, error) {
	var user db.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return user, err
}

// ListByIDs loads the given users in one query. Unknown ids are simply
// absent from the result.
func (r *UserRepository) ListByIDs(ctx context.Context, ids []uint64) ([]db.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []db.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// ListCandidates returns every user other than the requester that the
// requester has not already swiped on.
//
// Behavior:
//   - Excludes the requester themselves.
//   - Excludes targets of the requester's own outgoing swipes only; a
//     user who liked the requester first stays visible to them.
//   - Age/distance/preference filtering happens in the discovery
//     service, which needs the computed values for the feed projection.
func (r *UserRepository) ListCandidates(ctx context.Context, requesterID uint64) ([]db.User, error) {
	var users []db.User

	swiped := r.db.
		Table("swipes").
		Select("target_id").
		Where("actor_id = ?", requesterID)

	err := r.db.WithContext(ctx).
		Where("id <> ?", requesterID).
		Where("id NOT IN (?)", swiped).
		Order("id").
		Find(&users).Error
	return users, err
}
