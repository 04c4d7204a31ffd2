package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kingRayhan/dating-app/internal/db"
)

// MessageRepository provides data access methods for the Message model.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new repository bound to the given DB connection.
func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

// Create appends a message to a match's conversation. Participant and
// active-match checks happen in the chat service before this runs.
func (r *MessageRepository) Create(
	ctx context.Context,
	matchID, senderID uint64,
	content, messageType string,
) (db.Message, error) {
	if messageType == "" {
		messageType = "text"
	}
	msg := db.Message{
		MatchID:     matchID,
		SenderID:    senderID,
		Content:     content,
		MessageType: messageType,
	}
	err := r.db.WithContext(ctx).Create(&msg).Error
	return msg, err
}

// ListByMatch returns a page of a conversation in chronological order
// (oldest first), regardless of storage order.
//
// Behavior:
//   - With a `before` bound, only messages sent strictly earlier than
//     that instant are considered; this is the cursor for walking
//     history backwards.
//   - The window selects the latest `limit` messages under the bound,
//     then the page itself is returned oldest-first.
func (r *MessageRepository) ListByMatch(
	ctx context.Context,
	matchID uint64,
	limit int,
	before *time.Time,
) ([]db.Message, error) {
	var page []db.Message

	query := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if before != nil {
		query = query.Where("created_at < ?", *before)
	}

	if err := query.Find(&page).Error; err != nil {
		return nil, err
	}

	// reverse into chronological order
	for i, j := 0, len(page)-1; i < j; i, j = i+1, j-1 {
		page[i], page[j] = page[j], page[i]
	}
	return page, nil
}

// MarkReadFromPeer marks all unread messages in a match that were sent
// by someone other than readerID. A user cannot flip read state on
// their own sent messages through this path.
func (r *MessageRepository) MarkReadFromPeer(
	ctx context.Context,
	matchID, readerID uint64,
) (int64, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("match_id = ? AND sender_id <> ? AND is_read = ?", matchID, readerID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	return res.RowsAffected, res.Error
}
