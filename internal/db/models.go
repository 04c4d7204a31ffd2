package db

import (
	"time"
)

// Swipe actions.
const (
	ActionLike = "like"
	ActionPass = "pass"
)

// Gender preference values for User.ShowMe.
const (
	ShowEveryone = "everyone"
	ShowMen      = "men"
	ShowWomen    = "women"
)

// User table. Profile attributes and discovery preferences are inlined;
// there is no separate profile table. Location and birth date are nullable
// because the discovery feed is unavailable until both are set.
type User struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	Phone         string `gorm:"uniqueIndex;size:32;not null"`
	PhoneVerified bool   `gorm:"default:false"`
	FirstName     string `gorm:"size:64"`
	BirthDate     *time.Time
	Gender        string `gorm:"size:16"`
	Bio           string `gorm:"size:512"`
	Latitude      *float64
	Longitude     *float64

	// Discovery preferences. Zero values mean "unset" and are replaced
	// by the configured defaults (50 km, 18-100, everyone) when read.
	MaxDistanceKM float64 `gorm:"default:0"`
	AgeMin        int     `gorm:"default:0"`
	AgeMax        int     `gorm:"default:0"`
	ShowMe        string  `gorm:"size:16;default:''"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Swipe represents an actor's like/pass decision on a target.
//
// Unlike count-style decision tables that overwrite, swipes here are
// insert-only: the unique index on (actor_id, target_id) makes a second
// swipe on the same pair a constraint violation, surfaced to callers as
// a conflict.
type Swipe struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ActorID   uint64    `gorm:"not null;uniqueIndex:idx_actor_target,priority:1;index:idx_target_action,priority:1"`
	TargetID  uint64    `gorm:"not null;uniqueIndex:idx_actor_target,priority:2"`
	Action    string    `gorm:"size:8;not null;index:idx_target_action,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Match is the undirected mutual-like relationship between two users.
//
// The pair is canonicalized on insert (UserAID < UserBID) so a single
// unique index on (user_a_id, user_b_id) enforces at most one row per
// unordered pair. Unmatching flips IsActive; rows are never deleted.
type Match struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserAID   uint64    `gorm:"not null;uniqueIndex:idx_user_pair,priority:1"`
	UserBID   uint64    `gorm:"not null;uniqueIndex:idx_user_pair,priority:2"`
	IsActive  bool      `gorm:"default:true;not null"`
	MatchedAt time.Time `gorm:"autoCreateTime"`
}

// NormalizePair returns the two ids in canonical (low, high) order.
func NormalizePair(a, b uint64) (uint64, uint64) {
	if a > b {
		return b, a
	}
	return a, b
}

// Message belongs to exactly one Match. Sender must be a participant of
// the match, and messages can only be created while the match is active;
// both rules are enforced in the chat service, not here.
type Message struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	MatchID     uint64 `gorm:"not null;index:idx_match_created,priority:1"`
	SenderID    uint64 `gorm:"not null"`
	Content     string `gorm:"size:2048;not null"`
	MessageType string `gorm:"size:16;default:'text'"`
	IsRead      bool   `gorm:"default:false;not null"`
	ReadAt      *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_match_created,priority:2"`
}
