package dto

import "time"

// --- discovery ---

type FeedCandidate struct {
	UserID     uint64   `json:"user_id"`
	FirstName  string   `json:"first_name"`
	Age        int      `json:"age"`
	Bio        string   `json:"bio"`
	DistanceKM float64  `json:"distance_km"`
	Photos     []string `json:"photos"`
}

type FeedResponse struct {
	Candidates []FeedCandidate `json:"candidates"`
}

// --- swipes ---

type SwipeRequest struct {
	ActorID  uint64 `json:"actor_id"`
	TargetID uint64 `json:"target_id"`
	Action   string `json:"action"`
}

type SwipeResponse struct {
	SwipeID uint64  `json:"swipe_id"`
	IsMatch bool    `json:"is_match"`
	MatchID *uint64 `json:"match_id"`
}

// --- chat ---

type SendMessageRequest struct {
	MatchID  uint64 `json:"match_id"`
	SenderID uint64 `json:"sender_id"`
	Content  string `json:"content"`
	Type     string `json:"type"`
}

type SendMessageResponse struct {
	MessageID uint64 `json:"message_id"`
}

type MessageEntry struct {
	ID        uint64    `json:"id"`
	SenderID  uint64    `json:"sender_id"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	SentAt    time.Time `json:"sent_at"`
}

type MessagesResponse struct {
	Messages []MessageEntry `json:"messages"`
}

type MarkReadRequest struct {
	UserID uint64 `json:"user_id"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

type MatchEntry struct {
	MatchID   uint64    `json:"match_id"`
	PeerID    uint64    `json:"peer_id"`
	PeerName  string    `json:"peer_name"`
	PeerBio   string    `json:"peer_bio"`
	MatchedAt time.Time `json:"matched_at"`
}

type MatchesResponse struct {
	Matches []MatchEntry `json:"matches"`
}

// --- likes ---

type LikerEntry struct {
	UserID    uint64    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LikedAt   time.Time `json:"liked_at"`
}

type LikedYouResponse struct {
	Likers    []LikerEntry `json:"likers"`
	NextToken *string      `json:"next_pagination_token,omitempty"`
}

type LikedYouCountResponse struct {
	Count int64 `json:"count"`
}
