package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Event kinds dispatched by the core.
const (
	EventNewMatch   = "new_match"
	EventNewMessage = "new_message"
)

// Event is a best-effort notification handed to an external dispatcher.
type Event struct {
	ID         string
	Kind       string
	UserIDs    []uint64
	MatchID    uint64
	FromUserID uint64
}

// Notifier delivers events to the outside world. Implementations must
// not block the calling operation; failures are the implementation's
// problem, never the caller's.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// NewEvent stamps an event with a fresh id.
func NewEvent(kind string, matchID, fromUserID uint64, userIDs ...uint64) Event {
	return Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		UserIDs:    userIDs,
		MatchID:    matchID,
		FromUserID: fromUserID,
	}
}

// LogNotifier logs events instead of delivering them. Stands in for the
// real push/SMS dispatcher, which lives outside this core.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) Notify(ctx context.Context, ev Event) {
	if n.Logger == nil {
		return
	}
	n.Logger.Info("notification dispatched",
		"event_id", ev.ID,
		"kind", ev.Kind,
		"match_id", ev.MatchID,
		"from_user", ev.FromUserID,
		"recipients", ev.UserIDs,
	)
}
