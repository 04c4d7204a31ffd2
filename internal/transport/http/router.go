package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kingRayhan/dating-app/internal/app"
	"github.com/kingRayhan/dating-app/internal/notify"
	chatsvc "github.com/kingRayhan/dating-app/internal/service/chat"
	discoverysvc "github.com/kingRayhan/dating-app/internal/service/discovery"
	likessvc "github.com/kingRayhan/dating-app/internal/service/likes"
	swipesvc "github.com/kingRayhan/dating-app/internal/service/swipe"
	"github.com/kingRayhan/dating-app/internal/transport/http/handlers"
	"github.com/kingRayhan/dating-app/internal/transport/http/httperr"
)

// NewRouter wires every service into the API surface.
func NewRouter(appCtx *app.AppContext, notifier notify.Notifier) http.Handler {
	discovery := handlers.NewDiscoveryHandler(discoverysvc.NewService(appCtx))
	swipes := handlers.NewSwipeHandler(swipesvc.NewService(appCtx, notifier))
	chat := handlers.NewChatHandler(chatsvc.NewService(appCtx, notifier))
	likes := handlers.NewLikesHandler(likessvc.NewService(appCtx))

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httperr.Write(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Get("/discovery/feed", discovery.GetFeed)

	r.Post("/swipes", swipes.Record)

	r.Post("/messages", chat.Send)

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", chat.ListMatches)
		r.Get("/{matchID}/messages", chat.History)
		r.Post("/{matchID}/read", chat.MarkRead)
		r.Delete("/{matchID}", chat.Unmatch)
	})

	r.Route("/likes", func(r chi.Router) {
		r.Get("/liked-you", likes.LikedYou)
		r.Get("/liked-you/count", likes.LikedYouCount)
	})

	return r
}
