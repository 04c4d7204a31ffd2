package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/kingRayhan/dating-app/internal/config"
)

// StartHTTPServer boots the API server with CORS enabled and blocks
// until it exits.
func StartHTTPServer(cfg *config.Config, handler http.Handler) error {
	addr := fmt.Sprintf("%s:%s", cfg.HTTP.Host, cfg.HTTP.Port)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv.ListenAndServe()
}
