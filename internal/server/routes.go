package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tabletalk/tabletalk/internal/backend"
	"github.com/tabletalk/tabletalk/internal/handler"
	"github.com/tabletalk/tabletalk/internal/middleware"
	"github.com/tabletalk/tabletalk/internal/session"
	"github.com/tabletalk/tabletalk/internal/ui"
)

func (s *Server) setupRoutes() (http.Handler, error) {
	cfg := s.cfg

	// ─── Collaborators ───────────────────────────────────────────────────────────
	client := backend.New(cfg.BackendURL, time.Duration(cfg.BackendTimeoutSeconds)*time.Second)
	sessions := session.NewStore()

	// ─── Handlers ────────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(client)
	uploadH := handler.NewUploadHandler(client, sessions, cfg.MaxUploadBytes)
	askH := handler.NewAskHandler(client, sessions)

	// ─── Router ──────────────────────────────────────────────────────────────────
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))
	r.Use(chiMiddleware.RealIP)

	// Public routes
	r.Get("/", ui.Index(cfg.APIPrefix))
	r.Get("/health", healthH.Health)

	// Rate-limited client API
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute))

		r.Route(cfg.APIPrefix, func(r chi.Router) {
			r.Post("/upload", uploadH.Upload)
			r.Post("/ask", askH.Ask)
		})
	})

	return r, nil
}
