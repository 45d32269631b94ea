package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-notes-api/internal/config"
	"go-notes-api/internal/handler"
	"go-notes-api/internal/middleware"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Note   *handler.NoteHandler
	Tag    *handler.TagHandler
	Stats  *handler.StatsHandler
	Health *handler.HealthHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", h.Health.Check)

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
		auth.With(authMiddleware.RequireRefresh).Post("/refresh", h.Auth.Refresh)
		auth.With(authMiddleware.RequireAuth).Post("/logout", h.Auth.Logout)
		auth.With(authMiddleware.RequireAuth).Get("/me", h.Auth.Me)
		auth.Get("/verify-email", h.Auth.VerifyEmail)
	})

	r.Route("/note", func(note chi.Router) {
		note.Use(authMiddleware.RequireAuth)
		note.Post("/", h.Note.Create)
		note.Get("/", h.Note.FindAll)
		note.Get("/{id}", h.Note.FindOne)
		note.Patch("/{id}", h.Note.Update)
		note.Delete("/{id}", h.Note.Remove)
	})

	r.With(authMiddleware.RequireAuth).Get("/tag", h.Tag.FindAll)
	r.With(authMiddleware.RequireAuth).Get("/stats", h.Stats.Get)

	return r
}
