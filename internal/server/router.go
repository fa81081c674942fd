// Package server assembles the HTTP routes and middleware stack.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/linkstash/linkstash-go/internal/handler"
	"github.com/linkstash/linkstash-go/internal/middleware"
	"github.com/linkstash/linkstash-go/internal/service"
	"github.com/rs/cors"
)

// TokenService issues access tokens at signin and verifies them on
// protected routes.
type TokenService interface {
	service.TokenIssuer
	middleware.TokenValidator
}

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Users     service.UserStore
	Bookmarks service.BookmarkStore
	Hasher    service.PasswordHasher
	Tokens    TokenService

	// AuthLimiter throttles /auth routes per client IP. Nil disables it.
	AuthLimiter    *middleware.IPRateLimiter
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewRouter returns the application's HTTP handler.
func NewRouter(d Deps) http.Handler {
	authHandler := handler.NewAuthHandler(service.NewAuthService(d.Users, d.Hasher, d.Tokens))
	userHandler := handler.NewUserHandler(service.NewUserService(d.Users))
	bookmarkHandler := handler.NewBookmarkHandler(service.NewBookmarkService(d.Bookmarks))

	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/auth", func(r chi.Router) {
		if d.AuthLimiter != nil {
			r.Use(middleware.RateLimit(d.AuthLimiter))
		}
		r.Post("/signup", authHandler.HandleSignup)
		r.Post("/signin", authHandler.HandleSignin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(d.Tokens))

		r.Get("/users/me", userHandler.HandleMe)
		r.Patch("/users", userHandler.HandleEdit)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", bookmarkHandler.HandleList)
			r.Post("/", bookmarkHandler.HandleCreate)
			r.Get("/{id}", bookmarkHandler.HandleGet)
			r.Patch("/{id}", bookmarkHandler.HandleEdit)
			r.Delete("/{id}", bookmarkHandler.HandleDelete)
		})
	})

	return r
}
