package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/linkstash/linkstash-go/internal/config"
	"github.com/linkstash/linkstash-go/internal/crypto"
	"github.com/linkstash/linkstash-go/internal/middleware"
	"github.com/linkstash/linkstash-go/internal/repository"
	"github.com/linkstash/linkstash-go/internal/server"
	"github.com/linkstash/linkstash-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	users, bookmarks, db, err := openStorage(ctx, cfg)
	if err != nil {
		slog.Error("storage unavailable", "storage", cfg.Storage, "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	router := server.NewRouter(server.Deps{
		Users:          users,
		Bookmarks:      bookmarks,
		Hasher:         crypto.NewPasswordHasher(crypto.DefaultHashParams()),
		Tokens:         crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry),
		AuthLimiter:    middleware.NewIPRateLimiter(ctx, cfg.AuthRateRPS, cfg.AuthRateBurst),
		AllowedOrigins: cfg.AllowedOrigins(),
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func newLogger(cfg config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// openStorage returns the stores selected by cfg. db is nil for the memory store.
func openStorage(ctx context.Context, cfg config.Config) (service.UserStore, service.BookmarkStore, *sql.DB, error) {
	if cfg.Storage == config.StorageMemory {
		slog.Warn("using in-memory storage, data is lost on restart")
		store := repository.NewMemoryStore()
		return store.Users(), store.Bookmarks(), nil, nil
	}

	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.Migrate {
		if err := repository.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		slog.Info("database migrations applied")
	}

	return repository.NewUserRepository(db), repository.NewBookmarkRepository(db), db, nil
}
