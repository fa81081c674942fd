package service

import (
	"testing"
	"time"

	"github.com/linkstash/linkstash-go/internal/crypto"
	"github.com/linkstash/linkstash-go/internal/repository"
)

var (
	_ UserStore      = (*repository.UserRepository)(nil)
	_ UserStore      = (*repository.MemoryUsers)(nil)
	_ BookmarkStore  = (*repository.BookmarkRepository)(nil)
	_ BookmarkStore  = (*repository.MemoryBookmarks)(nil)
	_ PasswordHasher = (*crypto.PasswordHasher)(nil)
	_ TokenIssuer    = (*crypto.TokenIssuer)(nil)
)

const testSecret = "test-secret"

type testEnv struct {
	store     *repository.MemoryStore
	tokens    *crypto.TokenIssuer
	auth      *AuthService
	users     *UserService
	bookmarks *BookmarkService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := repository.NewMemoryStore()
	hasher := crypto.NewPasswordHasher(crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	tokens := crypto.NewTokenIssuer(testSecret, time.Hour)

	return &testEnv{
		store:     store,
		tokens:    tokens,
		auth:      NewAuthService(store.Users(), hasher, tokens),
		users:     NewUserService(store.Users()),
		bookmarks: NewBookmarkService(store.Bookmarks()),
	}
}

func strPtr(s string) *string { return &s }
