package service

import (
	"context"
	"time"

	"github.com/linkstash/linkstash-go/internal/model"
)

// UserStore persists users. Implementations return repository.ErrUserNotFound
// and repository.ErrDuplicateEmail.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// BookmarkStore persists bookmarks. Single-bookmark methods are scoped by
// owner and return repository.ErrBookmarkNotFound for foreign bookmarks.
type BookmarkStore interface {
	Create(ctx context.Context, b *model.Bookmark) error
	ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error)
	GetByID(ctx context.Context, userID, id int64) (*model.Bookmark, error)
	Update(ctx context.Context, b *model.Bookmark) error
	Delete(ctx context.Context, userID, id int64) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// TokenIssuer issues signed access tokens.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

// now truncates to the millisecond precision of the DATETIME(3) columns so
// that returned records match what a later read yields.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
