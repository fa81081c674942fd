package repository

import (
	"context"
	"testing"

	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUsers_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryStore().Users()

	first := &model.User{Email: "test@test.com", Hash: "h"}
	require.NoError(t, users.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	err := users.Create(ctx, &model.User{Email: "TEST@test.com", Hash: "h"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	second := &model.User{Email: "other@test.com", Hash: "h"}
	require.NoError(t, users.Create(ctx, second))

	second.Email = "test@test.com"
	assert.ErrorIs(t, users.Update(ctx, second), ErrDuplicateEmail)

	got, err := users.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "other@test.com", got.Email, "failed update must not persist")
}

func TestMemoryUsers_Lookup(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryStore().Users()

	_, err := users.GetByEmail(ctx, "nobody@test.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = users.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)

	u := &model.User{Email: "test@test.com", Hash: "h"}
	require.NoError(t, users.Create(ctx, u))

	got, err := users.GetByEmail(ctx, "test@test.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got.Email = "mutated@test.com"
	again, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "test@test.com", again.Email, "returned values must be copies")
}

func TestMemoryBookmarks_OwnerScoped(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	users, bookmarks := store.Users(), store.Bookmarks()

	alice := &model.User{Email: "alice@test.com"}
	bob := &model.User{Email: "bob@test.com"}
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	b := &model.Bookmark{UserID: alice.ID, Title: "a", Link: "http://a.test"}
	require.NoError(t, bookmarks.Create(ctx, b))
	require.NoError(t, bookmarks.Create(ctx, &model.Bookmark{UserID: alice.ID, Title: "b", Link: "http://b.test"}))

	list, err := bookmarks.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID)

	list, err = bookmarks.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = bookmarks.GetByID(ctx, bob.ID, b.ID)
	assert.ErrorIs(t, err, ErrBookmarkNotFound)

	hijack := *b
	hijack.UserID = bob.ID
	hijack.Title = "hijacked"
	require.NoError(t, bookmarks.Update(ctx, &hijack))
	got, err := bookmarks.GetByID(ctx, alice.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)

	assert.ErrorIs(t, bookmarks.Delete(ctx, bob.ID, b.ID), ErrBookmarkNotFound)
	assert.NoError(t, bookmarks.Delete(ctx, alice.ID, b.ID))
	assert.ErrorIs(t, bookmarks.Delete(ctx, alice.ID, b.ID), ErrBookmarkNotFound)
}

func TestMemoryBookmarks_RequiresOwner(t *testing.T) {
	err := NewMemoryStore().Bookmarks().Create(context.Background(), &model.Bookmark{UserID: 42, Title: "t", Link: "http://t.test"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStore_DeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	u := &model.User{Email: "test@test.com"}
	require.NoError(t, store.Users().Create(ctx, u))
	require.NoError(t, store.Bookmarks().Create(ctx, &model.Bookmark{UserID: u.ID, Title: "t", Link: "http://t.test"}))
	require.Equal(t, 1, store.UserCount())

	store.DeleteUser(u.ID)

	assert.Equal(t, 0, store.UserCount())
	list, err := store.Bookmarks().ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
