package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/linkstash/linkstash-go/internal/model"
)

// MemoryStore keeps users and bookmarks in process memory. It mirrors the
// MySQL repositories' semantics: unique emails (case-insensitive, like the
// default MySQL collation), owner-scoped bookmark access and cascade deletion
// of bookmarks with their owner.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[int64]model.User
	bookmarks map[int64]model.Bookmark
	nextUser  int64
	nextMark  int64
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[int64]model.User),
		bookmarks: make(map[int64]model.Bookmark),
	}
}

// Users returns a view of the store satisfying the user store contract.
func (s *MemoryStore) Users() *MemoryUsers { return &MemoryUsers{s: s} }

// Bookmarks returns a view of the store satisfying the bookmark store contract.
func (s *MemoryStore) Bookmarks() *MemoryBookmarks { return &MemoryBookmarks{s: s} }

// UserCount returns the number of stored users.
func (s *MemoryStore) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// DeleteUser removes a user together with all of their bookmarks.
func (s *MemoryStore) DeleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
	for bid, b := range s.bookmarks {
		if b.UserID == id {
			delete(s.bookmarks, bid)
		}
	}
}

func (s *MemoryStore) emailTaken(email string, exceptID int64) bool {
	for id, u := range s.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// MemoryUsers is the user half of a MemoryStore.
type MemoryUsers struct {
	s *MemoryStore
}

func (m *MemoryUsers) Create(ctx context.Context, user *model.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if m.s.emailTaken(user.Email, 0) {
		return ErrDuplicateEmail
	}

	m.s.nextUser++
	user.ID = m.s.nextUser
	m.s.users[user.ID] = *user
	return nil
}

func (m *MemoryUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	for _, u := range m.s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *MemoryUsers) GetByID(ctx context.Context, id int64) (*model.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	u, ok := m.s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (m *MemoryUsers) Update(ctx context.Context, user *model.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	existing, ok := m.s.users[user.ID]
	if !ok {
		return nil
	}
	if m.s.emailTaken(user.Email, user.ID) {
		return ErrDuplicateEmail
	}

	existing.Email = user.Email
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.UpdatedAt = user.UpdatedAt
	m.s.users[user.ID] = existing
	return nil
}

// MemoryBookmarks is the bookmark half of a MemoryStore.
type MemoryBookmarks struct {
	s *MemoryStore
}

func (m *MemoryBookmarks) Create(ctx context.Context, b *model.Bookmark) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.users[b.UserID]; !ok {
		return ErrUserNotFound
	}

	m.s.nextMark++
	b.ID = m.s.nextMark
	m.s.bookmarks[b.ID] = *b
	return nil
}

func (m *MemoryBookmarks) ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	bookmarks := []model.Bookmark{}
	for _, b := range m.s.bookmarks {
		if b.UserID == userID {
			bookmarks = append(bookmarks, b)
		}
	}
	sort.Slice(bookmarks, func(i, j int) bool { return bookmarks[i].ID < bookmarks[j].ID })
	return bookmarks, nil
}

func (m *MemoryBookmarks) GetByID(ctx context.Context, userID, id int64) (*model.Bookmark, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	b, ok := m.s.bookmarks[id]
	if !ok || b.UserID != userID {
		return nil, ErrBookmarkNotFound
	}
	return &b, nil
}

func (m *MemoryBookmarks) Update(ctx context.Context, b *model.Bookmark) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	existing, ok := m.s.bookmarks[b.ID]
	if !ok || existing.UserID != b.UserID {
		return nil
	}

	existing.Title = b.Title
	existing.Link = b.Link
	existing.Description = b.Description
	existing.UpdatedAt = b.UpdatedAt
	m.s.bookmarks[b.ID] = existing
	return nil
}

func (m *MemoryBookmarks) Delete(ctx context.Context, userID, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	b, ok := m.s.bookmarks[id]
	if !ok || b.UserID != userID {
		return ErrBookmarkNotFound
	}
	delete(m.s.bookmarks, id)
	return nil
}
