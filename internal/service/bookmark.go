package service

import (
	"context"
	"errors"

	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/linkstash/linkstash-go/internal/repository"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkService handles bookmark CRUD for a single owner per call. Every
// method takes the authenticated user's ID and never touches other users'
// bookmarks; a foreign bookmark is reported as ErrBookmarkNotFound.
type BookmarkService struct {
	bookmarks BookmarkStore
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(bookmarks BookmarkStore) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

// List returns all bookmarks owned by userID. The result is never nil.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	bookmarks, err := s.bookmarks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}
	return bookmarks, nil
}

// GetByID returns one of userID's bookmarks.
func (s *BookmarkService) GetByID(ctx context.Context, userID, bookmarkID int64) (model.Bookmark, error) {
	b, err := s.get(ctx, userID, bookmarkID)
	if err != nil {
		return model.Bookmark{}, err
	}
	return *b, nil
}

// Create stores a new bookmark owned by userID.
func (s *BookmarkService) Create(ctx context.Context, userID int64, req model.CreateBookmarkRequest) (model.Bookmark, error) {
	ts := now()
	b := model.Bookmark{
		UserID:      userID,
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if err := s.bookmarks.Create(ctx, &b); err != nil {
		return model.Bookmark{}, err
	}
	return b, nil
}

// EditByID applies the non-nil fields of req to one of userID's bookmarks.
func (s *BookmarkService) EditByID(ctx context.Context, userID, bookmarkID int64, req model.EditBookmarkRequest) (model.Bookmark, error) {
	b, err := s.get(ctx, userID, bookmarkID)
	if err != nil {
		return model.Bookmark{}, err
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Link != nil {
		b.Link = *req.Link
	}
	if req.Description != nil {
		b.Description = req.Description
	}
	b.UpdatedAt = now()

	if err := s.bookmarks.Update(ctx, b); err != nil {
		return model.Bookmark{}, err
	}
	return *b, nil
}

// DeleteByID removes one of userID's bookmarks.
func (s *BookmarkService) DeleteByID(ctx context.Context, userID, bookmarkID int64) error {
	err := s.bookmarks.Delete(ctx, userID, bookmarkID)
	if errors.Is(err, repository.ErrBookmarkNotFound) {
		return ErrBookmarkNotFound
	}
	return err
}

func (s *BookmarkService) get(ctx context.Context, userID, bookmarkID int64) (*model.Bookmark, error) {
	b, err := s.bookmarks.GetByID(ctx, userID, bookmarkID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, err
	}
	// Ownership is rechecked independently of the store's own filtering.
	if b.UserID != userID {
		return nil, ErrBookmarkNotFound
	}
	return b, nil
}
