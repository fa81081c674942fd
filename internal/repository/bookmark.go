package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/linkstash/linkstash-go/internal/model"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository handles bookmark persistence. Every query that reads or
// mutates a single bookmark is scoped by owner, so another user's bookmark
// behaves exactly like a missing one.
type BookmarkRepository struct {
	db *sql.DB
}

// NewBookmarkRepository creates a new BookmarkRepository.
func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

const bookmarkColumns = `id, user_id, title, link, description, created_at, updated_at`

// Create inserts a bookmark and sets its generated ID.
func (r *BookmarkRepository) Create(ctx context.Context, b *model.Bookmark) error {
	query := `INSERT INTO bookmarks (user_id, title, link, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		b.UserID, b.Title, b.Link, b.Description, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting bookmark: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading bookmark id: %w", err)
	}

	b.ID = id
	return nil
}

// ListByUser returns the user's bookmarks in insertion order.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := []model.Bookmark{}
	for rows.Next() {
		var b model.Bookmark
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Title, &b.Link, &b.Description, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}

// GetByID retrieves a bookmark owned by userID.
func (r *BookmarkRepository) GetByID(ctx context.Context, userID, id int64) (*model.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = ? AND user_id = ?`

	b := &model.Bookmark{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&b.ID, &b.UserID, &b.Title, &b.Link, &b.Description, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("querying bookmark: %w", err)
	}

	return b, nil
}

// Update writes the editable fields of b. The row must belong to b.UserID.
func (r *BookmarkRepository) Update(ctx context.Context, b *model.Bookmark) error {
	query := `UPDATE bookmarks SET title = ?, link = ?, description = ?, updated_at = ? WHERE id = ? AND user_id = ?`

	if _, err := r.db.ExecContext(ctx, query,
		b.Title, b.Link, b.Description, b.UpdatedAt, b.ID, b.UserID); err != nil {
		return fmt.Errorf("updating bookmark: %w", err)
	}

	return nil
}

// Delete removes the bookmark if it belongs to userID.
func (r *BookmarkRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}
