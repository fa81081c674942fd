package model

import "time"

// Bookmark is a link saved by a user. UserID is the owner.
type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateBookmarkRequest represents a bookmark creation request.
type CreateBookmarkRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Link        string  `json:"link" validate:"required,url,max=2048"`
	Description *string `json:"description" validate:"omitnil,max=4096"`
}

// EditBookmarkRequest is a partial bookmark update. Nil fields are left untouched.
type EditBookmarkRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=255"`
	Link        *string `json:"link" validate:"omitnil,url,max=2048"`
	Description *string `json:"description" validate:"omitnil,max=4096"`
}
