package model

import "time"

// User represents a user in the database.
type User struct {
	ID        int64
	Email     string
	Hash      string
	FirstName *string
	LastName  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthRequest carries signup and signin credentials.
type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

// EditUserRequest is a partial profile update. Nil fields are left untouched.
type EditUserRequest struct {
	Email     *string `json:"email" validate:"omitnil,email"`
	FirstName *string `json:"firstName" validate:"omitnil,max=255"`
	LastName  *string `json:"lastName" validate:"omitnil,max=255"`
}

// UserResponse represents user data safe for API responses (no hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToResponse strips the password hash.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
