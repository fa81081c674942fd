package service

import (
	"context"
	"errors"

	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/linkstash/linkstash-go/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

// UserService reads and edits the authenticated user's profile.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetMe returns the profile of userID.
func (s *UserService) GetMe(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.get(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return user.ToResponse(), nil
}

// EditProfile applies the non-nil fields of req to userID's profile.
func (s *UserService) EditProfile(ctx context.Context, userID int64, req model.EditUserRequest) (model.UserResponse, error) {
	user, err := s.get(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	user.UpdatedAt = now()

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return user.ToResponse(), nil
}

func (s *UserService) get(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
