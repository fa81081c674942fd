package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/linkstash/linkstash-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("credentials incorrect")
	ErrCredentialsTaken   = errors.New("credentials taken")
)

// AuthService handles signup and signin.
type AuthService struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Signup creates a new user account and returns an access token.
func (s *AuthService) Signup(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("hashing password: %w", err)
	}

	ts := now()
	user := &model.User{
		Email:     req.Email,
		Hash:      hash,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrCredentialsTaken
		}
		return model.AuthResponse{}, err
	}

	return s.issue(user)
}

// Signin authenticates a user and returns an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Signin(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := s.hasher.Verify(req.Password, user.Hash)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("verifying password: %w", err)
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *model.User) (model.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("issuing token: %w", err)
	}
	return model.AuthResponse{AccessToken: token}, nil
}
