package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inkpost/inkpost-be/internal/auth"
	"github.com/inkpost/inkpost-be/internal/models"
	"github.com/inkpost/inkpost-be/internal/storage"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Signup(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
}

// UserService provides business logic for account creation and login.
type UserService struct {
	users  storage.UserStore
	hasher *auth.Hasher
	tokens *auth.TokenManager
}

// NewUserService creates a new UserService.
func NewUserService(users storage.UserStore, hasher *auth.Hasher, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, hasher: hasher, tokens: tokens}
}

// Signup registers a new account and returns an identity token for it.
// Returns ErrEmailTaken when the email is already registered.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (string, error) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	return s.tokens.Issue(user.ID)
}

// Login verifies the credentials and returns an identity token. Unknown
// email and wrong password both yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}
