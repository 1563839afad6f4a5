package services

import (
	"context"
	"errors"

	"task-manager.com/task-manager/internal/auth"
	"task-manager.com/task-manager/internal/constants"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

type AuthService struct {
	users     *repository.UserRepository
	hasher    *auth.PasswordHasher
	authority *auth.TokenAuthority
}

func NewAuthService(
	users *repository.UserRepository,
	hasher *auth.PasswordHasher,
	authority *auth.TokenAuthority,
) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		authority: authority,
	}
}

// Register creates an account with the default role. Email uniqueness
// is enforced both here and by the store's unique index.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         constants.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a session token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.authority.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the session's jti for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	return s.authority.Revoke(ctx, jti)
}
