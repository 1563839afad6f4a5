package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"task-manager.com/task-manager/internal/auth"
	"task-manager.com/task-manager/internal/constants"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

type UserService struct {
	users  *repository.UserRepository
	hasher *auth.PasswordHasher
}

func NewUserService(users *repository.UserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
	}
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Email    *string
	Role     *string
	Password *string
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrInvalidUserID
	}
	return s.users.FindByID(ctx, id)
}

// Update applies a partial update of email, role and password. The
// role must be one of the two enum values and a new password is
// re-hashed before storage.
func (s *UserService) Update(ctx context.Context, id string, update UserUpdate) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrInvalidUserID
	}

	fields := map[string]interface{}{}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Role != nil {
		if !constants.ValidRole(*update.Role) {
			return apperrors.ErrInvalidRole
		}
		fields["role"] = *update.Role
	}
	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return err
		}
		fields["password_hash"] = hash
	}

	if len(fields) == 0 {
		return apperrors.ErrNoUpdateFields
	}

	return s.users.Update(ctx, id, fields)
}

// Delete removes the user and cascades to every task referencing it as
// creator or assignee, reporting how many tasks were removed.
func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, apperrors.ErrInvalidUserID
	}

	tasksRemoved, err := s.users.DeleteWithTasks(ctx, id)
	if err != nil {
		return 0, err
	}

	log.Printf("deleted user %s and %d referenced tasks", id, tasksRemoved)
	return tasksRemoved, nil
}
