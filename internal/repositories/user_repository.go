package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&users).Error
	return users, err
}

// Update applies a partial update; fields must be non-empty. A no-op
// update of an existing user still succeeds.
func (r *UserRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(fields)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteWithTasks removes every task the user created or is assigned
// to, the attachment metadata of those tasks, and the user record
// itself, all inside one transaction so no window exists where tasks
// reference a missing user. Returns the number of tasks removed.
//
// A concurrent duplicate delete sees zero affected user rows, rolls
// back and reports not found, so task removal is never double-counted.
func (r *UserRepository) DeleteWithTasks(ctx context.Context, id string) (int64, error) {
	var tasksRemoved int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&model.Task{}).
			Select("id").
			Where("created_by = ? OR assigned_to = ?", id, id)

		if err := tx.Where("task_id IN (?)", taskIDs).
			Delete(&model.Attachment{}).Error; err != nil {
			return err
		}

		res := tx.Where("created_by = ? OR assigned_to = ?", id, id).
			Delete(&model.Task{})
		if res.Error != nil {
			return res.Error
		}
		tasksRemoved = res.RowsAffected

		res = tx.Delete(&model.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return tasksRemoved, nil
}
