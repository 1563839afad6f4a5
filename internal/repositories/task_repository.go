package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	"task-manager.com/task-manager/internal/query"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// sortColumns maps FSP sort fields to columns. Sort fields arrive from
// the query string, so anything outside this map is ignored rather
// than interpolated into ORDER BY.
var sortColumns = map[string]string{
	"due_date":   "due_date",
	"status":     "status",
	"priority":   "priority",
	"title":      "title",
	"created_at": "created_at",
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	task.CreatedAt = time.Now().UTC()

	for i := range task.Attachments {
		task.Attachments[i].TaskID = task.ID
	}

	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("Attachments").First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// List applies a TaskQuery descriptor: filter clauses, sort keys in
// the given order, then the page window.
func (r *TaskRepository) List(ctx context.Context, q query.TaskQuery) ([]model.Task, error) {
	tx := r.db.WithContext(ctx).Preload("Attachments")

	if q.Filter.Status != "" {
		tx = tx.Where("status = ?", q.Filter.Status)
	}
	if q.Filter.Priority != "" {
		tx = tx.Where("priority = ?", q.Filter.Priority)
	}
	if q.Filter.DueDateMax != "" {
		tx = tx.Where("due_date <= ?", q.Filter.DueDateMax)
	}
	if q.Filter.AssignedTo != "" {
		tx = tx.Where("assigned_to = ?", q.Filter.AssignedTo)
	}

	for _, key := range q.Sort {
		col, ok := sortColumns[key.Field]
		if !ok {
			continue
		}
		if key.Direction == query.Descending {
			tx = tx.Order(col + " desc")
		} else {
			tx = tx.Order(col + " asc")
		}
	}

	var tasks []model.Task
	err := tx.Offset(q.Skip).Limit(q.Limit).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(fields)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.Attachment{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Task{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTaskNotFound
		}
		return nil
	})
}
