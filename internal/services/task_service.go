package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"task-manager.com/task-manager/internal/auth"
	"task-manager.com/task-manager/internal/constants"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	"task-manager.com/task-manager/internal/query"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/storage"
)

type TaskService struct {
	tasks           *repository.TaskRepository
	uploads         *storage.UploadStore
	defaultPageSize int
	maxPageSize     int
}

func NewTaskService(
	tasks *repository.TaskRepository,
	uploads *storage.UploadStore,
	defaultPageSize int,
	maxPageSize int,
) *TaskService {
	return &TaskService{
		tasks:           tasks,
		uploads:         uploads,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// TaskInput holds the mutable task fields for create and update. On
// update, nil fields are left untouched.
type TaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *string
	AssignedTo  *string
}

// Create validates and persists the attachments first, then the task;
// the attachment count check fails fast before anything is written.
func (s *TaskService) Create(
	ctx context.Context,
	creatorID string,
	in TaskInput,
	files []*multipart.FileHeader,
) (*model.Task, error) {
	task := &model.Task{
		Status:    constants.StatusPending,
		CreatedBy: creatorID,
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil && *in.Status != "" {
		task.Status = *in.Status
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if in.AssignedTo != nil && *in.AssignedTo != "" {
		if _, err := uuid.Parse(*in.AssignedTo); err != nil {
			return nil, apperrors.ErrInvalidUserID
		}
		task.AssignedTo = in.AssignedTo
	}

	attachments, err := s.uploads.SaveAll(files)
	if err != nil {
		return nil, err
	}
	task.Attachments = attachments

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// List serves the FSP listing: the builder translates raw query
// parameters into a descriptor and the repository applies it.
func (s *TaskService) List(ctx context.Context, params map[string]string) ([]model.Task, error) {
	q := query.BuildTask(params, s.defaultPageSize, s.maxPageSize)
	return s.tasks.List(ctx, q)
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrInvalidTaskID
	}
	return s.tasks.FindByID(ctx, id)
}

// Update applies a partial update. Only the creator, the assignee or
// an admin may modify a task.
func (s *TaskService) Update(ctx context.Context, claims *auth.Claims, id string, in TaskInput) (*model.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(claims, task) {
		return nil, apperrors.ErrForbidden
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Priority != nil {
		fields["priority"] = *in.Priority
	}
	if in.DueDate != nil {
		fields["due_date"] = *in.DueDate
	}
	if in.AssignedTo != nil {
		if *in.AssignedTo == "" {
			fields["assigned_to"] = nil
		} else {
			if _, err := uuid.Parse(*in.AssignedTo); err != nil {
				return nil, apperrors.ErrInvalidUserID
			}
			fields["assigned_to"] = *in.AssignedTo
		}
	}

	if len(fields) == 0 {
		return nil, apperrors.ErrNoUpdateFields
	}

	if err := s.tasks.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	task, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(claims, task) {
		return apperrors.ErrForbidden
	}

	return s.tasks.Delete(ctx, id)
}

func canModify(claims *auth.Claims, task *model.Task) bool {
	if claims.Role == constants.RoleAdmin {
		return true
	}
	if claims.Subject == task.CreatedBy {
		return true
	}
	return task.AssignedTo != nil && *task.AssignedTo == claims.Subject
}
