package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-match-service.com/task-match-service/internal/constants"
	apperrors "task-match-service.com/task-match-service/internal/errors"
	model "task-match-service.com/task-match-service/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, ownerID, name, description string) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Status:      constants.StatusUnassigned,
		OwnerID:     ownerID,
		Version:     1,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

// ListUnassigned returns the current task pool: every task eligible for
// assignment, oldest first. This is also the ranking candidate set.
func (r *TaskRepository) ListUnassigned(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("status = ?", constants.StatusUnassigned).
		Order("created_at asc").
		Find(&tasks).Error
	return tasks, err
}

// Transition commits the state already written into task, but only if
// the stored row still has the expected source status and version. Zero
// rows affected means another caller won the race (or the task moved
// on), which surfaces as an invalid transition; the caller never
// retries internally.
func (r *TaskRepository) Transition(ctx context.Context, task *model.Task, from constants.TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ? AND version = ?", task.ID, from, task.Version).
		Updates(map[string]interface{}{
			"status":       task.Status,
			"assignee_id":  task.AssigneeID,
			"output":       task.Output,
			"submitted_at": task.SubmittedAt,
			"approved_at":  task.ApprovedAt,
			"version":      gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrInvalidStateTransition
	}

	task.Version++
	return nil
}

// ApprovedTaskIDsByAssignee is the user's task history: everything the
// user carried through to approval.
func (r *TaskRepository) ApprovedTaskIDsByAssignee(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("assignee_id = ? AND status = ?", userID, constants.StatusApproved).
		Pluck("id", &ids).Error
	return ids, err
}
