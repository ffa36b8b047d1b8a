package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"taskdeck/internal/model"
)

const dateLayout = "2006-01-02"

// TaskRepository defines task persistence operations. Lookup by ID carries no
// ownership filter; ownership is enforced by the service layer, except for
// Delete where the owner condition is part of the statement itself.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Task, error)
	SetCompletion(ctx context.Context, id uint, completed bool) error
	Delete(ctx context.Context, id, ownerID uint) (bool, error)

	Overdue(ctx context.Context, ownerID uint, day time.Time) ([]model.Task, error)
	DueToday(ctx context.Context, ownerID uint, day time.Time) ([]model.Task, error)
	DueLater(ctx context.Context, ownerID uint, day time.Time) ([]model.Task, error)
	Completed(ctx context.Context, ownerID uint) ([]model.Task, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task.
func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID regardless of owner.
func (r *taskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner lists all tasks owned by the given user in insertion order.
func (r *taskRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// SetCompletion overwrites the completion flag of a single task.
func (r *taskRepository) SetCompletion(ctx context.Context, id uint, completed bool) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("completed", completed).Error
}

// Delete removes the task only when it exists and is owned by ownerID, and
// reports whether a row was actually removed. The ownership check is part of
// the DELETE statement, so it cannot race with a concurrent mutation.
func (r *taskRepository) Delete(ctx context.Context, id, ownerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Task{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Overdue lists incomplete tasks due strictly before the given day.
func (r *taskRepository) Overdue(ctx context.Context, ownerID uint, day time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ? AND due_date < ?", ownerID, false, day.Format(dateLayout)).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// DueToday lists incomplete tasks due on the given day.
func (r *taskRepository) DueToday(ctx context.Context, ownerID uint, day time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ? AND due_date = ?", ownerID, false, day.Format(dateLayout)).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// DueLater lists incomplete tasks due strictly after the given day.
func (r *taskRepository) DueLater(ctx context.Context, ownerID uint, day time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ? AND due_date > ?", ownerID, false, day.Format(dateLayout)).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Completed lists completed tasks regardless of due date.
func (r *taskRepository) Completed(ctx context.Context, ownerID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ?", ownerID, true).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
