package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"taskdeck/internal/errors"
	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

// MinTitleLength is the minimum accepted task title length after trimming.
const MinTitleLength = 5

// dueDateLayouts are the accepted wire formats for due dates. Clients send
// either a plain date or a full timestamp; only the date part is kept.
var dueDateLayouts = []string{"2006-01-02", time.RFC3339}

// TaskService validates input and enforces ownership before touching the task
// store. The acting user's ID is always an explicit parameter, never read
// from ambient request state.
type TaskService interface {
	Create(ctx context.Context, ownerID uint, title, dueDate string) (*model.Task, error)
	List(ctx context.Context, ownerID uint) ([]model.Task, error)
	ListBucket(ctx context.Context, ownerID uint, bucket model.Bucket, today time.Time) ([]model.Task, error)
	Get(ctx context.Context, sessionUserID, taskID uint) (*model.Task, error)
	Grouped(ctx context.Context, ownerID uint, today time.Time) (Buckets, error)
	SetCompletion(ctx context.Context, sessionUserID, taskID uint, completed bool) (*model.Task, error)
	Delete(ctx context.Context, sessionUserID, taskID uint) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

// Create validates the title and due date and persists a new incomplete task
// owned by ownerID.
func (s *taskService) Create(ctx context.Context, ownerID uint, title, dueDate string) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < MinTitleLength {
		return nil, errors.ErrTitleTooShort
	}

	due, err := parseDueDate(dueDate)
	if err != nil {
		return nil, errors.ErrInvalidDueDate
	}

	task := &model.Task{
		Title:     title,
		DueDate:   due,
		Completed: false,
		UserID:    ownerID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// List returns all tasks owned by ownerID in insertion order.
func (s *taskService) List(ctx context.Context, ownerID uint) ([]model.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// ListBucket returns the owner's tasks in a single bucket, filtered in SQL.
func (s *taskService) ListBucket(ctx context.Context, ownerID uint, bucket model.Bucket, today time.Time) ([]model.Task, error) {
	switch bucket {
	case model.BucketOverdue:
		return s.repo.Overdue(ctx, ownerID, today)
	case model.BucketDueToday:
		return s.repo.DueToday(ctx, ownerID, today)
	case model.BucketDueLater:
		return s.repo.DueLater(ctx, ownerID, today)
	case model.BucketCompleted:
		return s.repo.Completed(ctx, ownerID)
	default:
		return nil, errors.ErrInvalidBucket
	}
}

// Get loads a task and verifies the session user owns it.
func (s *taskService) Get(ctx context.Context, sessionUserID, taskID uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task.UserID != sessionUserID {
		return nil, errors.ErrForbidden
	}
	return task, nil
}

// Grouped lists the owner's tasks and partitions them into the four buckets.
func (s *taskService) Grouped(ctx context.Context, ownerID uint, today time.Time) (Buckets, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return Buckets{}, fmt.Errorf("list tasks: %w", err)
	}
	return Classify(tasks, today), nil
}

// SetCompletion overwrites the completion flag after verifying ownership and
// returns the updated record.
func (s *taskService) SetCompletion(ctx context.Context, sessionUserID, taskID uint, completed bool) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task.UserID != sessionUserID {
		return nil, errors.ErrForbidden
	}

	if task.Completed != completed {
		if err := s.repo.SetCompletion(ctx, taskID, completed); err != nil {
			return nil, fmt.Errorf("set completion: %w", err)
		}
		task.Completed = completed
	}
	return task, nil
}

// Delete removes the task when the session user owns it. The ownership check
// happens atomically inside the store's delete statement.
func (s *taskService) Delete(ctx context.Context, sessionUserID, taskID uint) error {
	removed, err := s.repo.Delete(ctx, taskID, sessionUserID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !removed {
		return errors.ErrForbidden
	}
	return nil
}

func parseDueDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty due date")
	}
	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			y, m, d := parsed.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable due date: %q", raw)
}
